// Package segment splits a multi-page source document into one file per
// invoice, grouping consecutive pages by their detected invoice identifier.
package segment

import (
	"fmt"
	"regexp"
	"strings"
)

// Identifier patterns in priority order; the first capture that matches a
// page wins. The last entry handles a known noisy prefix where the label
// and id are fused ("ORDERED perof1377184").
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:Order|Invoice)\s*(?:No\.?|Number|#)?\s*[:.]?\s*(\d+)`),
	regexp.MustCompile(`(?i)(\d{3,})\s+(?:Order|Invoice)\s+Number`),
	regexp.MustCompile(`(?i)perof1(\d+)`),
}

// PageGroup is a contiguous run of 1-based page indices belonging to one
// logical invoice.
type PageGroup []int

// DetectPageGroups scans per-page text and groups pages into distinct
// invoices. Adjacent pages are assumed to belong to the same invoice unless
// a new and different identifier is detected: a page without an identifier
// is treated as an overflow page of the invoice being built.
func DetectPageGroups(pages []string) []PageGroup {
	var groups []PageGroup
	var current PageGroup
	var trackingID string
	var haveTracking bool

	for i, pageText := range pages {
		page := i + 1
		text := strings.TrimSpace(strings.ReplaceAll(pageText, "\n", " "))

		foundID := ""
		haveFound := false
		for _, pat := range idPatterns {
			if m := pat.FindStringSubmatch(text); m != nil {
				foundID = strings.TrimSpace(m[1])
				haveFound = true
				break
			}
		}

		if page == 1 {
			trackingID, haveTracking = foundID, haveFound
			current = append(current, page)
			continue
		}

		switch {
		case !haveFound:
			// Overflow page of the prior invoice.
			current = append(current, page)
		case haveTracking && foundID == trackingID:
			// Repeated header on a continuation page.
			current = append(current, page)
		default:
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = PageGroup{page}
			trackingID, haveTracking = foundID, true
		}
	}

	if len(current) > 0 {
		groups = append(groups, current)
	}
	return groups
}

// ValidateGroups checks that every group is a run of strictly consecutive
// 1-based page indices, that no page appears twice, and that all indices
// fall within [1, pageCount]. A violation is a detector defect and is
// surfaced, never repaired.
func ValidateGroups(groups []PageGroup, pageCount int) error {
	covered := make(map[int]struct{})
	for _, grp := range groups {
		for i := 0; i < len(grp)-1; i++ {
			if grp[i+1] != grp[i]+1 {
				return fmt.Errorf("page group %v is not consecutive", grp)
			}
		}
		for _, page := range grp {
			if page < 1 || page > pageCount {
				return fmt.Errorf("page index %d out of range [1,%d]", page, pageCount)
			}
			if _, dup := covered[page]; dup {
				return fmt.Errorf("page index %d appears in more than one group", page)
			}
			covered[page] = struct{}{}
		}
	}
	return nil
}
