// Package signals mines identity-bearing evidence (email, phone, website,
// name, postal address) out of raw invoice text. Extraction favors precision
// over recall; every field is independently optional.
package signals

import (
	"regexp"
	"strings"

	"github.com/restoledger/invoice-pipeline/internal/entity"
)

var (
	reEmail       = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	rePhoneLabel  = regexp.MustCompile(`(?i)(?:Phone|Tel|Mobile|Cell|Ph|T)[:.\-\s]+([+\d()\-\s]{7,20})`)
	rePhoneStrict = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	reDateLike    = regexp.MustCompile(`^20[2-3]\d`)
	reURL         = regexp.MustCompile(`(?:https?://)?(?:www\.)?[a-zA-Z0-9-]+\.[a-zA-Z]{2,}(?:/\S*)?`)
	reVendorLabel = regexp.MustCompile(`(?i)(?:Vendor|Supplier|Billed by|Sold by|Payable to)[:\s\-]+([A-Za-z0-9&.\-,\s]{3,50})`)
	reLegalSuffix = regexp.MustCompile(`(?i)\b(Inc|LLC|Ltd|GmbH|BV|B\.V\.|Co\.|Company|Corp|Corporation|S\.A\.|S\.L\.|AG|Pty|Pvt|Private|Plc)\b`)
	reBillShipTo  = regexp.MustCompile(`(?i)(Bill|Ship|Sold)\s+To:`)
	reNameNoise   = regexp.MustCompile(`,|\||-|—|:|Tel|Ph`)
	reNonUpper    = regexp.MustCompile(`[^A-Z0-9 ]`)
	reStreetWords = regexp.MustCompile(`(?i)\b(Street|St|Road|Rd|Avenue|Ave|Lane|Ln|Drive|Dr|Blvd|Boulevard|Way|Plaza|Square|Sq|P\.O\.\s*Box|Suite|Floor|Unit)\b`)
	reZip         = regexp.MustCompile(`\b([A-Z]{1,2}\d[A-Z\d]?\s*\d[A-Z]{2}|[A-Z]{2}-\d{4}|\d{5}(?:-\d{4})?|\d{4}\s?[A-Z]{2})\b`)
	reDigit       = regexp.MustCompile(`\d`)
)

var knownTLDs = []string{".com", ".net", ".org", ".io", ".co", ".us", ".eu", ".de"}

// Extract scans raw document text for vendor contact and header signals.
// Absence of every signal is a valid (if unhelpful) result.
func Extract(text string) entity.VendorSignals {
	var s entity.VendorSignals
	if text == "" {
		return s
	}

	lines := nonBlankLines(text)

	s.Email = extractEmail(text)
	s.Phone = extractPhone(text, lines)
	s.Website = extractWebsite(lines)
	s.Name = extractName(lines)
	s.Address = extractAddress(lines)
	return s
}

func nonBlankLines(text string) []string {
	raw := regexp.MustCompile(`\r\n|\r|\n`).Split(text, -1)
	lines := make([]string, 0, len(raw))
	for _, ln := range raw {
		if t := strings.TrimSpace(ln); t != "" {
			lines = append(lines, t)
		}
	}
	return lines
}

// extractEmail returns the first RFC-shaped address anywhere in the text.
// For a vendor signal "billing@" or "info@" is actually useful, so no
// mailbox filtering is applied.
func extractEmail(text string) string {
	return reEmail.FindString(text)
}

// extractPhone prefers an explicitly labelled number in the header lines and
// falls back to a strict phone-shaped scan of the first 2000 characters,
// excluding sequences that look like calendar dates.
func extractPhone(text string, lines []string) string {
	for _, line := range head(lines, 30) {
		if m := rePhoneLabel.FindStringSubmatch(line); m != nil {
			raw := strings.TrimSpace(m[1])
			if len(reDigit.FindAllString(raw, -1)) >= 7 {
				return raw
			}
		}
	}

	window := text
	if len(window) > 2000 {
		window = window[:2000]
	}
	for _, cand := range rePhoneStrict.FindAllString(window, -1) {
		if !reDateLike.MatchString(cand) {
			return cand
		}
	}
	return ""
}

// extractWebsite returns the first URL-shaped token carrying a known TLD.
func extractWebsite(lines []string) string {
	for _, line := range lines {
		for _, url := range reURL.FindAllString(line, -1) {
			lower := strings.ToLower(url)
			for _, tld := range knownTLDs {
				if strings.Contains(lower, tld) {
					return url
				}
			}
		}
	}
	return ""
}

// extractName applies a three-tier fallback: explicit label, legal-entity
// suffix, then a short fully-uppercase header line.
func extractName(lines []string) string {
	// A. Explicit label in the header.
	header := strings.Join(head(lines, 15), " ")
	if m := reVendorLabel.FindStringSubmatch(header); m != nil {
		name := strings.TrimSpace(strings.SplitN(m[1], "  ", 2)[0])
		if name != "" {
			return name
		}
	}

	// B. Legal-entity suffix, skipping Bill To / Ship To lines.
	for _, line := range head(lines, 20) {
		if reBillShipTo.MatchString(line) {
			continue
		}
		if reLegalSuffix.MatchString(line) {
			cand := strings.TrimSpace(reNameNoise.Split(line, 2)[0])
			if len(cand) > 2 && len(cand) < 60 && !isAllDigits(cand) {
				return cand
			}
		}
	}

	// C. First short, fully-uppercase, non-numeric line that is not itself
	// an invoice keyword.
	for _, line := range head(lines, 10) {
		clean := reNonUpper.ReplaceAllString(line, "")
		if len(line) > 2 && len(line) < 50 && clean == line && !isAllDigits(line) {
			if !strings.Contains(line, "INVOICE") && !strings.Contains(line, "ORDER") {
				return line
			}
		}
	}
	return ""
}

// extractAddress scans header and footer lines for street-type keywords or
// postal-code shapes, concatenating an adjacent line to capture a two-line
// "street + city/zip" block. First candidate wins.
func extractAddress(lines []string) string {
	search := head(lines, 40)
	if len(lines) > 10 {
		search = append(append([]string{}, search...), lines[len(lines)-10:]...)
	}

	for i, line := range search {
		if reStreetWords.MatchString(line) {
			block := line
			if i+1 < len(search) {
				next := search[i+1]
				if reZip.MatchString(next) || len(next) < 50 {
					block += ", " + next
				}
			}
			return block
		}
		if reZip.MatchString(line) && i > 0 {
			prev := search[i-1]
			if len(prev) < 60 {
				return prev + ", " + line
			}
		}
	}
	return ""
}

func head(lines []string, n int) []string {
	if len(lines) < n {
		return lines
	}
	return lines[:n]
}

func isAllDigits(s string) bool {
	s = strings.ReplaceAll(s, " ", "")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
