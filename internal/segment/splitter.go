package segment

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"
)

// Splitter materializes detected page groups as independent PDF files in the
// processed directory. Materialization is all-or-nothing: either every group
// is written and the original is removed, or partial outputs are discarded
// and the original stays intact.
type Splitter struct {
	processedDir string
	logger       *slog.Logger
}

func NewSplitter(processedDir string, logger *slog.Logger) *Splitter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Splitter{processedDir: processedDir, logger: logger}
}

// GroupFilename returns the output filename for one page group:
// {stem}-page{start}.pdf for a single page, {stem}-page{start}-{end}.pdf
// for a multi-page run.
func GroupFilename(stem string, grp PageGroup) string {
	start, end := grp[0], grp[len(grp)-1]
	if start == end {
		return fmt.Sprintf("%s-page%d.pdf", stem, start)
	}
	return fmt.Sprintf("%s-page%d-%d.pdf", stem, start, end)
}

// Split detects invoice boundaries in the multi-page PDF at path and writes
// one PDF per group into the processed directory. It returns the created
// file paths. When the detector finds nothing to do the source is left
// untouched and (nil, false, nil) is returned.
func (s *Splitter) Split(path string) ([]string, bool, error) {
	pages, err := ReadPageTexts(path)
	if err != nil {
		return nil, false, fmt.Errorf("read page texts: %w", err)
	}

	groups := DetectPageGroups(pages)
	if len(groups) == 0 {
		s.logger.Info("segment.split.noop", "file", path)
		return nil, false, nil
	}
	if err := ValidateGroups(groups, len(pages)); err != nil {
		return nil, false, fmt.Errorf("invalid page groups for %s: %w", path, err)
	}

	s.logger.Info("segment.split.start",
		"file", path,
		"pages", len(pages),
		"groups", len(groups),
	)

	stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	var created []string
	cleanup := func() {
		for _, f := range created {
			if rmErr := os.Remove(f); rmErr != nil {
				s.logger.Warn("segment.split.cleanup_failed", "file", f, "error", rmErr)
			}
		}
	}

	for _, grp := range groups {
		name := GroupFilename(stem, grp)
		tmpPath := filepath.Join(s.processedDir, ".tmp-"+name)
		finalPath := filepath.Join(s.processedDir, name)

		sel := pageSelection(grp)
		if err := api.TrimFile(path, tmpPath, sel, nil); err != nil {
			cleanup()
			_ = os.Remove(tmpPath)
			return nil, false, fmt.Errorf("write group %v of %s: %w", grp, path, err)
		}
		if err := os.Rename(tmpPath, finalPath); err != nil {
			cleanup()
			_ = os.Remove(tmpPath)
			return nil, false, fmt.Errorf("finalize %s: %w", finalPath, err)
		}
		created = append(created, finalPath)
	}

	if err := os.Remove(path); err != nil {
		cleanup()
		return nil, false, fmt.Errorf("remove original %s: %w", path, err)
	}

	s.logger.Info("segment.split.ok", "file", path, "created", len(created))
	return created, true, nil
}

func pageSelection(grp PageGroup) []string {
	start, end := grp[0], grp[len(grp)-1]
	if start == end {
		return []string{fmt.Sprintf("%d", start)}
	}
	return []string{fmt.Sprintf("%d-%d", start, end)}
}

// ReadPageTexts extracts the plain text of every page of the PDF at path.
// Pages that fail to decode yield an empty string rather than an error, the
// detector treats them as overflow pages.
func ReadPageTexts(path string) ([]string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			slog.Default().Warn("segment.pdf.close_failed", "file", path, "error", cerr)
		}
	}()

	total := reader.NumPage()
	pages := make([]string, total)
	for i := 1; i <= total; i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages[i-1] = text
	}
	return pages, nil
}
