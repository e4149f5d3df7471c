package extract

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/restoledger/invoice-pipeline/internal/entity"
	"github.com/restoledger/invoice-pipeline/internal/segment"
)

// PDFExtractor reads the embedded text layer of a PDF.
type PDFExtractor struct {
	logger *slog.Logger
}

func NewPDFExtractor(logger *slog.Logger) *PDFExtractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &PDFExtractor{logger: logger}
}

// Extract pulls the plain text of every page, joined with newlines.
func (e *PDFExtractor) Extract(ctx context.Context, path string) (entity.Document, error) {
	start := time.Now()
	if err := ctx.Err(); err != nil {
		return entity.Document{}, err
	}

	pages, err := segment.ReadPageTexts(path)
	if err != nil {
		return entity.Document{}, fmt.Errorf("read pdf %s: %w", path, err)
	}

	text := strings.TrimSpace(strings.Join(pages, "\n"))
	doc := entity.Document{
		Text:        text,
		Filename:    filepath.Base(path),
		TextLength:  len(text),
		PageCount:   len(pages),
		ExtractedAt: time.Now().UTC(),
	}

	e.logger.Info("extract.pdf.ok",
		"file", doc.Filename,
		"pages", doc.PageCount,
		"text_len", doc.TextLength,
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return doc, nil
}
