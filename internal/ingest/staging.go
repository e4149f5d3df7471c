package ingest

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/restoledger/invoice-pipeline/constants"
	"github.com/restoledger/invoice-pipeline/internal/segment"
)

// Stager prepares source files for extraction: every run starts from an
// empty staging directory, copies the source tree in flat, then routes each
// file to the processed directory, splitting multi-invoice PDFs on the way.
type Stager struct {
	stagingDir   string
	processedDir string
	splitter     *segment.Splitter
	logger       *slog.Logger
}

// Stats summarizes one staging run.
type Stats struct {
	Copied  uint32
	Renamed uint32
	Skipped uint32
	Moved   uint32
	Split   uint32
	Failed  uint32
}

func NewStager(stagingDir, processedDir string, splitter *segment.Splitter, logger *slog.Logger) *Stager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Stager{
		stagingDir:   stagingDir,
		processedDir: processedDir,
		splitter:     splitter,
		logger:       logger,
	}
}

// Reset deletes the staging directory if present and recreates it empty.
func (s *Stager) Reset() error {
	if err := os.RemoveAll(s.stagingDir); err != nil {
		return fmt.Errorf("reset staging dir: %w", err)
	}
	if err := os.MkdirAll(s.stagingDir, 0o755); err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	return nil
}

// CopyIn walks root recursively and copies every allowed file into the
// staging directory, flattening the tree. A name collision gets a "_dup"
// suffix before the extension. Hidden files and directories are skipped.
func (s *Stager) CopyIn(root string) (Stats, error) {
	var stats Stats

	if strings.TrimSpace(root) == "" {
		return stats, fmt.Errorf("source directory is required")
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			s.logger.Warn("ingest.copy.walk_error", "path", path, "error", walkErr)
			stats.Failed++
			return nil
		}
		if IsHidden(path) && path != root {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		if !AllowedExt(filepath.Ext(path)) {
			stats.Skipped++
			return nil
		}

		dest := filepath.Join(s.stagingDir, filepath.Base(path))
		if _, err := os.Stat(dest); err == nil {
			ext := filepath.Ext(dest)
			stem := strings.TrimSuffix(filepath.Base(dest), ext)
			dest = filepath.Join(s.stagingDir, stem+"_dup"+ext)
			stats.Renamed++
		}

		if err := copyFile(path, dest); err != nil {
			s.logger.Warn("ingest.copy.failed", "path", path, "error", err)
			stats.Failed++
			return nil
		}
		stats.Copied++
		return nil
	})
	if err != nil {
		return stats, fmt.Errorf("walk %s: %w", root, err)
	}

	s.logger.Info("ingest.copy.ok",
		"root", root,
		"copied", stats.Copied,
		"renamed", stats.Renamed,
		"skipped", stats.Skipped,
	)
	return stats, nil
}

// Regularize routes every staged file into the processed directory. Images
// and single-page PDFs move over as-is, multi-page PDFs are split into one
// file per detected invoice. A PDF whose page groups cannot be detected
// stays in staging.
func (s *Stager) Regularize() (Stats, error) {
	var stats Stats

	if err := os.MkdirAll(s.processedDir, 0o755); err != nil {
		return stats, fmt.Errorf("create processed dir: %w", err)
	}

	entries, err := os.ReadDir(s.stagingDir)
	if err != nil {
		return stats, fmt.Errorf("read staging dir: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(s.stagingDir, entry.Name())

		switch constants.MapExtToFormat(filepath.Ext(path)) {
		case "IMAGE":
			if err := s.moveToProcessed(path, &stats); err != nil {
				return stats, err
			}

		case "PDF":
			n, err := pageCount(path)
			if err != nil {
				s.logger.Warn("ingest.regularize.unreadable_pdf", "file", path, "error", err)
				stats.Failed++
				continue
			}
			if n <= 1 {
				if err := s.moveToProcessed(path, &stats); err != nil {
					return stats, err
				}
				continue
			}
			_, split, err := s.splitter.Split(path)
			if err != nil {
				s.logger.Warn("ingest.regularize.split_failed", "file", path, "error", err)
				stats.Failed++
				continue
			}
			if split {
				stats.Split++
			}
		}
	}

	s.logger.Info("ingest.regularize.ok",
		"moved", stats.Moved,
		"split", stats.Split,
		"failed", stats.Failed,
	)
	return stats, nil
}

func (s *Stager) moveToProcessed(path string, stats *Stats) error {
	dest := filepath.Join(s.processedDir, filepath.Base(path))
	if err := os.Rename(path, dest); err != nil {
		return fmt.Errorf("move %s to processed: %w", path, err)
	}
	stats.Moved++
	return nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() {
		_ = in.Close()
	}()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}

func pageCount(path string) (int, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return 0, err
	}
	defer func() {
		_ = f.Close()
	}()
	return reader.NumPage(), nil
}
