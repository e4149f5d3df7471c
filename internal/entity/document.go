package entity

import "time"

// Document is one logical invoice's full text plus extraction metadata.
// It is ephemeral: created per processing run and discarded once records
// have been emitted.
type Document struct {
	Text        string
	Filename    string
	TextLength  int
	PageCount   int
	ExtractedAt time.Time
}
