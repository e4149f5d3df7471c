package extract

import (
	"context"

	"github.com/restoledger/invoice-pipeline/internal/entity"
)

// TextExtractor turns a document file into plain text plus metadata.
type TextExtractor interface {
	Extract(ctx context.Context, path string) (entity.Document, error)
}
