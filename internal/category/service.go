package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/restoledger/invoice-pipeline/constants"
	"github.com/restoledger/invoice-pipeline/internal/common"
	"github.com/restoledger/invoice-pipeline/internal/llm"
)

// Store persists the category taxonomy and the learned mapping from
// cleaned descriptions to categories. StoredCategory returns
// common.ErrNotFound for an unmapped description.
type Store interface {
	StoredCategory(ctx context.Context, cleaned string) (string, error)
	CategoryNames(ctx context.Context) ([]string, error)
	InsertMasterCategory(ctx context.Context, name string) error
	UpsertItemMapping(ctx context.Context, cleaned, category string) error
}

// Service assigns a category to each line item: stored mapping first, then
// a model prediction constrained to the existing taxonomy, learning the
// result for next time.
type Service struct {
	store     Store
	completer llm.Completer
	logger    *slog.Logger
}

func NewService(store Store, completer llm.Completer, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{store: store, completer: completer, logger: logger}
}

// Categorize returns the category for a raw line-item description. Model
// failures degrade to the Uncategorized label rather than failing the
// document; store failures propagate.
func (s *Service) Categorize(ctx context.Context, description string) (string, error) {
	if strings.TrimSpace(description) == "" {
		return constants.UncategorizedLabel, nil
	}

	cleaned := CleanDescription(description)
	if cleaned == "" {
		return constants.UncategorizedLabel, nil
	}

	stored, err := s.store.StoredCategory(ctx, cleaned)
	if err == nil {
		return stored, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return "", fmt.Errorf("stored category lookup for %q: %w", cleaned, err)
	}

	existing, err := s.store.CategoryNames(ctx)
	if err != nil {
		return "", fmt.Errorf("list categories: %w", err)
	}

	predicted := s.predict(ctx, cleaned, existing)
	if err := s.saveResult(ctx, cleaned, predicted, existing); err != nil {
		return "", err
	}
	return predicted, nil
}

// predict asks the model for a category; any failure collapses to the
// Uncategorized label.
func (s *Service) predict(ctx context.Context, cleaned string, existing []string) string {
	raw, err := s.completer.Complete(ctx, BuildCategorizationPrompt(cleaned, existing))
	if err != nil {
		s.logger.Error("category.predict.error", "description", cleaned, "error", err)
		return constants.UncategorizedLabel
	}

	predicted := strings.TrimSpace(raw)
	predicted = strings.ReplaceAll(predicted, "```", "")
	predicted = strings.ReplaceAll(predicted, "**", "")
	predicted = strings.TrimSpace(predicted)
	if predicted == "" {
		return constants.UncategorizedLabel
	}

	s.logger.Info("category.predict.ok", "description", cleaned, "category", predicted)
	return predicted
}

// saveResult records a fresh prediction: unseen categories join the master
// list, and the description-to-category mapping is upserted. Uncategorized
// is never learned.
func (s *Service) saveResult(ctx context.Context, cleaned, predicted string, existing []string) error {
	if predicted == "" || predicted == constants.UncategorizedLabel {
		return nil
	}

	known := false
	for _, c := range existing {
		if strings.EqualFold(c, predicted) {
			known = true
			break
		}
	}
	if !known {
		if err := s.store.InsertMasterCategory(ctx, predicted); err != nil {
			return fmt.Errorf("insert category %q: %w", predicted, err)
		}
	}
	if err := s.store.UpsertItemMapping(ctx, cleaned, predicted); err != nil {
		return fmt.Errorf("save mapping %q -> %q: %w", cleaned, predicted, err)
	}
	return nil
}

// BuildCategorizationPrompt constructs the strict single-label prompt.
func BuildCategorizationPrompt(description string, existing []string) string {
	var b strings.Builder
	b.WriteString("You are a precise categorization assistant for restaurant invoices.\n")
	b.WriteString("Existing Categories: [")
	b.WriteString(strings.Join(existing, ", "))
	b.WriteString("]\n")
	b.WriteString("Item Description: '")
	b.WriteString(description)
	b.WriteString("'\n\n")
	b.WriteString("Task: Assign the item to one of the Existing Categories. ")
	b.WriteString("If it absolutely does not fit any, create a new, short, generic category name (e.g., 'Dairy', 'Produce', 'Kitchen Supplies').\n")
	b.WriteString("Rules: Return ONLY the category name. No explanations. No extra text.")
	return b.String()
}
