package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/restoledger/invoice-pipeline/gen/ent"
	entvt "github.com/restoledger/invoice-pipeline/gen/ent/vendortemplate"
	"github.com/restoledger/invoice-pipeline/internal/common"
	"github.com/restoledger/invoice-pipeline/internal/template"
	"github.com/restoledger/invoice-pipeline/internal/vendor"
)

type templateRepository struct {
	client *ent.Client
	logger *slog.Logger
}

// NewTemplateRepository returns a vendor.TemplateRepository backed by Ent.
// Templates are stored as the positional slot array and reconstructed on
// the way out.
func NewTemplateRepository(client *ent.Client, logger *slog.Logger) vendor.TemplateRepository {
	return &templateRepository{client: client, logger: logger}
}

func (r *templateRepository) GetByVendorID(ctx context.Context, vendorID uuid.UUID) (*template.Template, error) {
	rec, err := r.client.VendorTemplate.Query().
		Where(entvt.VendorID(vendorID)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	tpl, err := template.FromSlots(rec.Patterns)
	if err != nil {
		r.logger.Error("template.load.corrupt", "vendor_id", vendorID, "error", err)
		return nil, common.NewAppError("TEMPLATE_CORRUPT", "stored template has invalid shape", err)
	}
	return tpl, nil
}

func (r *templateRepository) Save(ctx context.Context, vendorID uuid.UUID, tpl *template.Template) error {
	_, err := r.client.VendorTemplate.Create().
		SetVendorID(vendorID).
		SetPatterns(tpl.Slots()).
		Save(ctx)
	if err != nil {
		r.logger.Error("template.save.failed", "vendor_id", vendorID, "error", err)
		return err
	}
	r.logger.Info("template.save.ok", "vendor_id", vendorID)
	return nil
}
