package repository

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/restoledger/invoice-pipeline/gen/ent"
	"github.com/restoledger/invoice-pipeline/gen/ent/predicate"
	entvendor "github.com/restoledger/invoice-pipeline/gen/ent/vendor"
	"github.com/restoledger/invoice-pipeline/internal/common"
	"github.com/restoledger/invoice-pipeline/internal/entity"
	"github.com/restoledger/invoice-pipeline/internal/vendor"
)

type vendorRepository struct {
	client *ent.Client
	logger *slog.Logger
}

// NewVendorRepository returns a vendor.Repository backed by Ent.
func NewVendorRepository(client *ent.Client, logger *slog.Logger) vendor.Repository {
	return &vendorRepository{client: client, logger: logger}
}

var reDigits = regexp.MustCompile(`\D`)

func (r *vendorRepository) FindByWebsite(ctx context.Context, website string) (*entity.Vendor, error) {
	return r.findOne(ctx, entvendor.Website(website))
}

func (r *vendorRepository) FindByEmail(ctx context.Context, email string) (*entity.Vendor, error) {
	return r.findOne(ctx, entvendor.EmailEqualFold(email))
}

func (r *vendorRepository) FindByPhone(ctx context.Context, digits string) (*entity.Vendor, error) {
	return r.findOne(ctx, entvendor.Phone(digits))
}

func (r *vendorRepository) FindByAddress(ctx context.Context, address string) (*entity.Vendor, error) {
	return r.findOne(ctx, entvendor.Address(address))
}

func (r *vendorRepository) FindByNormalizedName(ctx context.Context, normalized string) (*entity.Vendor, error) {
	return r.findOne(ctx, entvendor.NormalizedName(normalized))
}

func (r *vendorRepository) findOne(ctx context.Context, p predicate.Vendor) (*entity.Vendor, error) {
	rec, err := r.client.Vendor.Query().Where(p).First(ctx)
	if ent.IsNotFound(err) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return toVendor(rec), nil
}

// Create inserts the vendor unless one with the same normalized name
// already exists, in which case the existing row is returned. Phone numbers
// are reduced to digits before storage so lookups stay format-independent.
func (r *vendorRepository) Create(ctx context.Context, v *entity.Vendor) (*entity.Vendor, error) {
	normalized := vendor.NormalizeName(v.Name)
	if normalized == "" {
		return nil, fmt.Errorf("%w: vendor name %q normalizes to empty", common.ErrInvalidInput, v.Name)
	}

	existing, err := r.FindByNormalizedName(ctx, normalized)
	if err == nil {
		r.logger.Info("vendor.create.exists", "vendor_id", existing.ID, "normalized_name", normalized)
		return existing, nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return nil, err
	}

	rec, err := r.client.Vendor.Create().
		SetName(strings.TrimSpace(v.Name)).
		SetNormalizedName(normalized).
		SetEmail(strings.TrimSpace(v.Email)).
		SetPhone(reDigits.ReplaceAllString(v.Phone, "")).
		SetAddress(strings.TrimSpace(v.Address)).
		SetWebsite(strings.TrimSpace(v.Website)).
		Save(ctx)
	if err != nil {
		r.logger.Error("vendor.create.failed", "name", v.Name, "error", err)
		return nil, err
	}
	return toVendor(rec), nil
}

func toVendor(rec *ent.Vendor) *entity.Vendor {
	return &entity.Vendor{
		ID:      rec.ID,
		Name:    rec.Name,
		Email:   rec.Email,
		Phone:   rec.Phone,
		Address: rec.Address,
		Website: rec.Website,
	}
}
