package repository

import (
	"context"
	"log/slog"

	"github.com/restoledger/invoice-pipeline/gen/ent"
	entcategory "github.com/restoledger/invoice-pipeline/gen/ent/category"
	entmapping "github.com/restoledger/invoice-pipeline/gen/ent/itemmapping"
	"github.com/restoledger/invoice-pipeline/internal/category"
	"github.com/restoledger/invoice-pipeline/internal/common"
)

type categoryStore struct {
	client *ent.Client
	logger *slog.Logger
}

// NewCategoryStore returns a category.Store backed by Ent.
func NewCategoryStore(client *ent.Client, logger *slog.Logger) category.Store {
	return &categoryStore{client: client, logger: logger}
}

func (s *categoryStore) StoredCategory(ctx context.Context, cleaned string) (string, error) {
	rec, err := s.client.ItemMapping.Query().
		Where(entmapping.Description(cleaned)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return "", common.ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return rec.Category, nil
}

func (s *categoryStore) CategoryNames(ctx context.Context) ([]string, error) {
	return s.client.Category.Query().
		Order(entcategory.ByName()).
		Select(entcategory.FieldName).
		Strings(ctx)
}

func (s *categoryStore) InsertMasterCategory(ctx context.Context, name string) error {
	exists, err := s.client.Category.Query().
		Where(entcategory.Name(name)).
		Exist(ctx)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	_, err = s.client.Category.Create().SetName(name).Save(ctx)
	return err
}

func (s *categoryStore) UpsertItemMapping(ctx context.Context, cleaned, category string) error {
	n, err := s.client.ItemMapping.Update().
		Where(entmapping.Description(cleaned)).
		SetCategory(category).
		Save(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	_, err = s.client.ItemMapping.Create().
		SetDescription(cleaned).
		SetCategory(category).
		Save(ctx)
	return err
}
