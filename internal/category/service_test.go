package category

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/restoledger/invoice-pipeline/constants"
	"github.com/restoledger/invoice-pipeline/internal/common"
)

type fakeStore struct {
	mappings   map[string]string
	categories []string
	inserted   []string
	upserts    map[string]string
}

func newFakeStore(categories ...string) *fakeStore {
	return &fakeStore{
		mappings:   map[string]string{},
		categories: categories,
		upserts:    map[string]string{},
	}
}

func (f *fakeStore) StoredCategory(_ context.Context, cleaned string) (string, error) {
	if c, ok := f.mappings[cleaned]; ok {
		return c, nil
	}
	return "", common.ErrNotFound
}

func (f *fakeStore) CategoryNames(_ context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeStore) InsertMasterCategory(_ context.Context, name string) error {
	f.inserted = append(f.inserted, name)
	f.categories = append(f.categories, name)
	return nil
}

func (f *fakeStore) UpsertItemMapping(_ context.Context, cleaned, category string) error {
	f.upserts[cleaned] = category
	return nil
}

type fixedCompleter struct {
	out string
	err error
}

func (f *fixedCompleter) Complete(context.Context, string) (string, error) {
	return f.out, f.err
}

func TestCategorizeStoredMapping(t *testing.T) {
	store := newFakeStore("Produce")
	store.mappings["onion"] = "Produce"

	svc := NewService(store, &fixedCompleter{err: errors.New("should not be called")}, nil)
	got, err := svc.Categorize(context.Background(), "Onion 50 lb (SC4)")
	require.NoError(t, err)
	assert.Equal(t, "Produce", got)
}

func TestCategorizePredictsExistingCategory(t *testing.T) {
	store := newFakeStore("Produce", "Dairy")

	svc := NewService(store, &fixedCompleter{out: "Dairy"}, nil)
	got, err := svc.Categorize(context.Background(), "Mozzarella 4 x 5 lb")
	require.NoError(t, err)

	assert.Equal(t, "Dairy", got)
	assert.Empty(t, store.inserted)
	assert.Equal(t, "Dairy", store.upserts["mozzarella"])
}

func TestCategorizeLearnsNewCategory(t *testing.T) {
	store := newFakeStore("Produce")

	svc := NewService(store, &fixedCompleter{out: "```Seafood```"}, nil)
	got, err := svc.Categorize(context.Background(), "Salmon Fillet 2 lb")
	require.NoError(t, err)

	assert.Equal(t, "Seafood", got)
	assert.Equal(t, []string{"Seafood"}, store.inserted)
	assert.Equal(t, "Seafood", store.upserts["salmon fillet"])
}

func TestCategorizeModelFailureFallsBack(t *testing.T) {
	store := newFakeStore("Produce")

	svc := NewService(store, &fixedCompleter{err: errors.New("quota")}, nil)
	got, err := svc.Categorize(context.Background(), "Mystery Item")
	require.NoError(t, err)

	assert.Equal(t, constants.UncategorizedLabel, got)
	assert.Empty(t, store.inserted)
	assert.Empty(t, store.upserts)
}

func TestCategorizeEmptyDescription(t *testing.T) {
	svc := NewService(newFakeStore(), &fixedCompleter{}, nil)
	got, err := svc.Categorize(context.Background(), "   ")
	require.NoError(t, err)
	assert.Equal(t, constants.UncategorizedLabel, got)
}
