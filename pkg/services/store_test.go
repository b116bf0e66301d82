package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kerbaras/maniverse/pkg/data"
)

type failingStore struct {
	*data.MemoryStore
	failReads  bool
	failWrites bool
}

func (f *failingStore) Get(key string) (string, bool, error) {
	if f.failReads {
		return "", false, errors.New("disk on fire")
	}
	return f.MemoryStore.Get(key)
}

func (f *failingStore) Set(key, value string) error {
	if f.failWrites {
		return errors.New("disk full")
	}
	return f.MemoryStore.Set(key, value)
}

func mustShape(t *testing.T, id string) data.NailShape {
	t.Helper()
	s, ok := data.ShapeByID(id)
	require.True(t, ok, "shape %s", id)
	return s
}

func mustColor(t *testing.T, id string) data.NailColor {
	t.Helper()
	c, ok := data.ColorByID(id)
	require.True(t, ok, "color %s", id)
	return c
}

func TestLoadEmptyStore(t *testing.T) {
	store := NewSelectionStore(data.NewMemoryStore(), nil)
	sel := store.Load()
	assert.Nil(t, sel.Shape)
	assert.Nil(t, sel.Color)
}

func TestSetShapePersistsAcrossReload(t *testing.T) {
	kv := data.NewMemoryStore()
	store := NewSelectionStore(kv, nil)

	require.NoError(t, store.SetShape(mustShape(t, "stiletto")))

	reloaded := NewSelectionStore(kv, nil).Load()
	require.NotNil(t, reloaded.Shape)
	assert.Equal(t, "stiletto", reloaded.Shape.ID)
	assert.Nil(t, reloaded.Color)
}

func TestSelectionsAreIndependent(t *testing.T) {
	store := NewSelectionStore(data.NewMemoryStore(), nil)

	require.NoError(t, store.SetShape(mustShape(t, "square")))
	require.NoError(t, store.SetColor(mustColor(t, "coral")))

	sel := store.Selection()
	require.NotNil(t, sel.Shape)
	assert.Equal(t, "square", sel.Shape.ID)
	assert.Equal(t, "coral", sel.Color.ID)
}

func TestSetRejectsEntriesOutsideCatalog(t *testing.T) {
	kv := data.NewMemoryStore()
	store := NewSelectionStore(kv, nil)

	err := store.SetShape(data.NailShape{ID: "claw", Name: "Claw"})
	assert.ErrorIs(t, err, ErrUnknownShape)

	err = store.SetColor(data.NailColor{ID: "neon", Hex: "#39FF14", Type: data.FinishSolid})
	assert.ErrorIs(t, err, ErrUnknownColor)

	assert.Nil(t, store.Selection().Shape)
	assert.Nil(t, store.Selection().Color)
	_, ok, _ := kv.Get(ShapeKey)
	assert.False(t, ok)
}

func TestSetUsesCatalogEntry(t *testing.T) {
	store := NewSelectionStore(data.NewMemoryStore(), nil)

	require.NoError(t, store.SetColor(data.NailColor{ID: "mint", Name: "Edited", Hex: "#000000"}))
	assert.Equal(t, "Mint", store.Selection().Color.Name)
	assert.Equal(t, "#98FB98", store.Selection().Color.Hex)
}

func TestLoadToleratesMalformedEntries(t *testing.T) {
	tests := []struct {
		name  string
		shape string
		color string
	}{
		{"garbage", "not json", "{{{"},
		{"wrong type", `"almond"`, `42`},
		{"null", "null", "null"},
		{"unknown ids", `{"id":"claw"}`, `{"id":"neon","hex":"#39FF14","type":"solid"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kv := data.NewMemoryStore()
			kv.Set(ShapeKey, tt.shape)
			kv.Set(ColorKey, tt.color)

			var sel data.Selection
			assert.NotPanics(t, func() {
				sel = NewSelectionStore(kv, nil).Load()
			})
			assert.Nil(t, sel.Shape)
			assert.Nil(t, sel.Color)
		})
	}
}

func TestLoadRestoresFieldsIndependently(t *testing.T) {
	kv := data.NewMemoryStore()
	kv.Set(ShapeKey, "corrupt")
	kv.Set(ColorKey, `{"id":"glitter-gold","name":"Glitter Gold","hex":"#FFD700","type":"glitter"}`)

	sel := NewSelectionStore(kv, nil).Load()
	assert.Nil(t, sel.Shape)
	require.NotNil(t, sel.Color)
	assert.Equal(t, data.FinishGlitter, sel.Color.Type)
}

func TestResetClearsMemoryAndStorage(t *testing.T) {
	kv := data.NewMemoryStore()
	store := NewSelectionStore(kv, nil)
	require.NoError(t, store.SetShape(mustShape(t, "oval")))
	require.NoError(t, store.SetColor(mustColor(t, "peach")))

	store.Reset()

	assert.Nil(t, store.Selection().Shape)
	assert.Nil(t, store.Selection().Color)

	reloaded := NewSelectionStore(kv, nil).Load()
	assert.Nil(t, reloaded.Shape)
	assert.Nil(t, reloaded.Color)
}

func TestStorageFailuresAreSilent(t *testing.T) {
	kv := &failingStore{MemoryStore: data.NewMemoryStore(), failWrites: true}
	store := NewSelectionStore(kv, nil)

	require.NoError(t, store.SetShape(mustShape(t, "round")))
	assert.Equal(t, "round", store.Selection().Shape.ID)

	kv.failReads = true
	sel := store.Load()
	assert.Nil(t, sel.Shape)
}

func TestDuckDBReload(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "maniverse.db")

	repo, err := data.NewDuckDBRepository(dbPath)
	require.NoError(t, err)
	store := NewSelectionStore(repo, nil)
	require.NoError(t, store.SetShape(mustShape(t, "almond")))
	require.NoError(t, store.SetColor(mustColor(t, "pastel-pink")))
	require.NoError(t, repo.Close())

	repo, err = data.NewDuckDBRepository(dbPath)
	require.NoError(t, err)
	defer repo.Close()

	sel := NewSelectionStore(repo, nil).Load()
	require.True(t, sel.Complete())
	assert.Equal(t, "almond", sel.Shape.ID)
	assert.Equal(t, "#FFD1DC", sel.Color.Hex)
}
