package seed_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/house-holder/shopkeeper/internal/core"
	"github.com/house-holder/shopkeeper/internal/seed"
)

func TestLoad(t *testing.T) {
	t.Run("parses a seed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		require.NoError(t, os.WriteFile(path, []byte(`[
			{"id": 4100, "name": "hose clamp", "cost_cents": 349, "weight_grams": 40, "quantity": 60},
			{"name": "gasket", "cost_cents": 120, "weight_grams": 8, "quantity": 25}
		]`), 0o644))

		items, err := seed.Load(path)
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, uint32(4100), items[0].ID)
		assert.Equal(t, "hose clamp", items[0].Name)
		assert.Zero(t, items[1].ID)
	})

	t.Run("missing file reported as not-exist", func(t *testing.T) {
		_, err := seed.Load(filepath.Join(t.TempDir(), "absent.json"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("malformed file fails", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "seed.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := seed.Load(path)
		assert.Error(t, err)
	})
}

func TestApply(t *testing.T) {
	st := core.NewStore()
	seed.Apply(st, []seed.Item{
		{ID: 308113, Name: "packing kit", CostCents: 2299, WeightGrams: 81, Quantity: 12},
		{Name: "gasket", CostCents: 120, WeightGrams: 8, Quantity: 25},
	})

	item, qty, ok := st.InventoryGet(308113)
	require.True(t, ok)
	assert.Equal(t, core.Cents(2299), item.Cost)
	assert.Equal(t, uint32(12), qty)

	// Records without an explicit id go through sequential assignment.
	item, qty, ok = st.InventoryGet(1)
	require.True(t, ok)
	assert.Equal(t, "gasket", item.Name)
	assert.Equal(t, uint32(25), qty)
}

func TestDefault_SeedsCatalog(t *testing.T) {
	st := core.NewStore()
	seed.Apply(st, seed.Default())

	assert.Equal(t, 4, st.InventoryLen())
	_, qty, ok := st.InventoryGet(210001)
	require.True(t, ok)
	assert.Equal(t, uint32(203), qty)
}
