package models_test

import (
	"testing"

	"github.com/aaravmahajanofficial/pod-storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newItem(variantID int64, qty int, price float64) models.CartItem {
	return models.CartItem{VariantID: variantID, ProductID: 1, Quantity: qty, Name: "Tee", UnitPrice: price}
}

func TestCartAdd(t *testing.T) {
	t.Run("Same variant merges into one line", func(t *testing.T) {
		cart := &models.Cart{}

		cart.Add(newItem(7, 2, 19.99))
		cart.Add(models.CartItem{VariantID: 7, Quantity: 3, Name: "Renamed", UnitPrice: 29.99})

		require.Len(t, cart.Items, 1)
		assert.Equal(t, 5, cart.Items[0].Quantity)
		assert.Equal(t, "Tee", cart.Items[0].Name, "original snapshot is kept")
		assert.InDelta(t, 19.99, cart.Items[0].UnitPrice, 0.0001)
	})

	t.Run("Different variants keep insertion order", func(t *testing.T) {
		cart := &models.Cart{}

		cart.Add(newItem(3, 1, 10))
		cart.Add(newItem(1, 1, 10))
		cart.Add(newItem(2, 1, 10))

		require.Len(t, cart.Items, 3)
		assert.Equal(t, []int64{3, 1, 2}, []int64{cart.Items[0].VariantID, cart.Items[1].VariantID, cart.Items[2].VariantID})
	})

	t.Run("Non-positive quantity is ignored", func(t *testing.T) {
		cart := &models.Cart{}

		cart.Add(newItem(3, 0, 10))

		assert.Empty(t, cart.Items)
	})
}

func TestCartUpdateQuantity(t *testing.T) {
	tests := []struct {
		name        string
		qty         int
		wantLines   int
		wantUpdated bool
	}{
		{name: "Sets quantity", qty: 4, wantLines: 1, wantUpdated: true},
		{name: "Zero removes", qty: 0, wantLines: 0, wantUpdated: true},
		{name: "Negative removes", qty: -5, wantLines: 0, wantUpdated: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cart := &models.Cart{}
			cart.Add(newItem(9, 2, 12.5))

			updated := cart.UpdateQuantity(9, tc.qty)

			assert.Equal(t, tc.wantUpdated, updated)
			assert.Len(t, cart.Items, tc.wantLines)
			for _, item := range cart.Items {
				assert.Positive(t, item.Quantity)
			}
			if tc.wantLines == 1 {
				assert.Equal(t, tc.qty, cart.Items[0].Quantity)
			}
		})
	}

	t.Run("Unknown variant", func(t *testing.T) {
		cart := &models.Cart{}

		assert.False(t, cart.UpdateQuantity(42, 3))
		assert.Empty(t, cart.Items)
	})
}

func TestCartRemoveAndClear(t *testing.T) {
	cart := &models.Cart{}
	cart.Add(newItem(1, 1, 5))
	cart.Add(newItem(2, 1, 5))

	assert.False(t, cart.Remove(99), "removing an absent variant is a no-op")
	assert.Len(t, cart.Items, 2)

	assert.True(t, cart.Remove(1))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, int64(2), cart.Items[0].VariantID)

	cart.Clear()
	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems())
}

func TestCartTotals(t *testing.T) {
	cart := &models.Cart{}
	cart.Add(newItem(1, 3, 0.1))
	cart.Add(newItem(2, 2, 19.99))

	assert.Equal(t, 5, cart.TotalItems())
	assert.InDelta(t, 40.28, cart.TotalPrice(), 0.00001)

	resp := models.NewCartResponse(cart)
	assert.Equal(t, 5, resp.TotalItems)
	assert.InDelta(t, 40.28, resp.TotalPrice, 0.00001)
}
