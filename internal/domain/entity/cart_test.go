package entity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(price, weight float64) *Product {
	return &Product{
		ID:          uuid.New(),
		Code:        "EX-1030",
		Description: "Perfil de aluminio 30x30",
		SalePrice:   price,
		Weight:      weight,
	}
}

func TestCart_Add_NewLineSnapshotsProduct(t *testing.T) {
	cart := NewCart("slot-1")
	product := testProduct(125.50, 0.45)

	require.True(t, cart.Add(product, 10))
	require.Len(t, cart.Items, 1)

	item := cart.Items[0]
	assert.Equal(t, product.ID, item.ProductID)
	assert.Equal(t, product.Description, item.Description)
	assert.Equal(t, 1, item.Quantity)
	assert.InDelta(t, 125.50, item.UnitPrice, 0.001)
	assert.InDelta(t, 0.45, item.Weight, 0.001)
}

func TestCart_Add_IncrementCappedByStock(t *testing.T) {
	cart := NewCart("slot-1")
	product := testProduct(10, 1)

	require.True(t, cart.Add(product, 2))
	require.True(t, cart.Add(product, 2))
	assert.False(t, cart.Add(product, 2))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_Add_SnapshotPriceSurvivesCatalogChange(t *testing.T) {
	cart := NewCart("slot-1")
	product := testProduct(100, 1)

	require.True(t, cart.Add(product, 5))
	product.SalePrice = 999

	assert.InDelta(t, 100, cart.Items[0].UnitPrice, 0.001)
	assert.InDelta(t, 100, cart.Total(), 0.001)
}

func TestCart_SetQuantity(t *testing.T) {
	cart := NewCart("slot-1")
	product := testProduct(20, 1)
	require.True(t, cart.Add(product, 10))

	require.True(t, cart.SetQuantity(product.ID, 4))
	assert.Equal(t, 4, cart.Items[0].Quantity)
	assert.InDelta(t, 80, cart.Total(), 0.001)
}

func TestCart_SetQuantity_BelowOneRemovesLine(t *testing.T) {
	cart := NewCart("slot-1")
	product := testProduct(20, 1)
	require.True(t, cart.Add(product, 10))

	require.True(t, cart.SetQuantity(product.ID, 0))
	assert.True(t, cart.IsEmpty())

	require.True(t, cart.Add(product, 10))
	require.True(t, cart.SetQuantity(product.ID, -3))
	assert.True(t, cart.IsEmpty())
}

func TestCart_SetQuantity_UnknownProduct(t *testing.T) {
	cart := NewCart("slot-1")

	assert.False(t, cart.SetQuantity(uuid.New(), 3))
}

func TestCart_Remove(t *testing.T) {
	cart := NewCart("slot-1")
	first := testProduct(10, 1)
	second := testProduct(30, 1)
	require.True(t, cart.Add(first, 5))
	require.True(t, cart.Add(second, 5))

	require.True(t, cart.Remove(first.ID))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, second.ID, cart.Items[0].ProductID)

	assert.False(t, cart.Remove(first.ID))
}

func TestCart_TotalAndItemCount(t *testing.T) {
	cart := NewCart("slot-1")
	first := testProduct(10.50, 1)
	second := testProduct(7.25, 1)

	require.True(t, cart.Add(first, 5))
	require.True(t, cart.Add(first, 5))
	require.True(t, cart.Add(second, 5))

	assert.InDelta(t, 2*10.50+7.25, cart.Total(), 0.001)
	assert.Equal(t, 3, cart.ItemCount())
}

func TestCart_EmptyCartTotals(t *testing.T) {
	cart := NewCart("slot-1")

	assert.True(t, cart.IsEmpty())
	assert.Zero(t, cart.Total())
	assert.Zero(t, cart.ItemCount())
}
