package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdd_MergesSameDrinkAndOptions(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	require.NoError(t, svc.Add(1, Item{DrinkID: 7, Quantity: 1, IceLevel: "less", SugarLevel: "50"}))
	require.NoError(t, svc.Add(1, Item{DrinkID: 7, Quantity: 2, IceLevel: "less", SugarLevel: "50"}))

	items, err := svc.Get(1)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestAdd_DifferentOptionsStaySeparate(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	require.NoError(t, svc.Add(1, Item{DrinkID: 7, Quantity: 1, IceLevel: "less", SugarLevel: "50"}))
	require.NoError(t, svc.Add(1, Item{DrinkID: 7, Quantity: 1, IceLevel: "normal", SugarLevel: "50"}))

	items, err := svc.Get(1)
	require.NoError(t, err)
	assert.Len(t, items, 2)
}

func TestAdd_RejectsNonPositiveQuantity(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	err := svc.Add(1, Item{DrinkID: 7, Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestSetQuantity_ZeroRemovesLine(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	require.NoError(t, svc.Add(1, Item{DrinkID: 7, Quantity: 2}))

	require.NoError(t, svc.SetQuantity(1, Item{DrinkID: 7, Quantity: 0}))

	items, err := svc.Get(1)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestClear(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	require.NoError(t, svc.Add(1, Item{DrinkID: 7, Quantity: 2}))
	require.NoError(t, svc.Add(1, Item{DrinkID: 8, Quantity: 1}))

	require.NoError(t, svc.Clear(1))

	items, err := svc.Get(1)
	require.NoError(t, err)
	assert.Empty(t, items)
}
