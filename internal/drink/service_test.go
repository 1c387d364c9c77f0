package drink

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedMenu() []Drink {
	cat := 1
	return []Drink{
		{ID: 1, Name: "Thai Tea", CategoryID: &cat, Price: 55, Quantity: 10, Active: true},
		{ID: 2, Name: "Green Tea", CategoryID: &cat, Price: 50, Quantity: 8, Active: true},
		{ID: 3, Name: "Seasonal Plum Soda", Price: 65, Quantity: 0, Active: false},
	}
}

func TestCatalog_HidesInactiveDrinks(t *testing.T) {
	svc := NewService(NewInMemoryRepository(seedMenu()))

	menu, err := svc.Catalog()
	require.NoError(t, err)

	require.Len(t, menu, 2)
	for _, d := range menu {
		assert.True(t, d.Active)
	}
}

func TestListAll_IncludesInactiveDrinks(t *testing.T) {
	svc := NewService(NewInMemoryRepository(seedMenu()))

	all, err := svc.ListAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCatalogByCategory(t *testing.T) {
	svc := NewService(NewInMemoryRepository(seedMenu()))

	menu, err := svc.CatalogByCategory(1)
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, "Thai Tea", menu[0].Name)
}

func TestCreate_Validation(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	_, err := svc.Create(Drink{Name: "", Price: 10})
	assert.ErrorIs(t, err, ErrInvalidDrink)

	_, err = svc.Create(Drink{Name: "Latte", Price: -1})
	assert.ErrorIs(t, err, ErrInvalidDrink)

	created, err := svc.Create(Drink{Name: "Latte", Price: 60, Active: true})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil))

	_, err := svc.Update(42, Drink{Name: "Latte", Price: 60})
	assert.ErrorIs(t, err, ErrNotFound)
}
