package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreate_RatingBounds(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	_, err := svc.Create(1, 1, 0, "")
	assert.ErrorIs(t, err, ErrInvalidRating)

	_, err = svc.Create(1, 1, 6, "")
	assert.ErrorIs(t, err, ErrInvalidRating)

	rev, err := svc.Create(1, 1, 5, "great thai tea")
	require.NoError(t, err)
	assert.Equal(t, 5, rev.Rating)
	assert.NotZero(t, rev.ID)
	assert.False(t, rev.CreatedAt.IsZero())
}

func TestListByDrink_NewestFirst(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	first, err := svc.Create(1, 1, 4, "good")
	require.NoError(t, err)
	second, err := svc.Create(1, 2, 5, "better")
	require.NoError(t, err)
	_, err = svc.Create(2, 1, 3, "other drink")
	require.NoError(t, err)

	reviews, err := svc.ListByDrink(1)
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, second.ID, reviews[0].ID)
	assert.Equal(t, first.ID, reviews[1].ID)
}
