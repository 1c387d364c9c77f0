package favorite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggle_AddsThenRemoves(t *testing.T) {
	svc := NewService(NewInMemoryRepository())

	favorited, err := svc.Toggle(1, 7)
	require.NoError(t, err)
	assert.True(t, favorited)

	ids, err := svc.List(1)
	require.NoError(t, err)
	assert.Equal(t, []int{7}, ids)

	favorited, err = svc.Toggle(1, 7)
	require.NoError(t, err)
	assert.False(t, favorited)

	ids, err = svc.List(1)
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestRemove_NotFavorite(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	assert.ErrorIs(t, svc.Remove(1, 7), ErrNotFavorite)
}

func TestList_NewestFirst(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	require.NoError(t, svc.Add(1, 3))
	require.NoError(t, svc.Add(1, 5))

	ids, err := svc.List(1)
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3}, ids)
}

func TestValidation(t *testing.T) {
	svc := NewService(NewInMemoryRepository())
	assert.ErrorIs(t, svc.Add(0, 7), ErrInvalidID)
	_, err := svc.List(-1)
	assert.ErrorIs(t, err, ErrInvalidID)
}
