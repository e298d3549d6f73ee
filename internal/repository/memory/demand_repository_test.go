package memory

import (
	"context"
	"testing"

	"github.com/gdghack/stockwise/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDemandRepository_AppendNumbersWeeks(t *testing.T) {
	repo := NewDemandRepository(12)
	ctx := context.Background()

	for i := 1; i <= 5; i++ {
		entries, err := repo.Append(ctx, 1, float64(i*10))
		require.NoError(t, err)
		assert.Len(t, entries, i)
		assert.Equal(t, i, entries[i-1].Week)
	}
}

func TestDemandRepository_RollingWindowEviction(t *testing.T) {
	repo := NewDemandRepository(12)
	ctx := context.Background()

	var entries []domain.DemandEntry
	var err error
	for i := 1; i <= 15; i++ {
		entries, err = repo.Append(ctx, 1, float64(i))
		require.NoError(t, err)
		assert.LessOrEqual(t, len(entries), 12)
	}

	// After 15 appends the oldest three are gone and weeks are dense 1..12.
	require.Len(t, entries, 12)
	for i, entry := range entries {
		assert.Equal(t, i+1, entry.Week)
		assert.Equal(t, float64(i+4), entry.Quantity)
	}
}

func TestDemandRepository_UpdateWeek(t *testing.T) {
	repo := NewDemandRepository(12)
	ctx := context.Background()

	_, err := repo.Append(ctx, 1, 10)
	require.NoError(t, err)
	_, err = repo.Append(ctx, 1, 20)
	require.NoError(t, err)

	entries, err := repo.UpdateWeek(ctx, 1, 2, 99)
	require.NoError(t, err)
	assert.Equal(t, 99.0, entries[1].Quantity)

	// A week that was never recorded cannot be edited.
	_, err = repo.UpdateWeek(ctx, 1, 3, 5)
	assert.ErrorIs(t, err, domain.ErrWeekNotFound)

	_, err = repo.UpdateWeek(ctx, 999, 1, 5)
	assert.ErrorIs(t, err, domain.ErrWeekNotFound)
}

func TestDemandRepository_HistoriesAreIndependent(t *testing.T) {
	repo := NewDemandRepository(12)
	ctx := context.Background()

	_, err := repo.Append(ctx, 1, 10)
	require.NoError(t, err)
	_, err = repo.Append(ctx, 2, 20)
	require.NoError(t, err)

	require.NoError(t, repo.DeleteForItem(ctx, 1))

	gone, err := repo.History(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, gone)

	kept, err := repo.History(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, kept, 1)
}
