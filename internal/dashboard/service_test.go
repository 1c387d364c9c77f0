package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/wichananm65/drink-shop-backend/internal/order"
)

func newTestService(t *testing.T, seed []order.Order, now time.Time) *Service {
	t.Helper()
	repo := NewOrderListRepository(order.NewInMemoryRepository(seed))
	svc := NewService(repo, zap.NewNop().Sugar())
	svc.now = func() time.Time { return now }
	return svc
}

func TestCompute_DeliveredOnly(t *testing.T) {
	now := date(2024, time.May, 22, 12, 0, 0)
	seed := []order.Order{
		order.SeedOrder(1, 1, order.StatusDelivered, 100, now.Add(-time.Hour)),
		order.SeedOrder(2, 1, order.StatusDelivered, 200, now.Add(-2*time.Hour)),
		order.SeedOrder(3, 2, order.StatusDelivered, 300, now.Add(-3*time.Hour)),
		order.SeedOrder(4, 2, order.StatusCancelled, 500, now.Add(-time.Minute)),
	}
	svc := newTestService(t, seed, now)

	sum, err := svc.Compute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 600.0, sum.Today.Revenue)
	assert.Equal(t, 3, sum.Today.Orders)
	assert.Equal(t, 3, sum.ByStatus[order.StatusDelivered])
	assert.Equal(t, 1, sum.ByStatus[order.StatusCancelled])
}

func TestCompute_WindowsExcludeOlderOrders(t *testing.T) {
	// today is Wednesday 2024-05-22; the Sunday order belongs to the
	// previous week and the April order only to this month's predecessor
	now := date(2024, time.May, 22, 12, 0, 0)
	seed := []order.Order{
		order.SeedOrder(1, 1, order.StatusDelivered, 100, now.Add(-time.Hour)),
		order.SeedOrder(2, 1, order.StatusDelivered, 40, date(2024, time.May, 19, 10, 0, 0)),
		order.SeedOrder(3, 1, order.StatusDelivered, 7, date(2024, time.April, 30, 10, 0, 0)),
	}
	svc := newTestService(t, seed, now)

	sum, err := svc.Compute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 100.0, sum.Today.Revenue)
	assert.Equal(t, 100.0, sum.ThisWeek.Revenue)
	assert.Equal(t, 1, sum.ThisWeek.Orders)
	assert.Equal(t, 140.0, sum.ThisMonth.Revenue)
	assert.Equal(t, 2, sum.ThisMonth.Orders)
}

type failingRepo struct {
	inner Repository
	fail  bool
}

func (r *failingRepo) DeliveredBetween(ctx context.Context, from, to time.Time) (WindowStats, error) {
	if r.fail {
		return WindowStats{}, errors.New("db down")
	}
	return r.inner.DeliveredBetween(ctx, from, to)
}

func (r *failingRepo) CountByStatus(ctx context.Context) (map[order.Status]int, error) {
	if r.fail {
		return nil, errors.New("db down")
	}
	return r.inner.CountByStatus(ctx)
}

func TestRefresh_KeepsPreviousSummaryOnFailure(t *testing.T) {
	now := date(2024, time.May, 22, 12, 0, 0)
	seed := []order.Order{
		order.SeedOrder(1, 1, order.StatusDelivered, 250, now.Add(-time.Hour)),
	}
	repo := &failingRepo{inner: NewOrderListRepository(order.NewInMemoryRepository(seed))}
	svc := NewService(repo, zap.NewNop().Sugar())
	svc.now = func() time.Time { return now }

	svc.Refresh(context.Background())
	repo.fail = true
	svc.Refresh(context.Background())

	sum, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 250.0, sum.Today.Revenue)
}

func TestCurrent_ComputesOnFirstUse(t *testing.T) {
	now := date(2024, time.May, 22, 12, 0, 0)
	svc := newTestService(t, nil, now)

	sum, err := svc.Current(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0.0, sum.Today.Revenue)
	assert.Equal(t, now, sum.GeneratedAt)
}
