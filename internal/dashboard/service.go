package dashboard

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Service computes dashboard summaries and caches the latest good one. A
// failed refresh keeps the previous summary so the dashboard degrades to
// stale data instead of going blank.
type Service struct {
	repo Repository
	log  *zap.SugaredLogger
	now  func() time.Time

	mu     sync.RWMutex
	cached *Summary
}

func NewService(repo Repository, log *zap.SugaredLogger) *Service {
	return &Service{repo: repo, log: log, now: time.Now}
}

// Compute builds a fresh summary from the repository.
func (s *Service) Compute(ctx context.Context) (Summary, error) {
	now := s.now()
	sum := Summary{GeneratedAt: now}

	type window struct {
		dest *WindowStats
		from time.Time
		to   time.Time
	}
	windows := []window{}

	from, to := DayWindow(now)
	windows = append(windows, window{&sum.Today, from, to})
	from, to = WeekWindow(now)
	windows = append(windows, window{&sum.ThisWeek, from, to})
	from, to = MonthWindow(now)
	windows = append(windows, window{&sum.ThisMonth, from, to})

	for _, w := range windows {
		stats, err := s.repo.DeliveredBetween(ctx, w.from, w.to)
		if err != nil {
			return Summary{}, err
		}
		*w.dest = stats
	}

	byStatus, err := s.repo.CountByStatus(ctx)
	if err != nil {
		return Summary{}, err
	}
	sum.ByStatus = byStatus
	return sum, nil
}

// Refresh recomputes the cached summary. On failure the previous summary
// is retained.
func (s *Service) Refresh(ctx context.Context) {
	sum, err := s.Compute(ctx)
	if err != nil {
		s.log.Warnw("dashboard refresh failed, keeping previous summary", "error", err)
		return
	}

	s.mu.Lock()
	s.cached = &sum
	s.mu.Unlock()
}

// Current returns the cached summary, computing one on first use.
func (s *Service) Current(ctx context.Context) (Summary, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return *cached, nil
	}

	sum, err := s.Compute(ctx)
	if err != nil {
		return Summary{}, err
	}
	s.mu.Lock()
	s.cached = &sum
	s.mu.Unlock()
	return sum, nil
}
