package history

import (
	"context"
	"fmt"
	"time"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	domanalysis "github.com/kailas-cloud/skillmatch/internal/domain/analysis"
	"github.com/kailas-cloud/skillmatch/internal/metrics"
)

// Service reads analysis history. A nil repository means history is
// disabled and every call returns domain.ErrHistoryDisabled.
type Service struct {
	repo            Repository
	defaultPageSize int
	maxPageSize     int
	now             func() time.Time
}

// New creates a history service. repo can be nil.
func New(repo Repository) *Service {
	return &Service{
		repo:            repo,
		defaultPageSize: 20,
		maxPageSize:     100,
		now:             time.Now,
	}
}

// WithPagination configures page size limits.
func (s *Service) WithPagination(defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize > 0 {
		s.defaultPageSize = defaultPageSize
	}
	if maxPageSize > 0 {
		s.maxPageSize = maxPageSize
	}
	return s
}

// Enabled reports whether a repository is configured.
func (s *Service) Enabled() bool { return s.repo != nil }

// Get returns one analysis by ID.
func (s *Service) Get(ctx context.Context, id string) (domanalysis.Analysis, error) {
	if s.repo == nil {
		return domanalysis.Analysis{}, domain.ErrHistoryDisabled
	}
	if id == "" {
		return domanalysis.Analysis{}, fmt.Errorf("id is required: %w", domain.ErrInvalidInput)
	}
	a, err := s.repo.Get(ctx, id)
	metrics.ObserveHistory("get", err)
	if err != nil {
		return domanalysis.Analysis{}, fmt.Errorf("get analysis: %w", err)
	}
	return a, nil
}

// List returns the newest analyses. limit <= 0 uses the default page size;
// larger values are capped at the maximum.
func (s *Service) List(ctx context.Context, limit int) ([]domanalysis.Analysis, error) {
	if s.repo == nil {
		return nil, domain.ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	items, err := s.repo.List(ctx, limit)
	metrics.ObserveHistory("list", err)
	if err != nil {
		return nil, fmt.Errorf("list analyses: %w", err)
	}
	return items, nil
}

// Summary aggregates the stored analyses created in the last days days.
// days <= 0 covers everything still in history.
func (s *Service) Summary(ctx context.Context, days, scanLimit int) (domanalysis.Summary, error) {
	if s.repo == nil {
		return domanalysis.Summary{}, domain.ErrHistoryDisabled
	}
	if scanLimit <= 0 {
		scanLimit = s.maxPageSize
	}
	items, err := s.repo.List(ctx, scanLimit)
	metrics.ObserveHistory("summary", err)
	if err != nil {
		return domanalysis.Summary{}, fmt.Errorf("list analyses: %w", err)
	}

	if days > 0 {
		cutoff := s.now().Add(-time.Duration(days) * 24 * time.Hour)
		kept := items[:0:0]
		for _, a := range items {
			if !a.CreatedAt().Before(cutoff) {
				kept = append(kept, a)
			}
		}
		items = kept
	}

	return domanalysis.Summarize(items, domanalysis.DefaultTopSkills), nil
}
