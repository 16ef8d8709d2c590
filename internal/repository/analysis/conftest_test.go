package analysis

import (
	"context"
	"testing"
	"time"

	domanalysis "github.com/kailas-cloud/skillmatch/internal/domain/analysis"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
)

// mockStore implements the consumer interface for tests.
type mockStore struct {
	getFn        func(ctx context.Context, key string) ([]byte, error)
	mgetFn       func(ctx context.Context, keys []string) ([][]byte, error)
	setFn        func(ctx context.Context, key string, value []byte, ttl time.Duration) error
	delFn        func(ctx context.Context, key string) error
	pushCappedFn func(ctx context.Context, key, value string, maxLen int) error
	rangeFn      func(ctx context.Context, key string, start, stop int) ([]string, error)
	removeFn     func(ctx context.Context, key, value string) error
}

func (m *mockStore) Get(ctx context.Context, key string) ([]byte, error) {
	if m.getFn != nil {
		return m.getFn(ctx, key)
	}
	return nil, nil
}

func (m *mockStore) MGet(ctx context.Context, keys []string) ([][]byte, error) {
	if m.mgetFn != nil {
		return m.mgetFn(ctx, keys)
	}
	return make([][]byte, len(keys)), nil
}

func (m *mockStore) SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	if m.setFn != nil {
		return m.setFn(ctx, key, value, ttl)
	}
	return nil
}

func (m *mockStore) Del(ctx context.Context, key string) error {
	if m.delFn != nil {
		return m.delFn(ctx, key)
	}
	return nil
}

func (m *mockStore) PushCapped(ctx context.Context, key, value string, maxLen int) error {
	if m.pushCappedFn != nil {
		return m.pushCappedFn(ctx, key, value, maxLen)
	}
	return nil
}

func (m *mockStore) Range(ctx context.Context, key string, start, stop int) ([]string, error) {
	if m.rangeFn != nil {
		return m.rangeFn(ctx, key, start, stop)
	}
	return []string{}, nil
}

func (m *mockStore) Remove(ctx context.Context, key, value string) error {
	if m.removeFn != nil {
		return m.removeFn(ctx, key, value)
	}
	return nil
}

func newTestRepo(t *testing.T) (*Repo, *mockStore) {
	t.Helper()
	ms := &mockStore{}
	return New(ms, "skillmatch:", time.Hour, 3), ms
}

func testAnalysis(t *testing.T, id string) domanalysis.Analysis {
	t.Helper()
	return domanalysis.Reconstruct(
		id, "backend role",
		[]string{"docker", "python"},
		[]string{"docker", "python", "sql"},
		match.Reconstruct([]string{"docker", "python"}, []string{"sql"}, 66),
		false,
		time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		1500*time.Microsecond,
	)
}
