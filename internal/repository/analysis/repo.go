// Package analysis stores analysis history in a key-value store:
// one JSON value per analysis plus a capped newest-first ID list.
package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/skillmatch/internal/db"
	"github.com/kailas-cloud/skillmatch/internal/domain"
	domanalysis "github.com/kailas-cloud/skillmatch/internal/domain/analysis"
)

// store is the consumer interface for analysis history (ISP).
type store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	MGet(ctx context.Context, keys []string) ([][]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
	PushCapped(ctx context.Context, key, value string, maxLen int) error
	Range(ctx context.Context, key string, start, stop int) ([]string, error)
	Remove(ctx context.Context, key, value string) error
}

// Repo implements usecase/skill.HistoryRecorder and usecase/history.Repository.
type Repo struct {
	store  store
	prefix string
	ttl    time.Duration
	limit  int
}

// New creates an analysis repository. ttl <= 0 keeps entries forever;
// limit <= 0 leaves the index uncapped.
func New(s store, keyPrefix string, ttl time.Duration, limit int) *Repo {
	return &Repo{store: s, prefix: keyPrefix, ttl: ttl, limit: limit}
}

// Save persists an analysis and prepends its ID to the index.
func (r *Repo) Save(ctx context.Context, a domanalysis.Analysis) error {
	data, err := json.Marshal(toDoc(a))
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}

	key := r.analysisKey(a.ID())
	if err := r.store.SetWithTTL(ctx, key, data, r.ttl); err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	if err := r.store.PushCapped(ctx, r.indexKey(), a.ID(), r.limit); err != nil {
		return fmt.Errorf("index %s: %w", a.ID(), err)
	}
	return nil
}

// Get returns an analysis by ID. A value that no longer decodes is purged
// and reported as not found.
func (r *Repo) Get(ctx context.Context, id string) (domanalysis.Analysis, error) {
	key := r.analysisKey(id)
	raw, err := r.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, db.ErrKeyNotFound) {
			return domanalysis.Analysis{}, domain.ErrNotFound
		}
		return domanalysis.Analysis{}, fmt.Errorf("get %s: %w", key, err)
	}
	a, err := decode(raw)
	if err != nil {
		r.purge(ctx, id)
		return domanalysis.Analysis{}, fmt.Errorf("analysis %s: %v: %w", id, err, domain.ErrNotFound)
	}
	return a, nil
}

// List returns up to limit analyses, newest first. IDs whose value expired are
// dropped from the index; corrupt values are purged and skipped.
func (r *Repo) List(ctx context.Context, limit int) ([]domanalysis.Analysis, error) {
	if limit <= 0 {
		return []domanalysis.Analysis{}, nil
	}

	ids, err := r.store.Range(ctx, r.indexKey(), 0, limit-1)
	if err != nil {
		return nil, fmt.Errorf("range index: %w", err)
	}
	if len(ids) == 0 {
		return []domanalysis.Analysis{}, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = r.analysisKey(id)
	}

	values, err := r.store.MGet(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("mget analyses: %w", err)
	}

	out := make([]domanalysis.Analysis, 0, len(values))
	for i, raw := range values {
		if raw == nil {
			// Best effort: a stale ID only costs a skipped entry next time.
			_ = r.store.Remove(ctx, r.indexKey(), ids[i])
			continue
		}
		a, err := decode(raw)
		if err != nil {
			r.purge(ctx, ids[i])
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

// purge deletes an analysis value and its index entry, best effort.
func (r *Repo) purge(ctx context.Context, id string) {
	_ = r.store.Del(ctx, r.analysisKey(id))
	_ = r.store.Remove(ctx, r.indexKey(), id)
}

func (r *Repo) analysisKey(id string) string {
	return r.prefix + "analysis:" + id
}

func (r *Repo) indexKey() string {
	return r.prefix + "analyses"
}

func decode(raw []byte) (domanalysis.Analysis, error) {
	var d analysisDoc
	if err := json.Unmarshal(raw, &d); err != nil {
		return domanalysis.Analysis{}, fmt.Errorf("unmarshal analysis: %w", err)
	}
	return fromDoc(d), nil
}
