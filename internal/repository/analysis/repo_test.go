package analysis

import (
	"context"
	"encoding/json"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/kailas-cloud/skillmatch/internal/db"
	"github.com/kailas-cloud/skillmatch/internal/domain"
)

// --- Save ---

func TestSave_WritesValueAndIndex(t *testing.T) {
	repo, ms := newTestRepo(t)
	a := testAnalysis(t, "a-1")

	var stored []byte
	ms.setFn = func(_ context.Context, key string, value []byte, ttl time.Duration) error {
		if key != "skillmatch:analysis:a-1" {
			t.Errorf("unexpected key: %s", key)
		}
		if ttl != time.Hour {
			t.Errorf("unexpected ttl: %v", ttl)
		}
		stored = value
		return nil
	}
	pushed := false
	ms.pushCappedFn = func(_ context.Context, key, value string, maxLen int) error {
		if key != "skillmatch:analyses" || value != "a-1" || maxLen != 3 {
			t.Errorf("unexpected push: %s %s %d", key, value, maxLen)
		}
		pushed = true
		return nil
	}

	if err := repo.Save(context.Background(), a); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pushed {
		t.Fatal("expected index push")
	}

	var doc analysisDoc
	if err := json.Unmarshal(stored, &doc); err != nil {
		t.Fatalf("stored value is not JSON: %v", err)
	}
	if doc.Percentage != 66 || doc.DurationUs != 1500 {
		t.Errorf("unexpected doc: %+v", doc)
	}
}

func TestSave_SetError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.setFn = func(context.Context, string, []byte, time.Duration) error {
		return errors.New("OOM")
	}
	ms.pushCappedFn = func(context.Context, string, string, int) error {
		t.Error("index must not be touched when the value write fails")
		return nil
	}

	if err := repo.Save(context.Background(), testAnalysis(t, "a-1")); err == nil {
		t.Fatal("expected error")
	}
}

func TestSave_PushError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.pushCappedFn = func(context.Context, string, string, int) error {
		return errors.New("READONLY")
	}

	if err := repo.Save(context.Background(), testAnalysis(t, "a-1")); err == nil {
		t.Fatal("expected error")
	}
}

// --- Get ---

func TestGet_RoundTrip(t *testing.T) {
	repo, ms := newTestRepo(t)
	want := testAnalysis(t, "a-1")
	raw, _ := json.Marshal(toDoc(want))

	ms.getFn = func(_ context.Context, key string) ([]byte, error) {
		if key != "skillmatch:analysis:a-1" {
			t.Errorf("unexpected key: %s", key)
		}
		return raw, nil
	}

	got, err := repo.Get(context.Background(), "a-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID() != "a-1" || got.Label() != "backend role" || got.Score() != 66 {
		t.Errorf("unexpected analysis: %+v", got)
	}
	if !reflect.DeepEqual(got.Result().Missing(), []string{"sql"}) {
		t.Errorf("missing = %v", got.Result().Missing())
	}
	if !got.CreatedAt().Equal(want.CreatedAt()) {
		t.Errorf("created_at = %v, want %v", got.CreatedAt(), want.CreatedAt())
	}
	if got.Duration() != want.Duration() {
		t.Errorf("duration = %v, want %v", got.Duration(), want.Duration())
	}
}

func TestGet_NotFound(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.getFn = func(context.Context, string) ([]byte, error) {
		return nil, &db.Error{Op: db.OpGet, Err: db.ErrKeyNotFound}
	}

	_, err := repo.Get(context.Background(), "missing")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGet_StoreError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.getFn = func(context.Context, string) ([]byte, error) {
		return nil, errors.New("connection reset")
	}

	_, err := repo.Get(context.Background(), "a-1")
	if err == nil || errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected wrapped store error, got %v", err)
	}
}

func TestGet_CorruptValuePurged(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.getFn = func(context.Context, string) ([]byte, error) {
		return []byte("{not json"), nil
	}
	var deleted, removed []string
	ms.delFn = func(_ context.Context, key string) error {
		deleted = append(deleted, key)
		return nil
	}
	ms.removeFn = func(_ context.Context, key, value string) error {
		removed = append(removed, key+"/"+value)
		return nil
	}

	_, err := repo.Get(context.Background(), "a-1")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !reflect.DeepEqual(deleted, []string{"skillmatch:analysis:a-1"}) {
		t.Errorf("deleted = %v", deleted)
	}
	if !reflect.DeepEqual(removed, []string{"skillmatch:analyses/a-1"}) {
		t.Errorf("removed = %v", removed)
	}
}

// --- List ---

func TestList_NewestFirstSkipsExpired(t *testing.T) {
	repo, ms := newTestRepo(t)
	a1, _ := json.Marshal(toDoc(testAnalysis(t, "a-1")))
	a3, _ := json.Marshal(toDoc(testAnalysis(t, "a-3")))

	ms.rangeFn = func(_ context.Context, key string, start, stop int) ([]string, error) {
		if key != "skillmatch:analyses" || start != 0 || stop != 9 {
			t.Errorf("unexpected range: %s %d %d", key, start, stop)
		}
		return []string{"a-3", "a-2", "a-1"}, nil
	}
	ms.mgetFn = func(_ context.Context, keys []string) ([][]byte, error) {
		want := []string{"skillmatch:analysis:a-3", "skillmatch:analysis:a-2", "skillmatch:analysis:a-1"}
		if !reflect.DeepEqual(keys, want) {
			t.Errorf("keys = %v", keys)
		}
		return [][]byte{a3, nil, a1}, nil
	}
	var removed []string
	ms.removeFn = func(_ context.Context, _ string, value string) error {
		removed = append(removed, value)
		return nil
	}

	got, err := repo.List(context.Background(), 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].ID() != "a-3" || got[1].ID() != "a-1" {
		t.Fatalf("unexpected list: %v", got)
	}
	if !reflect.DeepEqual(removed, []string{"a-2"}) {
		t.Errorf("removed = %v, want [a-2]", removed)
	}
}

func TestList_SkipsAndPurgesCorrupt(t *testing.T) {
	repo, ms := newTestRepo(t)
	a1, _ := json.Marshal(toDoc(testAnalysis(t, "a-1")))

	ms.rangeFn = func(context.Context, string, int, int) ([]string, error) {
		return []string{"a-2", "a-1"}, nil
	}
	ms.mgetFn = func(context.Context, []string) ([][]byte, error) {
		return [][]byte{[]byte("garbage"), a1}, nil
	}
	var deleted []string
	ms.delFn = func(_ context.Context, key string) error {
		deleted = append(deleted, key)
		return errors.New("READONLY")
	}

	got, err := repo.List(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID() != "a-1" {
		t.Fatalf("unexpected list: %v", got)
	}
	if !reflect.DeepEqual(deleted, []string{"skillmatch:analysis:a-2"}) {
		t.Errorf("deleted = %v", deleted)
	}
}

func TestList_Empty(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.mgetFn = func(context.Context, []string) ([][]byte, error) {
		t.Error("MGET must not run for an empty index")
		return nil, nil
	}

	got, err := repo.List(context.Background(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}

func TestList_ZeroLimit(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.rangeFn = func(context.Context, string, int, int) ([]string, error) {
		t.Error("range must not run for limit 0")
		return nil, nil
	}

	got, err := repo.List(context.Background(), 0)
	if err != nil || len(got) != 0 {
		t.Fatalf("got %v, %v", got, err)
	}
}

func TestList_RangeError(t *testing.T) {
	repo, ms := newTestRepo(t)
	ms.rangeFn = func(context.Context, string, int, int) ([]string, error) {
		return nil, errors.New("timeout")
	}

	if _, err := repo.List(context.Background(), 5); err == nil {
		t.Fatal("expected error")
	}
}
