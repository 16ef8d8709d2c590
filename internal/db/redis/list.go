package redis

import (
	"context"

	"github.com/kailas-cloud/skillmatch/internal/db"
)

// PushCapped prepends value to the list and trims it to maxLen entries in one round trip.
func (s *Store) PushCapped(ctx context.Context, key, value string, maxLen int) error {
	push := s.b().Lpush().Key(key).Element(value).Build()
	if maxLen <= 0 {
		if err := s.do(ctx, push).Error(); err != nil {
			return &db.Error{Op: db.OpLPush, Err: err}
		}
		return nil
	}

	trim := s.b().Ltrim().Key(key).Start(0).Stop(int64(maxLen - 1)).Build()
	results := s.client.DoMulti(ctx, push, trim)
	if err := results[0].Error(); err != nil {
		return &db.Error{Op: db.OpLPush, Err: err}
	}
	if err := results[1].Error(); err != nil {
		return &db.Error{Op: db.OpLTrim, Err: err}
	}
	return nil
}

// Range returns list entries [start, stop] inclusive.
func (s *Store) Range(ctx context.Context, key string, start, stop int) ([]string, error) {
	cmd := s.b().Lrange().Key(key).Start(int64(start)).Stop(int64(stop)).Build()
	items, err := s.do(ctx, cmd).AsStrSlice()
	if err != nil {
		return nil, &db.Error{Op: db.OpLRange, Err: err}
	}
	return items, nil
}

// Remove deletes every occurrence of value from the list.
func (s *Store) Remove(ctx context.Context, key, value string) error {
	cmd := s.b().Lrem().Key(key).Count(0).Element(value).Build()
	if err := s.do(ctx, cmd).Error(); err != nil {
		return &db.Error{Op: db.OpLRem, Err: err}
	}
	return nil
}
