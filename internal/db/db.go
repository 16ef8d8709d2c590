package db

import (
	"context"
	"time"
)

// Store is the database facade combining all sub-interfaces.
// Consumers depend on the narrow sub-interfaces.
type Store interface {
	Pinger
	KVStore
	ListStore
	Close()
	WaitForReady(ctx context.Context, timeout time.Duration) error
}

// Pinger checks database connectivity.
type Pinger interface {
	Ping(ctx context.Context) error
}

// KVStore provides simple key-value operations.
type KVStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	// MGet returns one entry per key; missing keys yield nil.
	MGet(ctx context.Context, keys []string) ([][]byte, error)
	SetWithTTL(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Del(ctx context.Context, key string) error
}

// ListStore provides list operations used for newest-first indexes.
type ListStore interface {
	// PushCapped prepends value and trims the list to maxLen entries.
	PushCapped(ctx context.Context, key, value string, maxLen int) error
	// Range returns entries [start, stop] inclusive, newest first.
	Range(ctx context.Context, key string, start, stop int) ([]string, error)
	Remove(ctx context.Context, key, value string) error
}
