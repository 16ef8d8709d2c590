package health

import "context"

// DBPinger checks database availability.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// VocabularySizer reports how many phrases the loaded vocabulary holds.
type VocabularySizer interface {
	Len() int
}
