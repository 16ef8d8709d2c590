package history

import (
	"context"

	domanalysis "github.com/kailas-cloud/skillmatch/internal/domain/analysis"
)

// Repository defines the storage contract for analysis history.
type Repository interface {
	Get(ctx context.Context, id string) (domanalysis.Analysis, error)
	List(ctx context.Context, limit int) ([]domanalysis.Analysis, error)
}
