package skill

import (
	"context"

	domanalysis "github.com/kailas-cloud/skillmatch/internal/domain/analysis"
	domskill "github.com/kailas-cloud/skillmatch/internal/domain/skill"
)

// Extractor finds vocabulary phrases in normalized text.
type Extractor interface {
	Extract(normalized string) domskill.Set
}

// HistoryRecorder persists finished analyses.
type HistoryRecorder interface {
	Save(ctx context.Context, a domanalysis.Analysis) error
}
