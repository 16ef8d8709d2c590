package analysis

import (
	"time"

	domanalysis "github.com/kailas-cloud/skillmatch/internal/domain/analysis"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
)

// analysisDoc is the stored JSON form of an analysis.
type analysisDoc struct {
	ID               string   `json:"id"`
	Label            string   `json:"label,omitempty"`
	CandidateSkills  []string `json:"candidate_skills"`
	ReferenceSkills  []string `json:"reference_skills"`
	Matched          []string `json:"matched"`
	Missing          []string `json:"missing"`
	Percentage       int      `json:"percentage"`
	DefaultReference bool     `json:"default_reference,omitempty"`
	CreatedAtMs      int64    `json:"created_at_ms"`
	DurationUs       int64    `json:"duration_us"`
}

func toDoc(a domanalysis.Analysis) analysisDoc {
	return analysisDoc{
		ID:               a.ID(),
		Label:            a.Label(),
		CandidateSkills:  a.CandidateSkills(),
		ReferenceSkills:  a.ReferenceSkills(),
		Matched:          a.Result().Matched(),
		Missing:          a.Result().Missing(),
		Percentage:       a.Score(),
		DefaultReference: a.UsedDefaultReference(),
		CreatedAtMs:      a.CreatedAt().UnixMilli(),
		DurationUs:       a.Duration().Microseconds(),
	}
}

func fromDoc(d analysisDoc) domanalysis.Analysis {
	return domanalysis.Reconstruct(
		d.ID, d.Label, d.CandidateSkills, d.ReferenceSkills,
		match.Reconstruct(d.Matched, d.Missing, d.Percentage),
		d.DefaultReference,
		time.UnixMilli(d.CreatedAtMs),
		time.Duration(d.DurationUs)*time.Microsecond,
	)
}
