// Package analysis models a recorded candidate-vs-reference comparison.
package analysis

import (
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/skillmatch/internal/domain/match"
)

// Analysis is a single comparison of a candidate text against a reference text
// (immutable value object).
type Analysis struct {
	id               string
	label            string
	candidateSkills  []string
	referenceSkills  []string
	result           match.Result
	defaultReference bool
	createdAt        time.Time
	duration         time.Duration
}

// New creates an Analysis with a fresh random ID.
func New(
	label string,
	candidateSkills, referenceSkills []string,
	result match.Result,
	defaultReference bool,
	createdAt time.Time,
	duration time.Duration,
) Analysis {
	return Reconstruct(
		uuid.NewString(), label, candidateSkills, referenceSkills,
		result, defaultReference, createdAt, duration,
	)
}

// Reconstruct creates an Analysis without generating an ID (storage hydration).
func Reconstruct(
	id, label string,
	candidateSkills, referenceSkills []string,
	result match.Result,
	defaultReference bool,
	createdAt time.Time,
	duration time.Duration,
) Analysis {
	return Analysis{
		id:               id,
		label:            label,
		candidateSkills:  cloneStrings(candidateSkills),
		referenceSkills:  cloneStrings(referenceSkills),
		result:           result,
		defaultReference: defaultReference,
		createdAt:        createdAt.UTC(),
		duration:         duration,
	}
}

// ID returns the analysis identifier.
func (a Analysis) ID() string { return a.id }

// Label returns the caller-supplied label (e.g. a resume file name).
func (a Analysis) Label() string { return a.label }

// CandidateSkills returns the sorted skills extracted from the candidate text.
func (a Analysis) CandidateSkills() []string { return cloneStrings(a.candidateSkills) }

// ReferenceSkills returns the sorted skills extracted from the reference text.
func (a Analysis) ReferenceSkills() []string { return cloneStrings(a.referenceSkills) }

// Result returns the scoring outcome.
func (a Analysis) Result() match.Result { return a.result }

// Score is a shortcut for Result().Percentage().
func (a Analysis) Score() int { return a.result.Percentage() }

// UsedDefaultReference reports whether the configured fallback reference was used.
func (a Analysis) UsedDefaultReference() bool { return a.defaultReference }

// CreatedAt returns the creation time in UTC.
func (a Analysis) CreatedAt() time.Time { return a.createdAt }

// Duration returns the processing time.
func (a Analysis) Duration() time.Duration { return a.duration }

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
