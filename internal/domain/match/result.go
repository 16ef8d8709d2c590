// Package match scores a candidate skill set against a reference skill set.
package match

import "github.com/kailas-cloud/skillmatch/internal/domain/skill"

// Result is the immutable outcome of a scoring call.
type Result struct {
	matched    []string
	missing    []string
	percentage int
}

// Score computes matched = candidate ∩ reference, missing = reference − candidate
// and percentage = floor(100·|matched|/|reference|).
// An empty reference yields 0% with empty matched and missing sets.
func Score(candidate, reference skill.Set) Result {
	if reference.IsEmpty() {
		return Result{matched: []string{}, missing: []string{}}
	}

	matched := candidate.Intersect(reference)
	missing := reference.Difference(candidate)

	return Result{
		matched:    matched.Sorted(),
		missing:    missing.Sorted(),
		percentage: Percentage(matched.Len(), reference.Len()),
	}
}

// Percentage returns floor(100·matched/total) in integer arithmetic, 0 when total is 0.
func Percentage(matched, total int) int {
	if total <= 0 {
		return 0
	}
	return 100 * matched / total
}

// Reconstruct creates a Result without recomputation (storage hydration).
func Reconstruct(matched, missing []string, percentage int) Result {
	return Result{
		matched:    cloneStrings(matched),
		missing:    cloneStrings(missing),
		percentage: percentage,
	}
}

// Matched returns the sorted matched phrases.
func (r Result) Matched() []string { return cloneStrings(r.matched) }

// Missing returns the sorted missing phrases.
func (r Result) Missing() []string { return cloneStrings(r.missing) }

// Percentage returns the coverage percentage in [0, 100].
func (r Result) Percentage() int { return r.percentage }

func cloneStrings(in []string) []string {
	out := make([]string, len(in))
	copy(out, in)
	return out
}
