// Package matcher finds vocabulary skills in normalized text.
// It compiles the whole vocabulary into one Aho-Corasick automaton
// (petar-dambovaliev/aho-corasick), so a text is scanned once regardless of
// vocabulary size: O(n + m + z) for n text bytes, m pattern bytes, z occurrences.
package matcher

import (
	"sort"

	aho "github.com/petar-dambovaliev/aho-corasick"

	"github.com/kailas-cloud/skillmatch/internal/domain/skill"
	"github.com/kailas-cloud/skillmatch/internal/domain/text"
)

// Occurrence is one token-aligned skill occurrence with byte offsets into the normalized text.
type Occurrence struct {
	Skill string `json:"skill"`
	Start int    `json:"start"` // inclusive
	End   int    `json:"end"`   // exclusive
}

// Matcher is immutable after New and safe for concurrent use.
type Matcher struct {
	automaton aho.AhoCorasick
	patterns  []string
}

// New compiles the vocabulary into an automaton.
func New(vocab *skill.Vocabulary) *Matcher {
	patterns := vocab.Phrases()
	m := &Matcher{patterns: patterns}
	if len(patterns) == 0 {
		return m
	}

	// The zero MatchKind is standard semantics, the only kind that supports
	// overlapping iteration: "sql" inside "mysql" must still be reported so
	// the boundary check can reject it.
	builder := aho.NewAhoCorasickBuilder(aho.Opts{
		DFA: true,
	})
	m.automaton = builder.Build(patterns)
	return m
}

// PatternCount returns the number of compiled phrases.
func (m *Matcher) PatternCount() int {
	return len(m.patterns)
}

// Extract returns the set of skills present in normalized text.
// A skill is present when one of its occurrences starts at the beginning of
// the text or right after a space, and ends at the end of the text or right
// before a space.
func (m *Matcher) Extract(normalized string) skill.Set {
	found := skill.NewSet()
	m.scan(normalized, func(pattern, _, _ int) {
		found.Add(m.patterns[pattern])
	})
	return found
}

// ExtractText normalizes raw text and extracts its skills.
func (m *Matcher) ExtractText(raw string) skill.Set {
	return m.Extract(text.Normalize(raw))
}

// Occurrences returns every token-aligned occurrence in normalized text,
// ordered by start offset, then end offset.
func (m *Matcher) Occurrences(normalized string) []Occurrence {
	out := []Occurrence{}
	m.scan(normalized, func(pattern, start, end int) {
		out = append(out, Occurrence{Skill: m.patterns[pattern], Start: start, End: end})
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].End < out[j].End
	})
	return out
}

func (m *Matcher) scan(normalized string, emit func(pattern, start, end int)) {
	if len(m.patterns) == 0 || normalized == "" {
		return
	}

	haystack := []byte(normalized)
	iter := m.automaton.IterOverlappingByte(haystack)
	for next := iter.Next(); next != nil; next = iter.Next() {
		start, end := next.Start(), next.End()
		if !alignedToTokens(haystack, start, end) {
			continue
		}
		emit(next.Pattern(), start, end)
	}
}

func alignedToTokens(haystack []byte, start, end int) bool {
	if start > 0 && haystack[start-1] != ' ' {
		return false
	}
	if end < len(haystack) && haystack[end] != ' ' {
		return false
	}
	return true
}
