// Package skill holds the skill vocabulary and match sets.
package skill

import (
	"fmt"
	"strings"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	"github.com/kailas-cloud/skillmatch/internal/domain/text"
)

// Vocabulary is an immutable, ordered set of skills. It is built once at
// startup and shared read-only, so concurrent readers need no locking.
type Vocabulary struct {
	version string
	skills  []Skill
	index   map[string]int
}

// Load builds an unversioned Vocabulary. See LoadVersioned.
func Load(phrases []string) (*Vocabulary, error) {
	return LoadVersioned("", phrases)
}

// LoadVersioned canonicalizes every phrase with text.Normalize and builds a Vocabulary.
// Fails with a *domain.ConfigurationError when a phrase is empty after
// canonicalization or duplicates an earlier one (case-insensitively).
func LoadVersioned(version string, phrases []string) (*Vocabulary, error) {
	v := &Vocabulary{
		version: strings.TrimSpace(version),
		skills:  make([]Skill, 0, len(phrases)),
		index:   make(map[string]int, len(phrases)),
	}

	for i, raw := range phrases {
		if strings.TrimSpace(raw) == "" {
			return nil, domain.NewConfigurationError(i, raw, "empty phrase")
		}
		phrase := text.Normalize(raw)
		if phrase == "" {
			return nil, domain.NewConfigurationError(i, raw, "phrase has no matchable characters")
		}
		if first, ok := v.index[phrase]; ok {
			return nil, domain.NewConfigurationError(i, raw,
				fmt.Sprintf("duplicate of phrase #%d (%s)", first, phrase))
		}
		v.index[phrase] = len(v.skills)
		v.skills = append(v.skills, newSkill(phrase))
	}

	return v, nil
}

// Version returns the vocabulary version label ("" when unversioned).
func (v *Vocabulary) Version() string { return v.version }

// Len returns the number of skills.
func (v *Vocabulary) Len() int { return len(v.skills) }

// All returns the skills in load order.
func (v *Vocabulary) All() []Skill {
	out := make([]Skill, len(v.skills))
	copy(out, v.skills)
	return out
}

// Phrases returns the canonical phrases in load order.
func (v *Vocabulary) Phrases() []string {
	out := make([]string, len(v.skills))
	for i, s := range v.skills {
		out[i] = s.phrase
	}
	return out
}

// At returns the skill at position i in load order.
func (v *Vocabulary) At(i int) Skill { return v.skills[i] }

// Lookup finds a skill by phrase. The phrase is normalized first, so
// "Machine-Learning" finds "machine learning".
func (v *Vocabulary) Lookup(phrase string) (Skill, bool) {
	i, ok := v.index[text.Normalize(phrase)]
	if !ok {
		return Skill{}, false
	}
	return v.skills[i], true
}

// Contains reports whether phrase is part of the vocabulary.
func (v *Vocabulary) Contains(phrase string) bool {
	_, ok := v.Lookup(phrase)
	return ok
}
