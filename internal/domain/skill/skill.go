package skill

import "strings"

// Skill is a canonical vocabulary phrase: lowercase, normalized, one or more tokens.
type Skill struct {
	phrase string
	tokens int
}

func newSkill(phrase string) Skill {
	return Skill{phrase: phrase, tokens: strings.Count(phrase, " ") + 1}
}

// Phrase returns the canonical phrase.
func (s Skill) Phrase() string { return s.phrase }

// Tokens returns the number of space-separated tokens in the phrase.
func (s Skill) Tokens() int { return s.tokens }

// IsMultiWord reports whether the phrase spans more than one token.
func (s Skill) IsMultiWord() bool { return s.tokens > 1 }

func (s Skill) String() string { return s.phrase }
