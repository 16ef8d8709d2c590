package skillmatch

import (
	"fmt"
	"time"

	"github.com/kailas-cloud/skillmatch/internal/config"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	"github.com/kailas-cloud/skillmatch/internal/domain/skill"
	"github.com/kailas-cloud/skillmatch/internal/domain/text"
	"github.com/kailas-cloud/skillmatch/internal/matcher"
	skilluc "github.com/kailas-cloud/skillmatch/internal/usecase/skill"
)

// MatchResult is the coverage of a reference skill set by a candidate set.
// Matched and Missing are sorted; Percentage is floor(100*matched/reference)
// and 0 for an empty reference.
type MatchResult struct {
	Matched    []string
	Missing    []string
	Percentage int
}

// Occurrence is one match of a skill phrase in normalized text, as byte offsets.
type Occurrence struct {
	Skill string
	Start int
	End   int
}

// Client is the skillmatch SDK entry point.
type Client struct {
	vocab   *skill.Vocabulary
	matcher *matcher.Matcher
	svc     *skilluc.Service
	obs     *observer
}

// New builds the vocabulary and the matcher. With no vocabulary option the
// built-in skill list is used.
func New(opts ...Option) (*Client, error) {
	cfg := &clientConfig{}
	for _, o := range opts {
		o.apply(cfg)
	}

	vocab, err := loadVocabulary(cfg)
	if err != nil {
		return nil, err
	}

	obs, err := newObserver(cfg.logger, cfg.metricsReg)
	if err != nil {
		return nil, err
	}

	m := matcher.New(vocab)
	return &Client{
		vocab:   vocab,
		matcher: m,
		svc:     skilluc.New(vocab, m),
		obs:     obs,
	}, nil
}

func loadVocabulary(cfg *clientConfig) (*skill.Vocabulary, error) {
	switch {
	case cfg.phrases != nil:
		vocab, err := skill.LoadVersioned(cfg.version, cfg.phrases)
		if err != nil {
			return nil, fmt.Errorf("skillmatch: %w", err)
		}
		return vocab, nil
	default:
		vocab, err := config.LoadVocabulary(cfg.vocabPath)
		if err != nil {
			return nil, fmt.Errorf("skillmatch: %w", err)
		}
		return vocab, nil
	}
}

// ExtractSkills returns the vocabulary skills present in text, sorted.
func (c *Client) ExtractSkills(raw string) []string {
	start := time.Now()
	skills := c.matcher.ExtractText(raw).Sorted()
	c.obs.observe("extract", start, len(skills))
	return skills
}

// CalculateMatch scores candidate skills against reference skills.
// Phrases are canonicalized the same way extracted skills are.
func (c *Client) CalculateMatch(candidate, reference []string) MatchResult {
	start := time.Now()
	r := c.svc.CalculateMatch(candidate, reference)
	c.obs.observe("match", start, len(r.Matched()))
	return toMatchResult(r)
}

// Analyze extracts skills from both texts and scores the candidate
// against the reference.
func (c *Client) Analyze(candidateText, referenceText string) MatchResult {
	start := time.Now()
	r := match.Score(c.matcher.ExtractText(candidateText), c.matcher.ExtractText(referenceText))
	c.obs.observe("analyze", start, len(r.Matched()))
	return toMatchResult(r)
}

// Occurrences lists every match position in the normalized form of raw.
func (c *Client) Occurrences(raw string) []Occurrence {
	found := c.matcher.Occurrences(text.Normalize(raw))
	out := make([]Occurrence, len(found))
	for i, o := range found {
		out[i] = Occurrence{Skill: o.Skill, Start: o.Start, End: o.End}
	}
	return out
}

// Normalize returns the canonical form of raw used for matching.
func Normalize(raw string) string {
	return text.Normalize(raw)
}

// Vocabulary returns the canonical phrases in load order.
func (c *Client) Vocabulary() []string {
	return c.vocab.Phrases()
}

// VocabularyVersion returns the vocabulary version label, "" if unset.
func (c *Client) VocabularyVersion() string {
	return c.vocab.Version()
}

func toMatchResult(r match.Result) MatchResult {
	return MatchResult{
		Matched:    r.Matched(),
		Missing:    r.Missing(),
		Percentage: r.Percentage(),
	}
}
