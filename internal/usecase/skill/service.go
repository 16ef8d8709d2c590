package skill

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	domanalysis "github.com/kailas-cloud/skillmatch/internal/domain/analysis"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
	domskill "github.com/kailas-cloud/skillmatch/internal/domain/skill"
	"github.com/kailas-cloud/skillmatch/internal/domain/text"
	"github.com/kailas-cloud/skillmatch/internal/logger"
	"github.com/kailas-cloud/skillmatch/internal/metrics"
)

// AnalyzeRequest is a candidate text scored against a reference text.
// An empty ReferenceText falls back to the configured default reference.
type AnalyzeRequest struct {
	Label         string
	CandidateText string
	ReferenceText string
}

// Service extracts skills from text and scores skill coverage.
// It holds only immutable state and is safe for concurrent use.
type Service struct {
	vocab            *domskill.Vocabulary
	extractor        Extractor
	history          HistoryRecorder
	defaultReference string
	maxTextBytes     int
	now              func() time.Time
}

// New creates a skill service over a vocabulary and its extractor.
func New(vocab *domskill.Vocabulary, extractor Extractor) *Service {
	return &Service{
		vocab:     vocab,
		extractor: extractor,
		now:       time.Now,
	}
}

// WithHistory enables recording of analyses. nil disables it.
func (s *Service) WithHistory(h HistoryRecorder) *Service {
	s.history = h
	return s
}

// WithAnalysisDefaults configures the fallback reference text and the
// per-text size limit. maxTextBytes <= 0 disables the limit.
func (s *Service) WithAnalysisDefaults(defaultReference string, maxTextBytes int) *Service {
	s.defaultReference = defaultReference
	s.maxTextBytes = maxTextBytes
	return s
}

// Vocabulary returns the loaded vocabulary.
func (s *Service) Vocabulary() *domskill.Vocabulary {
	return s.vocab
}

// MaxTextBytes returns the per-text size limit, 0 when unlimited.
func (s *Service) MaxTextBytes() int {
	if s.maxTextBytes < 0 {
		return 0
	}
	return s.maxTextBytes
}

// ExtractSkills returns the vocabulary skills present in text, sorted.
// Text above the size limit fails with domain.ErrTextTooLarge.
func (s *Service) ExtractSkills(raw string) ([]string, error) {
	if err := s.checkSize("text", raw); err != nil {
		return nil, err
	}
	return s.extract("extract", raw).Sorted(), nil
}

// CalculateMatch scores candidate phrases against reference phrases.
// Phrases are canonicalized first; blank entries are ignored.
func (s *Service) CalculateMatch(candidate, reference []string) match.Result {
	return match.Score(canonicalSet(candidate), canonicalSet(reference))
}

// Analyze extracts skills from both texts, scores them and records the
// result in history when enabled. History failures are logged only.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (domanalysis.Analysis, error) {
	if strings.TrimSpace(req.CandidateText) == "" {
		return domanalysis.Analysis{}, fmt.Errorf("resume_text is required: %w", domain.ErrInvalidInput)
	}

	reference := req.ReferenceText
	usedDefault := false
	if strings.TrimSpace(reference) == "" {
		reference = s.defaultReference
		usedDefault = true
	}

	if err := s.checkSize("resume_text", req.CandidateText); err != nil {
		return domanalysis.Analysis{}, err
	}
	if err := s.checkSize("job_description", reference); err != nil {
		return domanalysis.Analysis{}, err
	}

	start := s.now()
	candidateSkills := s.extract("candidate", req.CandidateText)
	referenceSkills := s.extract("reference", reference)
	result := match.Score(candidateSkills, referenceSkills)
	metrics.MatchPercentage.Observe(float64(result.Percentage()))

	a := domanalysis.New(
		req.Label,
		candidateSkills.Sorted(),
		referenceSkills.Sorted(),
		result,
		usedDefault,
		start,
		s.now().Sub(start),
	)

	if s.history != nil {
		ctx = logger.WithFields(ctx, zap.String("analysis_id", a.ID()))
		err := s.history.Save(ctx, a)
		metrics.ObserveHistory("save", err)
		if err != nil {
			logger.FromContext(ctx).Warn("Failed to record analysis", zap.Error(err))
		}
	}

	return a, nil
}

func (s *Service) extract(source, raw string) domskill.Set {
	found := s.extractor.Extract(text.Normalize(raw))
	metrics.ObserveExtraction(source, found.Len())
	return found
}

func (s *Service) checkSize(field, value string) error {
	if s.maxTextBytes > 0 && len(value) > s.maxTextBytes {
		return fmt.Errorf("%s exceeds %d bytes: %w", field, s.maxTextBytes, domain.ErrTextTooLarge)
	}
	return nil
}

func canonicalSet(phrases []string) domskill.Set {
	var out domskill.Set
	for _, p := range phrases {
		if c := text.Normalize(p); c != "" {
			out.Add(c)
		}
	}
	return out
}
