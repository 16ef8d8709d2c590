package skill

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/kailas-cloud/skillmatch/internal/domain"
	domanalysis "github.com/kailas-cloud/skillmatch/internal/domain/analysis"
	domskill "github.com/kailas-cloud/skillmatch/internal/domain/skill"
	"github.com/kailas-cloud/skillmatch/internal/matcher"
)

// --- Mocks ---

type mockHistory struct {
	saved []domanalysis.Analysis
	err   error
}

func (m *mockHistory) Save(_ context.Context, a domanalysis.Analysis) error {
	m.saved = append(m.saved, a)
	return m.err
}

// --- Helpers ---

func newTestService(t *testing.T, phrases ...string) *Service {
	t.Helper()
	if len(phrases) == 0 {
		phrases = []string{"python", "java", "sql", "mysql", "docker", "c++", "c", "machine learning"}
	}
	vocab, err := domskill.Load(phrases)
	if err != nil {
		t.Fatalf("load vocabulary: %v", err)
	}
	return New(vocab, matcher.New(vocab))
}

// --- ExtractSkills ---

func TestExtractSkills(t *testing.T) {
	svc := newTestService(t)

	tests := []struct {
		name string
		text string
		want []string
	}{
		{"boundary", "I use MySQL daily", []string{"mysql"}},
		{"symbols", "I know C++ well", []string{"c++"}},
		{"multi-word", "Worked on Machine-Learning pipelines", []string{"machine learning"}},
		{"broken phrase", "machine deep learning", []string{}},
		{"sorted", "SQL, Python and Docker", []string{"docker", "python", "sql"}},
		{"empty", "", []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.ExtractSkills(tc.text)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ExtractSkills(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestExtractSkills_TextTooLarge(t *testing.T) {
	svc := newTestService(t).WithAnalysisDefaults("", 16)

	if _, err := svc.ExtractSkills(strings.Repeat("python ", 3)); !errors.Is(err, domain.ErrTextTooLarge) {
		t.Fatalf("expected ErrTextTooLarge, got %v", err)
	}

	got, err := svc.ExtractSkills("python and sql")
	if err != nil {
		t.Fatalf("text within limit: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"python", "sql"}) {
		t.Errorf("got %v", got)
	}
	if svc.MaxTextBytes() != 16 {
		t.Errorf("MaxTextBytes = %d", svc.MaxTextBytes())
	}
}

// --- CalculateMatch ---

func TestCalculateMatch(t *testing.T) {
	svc := newTestService(t)

	r := svc.CalculateMatch([]string{"python", "docker"}, []string{"python", "docker", "sql"})
	if r.Percentage() != 66 {
		t.Errorf("percentage = %d, want 66", r.Percentage())
	}
	if !reflect.DeepEqual(r.Matched(), []string{"docker", "python"}) {
		t.Errorf("matched = %v", r.Matched())
	}
	if !reflect.DeepEqual(r.Missing(), []string{"sql"}) {
		t.Errorf("missing = %v", r.Missing())
	}
}

func TestCalculateMatch_CanonicalizesPhrases(t *testing.T) {
	svc := newTestService(t)

	r := svc.CalculateMatch([]string{"Python", "  ", "Scikit-Learn"}, []string{"python", "scikit learn"})
	if r.Percentage() != 100 {
		t.Errorf("percentage = %d, want 100", r.Percentage())
	}
	if len(r.Missing()) != 0 {
		t.Errorf("missing = %v, want empty", r.Missing())
	}
}

func TestCalculateMatch_EmptyReference(t *testing.T) {
	svc := newTestService(t)

	r := svc.CalculateMatch([]string{"python"}, nil)
	if r.Percentage() != 0 || len(r.Matched()) != 0 || len(r.Missing()) != 0 {
		t.Errorf("expected zero result, got %d %v %v", r.Percentage(), r.Matched(), r.Missing())
	}
}

// --- Analyze ---

func TestAnalyze(t *testing.T) {
	hist := &mockHistory{}
	svc := newTestService(t).WithHistory(hist)
	fixed := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return fixed }

	a, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Label:         "backend",
		CandidateText: "Python and Docker, some MySQL",
		ReferenceText: "python docker sql",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a.ID() == "" {
		t.Error("expected generated ID")
	}
	if a.Score() != 66 {
		t.Errorf("score = %d, want 66", a.Score())
	}
	if !reflect.DeepEqual(a.CandidateSkills(), []string{"docker", "mysql", "python"}) {
		t.Errorf("candidate = %v", a.CandidateSkills())
	}
	if !reflect.DeepEqual(a.Result().Missing(), []string{"sql"}) {
		t.Errorf("missing = %v", a.Result().Missing())
	}
	if a.UsedDefaultReference() {
		t.Error("explicit reference must not be flagged as default")
	}
	if !a.CreatedAt().Equal(fixed) {
		t.Errorf("created_at = %v", a.CreatedAt())
	}
	if len(hist.saved) != 1 || hist.saved[0].ID() != a.ID() {
		t.Errorf("expected analysis to be recorded, got %d", len(hist.saved))
	}
}

func TestAnalyze_DefaultReference(t *testing.T) {
	svc := newTestService(t).WithAnalysisDefaults("python java sql", 0)

	a, err := svc.Analyze(context.Background(), AnalyzeRequest{CandidateText: "python", ReferenceText: "  \n"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a.UsedDefaultReference() {
		t.Error("expected default reference flag")
	}
	if !reflect.DeepEqual(a.ReferenceSkills(), []string{"java", "python", "sql"}) {
		t.Errorf("reference = %v", a.ReferenceSkills())
	}
	if a.Score() != 33 {
		t.Errorf("score = %d, want 33", a.Score())
	}
}

func TestAnalyze_EmptyCandidate(t *testing.T) {
	svc := newTestService(t)

	_, err := svc.Analyze(context.Background(), AnalyzeRequest{CandidateText: " ", ReferenceText: "python"})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAnalyze_TextTooLarge(t *testing.T) {
	svc := newTestService(t).WithAnalysisDefaults("", 16)

	tests := []struct {
		name string
		req  AnalyzeRequest
	}{
		{"candidate", AnalyzeRequest{CandidateText: strings.Repeat("python ", 5), ReferenceText: "sql"}},
		{"reference", AnalyzeRequest{CandidateText: "sql", ReferenceText: strings.Repeat("python ", 5)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Analyze(context.Background(), tc.req)
			if !errors.Is(err, domain.ErrTextTooLarge) {
				t.Fatalf("expected ErrTextTooLarge, got %v", err)
			}
		})
	}
}

func TestAnalyze_HistoryFailureIsNotReturned(t *testing.T) {
	hist := &mockHistory{err: errors.New("redis down")}
	svc := newTestService(t).WithHistory(hist)

	a, err := svc.Analyze(context.Background(), AnalyzeRequest{CandidateText: "java", ReferenceText: "java"})
	if err != nil {
		t.Fatalf("history failure must not fail the analysis: %v", err)
	}
	if a.Score() != 100 {
		t.Errorf("score = %d, want 100", a.Score())
	}
}

func TestAnalyze_Deterministic(t *testing.T) {
	svc := newTestService(t)
	req := AnalyzeRequest{CandidateText: "C++, c and SQL", ReferenceText: "c c++ mysql sql java"}

	first, err := svc.Analyze(context.Background(), req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for range 10 {
		again, err := svc.Analyze(context.Background(), req)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first.Result().Matched(), again.Result().Matched()) ||
			!reflect.DeepEqual(first.Result().Missing(), again.Result().Missing()) ||
			first.Score() != again.Score() {
			t.Fatal("analysis results differ between runs")
		}
	}
}
