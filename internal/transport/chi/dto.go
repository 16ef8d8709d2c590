package chi

import (
	"time"

	domanalysis "github.com/kailas-cloud/skillmatch/internal/domain/analysis"
	"github.com/kailas-cloud/skillmatch/internal/domain/match"
)

// ErrorCode is a machine-readable error identifier.
type ErrorCode string

// Error codes returned in ErrorResponse.Code.
const (
	ErrorCodeBadRequest       ErrorCode = "bad_request"
	ErrorCodeValidationFailed ErrorCode = "validation_failed"
	ErrorCodeUnauthorized     ErrorCode = "unauthorized"
	ErrorCodeNotFound         ErrorCode = "not_found"
	ErrorCodeTextTooLarge     ErrorCode = "text_too_large"
	ErrorCodeHistoryDisabled  ErrorCode = "history_disabled"
	ErrorCodeInternalError    ErrorCode = "internal_error"
)

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

// HealthResponse is the body of GET /health.
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks"`
}

// VocabularyResponse is the body of GET /vocabulary.
type VocabularyResponse struct {
	Version string   `json:"version"`
	Skills  []string `json:"skills"`
}

// ExtractRequest is the body of POST /skills/extract.
type ExtractRequest struct {
	Text string `json:"text"`
}

// ExtractResponse lists the skills found in the text.
type ExtractResponse struct {
	Skills []string `json:"skills"`
}

// MatchRequest is the body of POST /skills/match.
type MatchRequest struct {
	CandidateSkills []string `json:"candidate_skills" validate:"max=1000,dive,max=200"`
	ReferenceSkills []string `json:"reference_skills" validate:"max=1000,dive,max=200"`
}

// MatchResponse is a scored skill comparison.
type MatchResponse struct {
	MatchedSkills   []string `json:"matched_skills"`
	MissingSkills   []string `json:"missing_skills"`
	MatchPercentage int      `json:"match_percentage"`
}

// AnalyzeRequest is the body of POST /analyze.
type AnalyzeRequest struct {
	Label          string `json:"label" validate:"max=200"`
	ResumeText     string `json:"resume_text" validate:"required"`
	JobDescription string `json:"job_description"`
}

// AnalysisResponse is one analysis, fresh or from history.
type AnalysisResponse struct {
	ID               string    `json:"id"`
	Label            string    `json:"label,omitempty"`
	ExtractedSkills  []string  `json:"extracted_skills"`
	ReferenceSkills  []string  `json:"reference_skills"`
	MatchedSkills    []string  `json:"matched_skills"`
	MissingSkills    []string  `json:"missing_skills"`
	MatchPercentage  int       `json:"match_percentage"`
	DefaultReference bool      `json:"default_reference"`
	CreatedAt        time.Time `json:"created_at"`
	ProcessingMs     float64   `json:"processing_ms"`
}

// AnalysisListResponse is the body of GET /analyses.
type AnalysisListResponse struct {
	Items []AnalysisResponse `json:"items"`
}

// SkillCount is one entry of SummaryResponse.TopSkills.
type SkillCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ScoreBucket is one entry of SummaryResponse.ScoreDistribution.
type ScoreBucket struct {
	Range   string `json:"range"`
	Percent int    `json:"percent"`
}

// DayCount is one entry of SummaryResponse.DailyVolume.
type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

// SummaryResponse is the body of GET /analyses/summary.
type SummaryResponse struct {
	Days              int           `json:"days"`
	Total             int           `json:"total"`
	AvgScore          int           `json:"avg_score"`
	Excellent         int           `json:"excellent"`
	AvgProcessingMs   float64       `json:"avg_processing_ms"`
	TopSkills         []SkillCount  `json:"top_skills"`
	ScoreDistribution []ScoreBucket `json:"score_distribution"`
	DailyVolume       []DayCount    `json:"daily_volume"`
}

func matchToResponse(r match.Result) MatchResponse {
	return MatchResponse{
		MatchedSkills:   r.Matched(),
		MissingSkills:   r.Missing(),
		MatchPercentage: r.Percentage(),
	}
}

func analysisToResponse(a domanalysis.Analysis) AnalysisResponse {
	return AnalysisResponse{
		ID:               a.ID(),
		Label:            a.Label(),
		ExtractedSkills:  a.CandidateSkills(),
		ReferenceSkills:  a.ReferenceSkills(),
		MatchedSkills:    a.Result().Matched(),
		MissingSkills:    a.Result().Missing(),
		MatchPercentage:  a.Score(),
		DefaultReference: a.UsedDefaultReference(),
		CreatedAt:        a.CreatedAt(),
		ProcessingMs:     millis(a.Duration()),
	}
}

func summaryToResponse(days int, s domanalysis.Summary) SummaryResponse {
	resp := SummaryResponse{
		Days:              days,
		Total:             s.Total,
		AvgScore:          s.AvgScore,
		Excellent:         s.Excellent,
		AvgProcessingMs:   millis(s.AvgDuration),
		TopSkills:         make([]SkillCount, len(s.TopSkills)),
		ScoreDistribution: make([]ScoreBucket, len(s.Distribution)),
		DailyVolume:       make([]DayCount, len(s.Volume)),
	}
	for i, sc := range s.TopSkills {
		resp.TopSkills[i] = SkillCount{Name: sc.Name, Count: sc.Count}
	}
	for i, b := range s.Distribution {
		resp.ScoreDistribution[i] = ScoreBucket{Range: b.Label, Percent: b.Percent}
	}
	for i, v := range s.Volume {
		resp.DailyVolume[i] = DayCount{Day: v.Day, Count: v.Count}
	}
	return resp
}

func millis(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}
