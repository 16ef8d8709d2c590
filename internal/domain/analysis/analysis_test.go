package analysis

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/kailas-cloud/skillmatch/internal/domain/match"
)

func TestNew_GeneratesUUID(t *testing.T) {
	r := match.Reconstruct([]string{"go"}, []string{"aws"}, 50)
	a := New("resume.pdf", []string{"go"}, []string{"aws", "go"}, r, false, time.Now(), time.Millisecond)

	if _, err := uuid.Parse(a.ID()); err != nil {
		t.Fatalf("expected uuid ID, got %q: %v", a.ID(), err)
	}
	b := New("resume.pdf", nil, nil, r, false, time.Now(), 0)
	if a.ID() == b.ID() {
		t.Error("expected unique IDs")
	}
}

func TestReconstruct_NormalizesToUTC(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	created := time.Date(2024, 5, 1, 2, 0, 0, 0, loc)
	a := Reconstruct("id-1", "", nil, nil, match.Result{}, true, created, 0)

	if a.CreatedAt().Location() != time.UTC {
		t.Errorf("expected UTC, got %v", a.CreatedAt().Location())
	}
	if a.CreatedAt().Day() != 30 {
		t.Errorf("expected April 30 UTC, got %v", a.CreatedAt())
	}
	if !a.UsedDefaultReference() {
		t.Error("expected UsedDefaultReference")
	}
}

func TestAccessors_ReturnCopies(t *testing.T) {
	a := Reconstruct("id", "", []string{"go"}, []string{"aws"}, match.Result{}, false, time.Now(), 0)
	c := a.CandidateSkills()
	c[0] = "mutated"
	if a.CandidateSkills()[0] != "go" {
		t.Error("analysis mutated through CandidateSkills()")
	}
}
