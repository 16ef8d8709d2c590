package analysis

import (
	"sort"
	"time"
)

// ExcellentScore is the lowest score counted as an excellent candidate.
const ExcellentScore = 85

// DefaultTopSkills caps the number of skills in Summary.TopSkills.
const DefaultTopSkills = 10

// SkillCount is how many analyses extracted a skill from the candidate text.
type SkillCount struct {
	Name  string
	Count int
}

// Bucket is one score range with the rounded share of analyses that fall in it.
type Bucket struct {
	Label   string
	Percent int
}

// DayVolume is the number of analyses created on a UTC day (YYYY-MM-DD).
type DayVolume struct {
	Day   string
	Count int
}

// Summary aggregates a window of analyses for dashboards.
type Summary struct {
	Total        int
	AvgScore     int
	Excellent    int
	AvgDuration  time.Duration
	TopSkills    []SkillCount
	Distribution []Bucket
	Volume       []DayVolume
}

var bucketBounds = []struct {
	label string
	max   int
}{
	{"0-40", 40},
	{"41-60", 60},
	{"61-80", 80},
	{"81-100", 100},
}

// Summarize aggregates items. Averages and shares are rounded half up.
func Summarize(items []Analysis, topN int) Summary {
	s := Summary{
		TopSkills:    []SkillCount{},
		Distribution: make([]Bucket, len(bucketBounds)),
		Volume:       []DayVolume{},
	}
	for i, b := range bucketBounds {
		s.Distribution[i].Label = b.label
	}

	total := len(items)
	s.Total = total
	if total == 0 {
		return s
	}

	var scoreSum int
	var durSum time.Duration
	bucketCounts := make([]int, len(bucketBounds))
	skillCounts := make(map[string]int)
	dayCounts := make(map[string]int)

	for _, a := range items {
		score := a.Score()
		scoreSum += score
		durSum += a.Duration()
		if score >= ExcellentScore {
			s.Excellent++
		}
		bucketCounts[bucketFor(score)]++
		for _, sk := range a.candidateSkills {
			skillCounts[sk]++
		}
		dayCounts[a.createdAt.Format(time.DateOnly)]++
	}

	s.AvgScore = roundDiv(scoreSum, total)
	s.AvgDuration = durSum / time.Duration(total)
	for i, c := range bucketCounts {
		s.Distribution[i].Percent = roundDiv(c*100, total)
	}

	for name, count := range skillCounts {
		s.TopSkills = append(s.TopSkills, SkillCount{Name: name, Count: count})
	}
	sort.Slice(s.TopSkills, func(i, j int) bool {
		if s.TopSkills[i].Count != s.TopSkills[j].Count {
			return s.TopSkills[i].Count > s.TopSkills[j].Count
		}
		return s.TopSkills[i].Name < s.TopSkills[j].Name
	})
	if topN > 0 && len(s.TopSkills) > topN {
		s.TopSkills = s.TopSkills[:topN]
	}

	for day, count := range dayCounts {
		s.Volume = append(s.Volume, DayVolume{Day: day, Count: count})
	}
	sort.Slice(s.Volume, func(i, j int) bool { return s.Volume[i].Day < s.Volume[j].Day })

	return s
}

// bucketFor returns the distribution bucket for a score in [0, 100].
// The last bucket takes every score above the preceding bounds.
func bucketFor(score int) int {
	last := len(bucketBounds) - 1
	for i, b := range bucketBounds[:last] {
		if score <= b.max {
			return i
		}
	}
	return last
}

// roundDiv returns round(n/d) for non-negative n and positive d, halves rounding up.
func roundDiv(n, d int) int {
	return (2*n + d) / (2 * d)
}
