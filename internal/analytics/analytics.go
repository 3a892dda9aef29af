// Package analytics derives readiness percentages, gap severities and
// dashboard rollups from the career collection. Every function is pure and
// recomputed on demand; there is no cached state to go stale.
package analytics

import (
	"math"

	"github.com/ayanchyaziz123/career-AI/internal/career"
)

// Severity classifies a skill gap for display.
type Severity string

const (
	SeverityReady    Severity = "ready"
	SeverityModerate Severity = "moderate"
	SeverityCritical Severity = "critical"
)

// priorityGapThreshold is the cutoff for the priority-gaps callout: only
// skills more than 2 levels short make the list.
const priorityGapThreshold = 2

// SkillGap returns required minus self-assessed level. Positive means the
// user is short; zero or negative means ready.
func SkillGap(s career.Skill) int {
	return s.Required - s.Level
}

// GapSeverity maps a gap onto the fixed severity bands: at most 1 level short
// is ready, up to 3 is moderate, anything beyond is critical.
func GapSeverity(gap int) Severity {
	switch {
	case gap <= 1:
		return SeverityReady
	case gap <= 3:
		return SeverityModerate
	default:
		return SeverityCritical
	}
}

// SkillReadiness returns how close the user is to the required level as a
// percentage in [0, 100]. A zero required level never occurs in sane data but
// must not divide by zero; it counts as fully ready.
func SkillReadiness(s career.Skill) int {
	return int(math.Round(skillReadiness(s)))
}

func skillReadiness(s career.Skill) float64 {
	if s.Required <= 0 {
		return 100
	}
	return math.Min(float64(s.Level)/float64(s.Required)*100, 100)
}

// CareerReadiness averages skill readiness across the career's skill list,
// rounded. A career without skills reads as 0, not NaN.
func CareerReadiness(m *career.Match) int {
	if m == nil || len(m.Skills) == 0 {
		return 0
	}

	var sum float64
	for _, s := range m.Skills {
		sum += skillReadiness(s)
	}
	return int(math.Round(sum / float64(len(m.Skills))))
}

// CategoryAverage averages skill readiness over every skill with the given
// category across all given careers, rounded. 0 when no skill matches.
func CategoryAverage(careers []*career.Match, category string) int {
	var sum float64
	var count int
	for _, m := range careers {
		for _, s := range m.Skills {
			if s.Category == category {
				sum += skillReadiness(s)
				count++
			}
		}
	}
	if count == 0 {
		return 0
	}
	return int(math.Round(sum / float64(count)))
}

// OverallReadiness averages career readiness across the given careers,
// rounded. 0 for an empty list.
func OverallReadiness(careers []*career.Match) int {
	if len(careers) == 0 {
		return 0
	}

	var sum float64
	for _, m := range careers {
		sum += float64(CareerReadiness(m))
	}
	return int(math.Round(sum / float64(len(careers))))
}

// TopMatch returns the career with the highest match score. Ties go to the
// earliest entry. Nil for an empty list.
func TopMatch(careers []*career.Match) *career.Match {
	var top *career.Match
	for _, m := range careers {
		if top == nil || m.MatchScore > top.MatchScore {
			top = m
		}
	}
	return top
}

// PriorityGaps returns the distinct skill names, across all careers, whose
// gap exceeds the priority threshold, in order of first appearance. Display
// truncation (e.g. first 8) is the caller's business.
func PriorityGaps(careers []*career.Match) []string {
	seen := make(map[string]struct{})
	names := make([]string, 0)
	for _, m := range careers {
		for _, s := range m.Skills {
			if SkillGap(s) <= priorityGapThreshold {
				continue
			}
			if _, ok := seen[s.Name]; ok {
				continue
			}
			seen[s.Name] = struct{}{}
			names = append(names, s.Name)
		}
	}
	return names
}

// RoadmapProgress returns completed and total phase counts for one career.
func RoadmapProgress(m *career.Match) (completed, total int) {
	for _, phase := range m.Roadmap {
		if phase.Completed {
			completed++
		}
	}
	return completed, len(m.Roadmap)
}

// RoadmapProgressAll sums roadmap progress across the given careers.
func RoadmapProgressAll(careers []*career.Match) (completed, total int) {
	for _, m := range careers {
		c, t := RoadmapProgress(m)
		completed += c
		total += t
	}
	return completed, total
}

// CategoryStat is one row of the dashboard's category breakdown.
type CategoryStat struct {
	Category string
	Average  int
}

// Dashboard is the aggregate rollup backing the dashboard view.
type Dashboard struct {
	OverallReadiness int
	TopMatch         *career.Match
	CompletedPhases  int
	TotalPhases      int
	SavedCount       int
	Categories       []CategoryStat
	PriorityGaps     []string
}

// BuildDashboard computes the full rollup for the given careers.
func BuildDashboard(careers []*career.Match) Dashboard {
	d := Dashboard{
		OverallReadiness: OverallReadiness(careers),
		TopMatch:         TopMatch(careers),
		PriorityGaps:     PriorityGaps(careers),
	}

	d.CompletedPhases, d.TotalPhases = RoadmapProgressAll(careers)

	for _, m := range careers {
		if m.Saved {
			d.SavedCount++
		}
	}

	for _, cat := range career.Categories {
		d.Categories = append(d.Categories, CategoryStat{
			Category: cat,
			Average:  CategoryAverage(careers, cat),
		})
	}

	return d
}
