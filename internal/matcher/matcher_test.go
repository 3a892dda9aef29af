package matcher

import (
	"sort"
	"testing"

	"github.com/ayanchyaziz123/career-AI/internal/catalog"
)

func testMatcher(t *testing.T) *Matcher {
	t.Helper()
	cat, err := catalog.Load()
	if err != nil {
		t.Fatalf("load catalog: %v", err)
	}
	return New(cat)
}

func TestMatchScoresEveryCareerWithinBounds(t *testing.T) {
	m := testMatcher(t)

	scored := m.Match([]string{"Python", "SQL", "Docker"}, "5-10", "masters")

	if len(scored) != 5 {
		t.Fatalf("expected a score per catalog career, got %d", len(scored))
	}
	for _, s := range scored {
		if s.MatchScore < minScore || s.MatchScore > maxScore {
			t.Fatalf("career %s score %d outside [%d, %d]", s.ID, s.MatchScore, minScore, maxScore)
		}
	}
}

func TestMatchSortsDescending(t *testing.T) {
	m := testMatcher(t)

	scored := m.Match([]string{"React", "TypeScript", "CSS/SASS"}, "2-5", "bachelors")

	if !sort.SliceIsSorted(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	}) {
		t.Fatalf("expected scores sorted descending: %+v", scored)
	}
}

func TestMatchAssessesListedSkillsCaseInsensitively(t *testing.T) {
	m := testMatcher(t)

	scored := m.Match([]string{"python", "  sql  "}, "2-5", "bachelors")

	var found bool
	for _, s := range scored {
		if s.ID != "data-engineer" {
			continue
		}
		found = true
		for _, skill := range s.Skills {
			switch skill.Name {
			case "Python", "SQL":
				if skill.Level != assessedLevel {
					t.Fatalf("expected listed skill %s assessed at %d, got %d", skill.Name, assessedLevel, skill.Level)
				}
			default:
				if skill.Level != 0 {
					t.Fatalf("expected unlisted skill %s at 0, got %d", skill.Name, skill.Level)
				}
			}
		}
	}
	if !found {
		t.Fatalf("data-engineer missing from results")
	}
}

func TestMatchedSkillsRaiseTheScore(t *testing.T) {
	m := testMatcher(t)

	none := m.Match(nil, "2-5", "bachelors")
	some := m.Match([]string{"Python", "SQL", "Apache Spark"}, "2-5", "bachelors")

	noneByID := make(map[string]int)
	for _, s := range none {
		noneByID[s.ID] = s.MatchScore
	}
	for _, s := range some {
		if s.ID == "data-engineer" && s.MatchScore <= noneByID[s.ID] {
			t.Fatalf("expected matching skills to raise the score: %d vs %d", s.MatchScore, noneByID[s.ID])
		}
	}
}

func TestMatchUnknownBracketsUseDefaults(t *testing.T) {
	m := testMatcher(t)
	skills := []string{"Python"}

	unknownExp := m.Match(skills, "decades", "bachelors")
	defaultExp := m.Match(skills, "2-5", "bachelors")
	for i := range unknownExp {
		if unknownExp[i].MatchScore != defaultExp[i].MatchScore {
			t.Fatalf("unknown experience bracket should score like the default midpoint")
		}
	}

	unknownEdu := m.Match(skills, "2-5", "trade-school")
	defaultEdu := m.Match(skills, "2-5", "associates")
	for i := range unknownEdu {
		if unknownEdu[i].MatchScore != defaultEdu[i].MatchScore {
			t.Fatalf("unknown education should score like the default factor")
		}
	}
}

func TestCosineSimilarity(t *testing.T) {
	if got := cosineSimilarity([]float64{1, 0}, []float64{1, 0}); got != 1 {
		t.Fatalf("expected identical vectors to score 1, got %f", got)
	}
	if got := cosineSimilarity([]float64{1, 0}, []float64{0, 1}); got != 0 {
		t.Fatalf("expected orthogonal vectors to score 0, got %f", got)
	}
	if got := cosineSimilarity([]float64{0, 0}, []float64{1, 1}); got != 0 {
		t.Fatalf("expected zero vector to score 0, got %f", got)
	}
}
