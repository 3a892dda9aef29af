// Package matcher scores careers against a user profile. It powers the
// companion scoring server.
//
// For each career two vectors are built over the career's skill vocabulary:
// the user component is 0.6 where the user listed the skill, the career
// component is required/10. The cosine similarity of those vectors is blended
// with an experience factor and an education factor:
//
//	raw   = 0.70*similarity + 0.20*experience + 0.10*education
//	score = clamp(round(raw*100), 40, 95)
package matcher

import (
	"math"
	"sort"
	"strings"

	"github.com/ayanchyaziz123/career-AI/internal/career"
	"github.com/ayanchyaziz123/career-AI/internal/catalog"
	"github.com/ayanchyaziz123/career-AI/internal/scoring"
)

const (
	userSkillWeight = 0.6

	similarityWeight = 0.70
	experienceWeight = 0.20
	educationWeight  = 0.10

	minScore = 40
	maxScore = 95

	// assessedLevel is the self-assessment assigned to a skill the user
	// listed; unlisted skills start at zero.
	assessedLevel = 6

	defaultIdealExperience = 4
	defaultExperienceYears = 3.5
	defaultEducationFactor = 0.75
)

// experienceYears maps the profile's experience brackets to midpoint years.
var experienceYears = map[string]float64{
	"0-2":  1.0,
	"2-5":  3.5,
	"5-10": 7.5,
	"10+":  12.0,
}

// educationFactors weights the education level into the final score.
var educationFactors = map[string]float64{
	"phd":         1.0,
	"masters":     0.9,
	"bachelors":   0.8,
	"associates":  0.75,
	"bootcamp":    0.7,
	"self-taught": 0.7,
}

// idealExperience is the years of experience each career is calibrated
// against. Careers missing here use the default.
var idealExperience = map[string]float64{
	"senior-frontend":      5,
	"ui-ux-engineer":       4,
	"fullstack-developer":  4,
	"devops-engineer":      5,
	"data-engineer":        4,
}

// Matcher scores every catalog career against a profile. Skill vocabularies
// and required levels come from the catalog, so catalog and scores always
// agree on skill names.
type Matcher struct {
	careers []*career.Match
}

// New builds a matcher over the given catalog.
func New(cat *catalog.Catalog) *Matcher {
	return &Matcher{careers: cat.Careers()}
}

// Match scores all careers for the given user skills, experience bracket and
// education code. Results are sorted by score descending; equal scores keep
// catalog order.
func (m *Matcher) Match(skills []string, experience, education string) []*scoring.ScoredCareer {
	userSkills := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		userSkills[strings.ToLower(strings.TrimSpace(s))] = struct{}{}
	}

	expYears, ok := experienceYears[experience]
	if !ok {
		expYears = defaultExperienceYears
	}

	eduFactor, ok := educationFactors[education]
	if !ok {
		eduFactor = defaultEducationFactor
	}

	results := make([]*scoring.ScoredCareer, 0, len(m.careers))
	for _, c := range m.careers {
		results = append(results, m.score(c, userSkills, expYears, eduFactor))
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchScore > results[j].MatchScore
	})

	return results
}

func (m *Matcher) score(c *career.Match, userSkills map[string]struct{}, expYears, eduFactor float64) *scoring.ScoredCareer {
	userVec := make([]float64, len(c.Skills))
	careerVec := make([]float64, len(c.Skills))
	assessed := make([]career.Skill, len(c.Skills))

	for i, s := range c.Skills {
		_, has := userSkills[strings.ToLower(s.Name)]
		if has {
			userVec[i] = userSkillWeight
		}
		careerVec[i] = float64(s.Required) / float64(career.MaxLevel)

		level := 0
		if has {
			level = assessedLevel
		}
		assessed[i] = career.Skill{
			Name:     s.Name,
			Level:    level,
			Required: s.Required,
			Category: s.Category,
		}
	}

	sim := cosineSimilarity(userVec, careerVec)

	ideal, ok := idealExperience[c.ID]
	if !ok {
		ideal = defaultIdealExperience
	}
	expFactor := math.Min(expYears/ideal, 1.0)

	raw := sim*similarityWeight + expFactor*experienceWeight + eduFactor*educationWeight

	score := int(math.Round(raw * 100))
	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}

	return &scoring.ScoredCareer{
		ID:         c.ID,
		MatchScore: score,
		Skills:     assessed,
	}
}

func cosineSimilarity(a, b []float64) float64 {
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
