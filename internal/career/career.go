// Package career holds the career-match domain types and the mutable
// collection the rest of the application works against.
package career

const (
	// MaxLevel is the upper bound for both self-assessed and required
	// skill levels.
	MaxLevel = 10

	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Categories lists the skill classifications used for aggregation. The
// category field is an open string on the wire but every data source sticks
// to this set.
var Categories = []string{"Technical", "Soft Skills", "Domain Knowledge"}

// Skill is a single skill within a career: the user's self-assessed level
// against the level the career requires. Required and Category are fixed by
// the scoring or catalog source; only Level is user-editable.
type Skill struct {
	Name     string `json:"name" yaml:"name"`
	Level    int    `json:"level" yaml:"level"`
	Required int    `json:"required" yaml:"required"`
	Category string `json:"category" yaml:"category"`
}

// RoadmapPhase is one step of a career's learning timeline. Order within the
// roadmap is significant.
type RoadmapPhase struct {
	Title     string   `json:"title" yaml:"title"`
	Duration  string   `json:"duration" yaml:"duration"`
	Skills    []string `json:"skills" yaml:"skills"`
	Completed bool     `json:"completed" yaml:"completed"`
}

// Resource is a curated learning resource. SkillTag loosely references a
// skill name; it is informational and never enforced.
type Resource struct {
	Name       string `json:"name" yaml:"name"`
	Platform   string `json:"platform" yaml:"platform"`
	Duration   string `json:"duration" yaml:"duration"`
	Difficulty string `json:"difficulty" yaml:"difficulty"`
	Free       bool   `json:"free" yaml:"free"`
	SkillTag   string `json:"skillTag" yaml:"skill_tag"`
}

// Match is a single career match. Static fields come from the content
// catalog, MatchScore and Skills from the scoring service. After creation
// only Skills[].Level, Roadmap[].Completed and Saved are ever mutated.
type Match struct {
	ID          string         `json:"id" yaml:"id"`
	Title       string         `json:"title" yaml:"title"`
	MatchScore  int            `json:"matchScore" yaml:"match_score"`
	Salary      string         `json:"salary" yaml:"salary"`
	Growth      string         `json:"growth" yaml:"growth"`
	Skills      []Skill        `json:"skills" yaml:"skills"`
	Description string         `json:"description" yaml:"description"`
	Roadmap     []RoadmapPhase `json:"roadmap" yaml:"roadmap"`
	Resources   []Resource     `json:"resources" yaml:"resources"`
	Saved       bool           `json:"saved" yaml:"-"`
}

// Clone returns a deep copy of the match. Nested slices are copied so the
// clone can be mutated without touching the original.
func (m *Match) Clone() *Match {
	clone := *m

	clone.Skills = append([]Skill(nil), m.Skills...)

	clone.Roadmap = make([]RoadmapPhase, len(m.Roadmap))
	for i, phase := range m.Roadmap {
		phase.Skills = append([]string(nil), phase.Skills...)
		clone.Roadmap[i] = phase
	}

	clone.Resources = append([]Resource(nil), m.Resources...)

	return &clone
}

// FindSkill returns the skill with the given name, or nil. Names are matched
// exactly.
func (m *Match) FindSkill(name string) *Skill {
	for i := range m.Skills {
		if m.Skills[i].Name == name {
			return &m.Skills[i]
		}
	}
	return nil
}
