// Package profile owns the user's self-reported profile for the session.
package profile

import "strings"

// Option sets for the bracketed profile fields. The presentation layer builds
// its selects from these; the store itself accepts any value.
var (
	ExperienceOptions = []string{"0-2", "2-5", "5-10", "10+"}
	EducationOptions  = []string{"self-taught", "bootcamp", "associates", "bachelors", "masters", "phd"}
	WorkStyleOptions  = []string{"remote", "hybrid", "onsite"}
)

// Profile is the user's self-description sent to the scoring service. Skills
// keep insertion order for display.
type Profile struct {
	Skills     []string `json:"skills"`
	Interests  string   `json:"interests"`
	Experience string   `json:"experience"`
	Education  string   `json:"education"`
	WorkStyle  string   `json:"workStyle"`
}

// Store holds the profile for one session. A new session means a new store;
// there is no reset beyond that. None of the mutations can fail.
type Store struct {
	profile Profile
}

// NewStore returns a store with the session defaults.
func NewStore() *Store {
	return &Store{
		profile: Profile{
			Skills:     []string{},
			Experience: "2-5",
			Education:  "bachelors",
			WorkStyle:  "hybrid",
		},
	}
}

// Profile returns a snapshot of the current profile. The skills slice is
// copied so callers cannot mutate the store through it.
func (s *Store) Profile() Profile {
	snapshot := s.profile
	snapshot.Skills = append([]string(nil), s.profile.Skills...)
	return snapshot
}

// AddSkill appends the trimmed skill name. Blank input and exact duplicates
// are ignored.
func (s *Store) AddSkill(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}

	for _, existing := range s.profile.Skills {
		if existing == name {
			return
		}
	}

	s.profile.Skills = append(s.profile.Skills, name)
}

// RemoveSkill removes the named skill. Absent names are ignored.
func (s *Store) RemoveSkill(name string) {
	for i, existing := range s.profile.Skills {
		if existing == name {
			s.profile.Skills = append(s.profile.Skills[:i:i], s.profile.Skills[i+1:]...)
			return
		}
	}
}

func (s *Store) SetInterests(interests string) {
	s.profile.Interests = interests
}

func (s *Store) SetExperience(experience string) {
	s.profile.Experience = experience
}

func (s *Store) SetEducation(education string) {
	s.profile.Education = education
}

func (s *Store) SetWorkStyle(workStyle string) {
	s.profile.WorkStyle = workStyle
}
