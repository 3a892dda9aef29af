package career

import "fmt"

// Collection owns the career matches produced by an analysis. Mutations are
// copy-on-write at the granularity of the containing match: untouched matches
// keep their pointer identity, so callers can detect changes by comparing
// pointers. Matches are never removed for the lifetime of a session.
type Collection struct {
	items []*Match
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Load replaces the whole collection with the given matches. Any match with
// an empty id is assigned the synthetic id "career-<position>". Saved always
// starts out false.
func (c *Collection) Load(matches []*Match) {
	items := make([]*Match, 0, len(matches))
	for i, m := range matches {
		loaded := *m
		if loaded.ID == "" {
			loaded.ID = fmt.Sprintf("career-%d", i)
		}
		loaded.Saved = false
		items = append(items, &loaded)
	}
	c.items = items
}

// Items returns the matches in load order. Callers must treat the result as
// read-only and go through the mutation methods instead.
func (c *Collection) Items() []*Match {
	return c.items
}

func (c *Collection) Len() int {
	return len(c.items)
}

// FindByID returns the match with the given id, or nil.
func (c *Collection) FindByID(id string) *Match {
	for _, m := range c.items {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// Saved returns the matches the user has bookmarked, in load order.
func (c *Collection) Saved() []*Match {
	saved := make([]*Match, 0)
	for _, m := range c.items {
		if m.Saved {
			saved = append(saved, m)
		}
	}
	return saved
}

// ToggleSaved flips the saved flag on the match with the given id. Unknown
// ids are ignored: the UI may hold stale references and must not crash on
// them.
func (c *Collection) ToggleSaved(id string) {
	c.replace(id, func(m *Match) *Match {
		updated := *m
		updated.Saved = !m.Saved
		return &updated
	})
}

// UpdateSkillLevel sets the self-assessed level of the named skill within the
// given career. The level is clamped to [0, MaxLevel] so derived percentages
// stay sane even when the caller skipped validation. Unknown career ids and
// skill names are ignored.
func (c *Collection) UpdateSkillLevel(careerID, skillName string, level int) {
	if level < 0 {
		level = 0
	}
	if level > MaxLevel {
		level = MaxLevel
	}

	c.replace(careerID, func(m *Match) *Match {
		found := false
		skills := make([]Skill, len(m.Skills))
		for i, s := range m.Skills {
			if s.Name == skillName {
				s.Level = level
				found = true
			}
			skills[i] = s
		}
		if !found {
			return nil
		}

		updated := *m
		updated.Skills = skills
		return &updated
	})
}

// ToggleRoadmapPhase flips the completed flag on the phase at the given
// position. Out-of-range indexes and unknown ids are ignored.
func (c *Collection) ToggleRoadmapPhase(careerID string, phaseIdx int) {
	c.replace(careerID, func(m *Match) *Match {
		if phaseIdx < 0 || phaseIdx >= len(m.Roadmap) {
			return nil
		}

		roadmap := make([]RoadmapPhase, len(m.Roadmap))
		copy(roadmap, m.Roadmap)
		roadmap[phaseIdx].Completed = !roadmap[phaseIdx].Completed

		updated := *m
		updated.Roadmap = roadmap
		return &updated
	})
}

// replace applies mutate to the match with the given id and swaps the result
// into a fresh item slice. A nil result from mutate leaves the collection
// untouched.
func (c *Collection) replace(id string, mutate func(*Match) *Match) {
	for i, m := range c.items {
		if m.ID != id {
			continue
		}

		updated := mutate(m)
		if updated == nil {
			return
		}

		items := make([]*Match, len(c.items))
		copy(items, c.items)
		items[i] = updated
		c.items = items
		return
	}
}
