package career

// MaxCompare caps the comparison view at three columns.
const MaxCompare = 3

// CompareSelection is an ordered set of career ids picked for side-by-side
// comparison. It holds ids only, never match copies.
type CompareSelection struct {
	ids []string
}

// NewCompareSelection returns an empty selection.
func NewCompareSelection() *CompareSelection {
	return &CompareSelection{}
}

// Toggle removes the id when present, otherwise appends it while the
// selection holds fewer than MaxCompare members. A full selection is never
// evicted to make room: toggling a new id against a full selection is a
// no-op.
func (s *CompareSelection) Toggle(id string) {
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i:i], s.ids[i+1:]...)
			return
		}
	}

	if len(s.ids) < MaxCompare {
		s.ids = append(s.ids, id)
	}
}

// Contains reports whether the id is selected.
func (s *CompareSelection) Contains(id string) bool {
	for _, existing := range s.ids {
		if existing == id {
			return true
		}
	}
	return false
}

// IDs returns the selected ids in insertion order.
func (s *CompareSelection) IDs() []string {
	return append([]string(nil), s.ids...)
}

func (s *CompareSelection) Len() int {
	return len(s.ids)
}

// Resolve returns the selected matches in collection order, skipping ids the
// collection no longer knows about.
func (s *CompareSelection) Resolve(c *Collection) []*Match {
	selected := make([]*Match, 0, len(s.ids))
	for _, m := range c.Items() {
		if s.Contains(m.ID) {
			selected = append(selected, m)
		}
	}
	return selected
}
