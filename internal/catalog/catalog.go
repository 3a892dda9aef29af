// Package catalog provides the static career content: titles, descriptions,
// salary and growth figures, learning roadmaps and resources, keyed by a
// stable career id. The catalog ships embedded in the binary and can be
// overridden by a YAML file; either way it is read-only after load.
package catalog

import (
	"fmt"
	"os"

	_ "embed"

	"gopkg.in/yaml.v3"

	"github.com/ayanchyaziz123/career-AI/internal/career"
)

//go:embed careers.yaml
var embedded []byte

type document struct {
	Careers []*career.Match `yaml:"careers"`
}

// Catalog is the pre-authored set of full career records.
type Catalog struct {
	careers []*career.Match
	byID    map[string]*career.Match
}

// Load parses the embedded default dataset.
func Load() (*Catalog, error) {
	return parse(embedded)
}

// LoadFile parses a user-supplied catalog file.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file %q: %w", path, err)
	}
	return parse(data)
}

func parse(data []byte) (*Catalog, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}

	if len(doc.Careers) == 0 {
		return nil, fmt.Errorf("catalog contains no careers")
	}

	byID := make(map[string]*career.Match, len(doc.Careers))
	for _, m := range doc.Careers {
		if m.ID == "" {
			return nil, fmt.Errorf("catalog career %q has no id", m.Title)
		}
		if _, exists := byID[m.ID]; exists {
			return nil, fmt.Errorf("catalog contains duplicate career id %q", m.ID)
		}
		byID[m.ID] = m
	}

	return &Catalog{careers: doc.Careers, byID: byID}, nil
}

// Careers returns deep copies of every record in authored order, so the
// caller can hand them to a mutable collection without touching the catalog.
func (c *Catalog) Careers() []*career.Match {
	copies := make([]*career.Match, len(c.careers))
	for i, m := range c.careers {
		copies[i] = m.Clone()
	}
	return copies
}

// FindByID returns a deep copy of the record with the given id, or nil.
func (c *Catalog) FindByID(id string) *career.Match {
	m, ok := c.byID[id]
	if !ok {
		return nil
	}
	return m.Clone()
}

func (c *Catalog) Len() int {
	return len(c.careers)
}

// IDs returns the career ids in authored order.
func (c *Catalog) IDs() []string {
	ids := make([]string, 0, len(c.careers))
	for _, m := range c.careers {
		ids = append(ids, m.ID)
	}
	return ids
}
