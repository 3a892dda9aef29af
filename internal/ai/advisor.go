// Package ai defines the optional career-guidance provider interface.
package ai

import (
	"context"

	"github.com/ayanchyaziz123/career-AI/internal/career"
	"github.com/ayanchyaziz123/career-AI/internal/profile"
)

// Guidance is a short tailored note for the user's top match.
type Guidance struct {
	Text string
	Raw  string
}

// Request carries everything the provider needs: the profile, the match to
// advise on and the derived metrics already computed by the engine.
type Request struct {
	Profile      profile.Profile
	Match        *career.Match
	Readiness    int
	PriorityGaps []string
}

// Advisor generates guidance for a career match. Implementations must treat
// failures as non-fatal; the caller only logs them.
type Advisor interface {
	Advise(ctx context.Context, req *Request) (*Guidance, error)
}
