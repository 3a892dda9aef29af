// Package session wires the engine together for one user session: the
// profile store, the career collection, the compare selection and the
// analyze flow that reconciles scoring results with the content catalog.
package session

import (
	"context"

	"go.uber.org/zap"

	"github.com/ayanchyaziz123/career-AI/internal/career"
	"github.com/ayanchyaziz123/career-AI/internal/catalog"
	"github.com/ayanchyaziz123/career-AI/internal/profile"
	"github.com/ayanchyaziz123/career-AI/internal/scoring"
)

// Scorer is the scoring service seen from the session.
type Scorer interface {
	Analyze(ctx context.Context, p profile.Profile) ([]*scoring.ScoredCareer, error)
}

// Session owns all mutable engine state. A new session starts from defaults;
// throwing the session away is the only reset.
type Session struct {
	profile   *profile.Store
	careers   *career.Collection
	compare   *career.CompareSelection
	catalog   *catalog.Catalog
	scorer    Scorer
	logger    *zap.Logger
	analyzing bool
}

// New creates a session over the given catalog and scorer.
func New(cat *catalog.Catalog, scorer Scorer, logger *zap.Logger) *Session {
	return &Session{
		profile: profile.NewStore(),
		careers: career.NewCollection(),
		compare: career.NewCompareSelection(),
		catalog: cat,
		scorer:  scorer,
		logger:  logger,
	}
}

// Profile returns the session's profile store.
func (s *Session) Profile() *profile.Store {
	return s.profile
}

// Careers returns the session's career collection.
func (s *Session) Careers() *career.Collection {
	return s.careers
}

// Compare returns the session's compare selection.
func (s *Session) Compare() *career.CompareSelection {
	return s.compare
}

// Analyzing reports whether an analysis is in flight.
func (s *Session) Analyzing() bool {
	return s.analyzing
}

// Analyze sends the current profile to the scoring service and loads the
// merged result into the career collection. Any scoring failure falls back
// to the full catalog, so the collection is always populated afterwards;
// failures are never surfaced to the caller. A call while another analysis
// is in flight is refused.
func (s *Session) Analyze(ctx context.Context) {
	if s.analyzing {
		s.logger.Debug("analysis already in flight; ignoring re-submission")
		return
	}

	s.analyzing = true
	defer func() { s.analyzing = false }()

	scored, err := s.scorer.Analyze(ctx, s.profile.Profile())
	if err != nil {
		s.logger.Warn("scoring service unavailable; falling back to catalog", zap.Error(err))
		s.careers.Load(s.catalog.Careers())
		return
	}

	merged := s.merge(scored)

	s.logger.Info("analysis complete",
		zap.Int("scored", len(scored)),
		zap.Int("merged", len(merged)),
	)

	s.careers.Load(merged)
}

// merge joins scored records with catalog entries by id: static content from
// the catalog, match score and assessed skills from the scorer. Records
// without a catalog entry are an inconsistency between two external sources
// and are dropped silently.
func (s *Session) merge(scored []*scoring.ScoredCareer) []*career.Match {
	merged := make([]*career.Match, 0, len(scored))
	for _, record := range scored {
		entry := s.catalog.FindByID(record.ID)
		if entry == nil {
			s.logger.Debug("scored career has no catalog entry; dropping",
				zap.String("career_id", record.ID),
			)
			continue
		}

		entry.MatchScore = record.MatchScore
		entry.Skills = append([]career.Skill(nil), record.Skills...)
		entry.Saved = false

		merged = append(merged, entry)
	}
	return merged
}
