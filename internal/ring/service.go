package ring

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/varadarohokale/boxing-arena/internal/boxer"
	"github.com/varadarohokale/boxing-arena/internal/metrics"
)

// BoxerStore is the subset of the boxer repository the ring needs.
type BoxerStore interface {
	GetByID(ctx context.Context, id int64) (boxer.Boxer, error)
	RecordResult(ctx context.Context, id int64, result boxer.Result) error
}

// FightStore persists and lists fight history.
type FightStore interface {
	Insert(ctx context.Context, rec FightRecord) error
	Recent(ctx context.Context, limit int) ([]FightRecord, error)
}

// RandomSource supplies the fraction in [0, 1) that decides a bout.
type RandomSource interface {
	Fraction(ctx context.Context) (float64, error)
}

// StandingsCache is invalidated whenever fight stats change.
type StandingsCache interface {
	Invalidate(ctx context.Context) error
}

// Announcer receives completed fights for live feeds.
type Announcer interface {
	AnnounceFight(rec FightRecord)
}

// Service orchestrates ring entry and fight simulation.
type Service struct {
	ring   *Ring
	boxers BoxerStore
	fights FightStore
	rng    RandomSource
	cache  StandingsCache
	feed   Announcer
	logger zerolog.Logger

	// serializes whole bouts so concurrent start-fight requests cannot
	// fight the same pair twice
	fightMu sync.Mutex
}

// NewService wires the ring with its collaborators. cache and feed may
// be nil.
func NewService(ring *Ring, boxers BoxerStore, fights FightStore, rng RandomSource, cache StandingsCache, feed Announcer, logger zerolog.Logger) *Service {
	return &Service{
		ring:   ring,
		boxers: boxers,
		fights: fights,
		rng:    rng,
		cache:  cache,
		feed:   feed,
		logger: logger.With().Str("component", "ring_service").Logger(),
	}
}

// Enter looks up a boxer and puts them in the ring.
func (s *Service) Enter(ctx context.Context, boxerID int64) (boxer.Boxer, error) {
	b, err := s.boxers.GetByID(ctx, boxerID)
	if err != nil {
		return boxer.Boxer{}, err
	}
	if err := s.ring.Enter(b); err != nil {
		return boxer.Boxer{}, err
	}
	return b, nil
}

// Boxers lists the current entrants.
func (s *Service) Boxers() []boxer.Boxer {
	return s.ring.Boxers()
}

// ClearRing empties the ring and returns how many boxers were removed.
func (s *Service) ClearRing() int {
	return s.ring.Clear()
}

// Skill computes the fighting skill for a stored boxer.
func (s *Service) Skill(ctx context.Context, boxerID int64) (boxer.Boxer, float64, error) {
	b, err := s.boxers.GetByID(ctx, boxerID)
	if err != nil {
		return boxer.Boxer{}, 0, err
	}
	return b, FightingSkill(b), nil
}

// Fight simulates a bout between the two entrants. The skill gap is
// squashed through a logistic curve into a win probability for the
// first entrant, and an external random draw picks the winner. Stats
// are persisted for both fighters and the ring is cleared.
func (s *Service) Fight(ctx context.Context) (FightRecord, error) {
	s.fightMu.Lock()
	defer s.fightMu.Unlock()

	started := time.Now()

	a, b, err := s.ring.Pair()
	if err != nil {
		return FightRecord{}, err
	}

	skillA := FightingSkill(a)
	skillB := FightingSkill(b)

	delta := math.Abs(skillA - skillB)
	threshold := 1 / (1 + math.Exp(-delta))

	draw, err := s.rng.Fraction(ctx)
	if err != nil {
		return FightRecord{}, fmt.Errorf("%w: %v", ErrRandomUnavailable, err)
	}

	winner, loser := b, a
	if draw < threshold {
		winner, loser = a, b
	}

	if err := s.boxers.RecordResult(ctx, winner.ID, boxer.ResultWin); err != nil {
		return FightRecord{}, fmt.Errorf("record win: %w", err)
	}
	if err := s.boxers.RecordResult(ctx, loser.ID, boxer.ResultLoss); err != nil {
		return FightRecord{}, fmt.Errorf("record loss: %w", err)
	}

	rec := FightRecord{
		ID:         uuid.New(),
		BoxerAID:   a.ID,
		BoxerAName: a.Name,
		BoxerBID:   b.ID,
		BoxerBName: b.Name,
		WinnerID:   winner.ID,
		WinnerName: winner.Name,
		SkillA:     skillA,
		SkillB:     skillB,
		RandomDraw: draw,
		FoughtAt:   time.Now().UTC(),
	}

	// History, cache and feed are best effort; the bout already counted.
	if err := s.fights.Insert(ctx, rec); err != nil {
		s.logger.Warn().Err(err).Str("fight_id", rec.ID.String()).Msg("failed to persist fight record")
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("failed to invalidate standings cache")
		}
	}
	if s.feed != nil {
		s.feed.AnnounceFight(rec)
	}

	s.ring.Clear()

	metrics.FightsTotal.Inc()
	metrics.FightDuration.Observe(time.Since(started).Seconds())

	s.logger.Info().
		Str("winner", winner.Name).
		Str("loser", loser.Name).
		Float64("draw", draw).
		Float64("threshold", threshold).
		Msg("fight decided")

	return rec, nil
}

// RecentFights lists the newest bouts.
func (s *Service) RecentFights(ctx context.Context, limit int) ([]FightRecord, error) {
	return s.fights.Recent(ctx, limit)
}
