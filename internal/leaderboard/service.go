// Package leaderboard serves boxer standings sorted by wins or win
// percentage, with a Redis cache in front of Postgres.
package leaderboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/varadarohokale/boxing-arena/internal/boxer"
)

// ErrUnknownSort rejects sort orders outside wins/win_pct.
var ErrUnknownSort = errors.New("sort must be 'wins' or 'win_pct'")

// Source supplies standings from persistent storage.
type Source interface {
	Leaderboard(ctx context.Context, sortBy string) ([]boxer.LeaderboardEntry, error)
}

// EntryCache caches standings per sort order.
type EntryCache interface {
	Get(ctx context.Context, sortBy string) ([]boxer.LeaderboardEntry, error)
	Set(ctx context.Context, sortBy string, entries []boxer.LeaderboardEntry) error
	Invalidate(ctx context.Context) error
}

// Service resolves leaderboard queries through the cache.
type Service struct {
	source Source
	cache  EntryCache
	logger zerolog.Logger
}

// NewService builds a leaderboard service. cache may be nil, in which
// case every query hits the source.
func NewService(source Source, cache EntryCache, logger zerolog.Logger) *Service {
	return &Service{
		source: source,
		cache:  cache,
		logger: logger.With().Str("component", "leaderboard").Logger(),
	}
}

// Standings returns ranked boxers. Empty sortBy defaults to wins.
func (s *Service) Standings(ctx context.Context, sortBy string) ([]boxer.LeaderboardEntry, error) {
	if sortBy == "" {
		sortBy = boxer.SortByWins
	}
	if sortBy != boxer.SortByWins && sortBy != boxer.SortByWinPct {
		return nil, fmt.Errorf("%w: got %q", ErrUnknownSort, sortBy)
	}

	if s.cache != nil {
		cached, err := s.cache.Get(ctx, sortBy)
		if err != nil {
			s.logger.Warn().Err(err).Msg("standings cache read failed")
		} else if cached != nil {
			return cached, nil
		}
	}

	entries, err := s.source.Leaderboard(ctx, sortBy)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, sortBy, entries); err != nil {
			s.logger.Warn().Err(err).Msg("standings cache write failed")
		}
	}
	return entries, nil
}

// Invalidate drops cached standings. Called after any stats write.
func (s *Service) Invalidate(ctx context.Context) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Invalidate(ctx)
}
