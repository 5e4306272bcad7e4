package leaderboard

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/varadarohokale/boxing-arena/internal/boxer"
)

type stubSource struct {
	entries []boxer.LeaderboardEntry
	err     error
	calls   int
}

func (s *stubSource) Leaderboard(_ context.Context, sortBy string) ([]boxer.LeaderboardEntry, error) {
	s.calls++
	return s.entries, s.err
}

// memoryCache is the test stand-in for the Redis standings cache.
type memoryCache struct {
	store map[string][]boxer.LeaderboardEntry
}

func newMemoryCache() *memoryCache {
	return &memoryCache{store: map[string][]boxer.LeaderboardEntry{}}
}

func (c *memoryCache) Get(_ context.Context, sortBy string) ([]boxer.LeaderboardEntry, error) {
	return c.store[sortBy], nil
}

func (c *memoryCache) Set(_ context.Context, sortBy string, entries []boxer.LeaderboardEntry) error {
	c.store[sortBy] = entries
	return nil
}

func (c *memoryCache) Invalidate(context.Context) error {
	c.store = map[string][]boxer.LeaderboardEntry{}
	return nil
}

func sampleEntries() []boxer.LeaderboardEntry {
	return []boxer.LeaderboardEntry{
		{ID: 1, Name: "Rocky", Weight: 210, WeightClass: boxer.WeightClassHeavyweight, Fights: 4, Wins: 3, WinPct: 75},
		{ID: 2, Name: "Apollo", Weight: 205, WeightClass: boxer.WeightClassHeavyweight, Fights: 4, Wins: 1, WinPct: 25},
	}
}

func TestStandingsDefaultsToWins(t *testing.T) {
	source := &stubSource{entries: sampleEntries()}
	svc := NewService(source, nil, zerolog.Nop())

	entries, err := svc.Standings(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 1, source.calls)
}

func TestStandingsRejectsUnknownSort(t *testing.T) {
	svc := NewService(&stubSource{}, nil, zerolog.Nop())

	_, err := svc.Standings(context.Background(), "losses")
	assert.ErrorIs(t, err, ErrUnknownSort)
}

func TestStandingsUsesCache(t *testing.T) {
	source := &stubSource{entries: sampleEntries()}
	cache := newMemoryCache()
	svc := NewService(source, cache, zerolog.Nop())

	_, err := svc.Standings(context.Background(), boxer.SortByWins)
	require.NoError(t, err)
	_, err = svc.Standings(context.Background(), boxer.SortByWins)
	require.NoError(t, err)

	assert.Equal(t, 1, source.calls, "second query must be served from cache")
}

func TestInvalidateDropsCache(t *testing.T) {
	source := &stubSource{entries: sampleEntries()}
	cache := newMemoryCache()
	svc := NewService(source, cache, zerolog.Nop())

	_, err := svc.Standings(context.Background(), boxer.SortByWins)
	require.NoError(t, err)

	require.NoError(t, svc.Invalidate(context.Background()))

	_, err = svc.Standings(context.Background(), boxer.SortByWins)
	require.NoError(t, err)
	assert.Equal(t, 2, source.calls)
}

func TestStandingsSourceError(t *testing.T) {
	source := &stubSource{err: errors.New("db down")}
	svc := NewService(source, nil, zerolog.Nop())

	_, err := svc.Standings(context.Background(), boxer.SortByWinPct)
	assert.Error(t, err)
}
