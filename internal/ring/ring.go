package ring

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/varadarohokale/boxing-arena/internal/boxer"
)

// Ring holds the boxers waiting for a bout. It is in-memory state
// scoped to one service instance, capacity two.
type Ring struct {
	mu       sync.Mutex
	entrants []boxer.Boxer
	logger   zerolog.Logger
}

// New creates an empty ring.
func New(logger zerolog.Logger) *Ring {
	return &Ring{
		entrants: make([]boxer.Boxer, 0, Capacity),
		logger:   logger.With().Str("component", "ring").Logger(),
	}
}

// Enter adds a boxer to the ring. A third entrant or a duplicate of a
// current entrant is rejected.
func (r *Ring) Enter(b boxer.Boxer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entrants) >= Capacity {
		r.logger.Warn().Str("boxer", b.Name).Msg("ring is full")
		return ErrRingFull
	}
	for _, e := range r.entrants {
		if e.ID == b.ID {
			return ErrAlreadyInRing
		}
	}

	r.entrants = append(r.entrants, b)
	r.logger.Info().Str("boxer", b.Name).Int("entrants", len(r.entrants)).Msg("boxer entered the ring")
	return nil
}

// Boxers returns a copy of the current entrants in entry order.
func (r *Ring) Boxers() []boxer.Boxer {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]boxer.Boxer, len(r.entrants))
	copy(out, r.entrants)
	return out
}

// Pair returns the two entrants of a full ring, in entry order.
func (r *Ring) Pair() (boxer.Boxer, boxer.Boxer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.entrants) < Capacity {
		return boxer.Boxer{}, boxer.Boxer{}, ErrNotEnoughEntrants
	}
	return r.entrants[0], r.entrants[1], nil
}

// Clear removes all boxers from the ring and returns how many left.
func (r *Ring) Clear() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	n := len(r.entrants)
	if n == 0 {
		return 0
	}
	r.entrants = r.entrants[:0]
	r.logger.Info().Int("removed", n).Msg("ring cleared")
	return n
}

// FightingSkill scores a boxer for the fight simulation. The formula is
// deliberately arbitrary: bulk times name length, a reach bonus, and an
// age penalty outside the prime years.
func FightingSkill(b boxer.Boxer) float64 {
	ageModifier := 0.0
	switch {
	case b.Age < 25:
		ageModifier = -1
	case b.Age > 35:
		ageModifier = -2
	}
	return float64(b.Weight*len(b.Name)) + b.Reach/10 + ageModifier
}
