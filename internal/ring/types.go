package ring

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Capacity is the number of boxers a ring holds for a bout.
const Capacity = 2

var (
	ErrRingFull          = errors.New("ring is full, cannot add more boxers")
	ErrAlreadyInRing     = errors.New("boxer is already in the ring")
	ErrNotEnoughEntrants = errors.New("there must be two boxers to start a fight")
	ErrRandomUnavailable = errors.New("random source unavailable")
)

// FightRecord captures one simulated bout for the fight history.
type FightRecord struct {
	ID         uuid.UUID `json:"id"`
	BoxerAID   int64     `json:"boxer_a_id"`
	BoxerAName string    `json:"boxer_a_name"`
	BoxerBID   int64     `json:"boxer_b_id"`
	BoxerBName string    `json:"boxer_b_name"`
	WinnerID   int64     `json:"winner_id"`
	WinnerName string    `json:"winner_name"`
	SkillA     float64   `json:"skill_a"`
	SkillB     float64   `json:"skill_b"`
	RandomDraw float64   `json:"random_draw"`
	FoughtAt   time.Time `json:"fought_at"`
}
