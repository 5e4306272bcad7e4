package boxer

import (
	"errors"
	"fmt"
)

// Weight class cutoffs, in pounds. Anything below featherweight is not
// a sanctioned weight and is rejected at creation time.
const (
	WeightClassHeavyweight   = "HEAVYWEIGHT"   // >= 203
	WeightClassMiddleweight  = "MIDDLEWEIGHT"  // >= 166
	WeightClassLightweight   = "LIGHTWEIGHT"   // >= 133
	WeightClassFeatherweight = "FEATHERWEIGHT" // >= 125

	MinWeight = 125
	MinAge    = 18
	MaxAge    = 40
)

// Sentinel errors surfaced by the service and mapped to HTTP codes.
var (
	ErrNotFound      = errors.New("boxer not found")
	ErrNameTaken     = errors.New("boxer name already exists")
	ErrInvalidResult = errors.New("result must be 'win' or 'loss'")
)

// Boxer is the persisted fighter record. WeightClass is derived from
// Weight and never stored.
type Boxer struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Weight      int     `json:"weight"`
	Height      int     `json:"height"`
	Reach       float64 `json:"reach"`
	Age         int     `json:"age"`
	WeightClass string  `json:"weight_class"`
	Fights      int     `json:"fights"`
	Wins        int     `json:"wins"`
}

// NewBoxerParams carries the attributes required to create a boxer.
type NewBoxerParams struct {
	Name   string  `json:"name"`
	Weight int     `json:"weight"`
	Height int     `json:"height"`
	Reach  float64 `json:"reach"`
	Age    int     `json:"age"`
}

// ValidationError reports a rejected boxer attribute.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate enforces creation invariants. Name uniqueness is enforced by
// the database, not here.
func (p NewBoxerParams) Validate() error {
	if p.Name == "" {
		return &ValidationError{Field: "name", Message: "name must not be empty"}
	}
	if p.Weight < MinWeight {
		return &ValidationError{Field: "weight", Message: fmt.Sprintf("invalid weight: %d, must be at least %d", p.Weight, MinWeight)}
	}
	if p.Height <= 0 {
		return &ValidationError{Field: "height", Message: fmt.Sprintf("invalid height: %d, must be greater than 0", p.Height)}
	}
	if p.Reach <= 0 {
		return &ValidationError{Field: "reach", Message: fmt.Sprintf("invalid reach: %.1f, must be greater than 0", p.Reach)}
	}
	if p.Age < MinAge || p.Age > MaxAge {
		return &ValidationError{Field: "age", Message: fmt.Sprintf("invalid age: %d, must be between %d and %d", p.Age, MinAge, MaxAge)}
	}
	return nil
}

// WeightClassFor maps a weight to its class name.
func WeightClassFor(weight int) (string, error) {
	switch {
	case weight >= 203:
		return WeightClassHeavyweight, nil
	case weight >= 166:
		return WeightClassMiddleweight, nil
	case weight >= 133:
		return WeightClassLightweight, nil
	case weight >= MinWeight:
		return WeightClassFeatherweight, nil
	default:
		return "", fmt.Errorf("invalid weight: %d, must be at least %d", weight, MinWeight)
	}
}

// Result is the outcome recorded against a boxer after a fight.
type Result string

const (
	ResultWin  Result = "win"
	ResultLoss Result = "loss"
)

// Valid reports whether the result is one of the two recordable outcomes.
func (r Result) Valid() bool {
	return r == ResultWin || r == ResultLoss
}

// LeaderboardEntry is a boxer row augmented with win percentage. Only
// boxers with at least one fight appear on the leaderboard.
type LeaderboardEntry struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Weight      int     `json:"weight"`
	Height      int     `json:"height"`
	Reach       float64 `json:"reach"`
	Age         int     `json:"age"`
	WeightClass string  `json:"weight_class"`
	Fights      int     `json:"fights"`
	Wins        int     `json:"wins"`
	WinPct      float64 `json:"win_pct"`
}

// Leaderboard sort orders.
const (
	SortByWins   = "wins"
	SortByWinPct = "win_pct"
)
