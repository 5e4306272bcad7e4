package repository

import (
	"context"
	"fmt"

	"github.com/varadarohokale/boxing-arena/internal/ring"
)

// FightRepository persists fight history rows.
type FightRepository struct {
	db DBTX
}

// NewFightRepository constructs a fight repository over a pgx pool.
func NewFightRepository(db DBTX) *FightRepository {
	return &FightRepository{db: db}
}

// Insert stores a completed fight.
func (r *FightRepository) Insert(ctx context.Context, rec ring.FightRecord) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO fights (id, boxer_a_id, boxer_a_name, boxer_b_id, boxer_b_name,
		                    winner_id, winner_name, skill_a, skill_b, random_draw, fought_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		rec.ID, rec.BoxerAID, rec.BoxerAName, rec.BoxerBID, rec.BoxerBName,
		rec.WinnerID, rec.WinnerName, rec.SkillA, rec.SkillB, rec.RandomDraw, rec.FoughtAt)
	if err != nil {
		return fmt.Errorf("insert fight: %w", err)
	}
	return nil
}

// Recent returns the newest fights, most recent first.
func (r *FightRepository) Recent(ctx context.Context, limit int) ([]ring.FightRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx, `
		SELECT id, boxer_a_id, boxer_a_name, boxer_b_id, boxer_b_name,
		       winner_id, winner_name, skill_a, skill_b, random_draw, fought_at
		FROM fights
		ORDER BY fought_at DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("query fights: %w", err)
	}
	defer rows.Close()

	var records []ring.FightRecord
	for rows.Next() {
		var rec ring.FightRecord
		if err := rows.Scan(&rec.ID, &rec.BoxerAID, &rec.BoxerAName, &rec.BoxerBID, &rec.BoxerBName,
			&rec.WinnerID, &rec.WinnerName, &rec.SkillA, &rec.SkillB, &rec.RandomDraw, &rec.FoughtAt); err != nil {
			return nil, fmt.Errorf("scan fight row: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
