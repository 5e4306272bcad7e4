package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/varadarohokale/boxing-arena/internal/boxer"
)

// DBTX is the subset of pgxpool.Pool used by repositories. Satisfied by
// *pgxpool.Pool and pgx.Tx alike.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const uniqueViolation = "23505"

// BoxerRepository exposes typed DB operations for boxer records.
type BoxerRepository struct {
	db DBTX
}

// NewBoxerRepository constructs a boxer repository over a pgx pool.
func NewBoxerRepository(db DBTX) *BoxerRepository {
	return &BoxerRepository{db: db}
}

const boxerColumns = "id, name, weight, height, reach, age, fights, wins"

// Insert persists a new boxer and returns the stored row.
func (r *BoxerRepository) Insert(ctx context.Context, params boxer.NewBoxerParams) (boxer.Boxer, error) {
	row := r.db.QueryRow(ctx, `
		INSERT INTO boxers (name, weight, height, reach, age)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+boxerColumns,
		params.Name, params.Weight, params.Height, params.Reach, params.Age)

	b, err := scanBoxer(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return boxer.Boxer{}, boxer.ErrNameTaken
		}
		return boxer.Boxer{}, fmt.Errorf("insert boxer: %w", err)
	}
	return b, nil
}

// Delete removes a boxer by ID.
func (r *BoxerRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM boxers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete boxer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return boxer.ErrNotFound
	}
	return nil
}

// GetByID fetches a boxer by primary key.
func (r *BoxerRepository) GetByID(ctx context.Context, id int64) (boxer.Boxer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+boxerColumns+` FROM boxers WHERE id = $1`, id)
	b, err := scanBoxer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return boxer.Boxer{}, boxer.ErrNotFound
		}
		return boxer.Boxer{}, fmt.Errorf("get boxer by id: %w", err)
	}
	return b, nil
}

// GetByName fetches a boxer by its unique name.
func (r *BoxerRepository) GetByName(ctx context.Context, name string) (boxer.Boxer, error) {
	row := r.db.QueryRow(ctx, `SELECT `+boxerColumns+` FROM boxers WHERE name = $1`, name)
	b, err := scanBoxer(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return boxer.Boxer{}, boxer.ErrNotFound
		}
		return boxer.Boxer{}, fmt.Errorf("get boxer by name: %w", err)
	}
	return b, nil
}

// RecordResult bumps fight counters for a boxer. A win increments both
// fights and wins, a loss only fights.
func (r *BoxerRepository) RecordResult(ctx context.Context, id int64, result boxer.Result) error {
	if !result.Valid() {
		return boxer.ErrInvalidResult
	}

	query := `UPDATE boxers SET fights = fights + 1 WHERE id = $1`
	if result == boxer.ResultWin {
		query = `UPDATE boxers SET fights = fights + 1, wins = wins + 1 WHERE id = $1`
	}

	tag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("record result: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return boxer.ErrNotFound
	}
	return nil
}

// Leaderboard returns boxers with at least one fight, ordered by the
// requested criterion.
func (r *BoxerRepository) Leaderboard(ctx context.Context, sortBy string) ([]boxer.LeaderboardEntry, error) {
	query := `
		SELECT id, name, weight, height, reach, age, fights, wins,
		       wins::float / fights AS win_pct
		FROM boxers
		WHERE fights > 0
	`
	switch sortBy {
	case boxer.SortByWins:
		query += ` ORDER BY wins DESC`
	case boxer.SortByWinPct:
		query += ` ORDER BY win_pct DESC`
	default:
		return nil, fmt.Errorf("invalid sort_by parameter: %s", sortBy)
	}

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query leaderboard: %w", err)
	}
	defer rows.Close()

	var entries []boxer.LeaderboardEntry
	for rows.Next() {
		var e boxer.LeaderboardEntry
		var winPct float64
		if err := rows.Scan(&e.ID, &e.Name, &e.Weight, &e.Height, &e.Reach, &e.Age, &e.Fights, &e.Wins, &winPct); err != nil {
			return nil, fmt.Errorf("scan leaderboard row: %w", err)
		}
		e.WeightClass, _ = boxer.WeightClassFor(e.Weight)
		// Reported as a percentage with one decimal, matching the API contract.
		e.WinPct = roundPct(winPct)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// HealthCheck verifies connectivity and that the boxers table exists.
func (r *BoxerRepository) HealthCheck(ctx context.Context) error {
	var ok bool
	if err := r.db.QueryRow(ctx, `SELECT to_regclass('boxers') IS NOT NULL`).Scan(&ok); err != nil {
		return fmt.Errorf("db check: %w", err)
	}
	if !ok {
		return errors.New("boxers table does not exist")
	}
	return nil
}

func scanBoxer(row pgx.Row) (boxer.Boxer, error) {
	var b boxer.Boxer
	if err := row.Scan(&b.ID, &b.Name, &b.Weight, &b.Height, &b.Reach, &b.Age, &b.Fights, &b.Wins); err != nil {
		return boxer.Boxer{}, err
	}
	b.WeightClass, _ = boxer.WeightClassFor(b.Weight)
	return b, nil
}

func roundPct(fraction float64) float64 {
	return float64(int(fraction*1000+0.5)) / 10
}
