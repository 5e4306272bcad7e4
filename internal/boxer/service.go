package boxer

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/varadarohokale/boxing-arena/internal/metrics"
)

// Store is the persistence surface the service needs.
type Store interface {
	Insert(ctx context.Context, params NewBoxerParams) (Boxer, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (Boxer, error)
	GetByName(ctx context.Context, name string) (Boxer, error)
	RecordResult(ctx context.Context, id int64, result Result) error
	HealthCheck(ctx context.Context) error
}

// StandingsCache is invalidated when fight stats change out of band.
type StandingsCache interface {
	Invalidate(ctx context.Context) error
}

// Service implements boxer CRUD and stat updates.
type Service struct {
	store  Store
	cache  StandingsCache
	logger zerolog.Logger
}

// NewService builds a boxer service. cache may be nil.
func NewService(store Store, cache StandingsCache, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		cache:  cache,
		logger: logger.With().Str("component", "boxer_service").Logger(),
	}
}

// Create validates and persists a new boxer.
func (s *Service) Create(ctx context.Context, params NewBoxerParams) (Boxer, error) {
	if err := params.Validate(); err != nil {
		return Boxer{}, err
	}

	b, err := s.store.Insert(ctx, params)
	if err != nil {
		return Boxer{}, err
	}

	metrics.BoxersCreatedTotal.Inc()
	s.logger.Info().Str("name", b.Name).Int64("id", b.ID).Msg("boxer created")
	return b, nil
}

// Delete removes a boxer by ID.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int64("id", id).Msg("boxer deleted")
	return nil
}

// GetByID fetches a boxer by ID.
func (s *Service) GetByID(ctx context.Context, id int64) (Boxer, error) {
	return s.store.GetByID(ctx, id)
}

// GetByName fetches a boxer by name.
func (s *Service) GetByName(ctx context.Context, name string) (Boxer, error) {
	return s.store.GetByName(ctx, name)
}

// UpdateStats records a manual win or loss for a boxer and invalidates
// cached standings.
func (s *Service) UpdateStats(ctx context.Context, id int64, result Result) error {
	if !result.Valid() {
		return ErrInvalidResult
	}
	if err := s.store.RecordResult(ctx, id, result); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx); err != nil {
			s.logger.Warn().Err(err).Msg("failed to invalidate standings cache")
		}
	}
	s.logger.Info().Int64("id", id).Str("result", string(result)).Msg("boxer stats updated")
	return nil
}

// DBCheck verifies database connectivity and schema presence.
func (s *Service) DBCheck(ctx context.Context) error {
	return s.store.HealthCheck(ctx)
}
