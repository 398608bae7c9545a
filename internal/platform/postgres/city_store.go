package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/store"
)

// CityStore implements the store.CityStore interface using PostgreSQL.
type CityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewCityStore creates a new PostgreSQL implementation of the CityStore interface.
func NewCityStore(db store.DBTX, logger *slog.Logger) *CityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &CityStore{
		db:     db,
		logger: logger.With(slog.String("component", "city_store")),
	}
}

// Ensure CityStore implements store.CityStore interface
var _ store.CityStore = (*CityStore)(nil)

// List implements store.CityStore.List
// The name filter is a case-sensitive substring match, as stored.
func (s *CityStore) List(ctx context.Context, name string) ([]*domain.City, error) {
	q := `SELECT id, nome, estado FROM cidades`
	args := []any{}

	if name != "" {
		q += ` WHERE nome LIKE '%' || $1 || '%'`
		args = append(args, name)
	}
	q += ` ORDER BY nome ASC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list cities: %w", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	var cities []*domain.City
	for rows.Next() {
		city := &domain.City{}
		if err := rows.Scan(&city.ID, &city.Name, &city.State); err != nil {
			return nil, fmt.Errorf("failed to scan city: %w", err)
		}
		cities = append(cities, city)
	}

	return cities, rows.Err()
}

// Exists implements store.CityStore.Exists
func (s *CityStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM cidades WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check city existence: %w", mapError(err))
	}

	return exists, nil
}
