package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/store"
)

// normalizedName is the SQL expression for a doctor name with honorific
// prefixes stripped, accents folded and case lowered. Search and ordering
// both compare this form, so "dr joao" matches "Dr. João" and results sort
// by the bare name. The translate table mirrors domain.FoldAccents for the
// Portuguese diacritics; the search term is folded in Go before binding.
const normalizedName = `LOWER(translate(` +
	`REPLACE(REPLACE(nome, 'Dr. ', ''), 'Dra. ', ''), ` +
	`'áàâãäéèêëíìîïóòôõöúùûüçÁÀÂÃÄÉÈÊËÍÌÎÏÓÒÔÕÖÚÙÛÜÇ', ` +
	`'aaaaaeeeeiiiiooooouuuucAAAAAEEEEIIIIOOOOOUUUUC'))`

// DoctorStore implements the store.DoctorStore interface using PostgreSQL.
type DoctorStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewDoctorStore creates a new PostgreSQL implementation of the DoctorStore interface.
func NewDoctorStore(db store.DBTX, logger *slog.Logger) *DoctorStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DoctorStore{
		db:     db,
		logger: logger.With(slog.String("component", "doctor_store")),
	}
}

// Ensure DoctorStore implements store.DoctorStore interface
var _ store.DoctorStore = (*DoctorStore)(nil)

// List implements store.DoctorStore.List
func (s *DoctorStore) List(ctx context.Context, name string) ([]*domain.Doctor, error) {
	return s.list(ctx, uuid.Nil, name)
}

// ListByCity implements store.DoctorStore.ListByCity
func (s *DoctorStore) ListByCity(ctx context.Context, cityID uuid.UUID, name string) ([]*domain.Doctor, error) {
	return s.list(ctx, cityID, name)
}

func (s *DoctorStore) list(ctx context.Context, cityID uuid.UUID, name string) ([]*domain.Doctor, error) {
	q := `SELECT id, nome, especialidade, cidade_id FROM medicos`
	args := []any{}
	where := ""

	if name != "" {
		// The honorific is stripped and accents are folded on the search
		// term as well, so "dra maria" and "dr joao" still match.
		args = append(args, domain.FoldAccents(domain.StripHonorific(name)))
		where = fmt.Sprintf(`%s LIKE LOWER('%%' || $%d || '%%')`, normalizedName, len(args))
	}
	if cityID != uuid.Nil {
		args = append(args, cityID)
		cond := fmt.Sprintf(`cidade_id = $%d`, len(args))
		if where != "" {
			where += ` AND ` + cond
		} else {
			where = cond
		}
	}
	if where != "" {
		q += ` WHERE ` + where
	}
	q += ` ORDER BY ` + normalizedName + ` ASC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list doctors: %w", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	var doctors []*domain.Doctor
	for rows.Next() {
		doctor := &domain.Doctor{}
		if err := rows.Scan(&doctor.ID, &doctor.Name, &doctor.Specialty, &doctor.CityID); err != nil {
			return nil, fmt.Errorf("failed to scan doctor: %w", err)
		}
		doctors = append(doctors, doctor)
	}

	return doctors, rows.Err()
}

// Create implements store.DoctorStore.Create
func (s *DoctorStore) Create(ctx context.Context, doctor *domain.Doctor) error {
	if err := doctor.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO medicos (id, nome, especialidade, cidade_id) VALUES ($1, $2, $3, $4)`,
		doctor.ID, doctor.Name, doctor.Specialty, doctor.CityID,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: cidade_id does not reference an existing city", store.ErrInvalidEntity)
		}
		return fmt.Errorf("failed to create doctor: %w", mapError(err))
	}

	return nil
}

// Exists implements store.DoctorStore.Exists
func (s *DoctorStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM medicos WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check doctor existence: %w", mapError(err))
	}

	return exists, nil
}
