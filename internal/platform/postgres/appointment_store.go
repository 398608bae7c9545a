package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/agendamed/agenda-api/internal/domain"
	"github.com/agendamed/agenda-api/internal/store"
)

// AppointmentStore implements the store.AppointmentStore interface using PostgreSQL.
type AppointmentStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAppointmentStore creates a new PostgreSQL implementation of the
// AppointmentStore interface.
func NewAppointmentStore(db store.DBTX, logger *slog.Logger) *AppointmentStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &AppointmentStore{
		db:     db,
		logger: logger.With(slog.String("component", "appointment_store")),
	}
}

// Ensure AppointmentStore implements store.AppointmentStore interface
var _ store.AppointmentStore = (*AppointmentStore)(nil)

// List implements store.AppointmentStore.List
// Doctor and patient are eager-loaded via joins.
func (s *AppointmentStore) List(ctx context.Context) ([]*domain.Appointment, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT c.id, c.medico_id, c.paciente_id, c.data, c.status, c.created_at, c.updated_at,
		        m.id, m.nome, m.especialidade, m.cidade_id,
		        p.id, p.nome, p.cpf, p.celular, p.created_at, p.updated_at
		 FROM consultas c
		 JOIN medicos m ON m.id = c.medico_id
		 JOIN pacientes p ON p.id = c.paciente_id
		 ORDER BY c.data ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	var appointments []*domain.Appointment
	for rows.Next() {
		appointment := &domain.Appointment{
			Doctor:  &domain.Doctor{},
			Patient: &domain.Patient{},
		}
		if err := rows.Scan(
			&appointment.ID, &appointment.DoctorID, &appointment.PatientID,
			&appointment.At, &appointment.Status,
			&appointment.CreatedAt, &appointment.UpdatedAt,
			&appointment.Doctor.ID, &appointment.Doctor.Name,
			&appointment.Doctor.Specialty, &appointment.Doctor.CityID,
			&appointment.Patient.ID, &appointment.Patient.Name,
			&appointment.Patient.CPF, &appointment.Patient.Phone,
			&appointment.Patient.CreatedAt, &appointment.Patient.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	return appointments, rows.Err()
}

// Create implements store.AppointmentStore.Create
func (s *AppointmentStore) Create(ctx context.Context, appointment *domain.Appointment) error {
	if err := appointment.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO consultas (id, medico_id, paciente_id, data, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		appointment.ID, appointment.DoctorID, appointment.PatientID,
		appointment.At, appointment.Status,
		appointment.CreatedAt, appointment.UpdatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return fmt.Errorf("%w: doctor or patient does not exist", store.ErrInvalidEntity)
		}
		return fmt.Errorf("failed to create appointment: %w", mapError(err))
	}

	return nil
}

// Update implements store.AppointmentStore.Update
// Only the time and status are mutable.
func (s *AppointmentStore) Update(ctx context.Context, appointment *domain.Appointment) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE consultas SET data = $1, status = $2, updated_at = NOW() WHERE id = $3`,
		appointment.At, appointment.Status, appointment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update appointment: %w", mapError(err))
	}

	return checkRowsAffected(result, store.ErrAppointmentNotFound)
}

// GetByID implements store.AppointmentStore.GetByID
func (s *AppointmentStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	appointment := &domain.Appointment{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, medico_id, paciente_id, data, status, created_at, updated_at
		 FROM consultas WHERE id = $1`, id,
	).Scan(
		&appointment.ID, &appointment.DoctorID, &appointment.PatientID,
		&appointment.At, &appointment.Status,
		&appointment.CreatedAt, &appointment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAppointmentNotFound
		}
		return nil, fmt.Errorf("failed to get appointment: %w", mapError(err))
	}

	return appointment, nil
}

// ExistsInWindow implements store.AppointmentStore.ExistsInWindow
// BETWEEN is inclusive on both ends, matching the ±14 minute window contract.
func (s *AppointmentStore) ExistsInWindow(
	ctx context.Context,
	doctorID uuid.UUID,
	at time.Time,
) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(
		   SELECT 1 FROM consultas
		   WHERE medico_id = $1 AND data BETWEEN $2 AND $3
		 )`,
		doctorID, at.Add(-domain.ConflictWindow), at.Add(domain.ConflictWindow),
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check appointment window: %w", mapError(err))
	}

	return exists, nil
}
