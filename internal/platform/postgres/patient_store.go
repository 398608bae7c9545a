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

// PatientStore implements the store.PatientStore interface using PostgreSQL.
type PatientStore struct {
	db     store.DBTX
	logger *slog.Logger

	// now is injectable so the "only upcoming" cutoff can be pinned in tests.
	now func() time.Time
}

// NewPatientStore creates a new PostgreSQL implementation of the PatientStore interface.
func NewPatientStore(db store.DBTX, logger *slog.Logger) *PatientStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PatientStore{
		db:     db,
		logger: logger.With(slog.String("component", "patient_store")),
		now:    time.Now,
	}
}

// Ensure PatientStore implements store.PatientStore interface
var _ store.PatientStore = (*PatientStore)(nil)

// List implements store.PatientStore.List
func (s *PatientStore) List(ctx context.Context) ([]*domain.Patient, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, nome, cpf, celular, created_at, updated_at
		 FROM pacientes ORDER BY nome ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	var patients []*domain.Patient
	for rows.Next() {
		patient := &domain.Patient{}
		if err := rows.Scan(
			&patient.ID, &patient.Name, &patient.CPF, &patient.Phone,
			&patient.CreatedAt, &patient.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, patient)
	}

	return patients, rows.Err()
}

// Create implements store.PatientStore.Create
func (s *PatientStore) Create(ctx context.Context, patient *domain.Patient) error {
	if err := patient.Validate(); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO pacientes (id, nome, cpf, celular, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		patient.ID, patient.Name, patient.CPF, patient.Phone,
		patient.CreatedAt, patient.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrCPFExists
		}
		return fmt.Errorf("failed to create patient: %w", mapError(err))
	}

	return nil
}

// Update implements store.PatientStore.Update
// Only name and phone are mutable; CPF is fixed at creation.
func (s *PatientStore) Update(ctx context.Context, patient *domain.Patient) error {
	result, err := s.db.ExecContext(ctx,
		`UPDATE pacientes SET nome = $1, celular = $2, updated_at = NOW() WHERE id = $3`,
		patient.Name, patient.Phone, patient.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", mapError(err))
	}

	return checkRowsAffected(result, store.ErrPatientNotFound)
}

// GetByID implements store.PatientStore.GetByID
func (s *PatientStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error) {
	patient := &domain.Patient{}
	err := s.db.QueryRowContext(ctx,
		`SELECT id, nome, cpf, celular, created_at, updated_at
		 FROM pacientes WHERE id = $1`, id,
	).Scan(
		&patient.ID, &patient.Name, &patient.CPF, &patient.Phone,
		&patient.CreatedAt, &patient.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPatientNotFound
		}
		return nil, fmt.Errorf("failed to get patient: %w", mapError(err))
	}

	return patient, nil
}

// ListByDoctor implements store.PatientStore.ListByDoctor
func (s *PatientStore) ListByDoctor(
	ctx context.Context,
	doctorID uuid.UUID,
	onlyUpcoming bool,
	name string,
) ([]*domain.Patient, error) {
	cutoff := time.Time{}
	if onlyUpcoming {
		cutoff = s.now()
	}

	timeCond := ""
	args := []any{doctorID}
	if onlyUpcoming {
		args = append(args, cutoff)
		timeCond = fmt.Sprintf(` AND c.data >= $%d`, len(args))
	}

	q := `SELECT p.id, p.nome, p.cpf, p.celular, p.created_at, p.updated_at
	 FROM pacientes p
	 WHERE EXISTS (
	   SELECT 1 FROM consultas c
	   WHERE c.paciente_id = p.id AND c.medico_id = $1` + timeCond + `
	 )`

	if name != "" {
		args = append(args, name)
		q += fmt.Sprintf(` AND p.nome ILIKE '%%' || $%d || '%%'`, len(args))
	}

	// Patients ordered by their earliest qualifying appointment time.
	q += ` ORDER BY (
	   SELECT MIN(c.data) FROM consultas c
	   WHERE c.paciente_id = p.id AND c.medico_id = $1` + timeCond + `
	 ) ASC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients by doctor: %w", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	var patients []*domain.Patient
	for rows.Next() {
		patient := &domain.Patient{}
		if err := rows.Scan(
			&patient.ID, &patient.Name, &patient.CPF, &patient.Phone,
			&patient.CreatedAt, &patient.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan patient: %w", err)
		}
		patients = append(patients, patient)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, patient := range patients {
		appointments, err := s.appointmentsWithDoctor(ctx, patient.ID, doctorID, cutoff)
		if err != nil {
			return nil, err
		}
		patient.Appointments = appointments
	}

	return patients, nil
}

// appointmentsWithDoctor eager-loads a patient's appointments with the given
// doctor, applying the same time cutoff used to qualify the patient, ordered
// by time ascending.
func (s *PatientStore) appointmentsWithDoctor(
	ctx context.Context,
	patientID, doctorID uuid.UUID,
	cutoff time.Time,
) ([]*domain.Appointment, error) {
	q := `SELECT id, medico_id, paciente_id, data, status, created_at, updated_at
	 FROM consultas WHERE paciente_id = $1 AND medico_id = $2`
	args := []any{patientID, doctorID}

	if !cutoff.IsZero() {
		args = append(args, cutoff)
		q += ` AND data >= $3`
	}
	q += ` ORDER BY data ASC`

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to load patient appointments: %w", mapError(err))
	}
	defer func() { _ = rows.Close() }()

	var appointments []*domain.Appointment
	for rows.Next() {
		appointment := &domain.Appointment{}
		if err := rows.Scan(
			&appointment.ID, &appointment.DoctorID, &appointment.PatientID,
			&appointment.At, &appointment.Status,
			&appointment.CreatedAt, &appointment.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan appointment: %w", err)
		}
		appointments = append(appointments, appointment)
	}

	return appointments, rows.Err()
}

// Exists implements store.PatientStore.Exists
func (s *PatientStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := s.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM pacientes WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check patient existence: %w", mapError(err))
	}

	return exists, nil
}
