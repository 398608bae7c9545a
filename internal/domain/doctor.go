package domain

import (
	"errors"
	"regexp"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Common validation errors for doctors.
var (
	ErrEmptyDoctorID        = errors.New("doctor ID cannot be empty")
	ErrEmptyDoctorName      = errors.New("doctor name cannot be empty")
	ErrEmptyDoctorSpecialty = errors.New("doctor specialty cannot be empty")
	ErrEmptyDoctorCityID    = errors.New("doctor city ID cannot be empty")
)

// honorificPattern matches a leading "Dr"/"Dra" honorific, case-insensitive,
// with optional trailing period, followed by a space.
var honorificPattern = regexp.MustCompile(`(?i)\b(dra?)\.? `)

// accentFolder decomposes characters and drops the combining marks, so
// "João" folds to "Joao".
var accentFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Doctor represents a doctor practicing in a city.
type Doctor struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"nome"`
	Specialty string    `json:"especialidade"`
	CityID    uuid.UUID `json:"cidade_id"`
}

// NewDoctor creates a new Doctor with the given name, specialty and city.
// Returns an error if validation fails.
func NewDoctor(name, specialty string, cityID uuid.UUID) (*Doctor, error) {
	doctor := &Doctor{
		ID:        uuid.New(),
		Name:      name,
		Specialty: specialty,
		CityID:    cityID,
	}

	if err := doctor.Validate(); err != nil {
		return nil, err
	}

	return doctor, nil
}

// Validate checks if the Doctor has valid data.
func (d *Doctor) Validate() error {
	if d.ID == uuid.Nil {
		return ErrEmptyDoctorID
	}

	if strings.TrimSpace(d.Name) == "" {
		return ErrEmptyDoctorName
	}

	if strings.TrimSpace(d.Specialty) == "" {
		return ErrEmptyDoctorSpecialty
	}

	if d.CityID == uuid.Nil {
		return ErrEmptyDoctorCityID
	}

	return nil
}

// StripHonorific removes "Dr."/"Dra." prefixes (case-insensitive, optional
// trailing period) from a doctor name or search term. Name search and
// ordering compare the honorific-stripped, accent-folded forms so "dr joao"
// matches "Dr. João".
func StripHonorific(name string) string {
	return honorificPattern.ReplaceAllString(name, "")
}

// FoldAccents removes diacritical marks from a name or search term, so an
// unaccented term matches the accented stored form.
func FoldAccents(s string) string {
	folded, _, err := transform.String(accentFolder, s)
	if err != nil {
		return s
	}
	return folded
}
