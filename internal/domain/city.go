package domain

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// Common validation errors for cities.
var (
	ErrEmptyCityID   = errors.New("city ID cannot be empty")
	ErrEmptyCityName = errors.New("city name cannot be empty")
)

// City represents a city where doctors practice.
type City struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"nome"`
	State string    `json:"estado"`
}

// NewCity creates a new City with the given name and state.
// Returns an error if validation fails.
func NewCity(name, state string) (*City, error) {
	city := &City{
		ID:    uuid.New(),
		Name:  name,
		State: state,
	}

	if err := city.Validate(); err != nil {
		return nil, err
	}

	return city, nil
}

// Validate checks if the City has valid data.
func (c *City) Validate() error {
	if c.ID == uuid.Nil {
		return ErrEmptyCityID
	}

	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCityName
	}

	return nil
}
