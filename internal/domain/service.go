package domain

import "time"

// Service represents a bookable service from the catalog.
// Immutable from the engine's viewpoint during slot computation.
type Service struct {
	ID              int64
	Name            string
	Price           float64
	DurationMinutes int
	Description     *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasValidDuration returns true if the duration is positive
func (s *Service) HasValidDuration() bool {
	return s.DurationMinutes > 0
}
