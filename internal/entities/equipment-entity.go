package entities

import (
	"time"

	"github.com/aarondl/null/v8"
	"github.com/google/uuid"
)

type Equipment struct {
	ID               uuid.UUID
	Name             string
	SerialNumber     string
	Manufacturer     string
	Model            null.String
	InstallationDate null.Time
	Location         string
	ServiceInterval  null.Int
	LastService      null.Time
	NextService      null.Time
	LifeExpectancy   null.Int
	Status           string
	Notes            null.String

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ComputeNextService: следующее обслуживание = последнее + интервал в днях.
// Без даты или интервала поле остаётся пустым.
func (e *Equipment) ComputeNextService() {
	if !e.LastService.Valid || !e.ServiceInterval.Valid || e.ServiceInterval.Int <= 0 {
		e.NextService = null.Time{}
		return
	}
	e.NextService = null.TimeFrom(e.LastService.Time.AddDate(0, 0, e.ServiceInterval.Int))
}
