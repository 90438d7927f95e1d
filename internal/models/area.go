package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	AreaStatusActive   = "active"
	AreaStatusInactive = "inactive"
)

// Area - район города с круглой геозоной (центр + радиус)
type Area struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	NameBn       string    `json:"name_bn"`
	Slug         string    `json:"slug"`
	City         string    `json:"city"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters int       `json:"radius_meters"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// IsActive сообщает, принимает ли район чек-ины
func (a *Area) IsActive() bool {
	return a.Status == AreaStatusActive
}
