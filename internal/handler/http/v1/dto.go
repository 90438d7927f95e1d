package v1

import (
	"time"

	"github.com/google/uuid"
)

// CreateAreaRequest DTO для создания района
// @Description DTO для создания района
type CreateAreaRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	NameBn       string  `json:"name_bn,omitempty" validate:"max=255"`
	Slug         string  `json:"slug" validate:"required,min=2,max=100"`
	City         string  `json:"city" validate:"required,max=100"`
	Latitude     float64 `json:"latitude" validate:"required,latitude"`
	Longitude    float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters int     `json:"radius_meters" validate:"required,gt=0"`
}

// UpdateAreaRequest DTO для обновления района
// @Description DTO для обновления района
type UpdateAreaRequest struct {
	Name         string  `json:"name" validate:"required,min=2,max=255"`
	NameBn       string  `json:"name_bn,omitempty" validate:"max=255"`
	Slug         string  `json:"slug" validate:"required,min=2,max=100"`
	City         string  `json:"city" validate:"required,max=100"`
	Latitude     float64 `json:"latitude" validate:"required,latitude"`
	Longitude    float64 `json:"longitude" validate:"required,longitude"`
	RadiusMeters int     `json:"radius_meters" validate:"required,gt=0"`
	Status       string  `json:"status" validate:"required,oneof=active inactive"`
}

// AreaResponse DTO для ответа с информацией о районе
// @Description DTO для ответа с информацией о районе
type AreaResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	NameBn       string    `json:"name_bn,omitempty"`
	Slug         string    `json:"slug"`
	City         string    `json:"city"`
	Latitude     float64   `json:"latitude"`
	Longitude    float64   `json:"longitude"`
	RadiusMeters int       `json:"radius_meters"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CheckinRequest DTO для чек-ина. Клиент присылает либо координаты, либо location_error.
// Диапазон координат проверяет сервис, чтобы отказ попал в метрики
// @Description DTO для чек-ина
type CheckinRequest struct {
	AreaID         string   `json:"area_id" validate:"required"`
	Latitude       *float64 `json:"latitude,omitempty"`
	Longitude      *float64 `json:"longitude,omitempty"`
	AccuracyMeters *float64 `json:"accuracy_meters,omitempty" validate:"omitempty,gte=0"`
	LocationError  string   `json:"location_error,omitempty" validate:"omitempty,oneof=permission_denied timeout unavailable"`
}

// SelectAreaRequest DTO для выбора района верификации
// @Description DTO для выбора района верификации
type SelectAreaRequest struct {
	AreaID string `json:"area_id" validate:"required,uuid"`
}

// StatsResponse DTO для ответа со статистикой
// @Description DTO для ответа со статистикой
type StatsResponse struct {
	UserCount     int `json:"user_count"`
	WindowMinutes int `json:"window_minutes"`
}
