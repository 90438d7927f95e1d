package models

import (
	"time"

	"github.com/google/uuid"
)

// Profile - профиль пользователя. Поля верификации записываются один раз
type Profile struct {
	ID             string     `json:"id"`
	DisplayName    string     `json:"display_name,omitempty"`
	IsVerified     bool       `json:"is_verified"`
	VerifiedAreaID *uuid.UUID `json:"verified_area_id"`
	VerifiedAt     *time.Time `json:"verified_at,omitempty"`
	SelectedAreaID *uuid.UUID `json:"selected_area_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// ResidentBadge - публичная отметка "проверенный житель"
type ResidentBadge struct {
	UserID       string `json:"user_id"`
	IsVerified   bool   `json:"is_verified"`
	VerifiedArea *Area  `json:"verified_area"`
}
