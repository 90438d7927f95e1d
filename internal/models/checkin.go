package models

import (
	"time"

	"github.com/google/uuid"
)

// CheckinRecord - запись о попытке чек-ина. Создаётся на каждую попытку, никогда не меняется.
// Counted - засчитан ли чек-ин в прогресс верификации (не более одного в календарный день)
type CheckinRecord struct {
	ID             int64     `json:"id"`
	UserID         string    `json:"user_id"`
	AreaID         uuid.UUID `json:"area_id"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	AccuracyMeters *float64  `json:"accuracy_meters,omitempty"`
	DistanceMeters float64   `json:"distance_meters"`
	IsValid        bool      `json:"is_valid"`
	Counted        bool      `json:"counted"`
	CheckinDay     time.Time `json:"checkin_day"`
	CheckedAt      time.Time `json:"checked_at"`
}

// WindowSummary - результат выборки засчитанных чек-инов за окно
type WindowSummary struct {
	Count    int        `json:"count"`
	Earliest *time.Time `json:"earliest,omitempty"`
	Latest   *time.Time `json:"latest,omitempty"`
}

// CheckinResult - ответ операции чек-ина
type CheckinResult struct {
	Success               bool      `json:"success"`
	AreaID                uuid.UUID `json:"area_id"`
	DistanceMeters        float64   `json:"distance_m"`
	IsValid               bool      `json:"is_valid"`
	AlreadyCheckedInToday bool      `json:"already_checked_in_today"`
	CheckinCount          int       `json:"checkin_count"`
	DaysSpan              float64   `json:"days_span"`
	RemainingCheckins     int       `json:"remaining_checkins"`
	RemainingDays         int       `json:"remaining_days"`
	Verified              bool      `json:"verified"`
	Error                 ErrorKind `json:"error,omitempty"`
	Message               string    `json:"message,omitempty"`
}

// FailedCheckin строит ответ для неудачной попытки
func FailedCheckin(areaID uuid.UUID, err error) *CheckinResult {
	kind := KindOf(err)
	return &CheckinResult{
		Success: false,
		AreaID:  areaID,
		Error:   kind,
		Message: kind.Message(),
	}
}
