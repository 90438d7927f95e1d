package models

import "github.com/google/uuid"

// VerificationState - состояние верификации жителя
type VerificationState string

const (
	StateUnverified VerificationState = "unverified"
	StateInProgress VerificationState = "in_progress"
	StateVerified   VerificationState = "verified"
)

// VerificationStatus - производный статус, всегда пересчитывается из журнала чек-инов
type VerificationStatus struct {
	State                 VerificationState `json:"state"`
	IsVerified            bool              `json:"is_verified"`
	VerificationAreaID    *uuid.UUID        `json:"verification_area_id"`
	ValidCheckins         int               `json:"valid_checkins"`
	ValidCheckinsInWindow int               `json:"valid_checkins_in_window"`
	WindowSpanDays        float64           `json:"window_span_days"`
	RemainingCheckins     int               `json:"remaining_checkins"`
	RemainingDays         int               `json:"remaining_days"`
}
