package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/syket-git/Elaka/internal/config"
	"github.com/syket-git/Elaka/internal/geofence"
	"github.com/syket-git/Elaka/internal/models"
	"github.com/syket-git/Elaka/internal/positioning"
	"github.com/syket-git/Elaka/internal/verification"
	"github.com/syket-git/Elaka/internal/webhook"
)

// Метки результата чек-ина для метрик
const (
	CheckinResultValid        = "valid"
	CheckinResultTooFar       = "too_far"
	CheckinResultDuplicateDay = "duplicate_day"
)

// CheckinRepository - журнал чек-инов и профили.
// Внутри RunInTx методы работают в транзакции, переданной через ctx.
type CheckinRepository interface {
	RunInTx(ctx context.Context, userID string, fn func(ctx context.Context) error) error
	EnsureProfile(ctx context.Context, userID string) (*models.Profile, error)
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	SelectArea(ctx context.Context, userID string, areaID uuid.UUID) error
	MarkVerified(ctx context.Context, userID string, areaID uuid.UUID, at time.Time) (bool, error)
	RecordCheckin(ctx context.Context, record *models.CheckinRecord) error
	ListCountedCheckinTimes(ctx context.Context, userID string, areaID uuid.UUID) ([]time.Time, error)
	CountValidInWindow(ctx context.Context, userID string, areaID uuid.UUID, since time.Time) (*models.WindowSummary, error)
}

// IdentityProvider определяет пользователя по токену сессии
type IdentityProvider interface {
	ResolveUser(ctx context.Context, token string) (string, error)
}

// MetricsRecorder - счётчики чек-инов
type MetricsRecorder interface {
	RecordCheckin(result string)
	RecordCheckinFailure(kind string)
	RecordVerification()
	ObserveDistance(meters float64)
}

// CheckinService определяет контракт верификации жителей
type CheckinService interface {
	Checkin(ctx context.Context, userID string, areaID uuid.UUID, src positioning.Source) (*models.CheckinResult, error)
	Status(ctx context.Context, userID string, areaID *uuid.UUID) (*models.VerificationStatus, error)
	SelectArea(ctx context.Context, userID string, areaID uuid.UUID) (*models.VerificationStatus, error)
	ResidentBadge(ctx context.Context, userID string) (*models.ResidentBadge, error)
}

type checkinService struct {
	repo      CheckinRepository
	areas     AreaService
	publisher webhook.WebhookPublisher
	metrics   MetricsRecorder
	logger    *logrus.Logger
	cfg       *config.Config
	policy    verification.Policy
	now       func() time.Time
}

func NewCheckinService(
	repo CheckinRepository,
	areas AreaService,
	publisher webhook.WebhookPublisher,
	metrics MetricsRecorder,
	logger *logrus.Logger,
	cfg *config.Config,
) CheckinService {
	return &checkinService{
		repo:      repo,
		areas:     areas,
		publisher: publisher,
		metrics:   metrics,
		logger:    logger,
		cfg:       cfg,
		policy:    verification.NewPolicy(cfg.VerificationRequiredCheckins, cfg.VerificationWindowDays, cfg.VerificationLocation),
		now:       time.Now,
	}
}

// Checkin фиксирует попытку чек-ина и пересчитывает верификацию.
// При ошибке возвращается и ответ с категорией ошибки, и сама ошибка.
func (s *checkinService) Checkin(ctx context.Context, userID string, areaID uuid.UUID, src positioning.Source) (*models.CheckinResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "checkin",
		"method":  "Checkin",
		"user_id": userID,
		"area_id": areaID,
	})

	result, err := s.checkin(ctx, userID, areaID, src, log)
	if err != nil {
		kind := models.KindOf(err)
		s.metrics.RecordCheckinFailure(string(kind))
		if kind == models.ErrKindInternal {
			log.WithError(err).Error("Check-in failed")
		} else {
			log.WithError(err).WithField("kind", kind).Warn("Check-in rejected")
		}
		return models.FailedCheckin(areaID, err), err
	}
	return result, nil
}

func (s *checkinService) checkin(ctx context.Context, userID string, areaID uuid.UUID, src positioning.Source, log *logrus.Entry) (*models.CheckinResult, error) {
	if userID == "" {
		return nil, models.ErrUnauthenticated
	}

	area, err := s.areas.GetArea(ctx, areaID)
	if err != nil {
		return nil, err
	}
	if !area.IsActive() {
		return nil, fmt.Errorf("%w: area %s is inactive", models.ErrAreaNotFound, area.ID)
	}

	if src == nil {
		return nil, fmt.Errorf("%w: no position source", models.ErrLocationUnavailable)
	}
	pos, err := positioning.Acquire(ctx, src, s.cfg.LocationTimeout)
	if err != nil {
		return nil, err
	}
	if err := positioning.CheckAccuracy(pos, s.cfg.LocationMaxAccuracyMeters); err != nil {
		return nil, err
	}

	fence, err := geofence.Evaluate(area.Latitude, area.Longitude, float64(area.RadiusMeters), pos.Latitude, pos.Longitude)
	if err != nil {
		return nil, err
	}

	now := s.now()
	record := &models.CheckinRecord{
		UserID:         userID,
		AreaID:         area.ID,
		Latitude:       pos.Latitude,
		Longitude:      pos.Longitude,
		AccuracyMeters: pos.AccuracyMeters,
		DistanceMeters: fence.DistanceMeters,
		IsValid:        fence.IsValid,
		CheckinDay:     s.policy.CalendarDay(now),
		CheckedAt:      now,
	}

	var (
		progress      verification.Progress
		verified      bool
		newlyVerified bool
	)
	// Запись и пересчёт атомарны: параллельные чек-ины одного пользователя сериализуются
	err = s.repo.RunInTx(ctx, userID, func(ctx context.Context) error {
		profile, err := s.repo.EnsureProfile(ctx, userID)
		if err != nil {
			return err
		}
		verified = profile.IsVerified

		if !verified && (profile.SelectedAreaID == nil || *profile.SelectedAreaID != area.ID) {
			if err := s.repo.SelectArea(ctx, userID, area.ID); err != nil {
				return err
			}
		}

		if err := s.repo.RecordCheckin(ctx, record); err != nil {
			return err
		}

		times, err := s.repo.ListCountedCheckinTimes(ctx, userID, area.ID)
		if err != nil {
			return err
		}
		progress = s.policy.Evaluate(times, now)

		if !verified && record.IsValid && progress.Qualified {
			updated, err := s.repo.MarkVerified(ctx, userID, area.ID, now)
			if err != nil {
				return err
			}
			verified = true
			newlyVerified = updated
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("service: could not record check-in: %w", err)
	}

	s.observe(record, newlyVerified)
	s.publish(ctx, log, record, verified, newlyVerified)

	result := &models.CheckinResult{
		Success:               true,
		AreaID:                area.ID,
		DistanceMeters:        record.DistanceMeters,
		IsValid:               record.IsValid,
		AlreadyCheckedInToday: record.IsValid && !record.Counted,
		CheckinCount:          progress.CheckinCount,
		DaysSpan:              progress.DaysSpan,
		RemainingCheckins:     progress.RemainingCheckins,
		RemainingDays:         progress.RemainingDays,
		Verified:              verified,
	}
	if verified {
		result.RemainingCheckins = 0
		result.RemainingDays = 0
	}

	log.WithFields(logrus.Fields{
		"distance_m": record.DistanceMeters,
		"is_valid":   record.IsValid,
		"counted":    record.Counted,
		"verified":   verified,
	}).Info("Check-in recorded")
	return result, nil
}

func (s *checkinService) observe(record *models.CheckinRecord, newlyVerified bool) {
	switch {
	case !record.IsValid:
		s.metrics.RecordCheckin(CheckinResultTooFar)
	case !record.Counted:
		s.metrics.RecordCheckin(CheckinResultDuplicateDay)
	default:
		s.metrics.RecordCheckin(CheckinResultValid)
	}
	s.metrics.ObserveDistance(record.DistanceMeters)
	if newlyVerified {
		s.metrics.RecordVerification()
	}
}

// publish отправляет события после коммита. Ошибки очереди не влияют на ответ
func (s *checkinService) publish(ctx context.Context, log *logrus.Entry, record *models.CheckinRecord, verified, newlyVerified bool) {
	event := webhook.WebhookEvent{
		Type:           webhook.EventCheckinRecorded,
		UserID:         record.UserID,
		AreaID:         record.AreaID,
		Latitude:       record.Latitude,
		Longitude:      record.Longitude,
		DistanceMeters: record.DistanceMeters,
		IsValid:        record.IsValid,
		Counted:        record.Counted,
		Verified:       verified,
		Timestamp:      record.CheckedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish check-in event")
	}

	if !newlyVerified {
		return
	}
	event.Type = webhook.EventResidentVerified
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.WithError(err).Warn("Failed to publish verification event")
	}
}

// Status пересчитывает статус верификации по журналу. Без areaID берётся
// район верификации или выбранный район профиля
func (s *checkinService) Status(ctx context.Context, userID string, areaID *uuid.UUID) (*models.VerificationStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "checkin",
		"method":  "Status",
		"user_id": userID,
	})

	if userID == "" {
		return nil, models.ErrUnauthenticated
	}

	if areaID != nil {
		if _, err := s.areas.GetArea(ctx, *areaID); err != nil {
			return nil, err
		}
	}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to load profile")
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}

	status := &models.VerificationStatus{
		State:             models.StateUnverified,
		RemainingCheckins: s.policy.RequiredCheckins,
	}
	if profile != nil && profile.IsVerified {
		status.State = models.StateVerified
		status.IsVerified = true
		status.VerificationAreaID = profile.VerifiedAreaID
		status.RemainingCheckins = 0
		status.RemainingDays = 0
	}

	target := areaID
	if target == nil && profile != nil {
		if profile.IsVerified {
			target = profile.VerifiedAreaID
		} else {
			target = profile.SelectedAreaID
		}
	}
	if target == nil {
		return status, nil
	}
	if !status.IsVerified {
		status.VerificationAreaID = target
	}

	times, err := s.repo.ListCountedCheckinTimes(ctx, userID, *target)
	if err != nil {
		log.WithError(err).Error("Failed to list check-ins")
		return nil, fmt.Errorf("service: could not list check-ins: %w", err)
	}

	now := s.now()
	progress := s.policy.Evaluate(times, now)

	window, err := s.repo.CountValidInWindow(ctx, userID, *target, now.Add(-s.policy.Window))
	if err != nil {
		log.WithError(err).Error("Failed to count check-ins in window")
		return nil, fmt.Errorf("service: could not count check-ins: %w", err)
	}

	status.ValidCheckins = progress.DistinctDays
	status.ValidCheckinsInWindow = window.Count
	if window.Earliest != nil && window.Latest != nil {
		status.WindowSpanDays = math.Round(window.Latest.Sub(*window.Earliest).Hours()/24*100) / 100
	}

	if status.IsVerified {
		return status, nil
	}

	// Флаг профиля - единственный источник статуса "проверен"
	status.State = progress.State
	if status.State == models.StateVerified {
		status.State = models.StateInProgress
	}
	status.RemainingCheckins = progress.RemainingCheckins
	status.RemainingDays = progress.RemainingDays
	return status, nil
}

// SelectArea запоминает район, в котором пользователь проходит верификацию
func (s *checkinService) SelectArea(ctx context.Context, userID string, areaID uuid.UUID) (*models.VerificationStatus, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "checkin",
		"method":  "SelectArea",
		"user_id": userID,
		"area_id": areaID,
	})

	if userID == "" {
		return nil, models.ErrUnauthenticated
	}

	area, err := s.areas.GetArea(ctx, areaID)
	if err != nil {
		return nil, err
	}
	if !area.IsActive() {
		return nil, fmt.Errorf("%w: area %s is inactive", models.ErrAreaNotFound, area.ID)
	}

	err = s.repo.RunInTx(ctx, userID, func(ctx context.Context) error {
		profile, err := s.repo.EnsureProfile(ctx, userID)
		if err != nil {
			return err
		}
		if profile.IsVerified {
			return nil
		}
		return s.repo.SelectArea(ctx, userID, areaID)
	})
	if err != nil {
		log.WithError(err).Error("Failed to select area")
		return nil, fmt.Errorf("service: could not select area: %w", err)
	}

	log.Info("Verification area selected")
	return s.Status(ctx, userID, &areaID)
}

// ResidentBadge возвращает публичную отметку проверенного жителя
func (s *checkinService) ResidentBadge(ctx context.Context, userID string) (*models.ResidentBadge, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "checkin",
		"method":  "ResidentBadge",
		"user_id": userID,
	})

	badge := &models.ResidentBadge{UserID: userID}

	profile, err := s.repo.GetProfile(ctx, userID)
	if err != nil {
		log.WithError(err).Error("Failed to load profile")
		return nil, fmt.Errorf("service: could not get profile: %w", err)
	}
	if profile == nil || !profile.IsVerified || profile.VerifiedAreaID == nil {
		return badge, nil
	}

	badge.IsVerified = true
	area, err := s.areas.GetArea(ctx, *profile.VerifiedAreaID)
	if err != nil {
		// Деактивированный или удалённый район не снимает отметку
		if errors.Is(err, models.ErrAreaNotFound) {
			return badge, nil
		}
		log.WithError(err).Error("Failed to load verified area")
		return nil, err
	}
	badge.VerifiedArea = area
	return badge, nil
}
