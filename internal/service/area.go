package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/syket-git/Elaka/internal/config"
	"github.com/syket-git/Elaka/internal/geofence"
	"github.com/syket-git/Elaka/internal/models"
	"golang.org/x/sync/singleflight"
)

// AreaRepository определяет контракт для работы с бд районов
type AreaRepository interface {
	Create(ctx context.Context, area *models.Area) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Area, error)
	Update(ctx context.Context, area *models.Area) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListAreas(ctx context.Context, page, pageSize int) ([]*models.Area, error)
	FindActiveByLocation(ctx context.Context, lat, lon float64) ([]*models.Area, error)
	GetCheckinStats(ctx context.Context, minutes int) (int, error)
	GetAreaFromCache(ctx context.Context, id uuid.UUID) (*models.Area, error)
	SetAreaCache(ctx context.Context, area *models.Area) error
	InvalidateAreaCache(ctx context.Context, id uuid.UUID) error
}

// AreaService определяет контракт бизнес-логики справочника районов
type AreaService interface {
	CreateArea(ctx context.Context, area *models.Area) error
	GetArea(ctx context.Context, id uuid.UUID) (*models.Area, error)
	UpdateArea(ctx context.Context, area *models.Area) error
	DeactivateArea(ctx context.Context, id uuid.UUID) error
	ListAreas(ctx context.Context, page, pageSize int) ([]*models.Area, error)
	FindAreasAt(ctx context.Context, lat, lon float64) ([]*models.Area, error)
	GetStats(ctx context.Context) (int, error)
}

type areaService struct {
	repo   AreaRepository
	logger *logrus.Logger
	cfg    *config.Config
	group  singleflight.Group
}

func NewAreaService(repo AreaRepository, logger *logrus.Logger, cfg *config.Config) AreaService {
	return &areaService{
		repo:   repo,
		logger: logger,
		cfg:    cfg,
	}
}

// CreateArea создает район
func (s *areaService) CreateArea(ctx context.Context, area *models.Area) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "CreateArea",
		"slug":    area.Slug,
	})
	log.Info("Attempting to create a new area")

	if _, err := geofence.Evaluate(area.Latitude, area.Longitude, float64(area.RadiusMeters), area.Latitude, area.Longitude); err != nil {
		log.WithError(err).Warn("Rejected area with invalid geofence")
		return fmt.Errorf("service: invalid area geofence: %w", err)
	}

	area.Status = models.AreaStatusActive
	if err := s.repo.Create(ctx, area); err != nil {
		log.WithError(err).Error("Failed to create area in repository")
		return fmt.Errorf("service: could not create area: %w", err)
	}

	if err := s.repo.InvalidateAreaCache(ctx, area.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate area cache")
	}

	log.WithField("area_id", area.ID).Info("Area created successfully")
	return nil
}

// GetArea получает район по ID: сначала из кеша, затем из БД
func (s *areaService) GetArea(ctx context.Context, id uuid.UUID) (*models.Area, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "GetArea",
		"area_id": id,
	})

	cached, err := s.repo.GetAreaFromCache(ctx, id)
	if err != nil {
		log.WithError(err).Warn("Failed to read area from cache")
	}
	if cached != nil {
		log.Debug("Area served from cache")
		return cached, nil
	}

	// Одновременные промахи кеша по одному району идут в БД одним запросом.
	// Запрос общий, поэтому отмена контекста первого вызывающего его не прерывает.
	v, err, _ := s.group.Do(id.String(), func() (any, error) {
		fetchCtx := context.WithoutCancel(ctx)
		area, err := s.repo.GetByID(fetchCtx, id)
		if err != nil {
			return nil, err
		}
		if err := s.repo.SetAreaCache(fetchCtx, area); err != nil {
			log.WithError(err).Warn("Failed to store area in cache")
		}
		return area, nil
	})
	if err != nil {
		log.WithError(err).Warn("Failed to get area in repository")
		return nil, fmt.Errorf("service: could not get area: %w", err)
	}

	return v.(*models.Area), nil
}

// UpdateArea обновляет существующий район
func (s *areaService) UpdateArea(ctx context.Context, area *models.Area) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "UpdateArea",
		"area_id": area.ID,
	})
	log.Info("Attempting to update area")

	existing, err := s.repo.GetByID(ctx, area.ID)
	if err != nil {
		log.WithError(err).Warn("Attempted to update a non-existent area")
		return fmt.Errorf("service: area with id %s not found for update: %w", area.ID, err)
	}

	if _, err := geofence.Evaluate(area.Latitude, area.Longitude, float64(area.RadiusMeters), area.Latitude, area.Longitude); err != nil {
		log.WithError(err).Warn("Rejected area with invalid geofence")
		return fmt.Errorf("service: invalid area geofence: %w", err)
	}

	existing.Name = area.Name
	existing.NameBn = area.NameBn
	existing.Slug = area.Slug
	existing.City = area.City
	existing.Latitude = area.Latitude
	existing.Longitude = area.Longitude
	existing.RadiusMeters = area.RadiusMeters
	existing.Status = area.Status

	if err := s.repo.Update(ctx, existing); err != nil {
		log.WithError(err).Error("Failed to update area in repository")
		return fmt.Errorf("service: could not update area: %w", err)
	}

	if err := s.repo.InvalidateAreaCache(ctx, area.ID); err != nil {
		log.WithError(err).Warn("Failed to invalidate area cache")
	}

	log.Info("Area updated successfully")
	return nil
}

// DeactivateArea деактивирует район, история чек-инов сохраняется
func (s *areaService) DeactivateArea(ctx context.Context, id uuid.UUID) error {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "DeactivateArea",
		"area_id": id,
	})
	log.Info("Attempting to deactivate area")

	if _, err := s.repo.GetByID(ctx, id); err != nil {
		log.WithError(err).Warn("Attempted to deactivate a non-existent area")
		return fmt.Errorf("service: area with id %s not found for deactivate: %w", id, err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		log.WithError(err).Error("Failed to deactivate area in repository")
		return fmt.Errorf("service: could not deactivate area: %w", err)
	}

	if err := s.repo.InvalidateAreaCache(ctx, id); err != nil {
		log.WithError(err).Warn("Failed to invalidate area cache")
	}

	log.Info("Area deactivated successfully")
	return nil
}

// ListAreas возвращает список районов с пагинацией
func (s *areaService) ListAreas(ctx context.Context, page, pageSize int) ([]*models.Area, error) {
	if page < 1 {
		page = 1
	}

	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	log := s.logger.WithFields(logrus.Fields{
		"service":   "area",
		"method":    "ListAreas",
		"page":      page,
		"page_size": pageSize,
	})
	log.Info("Listing areas")

	areas, err := s.repo.ListAreas(ctx, page, pageSize)
	if err != nil {
		log.WithError(err).Error("Failed to list areas from repository")
		return nil, fmt.Errorf("service: could not list areas: %w", err)
	}

	log.WithField("count", len(areas)).Info("Areas listed successfully")
	return areas, nil
}

// FindAreasAt находит активные районы, в геозону которых попадает точка
func (s *areaService) FindAreasAt(ctx context.Context, lat, lon float64) ([]*models.Area, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "FindAreasAt",
	})

	if err := geofence.ValidateCoordinate(lat, lon); err != nil {
		log.WithError(err).Warn("Rejected malformed coordinates")
		return nil, err
	}

	areas, err := s.repo.FindActiveByLocation(ctx, lat, lon)
	if err != nil {
		log.WithError(err).Error("Failed to find areas by location")
		return nil, fmt.Errorf("service: failed to find areas by location: %w", err)
	}

	log.WithField("count", len(areas)).Info("Location lookup completed")
	return areas, nil
}

// GetStats возвращает количество пользователей, делавших чек-ин за окно статистики
func (s *areaService) GetStats(ctx context.Context) (int, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "area",
		"method":  "GetStats",
		"minutes": s.cfg.StatsTimeWindowMinutes,
	})

	count, err := s.repo.GetCheckinStats(ctx, s.cfg.StatsTimeWindowMinutes)
	if err != nil {
		log.WithError(err).Error("Failed to get check-in stats")
		return 0, fmt.Errorf("service: could not get stats: %w", err)
	}
	return count, nil
}
