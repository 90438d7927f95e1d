package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/redis/go-redis/v9"
	"github.com/syket-git/Elaka/internal/models"
	"github.com/syket-git/Elaka/internal/service"
)

const areaColumns = `
	id,
	name,
	name_bn,
	slug,
	city,
	ST_Y(center::geometry) AS latitude,
	ST_X(center::geometry) AS longitude,
	radius_meters,
	status,
	created_at,
	updated_at`

type AreaRepository struct {
	db          DB
	redisClient redis.Cmdable
	cacheTTL    time.Duration
}

func NewAreaRepository(db DB, redisClient redis.Cmdable, cacheTTL time.Duration) service.AreaRepository {
	return &AreaRepository{
		db:          db,
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
	}
}

// Create создает район в бд
func (r *AreaRepository) Create(ctx context.Context, area *models.Area) error {
	query := `
		INSERT INTO areas (name, name_bn, slug, city, center, radius_meters, status)
		VALUES ($1, $2, $3, $4, ST_SetSRID(ST_MakePoint($5, $6), 4326), $7, $8)
		RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		area.Name,
		area.NameBn,
		area.Slug,
		area.City,
		area.Longitude,
		area.Latitude,
		area.RadiusMeters,
		area.Status,
	).Scan(&area.ID, &area.CreatedAt, &area.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create area: %w", err)
	}
	return nil
}

// GetByID возвращает район по UUID
func (r *AreaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Area, error) {
	query := `SELECT ` + areaColumns + `
		FROM areas
		WHERE id = $1;
	`
	area, err := scanArea(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", models.ErrAreaNotFound, id)
		}
		return nil, fmt.Errorf("failed to get area by id: %w", err)
	}
	return area, nil
}

func (r *AreaRepository) Update(ctx context.Context, area *models.Area) error {
	query := `
		UPDATE areas SET
			name = $1,
			name_bn = $2,
			slug = $3,
			city = $4,
			center = ST_SetSRID(ST_MakePoint($5, $6), 4326),
			radius_meters = $7,
			status = $8,
			updated_at = NOW()
		WHERE id = $9;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		area.Name,
		area.NameBn,
		area.Slug,
		area.City,
		area.Longitude,
		area.Latitude,
		area.RadiusMeters,
		area.Status,
		area.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update area: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", models.ErrAreaNotFound, area.ID)
	}
	return nil
}

// Delete переводит район в статус 'inactive', чек-ины остаются в журнале
func (r *AreaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE areas SET
			status = 'inactive',
			updated_at = NOW()
		WHERE id = $1;
	`
	cmdTag, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to deactivate area: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", models.ErrAreaNotFound, id)
	}
	return nil
}

// ListAreas возвращает список районов с пагинацией
func (r *AreaRepository) ListAreas(ctx context.Context, page, pageSize int) ([]*models.Area, error) {
	offset := (page - 1) * pageSize

	query := `SELECT ` + areaColumns + `
		FROM areas
		ORDER BY city, name
		LIMIT $1 OFFSET $2;
	`
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list areas: %w", err)
	}
	return collectAreas(rows)
}

// FindActiveByLocation находит активные районы, в геозону которых попадает точка
func (r *AreaRepository) FindActiveByLocation(ctx context.Context, lat, lon float64) ([]*models.Area, error) {
	query := `SELECT ` + areaColumns + `
		FROM areas
		WHERE
			status = 'active'
			AND ST_DWithin(
				center,
				ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography,
				radius_meters
			)
		ORDER BY ST_Distance(center, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography);
	`
	rows, err := r.db.Query(ctx, query, lon, lat)
	if err != nil {
		return nil, fmt.Errorf("failed to find active areas by location: %w", err)
	}
	return collectAreas(rows)
}

// GetCheckinStats возвращает количество уникальных пользователей, делавших чек-ин за последние minutes минут
func (r *AreaRepository) GetCheckinStats(ctx context.Context, minutes int) (int, error) {
	query := `
		SELECT COUNT(DISTINCT user_id)
		FROM checkins
		WHERE checked_at >= NOW() - ($1 * INTERVAL '1 minute');
	`
	var count int
	if err := r.db.QueryRow(ctx, query, minutes).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to get check-in stats: %w", err)
	}
	return count, nil
}

// GetAreaFromCache пытается получить район из Redis. Промах кеша - (nil, nil)
func (r *AreaRepository) GetAreaFromCache(ctx context.Context, id uuid.UUID) (*models.Area, error) {
	val, err := r.redisClient.Get(ctx, areaCacheKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get area from cache: %w", err)
	}

	area := &models.Area{}
	if err := json.Unmarshal(val, area); err != nil {
		return nil, fmt.Errorf("failed to unmarshal area from cache: %w", err)
	}
	return area, nil
}

// SetAreaCache сохраняет район в Redis
func (r *AreaRepository) SetAreaCache(ctx context.Context, area *models.Area) error {
	val, err := json.Marshal(area)
	if err != nil {
		return fmt.Errorf("failed to marshal area for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, areaCacheKey(area.ID), val, r.cacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set area in cache: %w", err)
	}
	return nil
}

// InvalidateAreaCache удаляет район из кеша Redis
func (r *AreaRepository) InvalidateAreaCache(ctx context.Context, id uuid.UUID) error {
	if err := r.redisClient.Del(ctx, areaCacheKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate area cache: %w", err)
	}
	return nil
}

func areaCacheKey(id uuid.UUID) string {
	return fmt.Sprintf("area:%s", id.String())
}

func scanArea(row pgx.Row) (*models.Area, error) {
	area := &models.Area{}
	err := row.Scan(
		&area.ID,
		&area.Name,
		&area.NameBn,
		&area.Slug,
		&area.City,
		&area.Latitude,
		&area.Longitude,
		&area.RadiusMeters,
		&area.Status,
		&area.CreatedAt,
		&area.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return area, nil
}

func collectAreas(rows pgx.Rows) ([]*models.Area, error) {
	defer rows.Close()

	areas := make([]*models.Area, 0)
	for rows.Next() {
		area, err := scanArea(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan area row: %w", err)
		}
		areas = append(areas, area)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error area list iteration: %w", err)
	}
	return areas, nil
}
