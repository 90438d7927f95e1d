package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/syket-git/Elaka/internal/models"
	"github.com/syket-git/Elaka/internal/service"
)

const dayLayout = "2006-01-02"

// CheckinRepository - журнал чек-инов и профили пользователей
type CheckinRepository struct {
	db DB
}

func NewCheckinRepository(db DB) service.CheckinRepository {
	return &CheckinRepository{db: db}
}

// RunInTx выполняет fn в транзакции под advisory-блокировкой пользователя.
// Вложенный вызов переиспользует уже открытую транзакцию.
func (r *CheckinRepository) RunInTx(ctx context.Context, userID string, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1));`, userID); err != nil {
		_ = tx.Rollback(ctx)
		return fmt.Errorf("failed to lock user %s: %w", userID, err)
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback(ctx)
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// EnsureProfile создаёт профиль при первом обращении и возвращает его
func (r *CheckinRepository) EnsureProfile(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		INSERT INTO profiles (id)
		VALUES ($1)
		ON CONFLICT (id) DO NOTHING;
	`
	if _, err := conn(ctx, r.db).Exec(ctx, query, userID); err != nil {
		return nil, fmt.Errorf("failed to ensure profile: %w", err)
	}

	profile, err := r.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("profile %s vanished after insert", userID)
	}
	return profile, nil
}

// GetProfile возвращает профиль или nil, если его ещё нет
func (r *CheckinRepository) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	query := `
		SELECT
			id,
			display_name,
			is_verified,
			verified_area_id,
			verified_at,
			selected_area_id,
			created_at,
			updated_at
		FROM profiles
		WHERE id = $1;
	`
	profile := &models.Profile{}
	err := conn(ctx, r.db).QueryRow(ctx, query, userID).Scan(
		&profile.ID,
		&profile.DisplayName,
		&profile.IsVerified,
		&profile.VerifiedAreaID,
		&profile.VerifiedAt,
		&profile.SelectedAreaID,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}
	return profile, nil
}

// SelectArea меняет выбранный район. Проверенный профиль не меняется
func (r *CheckinRepository) SelectArea(ctx context.Context, userID string, areaID uuid.UUID) error {
	query := `
		UPDATE profiles SET
			selected_area_id = $2,
			updated_at = NOW()
		WHERE id = $1 AND NOT is_verified;
	`
	if _, err := conn(ctx, r.db).Exec(ctx, query, userID, areaID); err != nil {
		return fmt.Errorf("failed to select area: %w", err)
	}
	return nil
}

// MarkVerified один раз выставляет флаг верификации. false - флаг уже стоял
func (r *CheckinRepository) MarkVerified(ctx context.Context, userID string, areaID uuid.UUID, at time.Time) (bool, error) {
	query := `
		UPDATE profiles SET
			is_verified = TRUE,
			verified_area_id = $2,
			verified_at = $3,
			updated_at = NOW()
		WHERE id = $1 AND NOT is_verified;
	`
	cmdTag, err := conn(ctx, r.db).Exec(ctx, query, userID, areaID, at)
	if err != nil {
		return false, fmt.Errorf("failed to mark profile verified: %w", err)
	}
	return cmdTag.RowsAffected() > 0, nil
}

// RecordCheckin добавляет запись в журнал. Валидный чек-ин засчитывается,
// если за этот календарный день засчитанного ещё нет; иначе он пишется с counted = false.
func (r *CheckinRepository) RecordCheckin(ctx context.Context, record *models.CheckinRecord) error {
	q := conn(ctx, r.db)
	day := record.CheckinDay.Format(dayLayout)

	if record.IsValid {
		query := `
			INSERT INTO checkins (user_id, area_id, location, accuracy_meters, distance_meters, is_valid, counted, checkin_day, checked_at)
			VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, TRUE, TRUE, $7::date, $8)
			ON CONFLICT (user_id, area_id, checkin_day) WHERE counted DO NOTHING
			RETURNING id;
		`
		err := q.QueryRow(ctx, query,
			record.UserID,
			record.AreaID,
			record.Longitude,
			record.Latitude,
			record.AccuracyMeters,
			record.DistanceMeters,
			day,
			record.CheckedAt,
		).Scan(&record.ID)
		if err == nil {
			record.Counted = true
			return nil
		}
		if !errors.Is(err, pgx.ErrNoRows) {
			return fmt.Errorf("failed to record check-in: %w", err)
		}
	}

	query := `
		INSERT INTO checkins (user_id, area_id, location, accuracy_meters, distance_meters, is_valid, counted, checkin_day, checked_at)
		VALUES ($1, $2, ST_SetSRID(ST_MakePoint($3, $4), 4326), $5, $6, $7, FALSE, $8::date, $9)
		RETURNING id;
	`
	err := q.QueryRow(ctx, query,
		record.UserID,
		record.AreaID,
		record.Longitude,
		record.Latitude,
		record.AccuracyMeters,
		record.DistanceMeters,
		record.IsValid,
		day,
		record.CheckedAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("failed to record check-in: %w", err)
	}
	record.Counted = false
	return nil
}

// ListCountedCheckinTimes возвращает время засчитанных чек-инов по району, по возрастанию
func (r *CheckinRepository) ListCountedCheckinTimes(ctx context.Context, userID string, areaID uuid.UUID) ([]time.Time, error) {
	query := `
		SELECT checked_at
		FROM checkins
		WHERE user_id = $1 AND area_id = $2 AND counted
		ORDER BY checked_at;
	`
	rows, err := conn(ctx, r.db).Query(ctx, query, userID, areaID)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	times := make([]time.Time, 0)
	for rows.Next() {
		var t time.Time
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		times = append(times, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error check-in list iteration: %w", err)
	}
	return times, nil
}

// CountValidInWindow считает засчитанные чек-ины начиная с since
func (r *CheckinRepository) CountValidInWindow(ctx context.Context, userID string, areaID uuid.UUID, since time.Time) (*models.WindowSummary, error) {
	query := `
		SELECT COUNT(*), MIN(checked_at), MAX(checked_at)
		FROM checkins
		WHERE user_id = $1 AND area_id = $2 AND counted AND checked_at >= $3;
	`
	summary := &models.WindowSummary{}
	err := conn(ctx, r.db).QueryRow(ctx, query, userID, areaID, since).Scan(
		&summary.Count,
		&summary.Earliest,
		&summary.Latest,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to count check-ins in window: %w", err)
	}
	return summary, nil
}
