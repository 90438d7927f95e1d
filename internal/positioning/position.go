// Package positioning получает координаты пользователя с таймаутом.
// Любая неудача получения координат - это models.ErrLocationUnavailable.
package positioning

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/syket-git/Elaka/internal/models"
)

// DefaultTimeout - таймаут получения координат по умолчанию
const DefaultTimeout = 10 * time.Second

// Причины, которые сообщает клиент, если не смог получить координаты
const (
	FailurePermissionDenied = "permission_denied"
	FailureTimeout          = "timeout"
	FailureUnavailable      = "unavailable"
)

// Position - одна выборка координат
type Position struct {
	Latitude       float64
	Longitude      float64
	AccuracyMeters *float64
}

// Source - источник координат
type Source interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

// SourceFunc позволяет использовать функцию как Source
type SourceFunc func(ctx context.Context) (Position, error)

// CurrentPosition вызывает f(ctx)
func (f SourceFunc) CurrentPosition(ctx context.Context) (Position, error) {
	return f(ctx)
}

// Reported - координаты (или причина их отсутствия), присланные клиентом
type Reported struct {
	Position *Position
	Failure  string
}

// CurrentPosition возвращает присланную выборку
func (r Reported) CurrentPosition(ctx context.Context) (Position, error) {
	if r.Failure != "" {
		return Position{}, fmt.Errorf("%w: client reported %s", models.ErrLocationUnavailable, r.Failure)
	}
	if r.Position == nil {
		return Position{}, fmt.Errorf("%w: no sample provided", models.ErrLocationUnavailable)
	}
	return *r.Position, nil
}

// Acquire получает одну выборку из src, ожидая не дольше timeout.
// Отмена ctx, таймаут и ошибки источника возвращаются как ErrLocationUnavailable.
func Acquire(ctx context.Context, src Source, timeout time.Duration) (Position, error) {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type result struct {
		pos Position
		err error
	}
	ch := make(chan result, 1)
	go func() {
		pos, err := src.CurrentPosition(ctx)
		ch <- result{pos: pos, err: err}
	}()

	select {
	case <-ctx.Done():
		return Position{}, fmt.Errorf("%w: %v", models.ErrLocationUnavailable, ctx.Err())
	case r := <-ch:
		if r.err != nil {
			if errors.Is(r.err, models.ErrLocationUnavailable) {
				return Position{}, r.err
			}
			return Position{}, fmt.Errorf("%w: %v", models.ErrLocationUnavailable, r.err)
		}
		return r.pos, nil
	}
}

// CheckAccuracy отклоняет выборку с точностью хуже maxMeters. maxMeters <= 0 отключает проверку
func CheckAccuracy(pos Position, maxMeters float64) error {
	if maxMeters <= 0 || pos.AccuracyMeters == nil {
		return nil
	}
	if *pos.AccuracyMeters > maxMeters {
		return fmt.Errorf("%w: accuracy %.0fm worse than %.0fm", models.ErrLocationUnavailable, *pos.AccuracyMeters, maxMeters)
	}
	return nil
}
