// Package verification содержит машину состояний верификации жителя:
// чистые правила поверх истории засчитанных чек-инов.
package verification

import (
	"math"
	"sort"
	"time"

	"github.com/syket-git/Elaka/internal/models"
)

const day = 24 * time.Hour

// Policy - параметры протокола верификации
type Policy struct {
	RequiredCheckins int
	Window           time.Duration
	Location         *time.Location
}

// Progress - результат пересчёта прогресса по одному району
type Progress struct {
	State     models.VerificationState
	Qualified bool
	// DistinctDays - все засчитанные дни по району
	DistinctDays int
	// CheckinCount - дни, которые идут в текущий прогресс
	CheckinCount      int
	WindowCheckins    int
	DaysSpan          float64
	RemainingCheckins int
	RemainingDays     int
	FirstCheckin      *time.Time
	LastCheckin       *time.Time
}

// NewPolicy создаёт политику. windowDays задаётся в сутках
func NewPolicy(requiredCheckins, windowDays int, loc *time.Location) Policy {
	if loc == nil {
		loc = time.UTC
	}
	return Policy{
		RequiredCheckins: requiredCheckins,
		Window:           time.Duration(windowDays) * day,
		Location:         loc,
	}
}

// DefaultPolicy - 3 чек-ина в разные дни в пределах 7 суток
func DefaultPolicy() Policy {
	return NewPolicy(3, 7, time.UTC)
}

// WindowDays возвращает длину окна в сутках
func (p Policy) WindowDays() int {
	return int(p.Window / day)
}

// CalendarDay возвращает начало календарного дня момента t в часовом поясе политики
func (p Policy) CalendarDay(t time.Time) time.Time {
	loc := p.location()
	lt := t.In(loc)
	return time.Date(lt.Year(), lt.Month(), lt.Day(), 0, 0, 0, 0, loc)
}

// Distinct оставляет самый ранний чек-ин каждого календарного дня, по возрастанию времени
func (p Policy) Distinct(times []time.Time) []time.Time {
	byDay := make(map[time.Time]time.Time, len(times))
	for _, t := range times {
		d := p.CalendarDay(t)
		if prev, ok := byDay[d]; !ok || t.Before(prev) {
			byDay[d] = t
		}
	}

	days := make([]time.Time, 0, len(byDay))
	for _, t := range byDay {
		days = append(days, t)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })
	return days
}

// Evaluate пересчитывает прогресс по времени засчитанных чек-инов на момент now.
// Порог выполнен, если последние RequiredCheckins разных дней укладываются в Window
// от самого свежего чек-ина.
func (p Policy) Evaluate(times []time.Time, now time.Time) Progress {
	days := p.Distinct(times)
	progress := Progress{
		State:             models.StateUnverified,
		DistinctDays:      len(days),
		RemainingCheckins: p.RequiredCheckins,
	}
	if len(days) == 0 {
		return progress
	}

	newest := days[len(days)-1]
	run := make([]time.Time, 0, len(days))
	for _, t := range days {
		if newest.Sub(t) <= p.Window {
			run = append(run, t)
		}
		if now.Sub(t) <= p.Window {
			progress.WindowCheckins++
		}
	}

	progress.Qualified = len(run) >= p.RequiredCheckins

	// Пока дней меньше порога, показываем весь прогресс; дальше - только окно от последнего чек-ина
	considered := days
	if len(days) >= p.RequiredCheckins {
		considered = run
	}
	first, last := considered[0], considered[len(considered)-1]
	progress.CheckinCount = len(considered)
	progress.FirstCheckin = &first
	progress.LastCheckin = &last
	progress.DaysSpan = math.Round(last.Sub(first).Hours()/24*100) / 100

	if progress.Qualified {
		progress.State = models.StateVerified
		progress.RemainingCheckins = 0
		progress.RemainingDays = 0
		return progress
	}

	progress.State = models.StateInProgress
	progress.RemainingCheckins = max(0, p.RequiredCheckins-len(considered))
	elapsedDays := int(now.Sub(first) / day)
	progress.RemainingDays = max(0, p.WindowDays()-elapsedDays)
	return progress
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.UTC
	}
	return p.Location
}
