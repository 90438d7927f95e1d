package v1

import (
	"context"
	"math"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

type userLimiter struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// CheckinLimiter - token bucket на пользователя для попыток чек-ина
type CheckinLimiter struct {
	mu       sync.Mutex
	limiters map[string]*userLimiter
	limit    rate.Limit
	interval time.Duration
	burst    int
}

// NewCheckinLimiter создаёт лимитер. perMinute <= 0 отключает ограничение
func NewCheckinLimiter(perMinute, burst int) *CheckinLimiter {
	limit := rate.Inf
	var interval time.Duration
	if perMinute > 0 {
		interval = time.Minute / time.Duration(perMinute)
		limit = rate.Every(interval)
	}
	if burst < 1 {
		burst = 1
	}
	return &CheckinLimiter{
		limiters: make(map[string]*userLimiter),
		limit:    limit,
		interval: interval,
		burst:    burst,
	}
}

// Allow расходует токен пользователя
func (l *CheckinLimiter) Allow(userID string) bool {
	l.mu.Lock()
	ul, ok := l.limiters[userID]
	if !ok {
		ul = &userLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.limiters[userID] = ul
	}
	ul.lastAccess = time.Now()
	l.mu.Unlock()

	return ul.limiter.Allow()
}

// Cleanup удаляет лимитеры, к которым не обращались дольше maxIdle
func (l *CheckinLimiter) Cleanup(maxIdle time.Duration) {
	now := time.Now()
	l.mu.Lock()
	defer l.mu.Unlock()
	for userID, ul := range l.limiters {
		if now.Sub(ul.lastAccess) > maxIdle {
			delete(l.limiters, userID)
		}
	}
}

// Run периодически чистит неактивных пользователей до отмены ctx
func (l *CheckinLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.Cleanup(2 * interval)
		}
	}
}

func (l *CheckinLimiter) retryAfterSeconds() int {
	if l.interval <= 0 {
		return 1
	}
	return max(1, int(math.Ceil(l.interval.Seconds())))
}

// RateLimitMiddleware отклоняет чек-ины сверх лимита, не доходя до журнала
func RateLimitMiddleware(limiter *CheckinLimiter, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(userIDKey)
		if limiter.Allow(userID) {
			c.Next()
			return
		}

		log.WithField("user_id", userID).Warn("Check-in rate limit exceeded")
		c.Header("Retry-After", strconv.Itoa(limiter.retryAfterSeconds()))
		c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many check-in attempts, try again later"})
	}
}
