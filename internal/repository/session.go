package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/syket-git/Elaka/internal/models"
	"github.com/syket-git/Elaka/internal/service"
)

// SessionStore читает сессии, которые пишет сервис авторизации: ключ prefix+token, значение - id пользователя
type SessionStore struct {
	redisClient redis.Cmdable
	prefix      string
}

func NewSessionStore(redisClient redis.Cmdable, prefix string) service.IdentityProvider {
	return &SessionStore{
		redisClient: redisClient,
		prefix:      prefix,
	}
}

func (s *SessionStore) ResolveUser(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", models.ErrUnauthenticated
	}

	userID, err := s.redisClient.Get(ctx, s.prefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", models.ErrUnauthenticated
		}
		return "", fmt.Errorf("failed to resolve session: %w", err)
	}
	if userID == "" {
		return "", models.ErrUnauthenticated
	}
	return userID, nil
}
