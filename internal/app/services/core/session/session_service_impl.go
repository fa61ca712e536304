package session

import (
	"context"
	"fmt"
	"time"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/contracts"
	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/exceptions"
	"counselink-service/internal/pkg/utils"

	"github.com/goccy/go-json"
)

type sessionService struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionService(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) contracts.SessionService {
	return &sessionService{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

// CreateSession stores the session in redis keyed by its id and returns a
// JWT carrying only that id. The redis TTL and the token expiry match.
func (svc *sessionService) CreateSession(ctx context.Context, session *models.Session) (string, error) {
	expiry := time.Duration(svc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session.ExpiresAt = time.Now().Add(expiry)

	redisKey := constvars.SessionKeyPrefix + session.SessionID
	if err := svc.RedisRepository.Set(ctx, redisKey, session, expiry); err != nil {
		return "", err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, svc.InternalConfig.JWT.Secret, svc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		return "", err
	}
	return token, nil
}

func (svc *sessionService) ParseSessionToken(ctx context.Context, token string) (*models.Session, error) {
	sessionID, err := utils.ParseSessionJWT(token, svc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	redisKey := constvars.SessionKeyPrefix + sessionID
	sessionData, err := svc.RedisRepository.Get(ctx, redisKey)
	if err != nil {
		return nil, err
	}
	if sessionData == "" {
		return nil, exceptions.ErrTokenInvalidOrExpired(fmt.Errorf("session %s not found", sessionID))
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(sessionData), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (svc *sessionService) DestroySession(ctx context.Context, sessionID string) error {
	return svc.RedisRepository.Delete(ctx, constvars.SessionKeyPrefix+sessionID)
}
