package contracts

import (
	"context"

	"counselink-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, session *models.Session) (token string, err error)
	ParseSessionToken(ctx context.Context, token string) (*models.Session, error)
	DestroySession(ctx context.Context, sessionID string) error
}
