package contracts

import (
	"context"

	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Register(ctx context.Context, request *requests.Register) (*responses.Register, error)
	Login(ctx context.Context, request *requests.Login) (*responses.Login, error)
	Logout(ctx context.Context, session *models.Session) error
}

type AccountRepository interface {
	CreateAccount(ctx context.Context, account *models.Account) (accountID string, err error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByUsername(ctx context.Context, username string) (*models.Account, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (*models.Account, error)
	FindByID(ctx context.Context, accountID string) (*models.Account, error)
	UpdateAccount(ctx context.Context, account *models.Account) error
	DeleteByID(ctx context.Context, accountID string) error
}
