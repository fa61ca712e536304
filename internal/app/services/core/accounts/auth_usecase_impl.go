package accounts

import (
	"context"
	"fmt"
	"sync"
	"time"

	"counselink-service/internal/app/config"
	"counselink-service/internal/app/contracts"
	"counselink-service/internal/app/models"
	"counselink-service/internal/pkg/constvars"
	"counselink-service/internal/pkg/dto/requests"
	"counselink-service/internal/pkg/dto/responses"
	"counselink-service/internal/pkg/exceptions"
	"counselink-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type authUsecase struct {
	AccountRepository contracts.AccountRepository
	SessionService    contracts.SessionService
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	accountRepository contracts.AccountRepository,
	sessionService contracts.SessionService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			AccountRepository: accountRepository,
			SessionService:    sessionService,
			InternalConfig:    internalConfig,
			Log:               logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Register(ctx context.Context, request *requests.Register) (*responses.Register, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existing, err := uc.AccountRepository.FindByEmailOrUsername(ctx, request.Email, request.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if existing.Email == request.Email {
			return nil, exceptions.ErrEmailAlreadyExist(fmt.Errorf("email %s taken", request.Email))
		}
		return nil, exceptions.ErrUsernameAlreadyExist(fmt.Errorf("username %s taken", request.Username))
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Email:    request.Email,
		Username: request.Username,
		Password: hashed,
		Fullname: request.Fullname,
		Role:     request.Role,
	}

	accountID, err := uc.AccountRepository.CreateAccount(ctx, account)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, accountID),
	)
	return &responses.Register{
		AccountID: accountID,
		Email:     account.Email,
		Username:  account.Username,
		Role:      account.Role,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	account, err := uc.AccountRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("username %s not found", request.Username))
	}
	if !utils.CheckPasswordHash(request.Password, account.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(fmt.Errorf("password mismatch for %s", request.Username))
	}

	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		AccountID: account.ID,
		Role:      account.Role,
		Email:     account.Email,
		ExpiresAt: time.Now().Add(time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour),
	}

	token, err := uc.SessionService.CreateSession(ctx, session)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, account.ID),
	)
	return &responses.Login{
		Token:    token,
		Username: account.Username,
		Role:     account.Role,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAccountIDKey, session.AccountID),
	)

	return uc.SessionService.DestroySession(ctx, session.SessionID)
}
