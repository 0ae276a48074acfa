package auth

import (
	"context"
	"errors"
	"medibook-service/internal/app/config"
	"medibook-service/internal/app/contracts"
	"medibook-service/internal/app/models"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"medibook-service/internal/pkg/dto/responses"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"strings"
	"sync"

	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository contracts.UserRepository
	InternalConfig *config.InternalConfig
	Log            *zap.Logger
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository: userRepository,
			InternalConfig: internalConfig,
			Log:            logger,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) RegisterUser(ctx context.Context, request *requests.RegisterUser) (*responses.RegisterUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.RegisterUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		uc.Log.Warn("authUsecase.RegisterUser email already registered",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrEmailAlreadyExist(errors.New("email already registered"))
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error hashing password",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrHashPassword(err)
	}

	userModel := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Phone:    request.Phone,
		Password: hashedPassword,
		Role:     constvars.RoleUser,
	}
	userID, err := uc.UserRepository.CreateUser(ctx, userModel)
	if err != nil {
		uc.Log.Error("authUsecase.RegisterUser error creating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.RegisterUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return &responses.RegisterUser{UserID: userID}, nil
}

func (uc *authUsecase) LoginUser(ctx context.Context, request *requests.LoginUser) (*responses.LoginUser, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("authUsecase.LoginUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error finding user by email",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	// Unknown email and wrong password produce the same client message.
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		uc.Log.Warn("authUsecase.LoginUser invalid credentials",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrInvalidEmailOrPassword(errors.New("invalid email or password"))
	}

	token, err := utils.GenerateAuthJWT(user.ID, user.Role, uc.InternalConfig.JWT.Secret, uc.InternalConfig.JWT.ExpTimeInHour)
	if err != nil {
		uc.Log.Error("authUsecase.LoginUser error generating token",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrTokenGenerate(err)
	}

	uc.Log.Info("authUsecase.LoginUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingRoleKey, user.Role),
	)
	return &responses.LoginUser{
		Token: token,
		Role:  user.Role,
		Name:  user.Name,
	}, nil
}

// EnsureAdminUser seeds the configured admin account on startup. It is
// idempotent: an existing account with the admin email is left untouched,
// and nothing is seeded when no admin credentials are configured.
func (uc *authUsecase) EnsureAdminUser(ctx context.Context) error {
	if uc.InternalConfig.Admin.Email == "" || uc.InternalConfig.Admin.Password == "" {
		uc.Log.Warn("authUsecase.EnsureAdminUser seed skipped: ADMIN_EMAIL or ADMIN_PASSWORD is not set")
		return nil
	}

	adminEmail := strings.ToLower(uc.InternalConfig.Admin.Email)

	existingAdmin, err := uc.UserRepository.FindByEmail(ctx, adminEmail)
	if err != nil {
		return err
	}
	if existingAdmin != nil {
		return nil
	}

	hashedPassword, err := utils.HashPassword(uc.InternalConfig.Admin.Password)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	adminModel := &models.User{
		Name:     uc.InternalConfig.Admin.Name,
		Email:    adminEmail,
		Phone:    "0000000000",
		Password: hashedPassword,
		Role:     constvars.RoleAdmin,
	}
	adminID, err := uc.UserRepository.CreateUser(ctx, adminModel)
	if err != nil {
		return err
	}

	uc.Log.Info("authUsecase.EnsureAdminUser seeded admin account",
		zap.String(constvars.LoggingUserIDKey, adminID),
	)
	return nil
}
