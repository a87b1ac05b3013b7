package user

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/valentinalvarez/ecommerce-accounts/cmd/config"
	"github.com/valentinalvarez/ecommerce-accounts/constant"
	"github.com/valentinalvarez/ecommerce-accounts/dto"
	"github.com/valentinalvarez/ecommerce-accounts/model"
	redisrepo "github.com/valentinalvarez/ecommerce-accounts/repository/redis"
	userrepo "github.com/valentinalvarez/ecommerce-accounts/repository/user"
	"github.com/valentinalvarez/ecommerce-accounts/thirdparty/rabbitmq"
	"github.com/valentinalvarez/ecommerce-accounts/utils/errors"
	"github.com/valentinalvarez/ecommerce-accounts/utils/logger"
	"go.uber.org/zap"
)

type UserApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	AdminLogin(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error)
	CurrentUser(ctx context.Context, userID uint64) (*model.UserProfile, error)
	Update(ctx context.Context, userID uint64, req *model.UpdateUserRequest) (*model.UserProfile, error)
	Delete(ctx context.Context, userID uint64, sessionID string, req *model.DeleteUserRequest) error
	ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error
	ValidateToken(ctx context.Context, tokenString string) (uint64, string, error)
}

type UserAppImpl struct {
	config      *config.Config
	transformer *dto.Transformer
	userRepo    userrepo.UserRepository
	redisRepo   redisrepo.RedisRepository
	publisher   *rabbitmq.Publisher
}

func NewUserApp(config *config.Config, transformer *dto.Transformer, userRepo userrepo.UserRepository, redisRepo redisrepo.RedisRepository, publisher *rabbitmq.Publisher) UserApp {
	return &UserAppImpl{
		config:      config,
		transformer: transformer,
		userRepo:    userRepo,
		redisRepo:   redisRepo,
		publisher:   publisher,
	}
}

func (s *UserAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	saved, errs := s.transformer.SaveUser(req)
	if errs != nil {
		return nil, errors.SetValidationError(errs)
	}

	// Check if user exists by email
	existingUser, err := s.userRepo.Get(ctx, &model.UserFilter{Email: saved.Email})
	if err != nil {
		logger.Error("[Register] err userRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existingUser != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	userEntity := &model.UserEntity{
		FirstName:    saved.FirstName,
		LastName:     saved.LastName,
		Email:        saved.Email,
		Age:          saved.Age,
		PasswordHash: saved.PasswordHash,
		Role:         saved.Role,
		Phone:        saved.Phone,
	}

	userEntity, err = s.userRepo.Create(ctx, userEntity)
	if err != nil {
		logger.Error("[Register] err userRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.RegisterResponse{
		FirstName: userEntity.FirstName,
		LastName:  userEntity.LastName,
		Email:     userEntity.Email,
		Role:      userEntity.Role,
	}, nil
}

func (s *UserAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	lookup, errs := s.transformer.GetUser(&model.GetUserRequest{Email: req.Email, Password: req.Password})
	if errs != nil {
		return nil, errors.SetValidationError(errs)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: lookup.Email})
	if err != nil {
		logger.Error("[Login] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	profile, errs := s.transformer.LoadUser(req, user)
	if errs != nil {
		return nil, errors.SetValidationError(errs)
	}

	token, jti, err := s.generateJWT(profile.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, profile.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Role:      profile.Role,
		Token:     token,
	}, nil
}

// AdminLogin authenticates against the single configured administrator
// account. The admin never exists in the users table; its session carries
// user id 0.
func (s *UserAppImpl) AdminLogin(ctx context.Context, req *model.AdminLoginRequest) (*model.AdminLoginResponse, error) {
	profile, errs := s.transformer.LoadAdmin(req, s.adminAccount())
	if errs != nil {
		return nil, errors.SetValidationError(errs)
	}

	token, jti, err := s.generateJWT(0)
	if err != nil {
		logger.Error("[AdminLogin] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, 0, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[AdminLogin] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AdminLoginResponse{
		Email:     profile.Email,
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		Role:      profile.Role,
		Token:     token,
	}, nil
}

func (s *UserAppImpl) CurrentUser(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[CurrentUser] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// no password in the request, so only the projection rules run
	profile, errs := s.transformer.LoadUser(&model.LoginRequest{Email: ""}, user)
	if errs != nil {
		return nil, errors.SetValidationError(errs)
	}

	return profile, nil
}

func (s *UserAppImpl) Update(ctx context.Context, userID uint64, req *model.UpdateUserRequest) (*model.UserProfile, error) {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Update] err userRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	updated, errs := s.transformer.UpdateUser(req, user)
	if errs != nil {
		return nil, errors.SetValidationError(errs)
	}

	err = s.userRepo.Update(ctx, &model.UserEntity{
		ID:        updated.ID,
		FirstName: updated.FirstName,
		LastName:  updated.LastName,
		Email:     updated.Email,
		Age:       updated.Age,
		Role:      updated.Role,
		Phone:     updated.Phone,
	})
	if err != nil {
		logger.Error("[Update] err userRepo.Update", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.UserProfile{
		ID:        updated.ID,
		Email:     updated.Email,
		Age:       updated.Age,
		FirstName: updated.FirstName,
		LastName:  updated.LastName,
		Phone:     updated.Phone,
		Role:      updated.Role,
	}, nil
}

func (s *UserAppImpl) Delete(ctx context.Context, userID uint64, sessionID string, req *model.DeleteUserRequest) error {
	user, err := s.userRepo.Get(ctx, &model.UserFilter{ID: userID})
	if err != nil {
		logger.Error("[Delete] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	_, errs := s.transformer.DeleteUser(req, user)
	if errs != nil {
		return errors.SetValidationError(errs)
	}

	if err := s.userRepo.Delete(ctx, user.ID); err != nil {
		logger.Error("[Delete] err userRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// the account is gone either way, the session also falls out on expiry
	if err := s.redisRepo.DeleteSession(ctx, sessionID); err != nil {
		logger.Error("[Delete] err DeleteSession", zap.String("error", err.Error()))
	}

	return nil
}

func (s *UserAppImpl) ForgotPassword(ctx context.Context, req *model.ForgotPasswordRequest) error {
	lookup, errs := s.transformer.GetUser(&model.GetUserRequest{Email: req.Email})
	if errs != nil {
		return errors.SetValidationError(errs)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{Email: lookup.Email})
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	reset, errs := s.transformer.CreateResetToken(user)
	if errs != nil {
		return errors.SetValidationError(errs)
	}

	err = s.userRepo.SetResetToken(ctx, user.ID, reset.ResetToken, reset.ResetExpires)
	if err != nil {
		logger.Error("[ForgotPassword] err userRepo.SetResetToken", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	// the token is already stored, a lost mail event is recoverable by
	// requesting another reset
	if s.publisher != nil {
		msg := rabbitmq.PasswordResetMessage{
			Email:      reset.Email,
			FirstName:  reset.FirstName,
			ResetToken: reset.ResetToken,
			ExpiresAt:  reset.ResetExpires,
		}
		if err := s.publisher.PublishPasswordReset(msg); err != nil {
			logger.Error("[ForgotPassword] err publish password reset", zap.String("error", err.Error()))
		}
	}

	return nil
}

func (s *UserAppImpl) ResetPassword(ctx context.Context, req *model.ResetPasswordRequest) error {
	// an empty token must never reach the repository, the filter would
	// match an arbitrary row
	if req.Token == "" {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	user, err := s.userRepo.Get(ctx, &model.UserFilter{ResetToken: req.Token})
	if err != nil {
		logger.Error("[ResetPassword] err userRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if user == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if user.PasswordResetExpires == nil || time.Now().After(*user.PasswordResetExpires) {
		return errors.SetCustomError(constant.ErrResetTokenExpired)
	}

	creds, errs := s.transformer.ResetPassword(req, user)
	if errs != nil {
		return errors.SetValidationError(errs)
	}

	if err := s.userRepo.UpdatePassword(ctx, user.ID, creds.PasswordHash); err != nil {
		logger.Error("[ResetPassword] err userRepo.UpdatePassword", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	return nil
}

func (s *UserAppImpl) ValidateToken(ctx context.Context, tokenString string) (uint64, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid claims")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid user id in token")
	}

	jti := claims.ID
	if jti == "" {
		return 0, "", fmt.Errorf("token missing jti")
	}

	redisUserID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return 0, "", fmt.Errorf("invalid or expired session")
	}

	if redisUserID != userID {
		return 0, "", fmt.Errorf("token does not match user session")
	}

	return userID, jti, nil
}

func (s *UserAppImpl) adminAccount() *model.AdminAccount {
	if s.config.Admin.Email == "" {
		return nil
	}
	return &model.AdminAccount{
		FirstName: s.config.Admin.FirstName,
		LastName:  s.config.Admin.LastName,
		Email:     s.config.Admin.Email,
		Password:  s.config.Admin.PasswordHash,
		Role:      constant.RoleAdmin,
	}
}

// generateJWT creates a signed token whose jti keys the Redis session
func (s *UserAppImpl) generateJWT(userID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", userID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}
