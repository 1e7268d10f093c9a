package services

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tailorshop/internal/dto"
	"tailorshop/internal/repositories"
	apperrors "tailorshop/pkg/errors"
	"tailorshop/pkg/service"
)

type AuthService struct {
	userRepo   repositories.UserRepositoryInterface
	jwtService service.JWTService
	logger     *zap.Logger
}

func NewAuthService(userRepo repositories.UserRepositoryInterface, jwtService service.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

func (s *AuthService) Login(ctx context.Context, payload dto.LoginDTO) (*dto.TokenPairDTO, error) {
	user, err := s.userRepo.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrWrongCredentials
		}
		return nil, err
	}
	if !user.IsActive {
		return nil, apperrors.ErrForbidden
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(payload.Password)); err != nil {
		return nil, apperrors.ErrWrongCredentials
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Uint64("userID", user.ID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *AuthService) Refresh(ctx context.Context, payload dto.RefreshTokenDTO) (*dto.TokenPairDTO, error) {
	claims, err := s.jwtService.ValidateToken(payload.RefreshToken)
	if err != nil {
		return nil, err
	}
	if !claims.IsRefreshToken {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindUser(ctx, claims.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}
	if !user.IsActive {
		return nil, apperrors.ErrForbidden
	}

	access, refresh, err := s.jwtService.GenerateTokens(user.ID)
	if err != nil {
		s.logger.Error("failed to generate tokens", zap.Uint64("userID", user.ID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}
	return &dto.TokenPairDTO{AccessToken: access, RefreshToken: refresh}, nil
}
