package services

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"tailorshop/internal/dto"
	"tailorshop/internal/entities"
	"tailorshop/internal/repositories"
	apperrors "tailorshop/pkg/errors"
	"tailorshop/pkg/utils"
)

type UserService struct {
	userRepo repositories.UserRepositoryInterface
	roleRepo repositories.RoleRepositoryInterface
	perms    *AuthPermissionService
	logger   *zap.Logger
}

func NewUserService(
	userRepo repositories.UserRepositoryInterface,
	roleRepo repositories.RoleRepositoryInterface,
	perms *AuthPermissionService,
	logger *zap.Logger,
) *UserService {
	return &UserService{
		userRepo: userRepo,
		roleRepo: roleRepo,
		perms:    perms,
		logger:   logger,
	}
}

func (s *UserService) GetUsers(ctx context.Context, limit, offset uint64, search string) (*dto.UserListResponseDTO, error) {
	users, total, err := s.userRepo.GetUsers(ctx, limit, offset, search)
	if err != nil {
		return nil, err
	}
	list := make([]dto.UserDTO, 0, len(users))
	for i := range users {
		u, err := s.userToDTO(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		list = append(list, *u)
	}
	return &dto.UserListResponseDTO{List: list, TotalCount: total}, nil
}

func (s *UserService) FindUser(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.userToDTO(ctx, user)
}

func (s *UserService) CreateUser(ctx context.Context, payload dto.CreateUserDTO) (*dto.UserDTO, error) {
	for _, roleID := range payload.RoleIDs {
		if _, err := s.roleRepo.FindRole(ctx, roleID); err != nil {
			return nil, apperrors.NewInvalidInputError("role %d does not exist", roleID)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(payload.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("failed to hash password", zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	created, err := s.userRepo.CreateUser(ctx, entities.User{
		FullName:     payload.FullName,
		Email:        payload.Email,
		Phone:        payload.Phone,
		PasswordHash: string(hash),
	}, payload.RoleIDs)
	if err != nil {
		return nil, err
	}
	s.logger.Info("user created", zap.Uint64("id", created.ID), zap.String("email", created.Email))
	return s.userToDTO(ctx, created)
}

func (s *UserService) UpdateUser(ctx context.Context, id uint64, payload dto.UpdateUserDTO) (*dto.UserDTO, error) {
	updated, err := s.userRepo.UpdateUser(ctx, id, payload)
	if err != nil {
		return nil, err
	}
	if len(payload.RoleIDs) > 0 {
		if err := s.userRepo.SetUserRoles(ctx, id, payload.RoleIDs); err != nil {
			return nil, err
		}
		s.perms.InvalidateUserRoles(ctx, id)
	}
	return s.userToDTO(ctx, updated)
}

func (s *UserService) DeleteUser(ctx context.Context, id uint64) error {
	if err := s.userRepo.SoftDeleteUser(ctx, id); err != nil {
		return err
	}
	s.perms.InvalidateUserRoles(ctx, id)
	return nil
}

func (s *UserService) GetRoles(ctx context.Context) ([]dto.RoleDTO, error) {
	roles, err := s.roleRepo.GetRoles(ctx)
	if err != nil {
		return nil, err
	}
	list := make([]dto.RoleDTO, 0, len(roles))
	for _, r := range roles {
		list = append(list, dto.RoleDTO{ID: r.ID, Name: r.Name, Description: r.Description})
	}
	return list, nil
}

func (s *UserService) userToDTO(ctx context.Context, u *entities.User) (*dto.UserDTO, error) {
	roles, err := s.userRepo.GetUserRoleNames(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &dto.UserDTO{
		ID:        u.ID,
		FullName:  u.FullName,
		Email:     u.Email,
		Phone:     u.Phone,
		Roles:     roles,
		IsActive:  u.IsActive,
		CreatedAt: utils.FormatTimestamp(u.CreatedAt),
	}, nil
}
