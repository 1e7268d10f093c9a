package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"tailorshop/internal/repositories"
	apperrors "tailorshop/pkg/errors"
)

// AuthPermissionService resolves a user's roles and the permissions those
// roles grant. Both lookups run on every authenticated request, so results
// are cached in redis. It satisfies the auth middleware's RoleResolver and
// PermissionResolver interfaces.
type AuthPermissionService struct {
	userRepo  repositories.UserRepositoryInterface
	roleRepo  repositories.RoleRepositoryInterface
	cacheRepo repositories.CacheRepositoryInterface
	logger    *zap.Logger
	cacheTTL  time.Duration
}

func NewAuthPermissionService(
	userRepo repositories.UserRepositoryInterface,
	roleRepo repositories.RoleRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *AuthPermissionService {
	return &AuthPermissionService{
		userRepo:  userRepo,
		roleRepo:  roleRepo,
		cacheRepo: cacheRepo,
		logger:    logger,
		cacheTTL:  cacheTTL,
	}
}

func userRolesCacheKey(userID uint64) string {
	return fmt.Sprintf("auth:roles:user:%d", userID)
}

func rolePermissionsCacheKey(roleNames []string) string {
	sorted := append([]string(nil), roleNames...)
	sort.Strings(sorted)
	return "auth:permissions:roles:" + strings.Join(sorted, ",")
}

func (s *AuthPermissionService) GetUserRoleNames(ctx context.Context, userID uint64) ([]string, error) {
	cacheKey := userRolesCacheKey(userID)
	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil {
		var roles []string
		if err := json.Unmarshal([]byte(cached), &roles); err == nil {
			return roles, nil
		}
	}

	roles, err := s.userRepo.GetUserRoleNames(ctx, userID)
	if err != nil {
		s.logger.Error("failed to load user roles", zap.Uint64("userID", userID), zap.Error(err))
		return nil, apperrors.ErrInternalServer
	}

	if payload, err := json.Marshal(roles); err == nil {
		if err := s.cacheRepo.Set(ctx, cacheKey, string(payload), s.cacheTTL); err != nil {
			s.logger.Warn("failed to cache user roles", zap.Uint64("userID", userID), zap.Error(err))
		}
	}
	return roles, nil
}

func (s *AuthPermissionService) GetPermissionsForRoles(ctx context.Context, roleNames []string) (map[string]bool, error) {
	cacheKey := rolePermissionsCacheKey(roleNames)

	var names []string
	if cached, err := s.cacheRepo.Get(ctx, cacheKey); err == nil {
		if err := json.Unmarshal([]byte(cached), &names); err != nil {
			names = nil
		}
	}
	if names == nil {
		var err error
		names, err = s.roleRepo.GetPermissionNamesForRoles(ctx, roleNames)
		if err != nil {
			s.logger.Error("failed to load role permissions", zap.Strings("roles", roleNames), zap.Error(err))
			return nil, apperrors.ErrInternalServer
		}
		if payload, err := json.Marshal(names); err == nil {
			if err := s.cacheRepo.Set(ctx, cacheKey, string(payload), s.cacheTTL); err != nil {
				s.logger.Warn("failed to cache role permissions", zap.Strings("roles", roleNames), zap.Error(err))
			}
		}
	}

	perms := make(map[string]bool, len(names))
	for _, name := range names {
		perms[name] = true
	}
	return perms, nil
}

// InvalidateUserRoles drops the cached role set after role assignment
// changes. Permission sets expire on their own TTL.
func (s *AuthPermissionService) InvalidateUserRoles(ctx context.Context, userID uint64) {
	if err := s.cacheRepo.Del(ctx, userRolesCacheKey(userID)); err != nil {
		s.logger.Warn("failed to invalidate user roles cache", zap.Uint64("userID", userID), zap.Error(err))
	}
}
