package middleware

import (
	"context"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"tailorshop/pkg/contextkeys"
	apperrors "tailorshop/pkg/errors"
	"tailorshop/pkg/service"
	"tailorshop/pkg/utils"
)

// RoleResolver maps an authenticated user to their role names.
type RoleResolver interface {
	GetUserRoleNames(ctx context.Context, userID uint64) ([]string, error)
}

// PermissionResolver maps a set of roles to the union of their permission names.
type PermissionResolver interface {
	GetPermissionsForRoles(ctx context.Context, roleNames []string) (map[string]bool, error)
}

type AuthMiddleware struct {
	jwtService   service.JWTService
	roleResolver RoleResolver
	permResolver PermissionResolver
	logger       *zap.Logger
}

func NewAuthMiddleware(jwtSvc service.JWTService, roleResolver RoleResolver, permResolver PermissionResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:   jwtSvc,
		roleResolver: roleResolver,
		permResolver: permResolver,
		logger:       logger,
	}
}

// Auth validates the bearer token and places the actor's id and role names
// into the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		if claims.IsRefreshToken {
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		roles, err := m.roleResolver.GetUserRoleNames(c.Request().Context(), claims.UserID)
		if err != nil {
			m.logger.Error("failed to resolve user roles", zap.Uint64("userID", claims.UserID), zap.Error(err))
			return utils.ErrorResponse(c, apperrors.ErrUnauthorized, m.logger)
		}

		ctx := utils.WithActor(c.Request().Context(), claims.UserID, roles)
		c.SetRequest(c.Request().WithContext(ctx))
		return next(c)
	}
}

// RequirePermission gates a route on a permission name resolved through the
// actor's roles. Must run after Auth.
func (m *AuthMiddleware) RequirePermission(permission string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			roles, _ := ctx.Value(contextkeys.UserRolesKey).([]string)

			perms, err := m.permResolver.GetPermissionsForRoles(ctx, roles)
			if err != nil {
				m.logger.Error("failed to resolve permissions", zap.Strings("roles", roles), zap.Error(err))
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			if !perms[permission] {
				return utils.ErrorResponse(c, apperrors.ErrForbidden, m.logger)
			}
			return next(c)
		}
	}
}
