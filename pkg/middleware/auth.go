package middleware

import (
	"context"
	"strings"

	"makerspace-system/internal/services"
	"makerspace-system/pkg/contextkeys"
	apperrors "makerspace-system/pkg/errors"
	"makerspace-system/pkg/service"
	"makerspace-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type AuthMiddleware struct {
	jwtService        service.JWTService
	userService       services.UserServiceInterface
	permissionService services.PermissionServiceInterface
	logger            *zap.Logger
}

func NewAuthMiddleware(
	jwtSvc service.JWTService,
	userService services.UserServiceInterface,
	permissionService services.PermissionServiceInterface,
	logger *zap.Logger,
) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService:        jwtSvc,
		userService:       userService,
		permissionService: permissionService,
		logger:            logger,
	}
}

// Auth validates the bearer token and resolves the subject (user record plus
// permission map) into the request context.
func (m *AuthMiddleware) Auth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			m.logger.Warn("AuthMiddleware: empty Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrEmptyAuthHeader, m.logger)
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			m.logger.Warn("AuthMiddleware: malformed Authorization header")
			return utils.ErrorResponse(c, apperrors.ErrInvalidAuthHeader, m.logger)
		}

		claims, err := m.jwtService.ValidateToken(parts[1])
		if err != nil {
			m.logger.Warn("AuthMiddleware: token validation failed", zap.Error(err))
			return utils.ErrorResponse(c, err, m.logger)
		}

		if claims.IsRefreshToken {
			m.logger.Warn("AuthMiddleware: refresh token used for access")
			return utils.ErrorResponse(c, apperrors.ErrTokenIsNotAccess, m.logger)
		}

		ctx := c.Request().Context()

		user, err := m.userService.FindUserByID(ctx, claims.UserID)
		if err != nil {
			m.logger.Warn("AuthMiddleware: token subject no longer exists", zap.Uint64("userID", claims.UserID))
			return utils.ErrorResponse(c, apperrors.ErrInvalidToken, m.logger)
		}

		permissions, err := m.permissionService.GetRolePermissions(ctx, user.RoleID)
		if err != nil {
			return utils.ErrorResponse(c, err, m.logger)
		}
		permissionsMap := make(map[string]bool, len(permissions))
		for _, p := range permissions {
			permissionsMap[p.Action] = true
		}

		newCtx := context.WithValue(ctx, contextkeys.UserIDKey, user.ID)
		newCtx = context.WithValue(newCtx, contextkeys.UserKey, user)
		newCtx = context.WithValue(newCtx, contextkeys.UserPermissionsMapKey, permissionsMap)
		c.SetRequest(c.Request().WithContext(newCtx))

		return next(c)
	}
}
