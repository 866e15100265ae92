package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"makerspace-system/internal/entities"
	"makerspace-system/internal/repositories"
	apperrors "makerspace-system/pkg/errors"

	"go.uber.org/zap"
)

// Enforcer is the permission oracle the core services depend on. They never
// see the role/permission representation behind it, only the allow/deny
// decision for an (action, resource) pair.
type Enforcer interface {
	Enforce(ctx context.Context, subject *entities.User, action string, resource string) error
}

type PermissionServiceInterface interface {
	Enforcer
	GetRolePermissions(ctx context.Context, roleID uint64) ([]entities.Permission, error)
	InvalidateRolePermissionsCache(ctx context.Context, roleID uint64) error
}

type PermissionService struct {
	permissionRepo repositories.PermissionRepositoryInterface
	cacheRepo      repositories.CacheRepositoryInterface
	logger         *zap.Logger
	cacheTTL       time.Duration
}

func NewPermissionService(
	permissionRepo repositories.PermissionRepositoryInterface,
	cacheRepo repositories.CacheRepositoryInterface,
	logger *zap.Logger,
	cacheTTL time.Duration,
) PermissionServiceInterface {
	return &PermissionService{
		permissionRepo: permissionRepo,
		cacheRepo:      cacheRepo,
		logger:         logger,
		cacheTTL:       cacheTTL,
	}
}

func (s *PermissionService) GetRolePermissions(ctx context.Context, roleID uint64) ([]entities.Permission, error) {
	cacheKey := fmt.Sprintf("auth:permissions:role:%d", roleID)
	var permissions []entities.Permission

	cachedJSON, errGet := s.cacheRepo.Get(ctx, cacheKey)
	if errGet == nil {
		if err := json.Unmarshal([]byte(cachedJSON), &permissions); err == nil {
			s.logger.Debug("role permissions served from cache", zap.Uint64("roleID", roleID))
			return permissions, nil
		}
		s.logger.Warn("failed to decode cached role permissions", zap.String("key", cacheKey), zap.Uint64("roleID", roleID))
	}

	permissions, errDB := s.permissionRepo.GetPermissionsByRoleID(ctx, roleID)
	if errDB != nil {
		s.logger.Error("failed to load role permissions from database", zap.Uint64("roleID", roleID), zap.Error(errDB))
		return nil, apperrors.ErrInternalServer
	}

	if len(permissions) > 0 {
		if payload, err := json.Marshal(permissions); err == nil {
			if errSet := s.cacheRepo.Set(ctx, cacheKey, string(payload), s.cacheTTL); errSet != nil {
				s.logger.Error("failed to cache role permissions", zap.Uint64("roleID", roleID), zap.Error(errSet))
			}
		}
	}
	return permissions, nil
}

// Enforce allows the call when the subject's role holds a grant matching the
// (action, resource) pair. "*" matches anything on either side.
func (s *PermissionService) Enforce(ctx context.Context, subject *entities.User, action string, resource string) error {
	if subject == nil {
		return fmt.Errorf("%w: action=%s resource=%s", apperrors.ErrAuthorizationDenied, action, resource)
	}

	permissions, err := s.GetRolePermissions(ctx, subject.RoleID)
	if err != nil {
		return err
	}

	for _, p := range permissions {
		actionMatches := p.Action == "*" || p.Action == action
		resourceMatches := p.Resource == "*" || p.Resource == resource
		if actionMatches && resourceMatches {
			return nil
		}
	}

	s.logger.Warn("authorization denied",
		zap.Int64("pid", subject.PID),
		zap.String("action", action),
		zap.String("resource", resource),
	)
	return fmt.Errorf("%w: action=%s resource=%s", apperrors.ErrAuthorizationDenied, action, resource)
}

func (s *PermissionService) InvalidateRolePermissionsCache(ctx context.Context, roleID uint64) error {
	cacheKey := fmt.Sprintf("auth:permissions:role:%d", roleID)
	if err := s.cacheRepo.Del(ctx, cacheKey); err != nil {
		s.logger.Error("failed to invalidate role permission cache", zap.Uint64("roleID", roleID), zap.Error(err))
		return err
	}
	return nil
}
