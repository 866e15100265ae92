package services

import (
	"context"
	"testing"
	"time"

	"makerspace-system/internal/authz"
	"makerspace-system/internal/entities"
	apperrors "makerspace-system/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPermissionFixture(byRole map[uint64][]entities.Permission) (*PermissionService, *fakePermissionRepository, *fakeCacheRepository) {
	permRepo := &fakePermissionRepository{byRole: byRole}
	cache := newFakeCacheRepository()
	svc := NewPermissionService(permRepo, cache, zap.NewNop(), time.Minute).(*PermissionService)
	return svc, permRepo, cache
}

func TestEnforce_AllowAndDeny(t *testing.T) {
	svc, _, _ := newPermissionFixture(map[uint64][]entities.Permission{
		2: {
			{Action: authz.EquipmentUpdate, Resource: authz.ResourceEquipment},
			{Action: authz.EquipmentGetAllRequests, Resource: authz.ResourceEquipment},
		},
	})
	ctx := context.Background()
	ambassador := &entities.User{ID: 2, PID: 888888888, RoleID: 2}

	assert.NoError(t, svc.Enforce(ctx, ambassador, authz.EquipmentUpdate, authz.ResourceEquipment))
	assert.ErrorIs(t,
		svc.Enforce(ctx, ambassador, authz.EquipmentDeleteRequest, authz.ResourceEquipment),
		apperrors.ErrAuthorizationDenied,
	)
}

func TestEnforce_NilSubject(t *testing.T) {
	svc, permRepo, _ := newPermissionFixture(nil)

	err := svc.Enforce(context.Background(), nil, authz.EquipmentUpdate, authz.ResourceEquipment)
	assert.ErrorIs(t, err, apperrors.ErrAuthorizationDenied)
	assert.Zero(t, permRepo.calls, "a nil subject is denied without touching the store")
}

func TestEnforce_WildcardMatchesEverything(t *testing.T) {
	svc, _, _ := newPermissionFixture(map[uint64][]entities.Permission{
		3: {{Action: authz.ActionAll, Resource: authz.ResourceAll}},
	})
	ctx := context.Background()
	root := &entities.User{ID: 1, PID: 999999999, RoleID: 3}

	assert.NoError(t, svc.Enforce(ctx, root, authz.EquipmentUpdate, authz.ResourceEquipment))
	assert.NoError(t, svc.Enforce(ctx, root, authz.EquipmentDeleteRequest, authz.ResourceEquipment))
	assert.NoError(t, svc.Enforce(ctx, root, "anything.else", "whatever"))
}

func TestGetRolePermissions_CachesAfterFirstLoad(t *testing.T) {
	svc, permRepo, cache := newPermissionFixture(map[uint64][]entities.Permission{
		2: {{Action: authz.EquipmentUpdate, Resource: authz.ResourceEquipment}},
	})
	ctx := context.Background()

	first, err := svc.GetRolePermissions(ctx, 2)
	require.NoError(t, err)
	require.Len(t, first, 1)
	assert.Equal(t, 1, permRepo.calls)

	second, err := svc.GetRolePermissions(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, permRepo.calls, "the second read must come from the cache")

	require.NoError(t, svc.InvalidateRolePermissionsCache(ctx, 2))
	_, err = svc.GetRolePermissions(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, permRepo.calls)

	_, hasKey := cache.data["auth:permissions:role:2"]
	assert.True(t, hasKey)
}

func TestGetRolePermissions_EmptySetIsNotCached(t *testing.T) {
	svc, permRepo, cache := newPermissionFixture(map[uint64][]entities.Permission{})
	ctx := context.Background()

	perms, err := svc.GetRolePermissions(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, perms)
	assert.Equal(t, 1, permRepo.calls)
	assert.Empty(t, cache.data)
}
