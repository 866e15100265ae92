package services

import (
	"context"
	"testing"

	"makerspace-system/internal/authz"
	"makerspace-system/internal/dto"
	"makerspace-system/internal/entities"
	apperrors "makerspace-system/pkg/errors"
	"makerspace-system/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func demoInventory() []entities.Equipment {
	return []entities.Equipment{
		{EquipmentID: 1, Model: "Meta Quest 3", EquipmentImage: "quest.png", Condition: 10, IsCheckedOut: false, ConditionNotes: []string{}, CheckoutHistory: []int64{}},
		{EquipmentID: 2, Model: "Meta Quest 3", EquipmentImage: "quest-alt.png", Condition: 9, IsCheckedOut: true, ConditionNotes: []string{"scratched lens"}, CheckoutHistory: []int64{111111111}},
		{EquipmentID: 3, Model: "Arduino Uno", EquipmentImage: "arduino.png", Condition: 10, IsCheckedOut: false, ConditionNotes: []string{}, CheckoutHistory: []int64{}},
		{EquipmentID: 4, Model: "Arduino Uno", EquipmentImage: "arduino-2.png", Condition: 8, IsCheckedOut: false, ConditionNotes: []string{}, CheckoutHistory: []int64{}},
		{EquipmentID: 5, Model: "Arduino Uno", EquipmentImage: "arduino-3.png", Condition: 7, IsCheckedOut: true, ConditionNotes: []string{}, CheckoutHistory: []int64{222222222}},
	}
}

func ambassadorUser() *entities.User {
	return &entities.User{ID: 2, PID: 888888888, FirstName: "Amy", LastName: "Ambassador", RoleID: 2, SignedEquipmentWavier: true}
}

func TestListAllEquipment_NoPermissionRequired(t *testing.T) {
	repo := newFakeEquipmentRepository(demoInventory()...)
	enforcer := newFakeEnforcer()
	svc := NewEquipmentService(repo, enforcer, zap.NewNop())

	items, err := svc.ListAllEquipment(context.Background(), types.Filter{})
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Empty(t, enforcer.calls, "listing must not consult the enforcer")
}

func TestListEquipmentTypes_AggregatesByModel(t *testing.T) {
	repo := newFakeEquipmentRepository(demoInventory()...)
	svc := NewEquipmentService(repo, newFakeEnforcer(), zap.NewNop())

	equipmentTypes, err := svc.ListEquipmentTypes(context.Background())
	require.NoError(t, err)
	require.Len(t, equipmentTypes, 2)

	assert.Equal(t, "Meta Quest 3", equipmentTypes[0].Model)
	assert.Equal(t, 1, equipmentTypes[0].NumAvailable)
	assert.Equal(t, "quest.png", equipmentTypes[0].EquipmentImgURL, "image comes from the first unit of the model")

	assert.Equal(t, "Arduino Uno", equipmentTypes[1].Model)
	assert.Equal(t, 2, equipmentTypes[1].NumAvailable)
	assert.Equal(t, "arduino.png", equipmentTypes[1].EquipmentImgURL)
}

func TestListEquipmentTypes_EmptyInventory(t *testing.T) {
	svc := NewEquipmentService(newFakeEquipmentRepository(), newFakeEnforcer(), zap.NewNop())

	equipmentTypes, err := svc.ListEquipmentTypes(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, equipmentTypes)
	assert.Empty(t, equipmentTypes)
}

func TestListEquipmentTypes_ReflectsCheckoutStateChanges(t *testing.T) {
	repo := newFakeEquipmentRepository(demoInventory()...)
	enforcer := newFakeEnforcer(authz.EquipmentUpdate)
	svc := NewEquipmentService(repo, enforcer, zap.NewNop())
	ctx := context.Background()

	before, err := svc.ListEquipmentTypes(ctx)
	require.NoError(t, err)
	require.Equal(t, 2, before[1].NumAvailable)

	_, err = svc.UpdateEquipment(ctx, ambassadorUser(), dto.UpdateEquipmentDTO{
		EquipmentID:     3,
		Model:           "Arduino Uno",
		EquipmentImage:  "arduino.png",
		Condition:       10,
		IsCheckedOut:    true,
		ConditionNotes:  []string{},
		CheckoutHistory: []int64{111111111},
	})
	require.NoError(t, err)

	after, err := svc.ListEquipmentTypes(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, after[1].NumAvailable, "the aggregate is recomputed, never cached")
}

func TestUpdateEquipment_FullOverwrite(t *testing.T) {
	repo := newFakeEquipmentRepository(demoInventory()...)
	svc := NewEquipmentService(repo, newFakeEnforcer(authz.EquipmentUpdate), zap.NewNop())

	updated, err := svc.UpdateEquipment(context.Background(), ambassadorUser(), dto.UpdateEquipmentDTO{
		EquipmentID:     1,
		Model:           "Meta Quest 3",
		EquipmentImage:  "quest.png",
		Condition:       6,
		IsCheckedOut:    true,
		ConditionNotes:  []string{"controller drift"},
		CheckoutHistory: []int64{333333333},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, updated.Condition)
	assert.True(t, updated.IsCheckedOut)
	assert.Equal(t, []string{"controller drift"}, updated.ConditionNotes)
	assert.Equal(t, []int64{333333333}, updated.CheckoutHistory)

	stored, err := repo.FindEquipment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestUpdateEquipment_IdenticalPayloadIsIdempotent(t *testing.T) {
	repo := newFakeEquipmentRepository(demoInventory()...)
	svc := NewEquipmentService(repo, newFakeEnforcer(authz.EquipmentUpdate), zap.NewNop())

	payload := dto.UpdateEquipmentDTO{
		EquipmentID:     2,
		Model:           "Meta Quest 3",
		EquipmentImage:  "quest-alt.png",
		Condition:       9,
		IsCheckedOut:    true,
		ConditionNotes:  []string{"scratched lens"},
		CheckoutHistory: []int64{111111111},
	}

	first, err := svc.UpdateEquipment(context.Background(), ambassadorUser(), payload)
	require.NoError(t, err)
	second, err := svc.UpdateEquipment(context.Background(), ambassadorUser(), payload)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestUpdateEquipment_DeniedLeavesStoreUnchanged(t *testing.T) {
	repo := newFakeEquipmentRepository(demoInventory()...)
	svc := NewEquipmentService(repo, newFakeEnforcer(), zap.NewNop())

	_, err := svc.UpdateEquipment(context.Background(), ambassadorUser(), dto.UpdateEquipmentDTO{
		EquipmentID: 1,
		Model:       "Meta Quest 3",
		Condition:   1,
	})
	require.ErrorIs(t, err, apperrors.ErrAuthorizationDenied)

	stored, err := repo.FindEquipment(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Condition)
}

func TestUpdateEquipment_UnknownID(t *testing.T) {
	svc := NewEquipmentService(newFakeEquipmentRepository(demoInventory()...), newFakeEnforcer(authz.EquipmentUpdate), zap.NewNop())

	_, err := svc.UpdateEquipment(context.Background(), ambassadorUser(), dto.UpdateEquipmentDTO{
		EquipmentID: 42,
		Model:       "Meta Quest 3",
	})
	assert.ErrorIs(t, err, apperrors.ErrEquipmentNotFound)
}

func TestListAvailableEquipmentForModel(t *testing.T) {
	repo := newFakeEquipmentRepository(demoInventory()...)
	svc := NewEquipmentService(repo, newFakeEnforcer(authz.EquipmentGetForRequest), zap.NewNop())

	items, err := svc.ListAvailableEquipmentForModel(context.Background(), ambassadorUser(), "Arduino Uno")
	require.NoError(t, err)
	require.Len(t, items, 2)
	for _, item := range items {
		assert.False(t, item.IsCheckedOut)
		assert.Equal(t, "Arduino Uno", item.Model)
	}
}

func TestListAvailableEquipmentForModel_UnknownModelIsEmptyNotError(t *testing.T) {
	svc := NewEquipmentService(newFakeEquipmentRepository(demoInventory()...), newFakeEnforcer(authz.EquipmentGetForRequest), zap.NewNop())

	items, err := svc.ListAvailableEquipmentForModel(context.Background(), ambassadorUser(), "Oculus")
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestListAvailableEquipmentForModel_Denied(t *testing.T) {
	svc := NewEquipmentService(newFakeEquipmentRepository(demoInventory()...), newFakeEnforcer(), zap.NewNop())

	_, err := svc.ListAvailableEquipmentForModel(context.Background(), ambassadorUser(), "Arduino Uno")
	assert.ErrorIs(t, err, apperrors.ErrAuthorizationDenied)
}

func TestCreateAndDeleteEquipment_RequireUpdateGrant(t *testing.T) {
	repo := newFakeEquipmentRepository()
	svc := NewEquipmentService(repo, newFakeEnforcer(authz.EquipmentUpdate), zap.NewNop())
	ctx := context.Background()

	created, err := svc.CreateEquipment(ctx, ambassadorUser(), dto.CreateEquipmentDTO{Model: "Raspberry Pi 5", Condition: 10})
	require.NoError(t, err)
	assert.NotZero(t, created.EquipmentID)
	assert.NotNil(t, created.ConditionNotes)
	assert.NotNil(t, created.CheckoutHistory)

	require.NoError(t, svc.DeleteEquipment(ctx, ambassadorUser(), created.EquipmentID))

	denied := NewEquipmentService(repo, newFakeEnforcer(), zap.NewNop())
	_, err = denied.CreateEquipment(ctx, ambassadorUser(), dto.CreateEquipmentDTO{Model: "Raspberry Pi 5"})
	assert.ErrorIs(t, err, apperrors.ErrAuthorizationDenied)
	assert.ErrorIs(t, denied.DeleteEquipment(ctx, ambassadorUser(), 1), apperrors.ErrAuthorizationDenied)
}
