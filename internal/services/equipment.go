package services

import (
	"context"
	"fmt"

	"makerspace-system/internal/authz"
	"makerspace-system/internal/dto"
	"makerspace-system/internal/entities"
	"makerspace-system/internal/repositories"
	"makerspace-system/pkg/types"

	"go.uber.org/zap"
)

type EquipmentServiceInterface interface {
	ListAllEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, error)
	UpdateEquipment(ctx context.Context, subject *entities.User, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error)
	ListEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error)
	ListAvailableEquipmentForModel(ctx context.Context, subject *entities.User, model string) ([]entities.Equipment, error)
	CreateEquipment(ctx context.Context, subject *entities.User, payload dto.CreateEquipmentDTO) (*entities.Equipment, error)
	DeleteEquipment(ctx context.Context, subject *entities.User, equipmentID uint64) error
}

type EquipmentService struct {
	equipmentRepository repositories.EquipmentRepositoryInterface
	enforcer            Enforcer
	logger              *zap.Logger
}

func NewEquipmentService(
	equipmentRepository repositories.EquipmentRepositoryInterface,
	enforcer Enforcer,
	logger *zap.Logger,
) EquipmentServiceInterface {
	return &EquipmentService{
		equipmentRepository: equipmentRepository,
		enforcer:            enforcer,
		logger:              logger,
	}
}

// ListAllEquipment is unrestricted and read-only.
func (s *EquipmentService) ListAllEquipment(ctx context.Context, filter types.Filter) ([]entities.Equipment, error) {
	return s.equipmentRepository.GetAllEquipment(ctx, filter)
}

// UpdateEquipment replaces the whole stored record with the incoming one,
// keyed by equipment_id. The caller must hold the equipment.update grant.
func (s *EquipmentService) UpdateEquipment(ctx context.Context, subject *entities.User, payload dto.UpdateEquipmentDTO) (*entities.Equipment, error) {
	if err := s.enforcer.Enforce(ctx, subject, authz.EquipmentUpdate, authz.ResourceEquipment); err != nil {
		return nil, err
	}

	if _, err := s.equipmentRepository.FindEquipment(ctx, payload.EquipmentID); err != nil {
		return nil, fmt.Errorf("equipment_id=%d: %w", payload.EquipmentID, err)
	}

	item := &entities.Equipment{
		EquipmentID:     payload.EquipmentID,
		Model:           payload.Model,
		EquipmentImage:  payload.EquipmentImage,
		Condition:       payload.Condition,
		IsCheckedOut:    payload.IsCheckedOut,
		ConditionNotes:  payload.ConditionNotes,
		CheckoutHistory: payload.CheckoutHistory,
	}

	updated, err := s.equipmentRepository.UpdateEquipment(ctx, item)
	if err != nil {
		s.logger.Error("failed to update equipment", zap.Uint64("equipmentID", payload.EquipmentID), zap.Error(err))
		return nil, err
	}
	s.logger.Info("equipment updated",
		zap.Uint64("equipmentID", updated.EquipmentID),
		zap.Bool("isCheckedOut", updated.IsCheckedOut),
	)
	return updated, nil
}

// ListEquipmentTypes projects the inventory into one aggregate per distinct
// model, in first-seen order of the store traversal. num_available counts the
// units that are not checked out; the image comes from the first unit of the
// model and is never replaced. Nothing is cached or persisted.
func (s *EquipmentService) ListEquipmentTypes(ctx context.Context) ([]dto.EquipmentTypeDTO, error) {
	items, err := s.equipmentRepository.GetAllEquipment(ctx, types.Filter{})
	if err != nil {
		return nil, err
	}

	equipmentTypes := make([]dto.EquipmentTypeDTO, 0)
	indexByModel := make(map[string]int)

	for _, item := range items {
		if idx, seen := indexByModel[item.Model]; seen {
			if !item.IsCheckedOut {
				equipmentTypes[idx].NumAvailable++
			}
			continue
		}

		numAvailable := 0
		if !item.IsCheckedOut {
			numAvailable = 1
		}
		indexByModel[item.Model] = len(equipmentTypes)
		equipmentTypes = append(equipmentTypes, dto.EquipmentTypeDTO{
			Model:           item.Model,
			NumAvailable:    numAvailable,
			EquipmentImgURL: item.EquipmentImage,
		})
	}

	return equipmentTypes, nil
}

// ListAvailableEquipmentForModel returns every unit of the model that is not
// checked out. An empty result is a valid, non-error outcome.
func (s *EquipmentService) ListAvailableEquipmentForModel(ctx context.Context, subject *entities.User, model string) ([]entities.Equipment, error) {
	if err := s.enforcer.Enforce(ctx, subject, authz.EquipmentGetForRequest, authz.ResourceEquipment); err != nil {
		return nil, err
	}
	return s.equipmentRepository.GetAvailableByModel(ctx, model)
}

// CreateEquipment backs the administrative add flow. The route is currently
// disabled; the operation stays for the inventory importer and seeders.
func (s *EquipmentService) CreateEquipment(ctx context.Context, subject *entities.User, payload dto.CreateEquipmentDTO) (*entities.Equipment, error) {
	if err := s.enforcer.Enforce(ctx, subject, authz.EquipmentUpdate, authz.ResourceEquipment); err != nil {
		return nil, err
	}

	item := &entities.Equipment{
		Model:           payload.Model,
		EquipmentImage:  payload.EquipmentImage,
		Condition:       payload.Condition,
		ConditionNotes:  []string{},
		CheckoutHistory: []int64{},
	}

	created, err := s.equipmentRepository.CreateEquipment(ctx, item)
	if err != nil {
		s.logger.Error("failed to create equipment", zap.String("model", payload.Model), zap.Error(err))
		return nil, err
	}
	return created, nil
}

// DeleteEquipment backs the administrative delete flow; its route is disabled.
func (s *EquipmentService) DeleteEquipment(ctx context.Context, subject *entities.User, equipmentID uint64) error {
	if err := s.enforcer.Enforce(ctx, subject, authz.EquipmentUpdate, authz.ResourceEquipment); err != nil {
		return err
	}
	return s.equipmentRepository.DeleteEquipment(ctx, equipmentID)
}
