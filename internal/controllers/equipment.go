package controllers

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"makerspace-system/internal/dto"
	"makerspace-system/internal/services"
	apperrors "makerspace-system/pkg/errors"
	"makerspace-system/pkg/filestorage"
	"makerspace-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	importService    *services.EquipmentImportService
	fileStorage      filestorage.FileStorageInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	service services.EquipmentServiceInterface,
	importService *services.EquipmentImportService,
	fileStorage filestorage.FileStorageInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: service,
		importService:    importService,
		fileStorage:      fileStorage,
		logger:           logger,
	}
}

// GetAllEquipment is unrestricted: anyone may browse the inventory.
func (c *EquipmentController) GetAllEquipment(ctx echo.Context) error {
	filter := utils.ParseFilterFromQuery(ctx.Request().URL.Query())

	res, err := c.equipmentService.ListAllEquipment(ctx.Request().Context(), filter)
	if err != nil {
		c.logger.Error("GetAllEquipment: failed to list equipment", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "equipment list fetched", http.StatusOK)
}

func (c *EquipmentController) GetEquipmentTypes(ctx echo.Context) error {
	res, err := c.equipmentService.ListEquipmentTypes(ctx.Request().Context())
	if err != nil {
		c.logger.Error("GetEquipmentTypes: aggregation failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "equipment types fetched", http.StatusOK)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	subject, err := utils.GetUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.UpdateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("UpdateEquipment: failed to bind payload", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.UpdateEquipment(ctx.Request().Context(), subject, payload)
	if err != nil {
		c.logger.Error("UpdateEquipment: update failed",
			zap.Uint64("equipmentID", payload.EquipmentID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "equipment updated", http.StatusOK)
}

func (c *EquipmentController) GetAvailableForModel(ctx echo.Context) error {
	subject, err := utils.GetUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	model := ctx.Param("model")
	res, err := c.equipmentService.ListAvailableEquipmentForModel(ctx.Request().Context(), subject, model)
	if err != nil {
		c.logger.Error("GetAvailableForModel: lookup failed", zap.String("model", model), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "available equipment fetched", http.StatusOK)
}

// UploadEquipmentImage stores an image and returns its public path; the
// client then sets equipment_image via the regular update.
func (c *EquipmentController) UploadEquipmentImage(ctx echo.Context) error {
	fileHeader, err := ctx.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "missing 'image' form file", err, nil),
			c.logger,
		)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer src.Close()

	path, err := c.fileStorage.Save(src, fileHeader.Filename, "equipment")
	if err != nil {
		c.logger.Error("UploadEquipmentImage: save failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, map[string]string{"equipment_image": "/uploads/" + path}, "image uploaded", http.StatusCreated)
}

func (c *EquipmentController) ImportInventory(ctx echo.Context) error {
	subject, err := utils.GetUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "missing 'file' form file", err, nil),
			c.logger,
		)
	}

	src, err := fileHeader.Open()
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer src.Close()

	tmp, err := os.CreateTemp("", "inventory-*"+filepath.Ext(fileHeader.Filename))
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.ReadFrom(src); err != nil {
		tmp.Close()
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	tmp.Close()

	summary, err := c.importService.ImportInventory(ctx.Request().Context(), subject, tmp.Name())
	if err != nil {
		c.logger.Error("ImportInventory: import failed", zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, summary, "inventory imported", http.StatusCreated)
}

// CreateEquipment and DeleteEquipment back the administrative flows whose
// routes are currently disabled (see routes/equipment.go).

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	subject, err := utils.GetUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateEquipmentDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger,
		)
	}
	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.equipmentService.CreateEquipment(ctx.Request().Context(), subject, payload)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, res, "equipment created", http.StatusCreated)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	subject, err := utils.GetUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	id, err := strconv.ParseUint(ctx.Param("id"), 10, 64)
	if err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "invalid equipment id", err, map[string]interface{}{"param": ctx.Param("id")}),
			c.logger,
		)
	}

	if err := c.equipmentService.DeleteEquipment(ctx.Request().Context(), subject, id); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, struct{}{}, "equipment deleted", http.StatusOK)
}
