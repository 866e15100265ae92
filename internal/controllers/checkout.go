package controllers

import (
	"net/http"

	"makerspace-system/internal/dto"
	"makerspace-system/internal/services"
	apperrors "makerspace-system/pkg/errors"
	"makerspace-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type CheckoutController struct {
	checkoutService services.CheckoutServiceInterface
	logger          *zap.Logger
}

func NewCheckoutController(service services.CheckoutServiceInterface, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{checkoutService: service, logger: logger}
}

func (c *CheckoutController) AddCheckoutRequest(ctx echo.Context) error {
	user, err := utils.GetUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.CreateCheckoutRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		c.logger.Error("AddCheckoutRequest: failed to bind payload", zap.Error(err))
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.checkoutService.AddCheckoutRequest(ctx.Request().Context(), user, payload)
	if err != nil {
		c.logger.Warn("AddCheckoutRequest: rejected",
			zap.String("model", payload.Model), zap.Int64("pid", payload.PID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "checkout request created", http.StatusCreated)
}

func (c *CheckoutController) DeleteCheckoutRequest(ctx echo.Context) error {
	subject, err := utils.GetUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	var payload dto.DeleteCheckoutRequestDTO
	if err := ctx.Bind(&payload); err != nil {
		return utils.ErrorResponse(ctx,
			apperrors.NewHttpError(http.StatusBadRequest, "malformed request body", err, nil),
			c.logger,
		)
	}

	if err := ctx.Validate(&payload); err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	if err := c.checkoutService.DeleteCheckoutRequest(ctx.Request().Context(), subject, payload); err != nil {
		c.logger.Warn("DeleteCheckoutRequest: rejected",
			zap.String("model", payload.Model), zap.Int64("pid", payload.PID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, struct{}{}, "checkout request deleted", http.StatusOK)
}

func (c *CheckoutController) GetAllCheckoutRequests(ctx echo.Context) error {
	subject, err := utils.GetUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	res, err := c.checkoutService.ListCheckoutRequests(ctx.Request().Context(), subject)
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, res, "checkout requests fetched", http.StatusOK)
}
