package controllers

import (
	"net/http"

	"makerspace-system/internal/services"
	"makerspace-system/pkg/utils"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

type UserController struct {
	userService services.UserServiceInterface
	logger      *zap.Logger
}

func NewUserController(service services.UserServiceInterface, logger *zap.Logger) *UserController {
	return &UserController{userService: service, logger: logger}
}

func (c *UserController) GetProfile(ctx echo.Context) error {
	user, err := utils.GetUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}
	return utils.SuccessResponse(ctx, user, "profile fetched", http.StatusOK)
}

// SignWaiver marks the caller's own equipment waiver as signed. The pid is
// taken from the resolved subject, never from the request body.
func (c *UserController) SignWaiver(ctx echo.Context) error {
	user, err := utils.GetUserFromCtx(ctx.Request().Context())
	if err != nil {
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	updated, err := c.userService.SignWaiver(ctx.Request().Context(), user.PID)
	if err != nil {
		c.logger.Error("SignWaiver: failed", zap.Int64("pid", user.PID), zap.Error(err))
		return utils.ErrorResponse(ctx, err, c.logger)
	}

	return utils.SuccessResponse(ctx, updated, "equipment waiver signed", http.StatusOK)
}
