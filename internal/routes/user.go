package routes

import (
	"makerspace-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runUserRouter(secure *echo.Group, ctrl *controllers.UserController) {
	secure.GET("/users/me", ctrl.GetProfile)
	secure.PUT("/users/me/waiver", ctrl.SignWaiver)
}
