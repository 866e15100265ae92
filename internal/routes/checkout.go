package routes

import (
	"makerspace-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runCheckoutRouter(secure *echo.Group, ctrl *controllers.CheckoutController) {
	secure.POST("/equipment/requests", ctrl.AddCheckoutRequest)
	secure.GET("/equipment/requests", ctrl.GetAllCheckoutRequests)
	secure.DELETE("/equipment/requests", ctrl.DeleteCheckoutRequest)
}
