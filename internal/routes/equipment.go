package routes

import (
	"makerspace-system/internal/controllers"

	"github.com/labstack/echo/v4"
)

func runEquipmentRouter(public *echo.Group, secure *echo.Group, ctrl *controllers.EquipmentController) {
	// Browsing the inventory and the type aggregation is unrestricted.
	public.GET("/equipment", ctrl.GetAllEquipment)
	public.GET("/equipment/types", ctrl.GetEquipmentTypes)

	secure.PUT("/equipment", ctrl.UpdateEquipment)
	secure.GET("/equipment/available/:model", ctrl.GetAvailableForModel)
	secure.POST("/equipment/image", ctrl.UploadEquipmentImage)
	secure.POST("/equipment/import", ctrl.ImportInventory)

	// Administrative add/delete stays disabled for now; the handlers exist
	// and the importer covers bulk additions.
	// secure.POST("/equipment", ctrl.CreateEquipment)
	// secure.DELETE("/equipment/:id", ctrl.DeleteEquipment)
}
