package routes

import (
	"github.com/go-redis/redis/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"makerspace-system/internal/controllers"
	"makerspace-system/internal/repositories"
	"makerspace-system/internal/services"
	"makerspace-system/pkg/config"
	"makerspace-system/pkg/filestorage"
	"makerspace-system/pkg/middleware"
	"makerspace-system/pkg/service"
)

func InitRouter(e *echo.Echo, dbConn *pgxpool.Pool, redisClient *redis.Client, jwtSvc service.JWTService, logger *zap.Logger, cfg *config.Config) {
	api := e.Group("/api")

	// --- REPOSITORIES ---
	userRepo := repositories.NewUserRepository(dbConn, logger)
	permissionRepo := repositories.NewPermissionRepository(dbConn, logger)
	cacheRepo := repositories.NewRedisCacheRepository(redisClient)
	equipmentRepo := repositories.NewEquipmentRepository(dbConn)
	requestRepo := repositories.NewCheckoutRequestRepository(dbConn)

	// --- SERVICES ---
	permissionService := services.NewPermissionService(permissionRepo, cacheRepo, logger, cfg.PermissionCacheTTL)
	userService := services.NewUserService(userRepo, logger)
	authService := services.NewAuthService(userRepo, jwtSvc, logger)
	equipmentService := services.NewEquipmentService(equipmentRepo, permissionService, logger)
	checkoutService := services.NewCheckoutService(requestRepo, permissionService, logger)
	importService := services.NewEquipmentImportService(dbConn, equipmentRepo, permissionService, logger)

	fileStorage, err := filestorage.NewLocalFileStorage(cfg.Uploads.Dir)
	if err != nil {
		logger.Fatal("failed to create file storage", zap.Error(err))
	}

	// --- CONTROLLERS ---
	authController := controllers.NewAuthController(authService, logger)
	userController := controllers.NewUserController(userService, logger)
	equipmentController := controllers.NewEquipmentController(equipmentService, importService, fileStorage, logger)
	checkoutController := controllers.NewCheckoutController(checkoutService, logger)

	// --- ROUTERS ---
	authMW := middleware.NewAuthMiddleware(jwtSvc, userService, permissionService, logger)
	secureGroup := api.Group("", authMW.Auth)

	runAuthRouter(api, authController)
	runUserRouter(secureGroup, userController)
	runEquipmentRouter(api, secureGroup, equipmentController)
	runCheckoutRouter(secureGroup, checkoutController)
}
