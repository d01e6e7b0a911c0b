package api

import (
	"cats-service/internal/api/handlers"
	"cats-service/internal/api/middleware"
	"cats-service/internal/auth"
	"cats-service/internal/config"
	"cats-service/internal/db"
	"cats-service/internal/db/queries"
	"cats-service/internal/models"
	"cats-service/internal/utils"

	"github.com/gin-gonic/gin"
)

func SetupRouter(config *config.Config, db *db.Database, googleVerifier auth.GoogleVerifierInterface) *gin.Engine {
	// Создаем экземпляр Gin
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logging())

	// Создаем менеджер JWT
	jwtManager := utils.NewJWTManager(&config.JWT)

	// Создаем запросы к базе данных
	userQueries := queries.NewUserQueries(db)
	invitationQueries := queries.NewInvitationQueries(db)
	containerQueries := queries.NewContainerQueries(db)
	containerTypeQueries := queries.NewContainerTypeQueries(db)
	fillQueries := queries.NewFillQueries(db)
	productQueries := queries.NewProductQueries(db)
	productTypeQueries := queries.NewProductTypeQueries(db)

	// Создаем обработчики
	authHandler := handlers.NewAuthHandler(jwtManager, googleVerifier, userQueries, invitationQueries)
	userHandler := handlers.NewUserHandler(userQueries)
	invitationHandler := handlers.NewInvitationHandler(invitationQueries)
	containerHandler := handlers.NewContainerHandler(containerQueries, containerTypeQueries)
	fillHandler := handlers.NewFillHandler(containerQueries, containerTypeQueries, fillQueries, productQueries, productTypeQueries, userQueries)
	productHandler := handlers.NewProductHandler(productQueries, productTypeQueries)
	productTypeHandler := handlers.NewProductTypeHandler(productTypeQueries)
	containerTypeHandler := handlers.NewContainerTypeHandler(containerTypeQueries)

	// Публичные маршруты (без авторизации)
	publicRoutes := router.Group("")
	{
		// Обмен Google ID-токена на сервисный токен
		publicRoutes.POST("/auth/google", authHandler.GoogleLogin)

		// Проверка приглашения по токену
		publicRoutes.GET("/invitations/verify/:token", invitationHandler.VerifyInvitation)
	}

	// Защищенные маршруты (требуется авторизация)
	authRoutes := router.Group("")
	authRoutes.Use(middleware.AuthMiddleware(jwtManager))
	{
		// Профиль текущего пользователя
		authRoutes.GET("/profile", authHandler.GetProfile)
		authRoutes.PUT("/profile", authHandler.UpdateProfile)

		// Тара
		authRoutes.GET("/containers", containerHandler.ListContainers)
		authRoutes.GET("/containers/search", containerHandler.SearchContainers)
		authRoutes.GET("/containers/code/:code", containerHandler.GetContainerByCode)
		authRoutes.GET("/containers/code/:code/events", fillHandler.GetEvents)
		authRoutes.GET("/containers/:id", containerHandler.GetContainer)
		authRoutes.POST("/containers", containerHandler.CreateContainer)
		authRoutes.PUT("/containers/:id", containerHandler.UpdateContainer)
		authRoutes.DELETE("/containers/:id", containerHandler.DeleteContainer)

		// Жизненный цикл заполнения
		authRoutes.POST("/containers/:id/fill", fillHandler.FillContainer)
		authRoutes.PUT("/containers/:id/fill", fillHandler.UpdateFill)
		authRoutes.POST("/containers/:id/empty", fillHandler.EmptyContainer)
		authRoutes.GET("/containers/:id/history", fillHandler.GetHistory)
		authRoutes.GET("/containers/fills/search", fillHandler.SearchFills)

		// Справочники
		authRoutes.GET("/container-types", containerTypeHandler.ListContainerTypes)
		authRoutes.GET("/container-types/:id", containerTypeHandler.GetContainerType)
		authRoutes.POST("/container-types", containerTypeHandler.CreateContainerType)
		authRoutes.PUT("/container-types/:id", containerTypeHandler.UpdateContainerType)

		authRoutes.GET("/products", productHandler.ListProducts)
		authRoutes.GET("/products/:id", productHandler.GetProduct)
		authRoutes.POST("/products", productHandler.CreateProduct)
		authRoutes.PUT("/products/:id", productHandler.UpdateProduct)

		authRoutes.GET("/product-types", productTypeHandler.ListProductTypes)
		authRoutes.GET("/product-types/:id", productTypeHandler.GetProductType)
		authRoutes.POST("/product-types", productTypeHandler.CreateProductType)
		authRoutes.PUT("/product-types/:id", productTypeHandler.UpdateProductType)
	}

	// Административные маршруты (требуется роль admin)
	adminRoutes := router.Group("")
	adminRoutes.Use(middleware.AuthMiddleware(jwtManager), middleware.RequireRole(models.RoleAdmin))
	{
		// Управление пользователями
		adminRoutes.GET("/users", userHandler.ListUsers)
		adminRoutes.POST("/users", userHandler.CreateUser)
		adminRoutes.PUT("/users/:id", userHandler.UpdateUser)
		adminRoutes.POST("/users/:id/activate", userHandler.ActivateUser)
		adminRoutes.POST("/users/:id/deactivate", userHandler.DeactivateUser)

		// Приглашения
		adminRoutes.POST("/invitations", invitationHandler.CreateInvitation)

		// Удаление справочников
		adminRoutes.DELETE("/container-types/:id", containerTypeHandler.DeleteContainerType)
		adminRoutes.DELETE("/products/:id", productHandler.DeleteProduct)
		adminRoutes.DELETE("/product-types/:id", productTypeHandler.DeleteProductType)
	}

	return router
}
