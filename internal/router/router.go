package router

import (
	"time"

	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/handlers"
	"github.com/stepwise-saude/insole-platform-backend/internal/middleware"
	"github.com/stepwise-saude/insole-platform-backend/internal/models"
	"github.com/stepwise-saude/insole-platform-backend/internal/services"
	"github.com/stepwise-saude/insole-platform-backend/internal/services/auth"
	"github.com/stepwise-saude/insole-platform-backend/internal/services/export"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Deps carries the shared services the router wires into handlers. Optional
// members (Cache, Events) may be nil.
type Deps struct {
	DB          *gorm.DB
	AuthService *auth.AuthService
	Events      services.OrderEventPublisher
	Dashboard   *services.DashboardService
}

// SetupRouter configures the Gin router with every API route.
func SetupRouter(deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	db := deps.DB

	// Repositories
	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	palmilhogramRepo := repository.NewPalmilhogramRepository(db)
	prescriptionRepo := repository.NewPrescriptionRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	coatingRepo := repository.NewCoatingRepository(db)
	insoleModelRepo := repository.NewInsoleModelRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	courseRepo := repository.NewCourseRepository(db)

	// Services
	patientService := services.NewPatientService(patientRepo, palmilhogramRepo)
	prescriptionService := services.NewPrescriptionService(prescriptionRepo, palmilhogramRepo, patientRepo, insoleModelRepo, coatingRepo)
	catalogService := services.NewCatalogService(coatingRepo, insoleModelRepo, couponRepo)
	orderService := services.NewOrderService(db, services.NewShippingService(), services.NewPaymentService(), deps.Events)
	courseService := services.NewCourseService(courseRepo)
	excelService := export.NewExcelService(orderRepo)

	// Handlers
	authHandler := handlers.NewAuthHandler(deps.AuthService)
	userHandler := handlers.NewUserHandler(deps.AuthService, userRepo)
	patientHandler := handlers.NewPatientHandler(patientService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService)
	orderHandler := handlers.NewOrderHandler(orderService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	courseHandler := handlers.NewCourseHandler(courseService)
	dashboardHandler := handlers.NewDashboardHandler(deps.Dashboard)
	exportHandler := handlers.NewExportHandler(excelService)

	requireAuth := middleware.RequireAuth(deps.AuthService.Issuer())

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status": "ok",
				"time":   time.Now().Format(time.RFC3339),
			})
		})

		// Public session endpoints
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/login", authHandler.Login)
			authGroup.POST("/refresh", authHandler.Refresh)
			authGroup.POST("/logout", authHandler.Logout)
			authGroup.POST("/forgot-password", authHandler.ForgotPassword)
			authGroup.POST("/reset-password", authHandler.ResetPassword)
			authGroup.POST("/change-password", requireAuth, authHandler.ChangePassword)
		}

		// Account management
		users := api.Group("/users", requireAuth)
		{
			users.GET("/me", userHandler.Profile)
			users.POST("", middleware.RequireRole(models.RoleAdmin), userHandler.Register)
			users.GET("", middleware.RequireRole(models.RoleAdmin), userHandler.List)
			users.PATCH("/:id/status", middleware.RequireRole(models.RoleAdmin), userHandler.SetStatus)
		}

		// Patient records and assessments
		patients := api.Group("/patients", requireAuth, middleware.RequireRole(models.RoleAdmin, models.RolePhysiotherapist))
		{
			patients.POST("", patientHandler.Create)
			patients.GET("", patientHandler.List)
			patients.GET("/:id", patientHandler.Get)
			patients.PUT("/:id", patientHandler.Update)
			patients.DELETE("/:id", patientHandler.Delete)
			patients.POST("/:id/palmilhograms", patientHandler.CreatePalmilhogram)
			patients.GET("/:id/palmilhograms", patientHandler.ListPalmilhograms)
		}

		// Prescriptions
		prescriptions := api.Group("/prescriptions", requireAuth, middleware.RequireRole(models.RoleAdmin, models.RolePhysiotherapist))
		{
			prescriptions.POST("", prescriptionHandler.Create)
			prescriptions.GET("", prescriptionHandler.List)
			prescriptions.GET("/:id", prescriptionHandler.Get)
		}

		// Orders
		orders := api.Group("/orders", requireAuth)
		{
			orders.POST("/checkout", middleware.RequireRole(models.RolePhysiotherapist), orderHandler.Checkout)
			orders.GET("", middleware.RequireRole(models.RolePhysiotherapist), orderHandler.ListMine)
			orders.GET("/all", middleware.RequireRole(models.RoleAdmin, models.RoleIndustry), orderHandler.ListAll)
			orders.GET("/:id", orderHandler.Get)
			orders.PATCH("/:id/status", middleware.RequireRole(models.RoleAdmin, models.RoleIndustry, models.RolePhysiotherapist), orderHandler.UpdateStatus)
		}

		// Catalog: reads for every authenticated role, writes for admins
		catalog := api.Group("/catalog", requireAuth)
		{
			catalog.GET("/coatings", catalogHandler.ListCoatings)
			catalog.GET("/insole-models", catalogHandler.ListInsoleModels)

			adminCatalog := catalog.Group("", middleware.RequireRole(models.RoleAdmin))
			{
				adminCatalog.POST("/coatings", catalogHandler.CreateCoating)
				adminCatalog.PUT("/coatings/:id", catalogHandler.UpdateCoating)
				adminCatalog.DELETE("/coatings/:id", catalogHandler.DeleteCoating)
				adminCatalog.POST("/insole-models", catalogHandler.CreateInsoleModel)
				adminCatalog.PUT("/insole-models/:id", catalogHandler.UpdateInsoleModel)
				adminCatalog.DELETE("/insole-models/:id", catalogHandler.DeleteInsoleModel)
				adminCatalog.POST("/coupons", catalogHandler.CreateCoupon)
				adminCatalog.GET("/coupons", catalogHandler.ListCoupons)
				adminCatalog.PUT("/coupons/:id", catalogHandler.UpdateCoupon)
				adminCatalog.DELETE("/coupons/:id", catalogHandler.DeleteCoupon)
			}
		}

		// Training courses
		courses := api.Group("/courses", requireAuth)
		{
			courses.GET("", courseHandler.List)
			courses.GET("/:id", courseHandler.Get)
			courses.GET("/:id/progress", courseHandler.Progress)
			courses.POST("/lessons/:lessonId/progress", courseHandler.MarkProgress)

			adminCourses := courses.Group("", middleware.RequireRole(models.RoleAdmin))
			{
				adminCourses.POST("", courseHandler.Create)
				adminCourses.PUT("/:id", courseHandler.Update)
				adminCourses.DELETE("/:id", courseHandler.Delete)
				adminCourses.POST("/:id/lessons", courseHandler.AddLesson)
				adminCourses.DELETE("/lessons/:lessonId", courseHandler.RemoveLesson)
			}
		}

		// Dashboard and exports
		api.GET("/dashboard", requireAuth, middleware.RequireRole(models.RoleAdmin), dashboardHandler.Stats)
		api.GET("/export/orders", requireAuth, middleware.RequireRole(models.RoleAdmin), exportHandler.Orders)
	}

	return r
}
