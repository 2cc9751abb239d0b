package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/stepwise-saude/insole-platform-backend/docs"
	"github.com/stepwise-saude/insole-platform-backend/internal/cache"
	"github.com/stepwise-saude/insole-platform-backend/internal/database"
	"github.com/stepwise-saude/insole-platform-backend/internal/database/repository"
	"github.com/stepwise-saude/insole-platform-backend/internal/router"
	"github.com/stepwise-saude/insole-platform-backend/internal/services"
	"github.com/stepwise-saude/insole-platform-backend/internal/services/auth"
	"github.com/stepwise-saude/insole-platform-backend/internal/services/mail"
	"github.com/stepwise-saude/insole-platform-backend/internal/utils"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Insole Platform API
// @version 1.0
// @description Multi-tenant platform for orthopedic insole prescription and fulfillment
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email suporte@stepwise-saude.com.br

// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter `Bearer ` followed by your JWT token (e.g. "Bearer <token>")

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	basePath := getEnv("BASE_PATH", "/")
	docs.SwaggerInfo.BasePath = basePath

	configureLogging()

	utils.InitSentry()

	db, err := database.InitDB()
	if err != nil {
		logrus.Fatalf("Failed to initialize database: %v", err)
	}

	mailer := mail.NewMailerFromEnv()
	authService := auth.NewAuthService(db, mailer)

	// RabbitMQ is optional: without it order events are simply not published
	var events services.OrderEventPublisher
	rabbitMQService, err := services.NewRabbitMQService()
	if err != nil {
		logrus.Warnf("Failed to initialize RabbitMQ, order events disabled: %v", err)
	} else {
		logrus.Info("RabbitMQ service initialized")
		defer rabbitMQService.Close()
		events = rabbitMQService

		consumer := services.NewNotificationConsumer(rabbitMQService, repository.NewUserRepository(db), mailer)
		if err := consumer.Start(); err != nil {
			logrus.Warnf("Failed to start order notification consumer: %v", err)
		} else {
			logrus.Info("Order notification consumer started")
			defer consumer.Stop()
		}
	}

	if err := authService.SeedAdminUser(); err != nil {
		logrus.Warnf("Failed to seed admin user: %v", err)
	} else {
		logrus.Info("Admin user check completed")
	}

	tokenCleanupService := auth.NewTokenCleanupService(db)
	tokenCleanupService.Start()
	defer tokenCleanupService.Stop()

	dashboardService := services.NewDashboardService(repository.NewDashboardRepository(db), cache.NewFromEnv())

	r := router.SetupRouter(router.Deps{
		DB:          db,
		AuthService: authService,
		Events:      events,
		Dashboard:   dashboardService,
	})

	port := getEnv("PORT", "8080")
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", port),
		Handler: r,
	}

	go func() {
		logrus.Infof("Server starting on port %s", port)
		logrus.Infof("API Health Check: http://localhost:%s/api/v1/health", port)
		logrus.Infof("Swagger UI: http://localhost:%s/swagger/index.html", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	logrus.Info("Server exited properly")
}

func configureLogging() {
	logLevel := getEnv("LOG_LEVEL", "info")
	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp: true,
	})
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
