package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/campushq/sis-api/internal/config"
	"github.com/campushq/sis-api/internal/database"
	"github.com/campushq/sis-api/internal/handler"
	"github.com/campushq/sis-api/internal/middleware"
	"github.com/campushq/sis-api/internal/models"
	"github.com/campushq/sis-api/internal/principal"
	"github.com/campushq/sis-api/internal/repository"
	"github.com/campushq/sis-api/internal/router"
	"github.com/campushq/sis-api/internal/scope"
	"github.com/campushq/sis-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Student{}, &models.Attendance{}, &models.Mark{}, &models.FacultyProfile{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	studentRepo := repository.NewStudentRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)
	markRepo := repository.NewMarkRepository(db)
	facultyRepo := repository.NewFacultyProfileRepository(db)

	resolver := principal.NewResolver(studentRepo, facultyRepo, logger)
	gate := scope.NewGate(logger)

	studentService := service.NewStudentService(studentRepo, gate, validate, logger)
	attendanceService := service.NewAttendanceService(attendanceRepo, studentRepo, gate, validate, logger)
	markService := service.NewMarkService(markRepo, studentRepo, gate, validate, logger)
	profileService := service.NewProfileService(studentRepo, attendanceRepo, markRepo, logger)
	analyticsService := service.NewAnalyticsService(studentRepo, attendanceRepo, markRepo, redisClient, cfg.AnalyticsCacheTTL, logger)
	seedService := service.NewSeedService(studentRepo, attendanceRepo, markRepo, facultyRepo, cfg.SeedEnabled, cfg.SeedToken, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		StudentHandler:      handler.NewStudentHandler(studentService, logger),
		AttendanceHandler:   handler.NewAttendanceHandler(attendanceService, logger),
		MarkHandler:         handler.NewMarkHandler(markService, logger),
		ProfileHandler:      handler.NewProfileHandler(profileService, logger),
		AnalyticsHandler:    handler.NewAnalyticsHandler(analyticsService, logger),
		SeedHandler:         handler.NewSeedHandler(seedService, logger),
		AuthMiddleware:      middleware.Authenticate(cfg.JWTSecret),
		PrincipalMiddleware: middleware.ResolvePrincipal(resolver, logger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
