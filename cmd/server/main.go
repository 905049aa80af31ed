package main

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/ignatzorin/moderation-backend/internal/config"
	"github.com/ignatzorin/moderation-backend/internal/db"
	"github.com/ignatzorin/moderation-backend/internal/firebase"
	"github.com/ignatzorin/moderation-backend/internal/goroutine"
	httpHandlers "github.com/ignatzorin/moderation-backend/internal/http/handlers"
	httpRouter "github.com/ignatzorin/moderation-backend/internal/http/router"
	"github.com/ignatzorin/moderation-backend/internal/logger"
	"github.com/ignatzorin/moderation-backend/internal/repository"
	"github.com/ignatzorin/moderation-backend/internal/service"
)

func main() {
	// Готовим контекст для graceful shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: ошибка загрузки конфигурации: %v", err)
	}

	// Инициализация логгера
	if cfg.Env == "development" {
		logger.Init("debug")
		logger.SetTextFormatter()
	} else {
		logger.Init("info")
	}

	// Подключение к базе и миграции.
	dbConn, err := db.NewPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("main: ошибка подключения к базе: %v", err)
	}
	defer safeClose(dbConn)

	if err := db.RunMigrations(ctx, dbConn, cfg.MigrationsPath); err != nil {
		log.Fatalf("main: ошибка миграций: %v", err)
	}

	tokenManager := service.NewTokenManager(cfg.JWTSecret, cfg.RefreshSecret, cfg.AccessTokenTTL, cfg.RefreshTokenTTL)

	// Репозитории.
	flaggedRepo := repository.NewFlaggedRepository(dbConn)
	triggerRepo := repository.NewTriggerRepository(dbConn)
	reviewerRepo := repository.NewReviewerRepository(dbConn)

	// Клиент внешнего live-хранилища: единственный экземпляр на процесс,
	// передаётся сервису при конструировании.
	var projector service.Projector
	if cfg.FirebaseDBURL != "" {
		projector = firebase.NewClient(cfg.FirebaseDBURL, cfg.FirebaseAuthToken, cfg.ProjectionTimeout)
	} else {
		log.Printf("main: FIREBASE_DB_URL не задан, проекция решений выключена")
	}

	// Сервисы.
	authService := service.NewAuthService(reviewerRepo, tokenManager)
	triggerService := service.NewTriggerService(triggerRepo)
	moderationService := service.NewModerationService(flaggedRepo, triggerRepo, projector, service.ModerationConfig{
		IntakePolicy:      cfg.IntakePolicy,
		ProjectionEnabled: cfg.ExternalProjectionEnabled,
	})

	if err := authService.EnsureBootstrapAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("main: не удалось создать bootstrap администратора: %v", err)
	}

	// HTTP хэндлеры.
	authHandler := httpHandlers.NewAuthHandler(authService)
	flaggedHandler := httpHandlers.NewFlaggedHandler(moderationService)
	triggerHandler := httpHandlers.NewTriggerHandler(triggerService)
	healthHandler := httpHandlers.NewHealthHandler(dbConn)

	// Роутер.
	engine := httpRouter.SetupRouter(cfg, authHandler, flaggedHandler, triggerHandler, healthHandler, tokenManager)

	server := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: engine,
	}

	// Завершаем сервер при получении сигнала.
	goroutine.SafeGo(func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: ошибка остановки http сервера: %v", err)
		}
	})

	log.Printf("main: HTTP сервер запущен на порту %s", cfg.HTTPPort)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("main: сервер завершился с ошибкой: %v", err)
	}
}

// safeClose закрывает соединение с базой.
func safeClose(db *sqlx.DB) {
	if err := db.Close(); err != nil {
		log.Printf("main: ошибка закрытия базы: %v", err)
	}
}
