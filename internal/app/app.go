package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/JenTJames/wallit-server/internal/config"
	"github.com/JenTJames/wallit-server/internal/core/ports"
	"github.com/JenTJames/wallit-server/internal/database/client"
	"github.com/JenTJames/wallit-server/internal/usecase"
)

type App struct {
	Config      *config.Config
	logger      *slog.Logger
	dbClient    *client.Client
	userUseCase usecase.UserUseCase
	consumer    ports.UserRegisteredConsumer
}

func NewApp(cfg *config.Config,
	logger *slog.Logger,
	dbClient *client.Client,
	userUseCase usecase.UserUseCase,
	consumer ports.UserRegisteredConsumer) *App {
	return &App{
		Config:      cfg,
		logger:      logger,
		dbClient:    dbClient,
		userUseCase: userUseCase,
		consumer:    consumer,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode *string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Printf("[app] Запуск в режиме: %s", *mode)

	var err error

	switch *mode {
	case "server":
		err = runServer(ctx, a.Config, a.logger, a.userUseCase, a.dbHealth)

	case "worker":
		err = runWorker(ctx, a.logger, a.userUseCase, a.consumer)

	default:
		err = fmt.Errorf("неизвестный режим: %s (используйте 'server' или 'worker')", *mode)
	}

	if err != nil {
		return err
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		log.Printf("[app] ошибка при завершении: %v", closeErr)
	}

	log.Println("[app] Завершено корректно.")
	return nil
}

// dbHealth проверяет доступность бд, используется маршрутом /health.
func (a *App) dbHealth(ctx context.Context) error {
	return a.dbClient.DB.PingContext(ctx)
}

// Shutdown закрывает все ресурсы приложения.
func (a *App) Shutdown() error {
	if a.dbClient != nil {
		if err := a.dbClient.Close(); err != nil {
			return fmt.Errorf("ошибка закрытия БД: %w", err)
		}
	}

	// если consumer имеет метод Close — вызываем его
	if closer, ok := a.consumer.(interface{ Close() }); ok {
		closer.Close()
	}

	return nil
}
