package di

import (
	"log"

	"github.com/JenTJames/wallit-server/internal/app"
	"github.com/JenTJames/wallit-server/internal/config"
	"github.com/JenTJames/wallit-server/internal/database/client"
	"github.com/JenTJames/wallit-server/internal/database/postgres"
	"github.com/JenTJames/wallit-server/internal/database/storage"
	"github.com/JenTJames/wallit-server/internal/logger"
	"github.com/JenTJames/wallit-server/internal/rabbitmq"
	"github.com/JenTJames/wallit-server/internal/usecase"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp() (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogCfg := logger.SlogConfig{
		Level:   cfg.LogLevel,
		Format:  cfg.LogFormat,
		Service: "wallit-server",
	}
	slogger := logger.NewSlog(slogCfg)

	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	// 2. Инициализация PostgreSQL клиента (пул + health-check)
	dbClient, err := client.NewClient(cfg, slogger)
	if err != nil {
		return nil, err
	}

	// 3. Миграции — только явно, по RUN_MIGRATIONS=true
	if cfg.RunMigrations {
		if err := postgres.ApplyMigrations(cfg.DatabaseURL, slogger); err != nil {
			return nil, err
		}
	}

	// 4. Инициализация GORM и хранилища пользователей
	gormDB, err := postgres.NewGormDB(cfg, slogger)
	if err != nil {
		return nil, err
	}
	userStorage := storage.NewUserStorage(gormDB, slogger)

	// 5. Инициализация RabbitMQ клиента (publisher + consumer)
	rabbitMQClient, err := rabbitmq.NewClient(cfg)
	if err != nil {
		return nil, err
	}

	// 6. Инициализация бизнес-логики (usecases)
	userUseCase := usecase.NewUserUseCase(userStorage, rabbitMQClient, slogger)

	// 7. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		dbClient,
		userUseCase,
		rabbitMQClient,
	)

	log.Println("[container] Все зависимости успешно инициализированы.")
	return application, nil
}
