package postgres

import (
	"fmt"
	"log/slog"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/JenTJames/wallit-server/internal/config"
)

// NewGormDB открывает подключение GORM к PostgreSQL.
// TranslateError включен, чтобы нарушение уникального индекса по email
// приходило как gorm.ErrDuplicatedKey, а не как сырая ошибка драйвера.
func NewGormDB(cfg *config.Config, logger *slog.Logger) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		logger.Error("failed to open GORM connection", "error", err)
		return nil, fmt.Errorf("ошибка открытия GORM-соединения: %w", err)
	}

	logger.Info("GORM connection established successfully")
	return db, nil
}

// ApplyMigrations применяет все доступные миграции к бд.
// Вызывается только при RUN_MIGRATIONS=true — никакого неявного пересоздания схемы.
func ApplyMigrations(databaseURL string, logger *slog.Logger) error {
	m, err := migrate.New(
		"file://internal/database/postgres/migrations",
		databaseURL,
	)
	if err != nil {
		return fmt.Errorf("не удалось создать экземпляр мигратора: %w", err)
	}

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("ошибка выполнения миграций: %w", err)
	}

	if err == migrate.ErrNoChange {
		logger.Info("migrations are up to date, nothing to apply")
	} else {
		logger.Info("migrations applied successfully")
	}
	return nil
}
