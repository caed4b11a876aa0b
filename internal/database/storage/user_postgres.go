package storage

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/JenTJames/wallit-server/internal/domain"
	"gorm.io/gorm"
)

// UserStorage реализует интерфейс ports.UserStorage с использованием GORM.
type UserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewUserStorage создает новый экземпляр UserStorage.
func NewUserStorage(db *gorm.DB, logger *slog.Logger) *UserStorage {
	return &UserStorage{db: db, logger: logger}
}

// SaveUser сохраняет нового пользователя в бд.
// gorm.ErrDuplicatedKey пробрасывается как есть — его классифицирует бизнес-логика.
func (s *UserStorage) SaveUser(ctx context.Context, user *domain.User) error {
	start := time.Now()

	result := s.db.WithContext(ctx).Create(user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			s.logger.Warn("duplicate email on insert", "email", user.Email)
			return result.Error
		}
		s.logger.Error("failed to insert user", "error", result.Error)
		return fmt.Errorf("ошибка при сохранении пользователя в БД: %w", result.Error)
	}

	s.logger.Info("user saved successfully",
		"user_id", user.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetUserByEmail получает полную запись пользователя по email (включая хеш пароля).
// Возвращает (nil, nil), если запись не найдена.
func (s *UserStorage) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to select user by email", "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении пользователя по email из БД: %w", result.Error)
	}
	return &user, nil
}

// GetUserProfileByEmail получает запись по email без хеша пароля —
// из бд выбираются только колонки id, firstname, lastname, email.
func (s *UserStorage) GetUserProfileByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).
		Select("id", "firstname", "lastname", "email").
		Where("email = ?", email).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to select user profile by email", "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении профиля пользователя из БД: %w", result.Error)
	}
	return &user, nil
}

// GetUserByID получает полную запись пользователя по первичному ключу.
// Возвращает (nil, nil), если запись не найдена.
func (s *UserStorage) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	result := s.db.WithContext(ctx).First(&user, "id = ?", id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		s.logger.Error("failed to select user by id", "error", result.Error)
		return nil, fmt.Errorf("ошибка при получении пользователя по ID из БД: %w", result.Error)
	}
	return &user, nil
}
