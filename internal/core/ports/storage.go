package ports

import (
	"context"

	"github.com/JenTJames/wallit-server/internal/domain"
)

// UserStorage определяет методы для взаимодействия с хранилищем пользователей.
// Если запись не найдена, методы Get* возвращают (nil, nil) — отсутствие записи
// не является ошибкой хранилища, решение принимает бизнес-логика.
type UserStorage interface {
	// SaveUser сохраняет нового пользователя (поле Password уже содержит хеш).
	// При нарушении уникальности email возвращает gorm.ErrDuplicatedKey.
	SaveUser(ctx context.Context, user *domain.User) error

	// GetUserByEmail получает полную запись пользователя по email (включая хеш пароля).
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserProfileByEmail получает запись по email без хеша пароля —
	// выбираются только колонки id, firstname, lastname, email.
	GetUserProfileByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByID получает полную запись по первичному ключу.
	GetUserByID(ctx context.Context, id uint) (*domain.User, error)
}
