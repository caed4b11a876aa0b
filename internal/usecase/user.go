package usecase

import (
	"context"

	"github.com/JenTJames/wallit-server/internal/domain"
	"github.com/JenTJames/wallit-server/internal/messaging/payloads"
)

// CreateUserInput — входные данные регистрации (пароль в открытом виде,
// хешируется внутри CreateUser и дальше нигде не хранится).
type CreateUserInput struct {
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

// Credentials — входные данные аутентификации.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserUseCase определяет интерфейс бизнес-логики работы с пользователями.
// Все ошибки возвращаются как *apperr.Error (код + сообщение),
// неклассифицированные ошибки хранилища HTTP-слой превращает в 500.
type UserUseCase interface {
	// CreateUser валидирует вход, проверяет занятость email, хеширует пароль
	// и сохраняет запись. Возвращает ID новой записи в текстовом виде.
	CreateUser(ctx context.Context, input CreateUserInput) (string, error)

	// AuthenticateUser сверяет пароль с хешем из бд.
	// "Нет такого пользователя" и "неверный пароль" неразличимы для клиента:
	// оба дают 401 с одинаковым сообщением.
	AuthenticateUser(ctx context.Context, creds Credentials) (*domain.User, error)

	// FindUserByEmail ищет пользователя по email, хеш пароля не выбирается из бд.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetUserByID ищет пользователя по первичному ключу.
	// Не выставляется наружу как маршрут, используется воркером.
	GetUserByID(ctx context.Context, id uint) (*domain.User, error)

	// WelcomeUser обрабатывает событие регистрации из очереди.
	WelcomeUser(ctx context.Context, payload payloads.UserRegisteredPayload) error
}
