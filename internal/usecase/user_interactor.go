package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/JenTJames/wallit-server/internal/apperr"
	"github.com/JenTJames/wallit-server/internal/core/ports"
	"github.com/JenTJames/wallit-server/internal/domain"
	"github.com/JenTJames/wallit-server/internal/messaging/payloads"
	"github.com/JenTJames/wallit-server/internal/validate"
)

// bcryptCost — стоимость хеширования пароля.
const bcryptCost = 12

const invalidCredentialsMessage = "Invalid credentials"

// createUserRules — фиксированное отображение полей регистрации на их метки в сообщениях.
var createUserRules = map[string]string{
	"firstname": "firstname",
	"lastname":  "lastname",
	"email":     "email",
	"password":  "password",
}

// userUseCase implements UserUseCase
type userUseCase struct {
	userStorage ports.UserStorage
	publisher   ports.UserRegisteredPublisher
	logger      *slog.Logger
}

// NewUserUseCase создает новый экземпляр UserUseCase,
// принимает реализации портов UserStorage и UserRegisteredPublisher.
func NewUserUseCase(
	userStorage ports.UserStorage,
	publisher ports.UserRegisteredPublisher,
	logger *slog.Logger,
) UserUseCase {
	return &userUseCase{
		userStorage: userStorage,
		publisher:   publisher,
		logger:      logger,
	}
}

// CreateUser регистрирует нового пользователя.
// Сначала валидация присутствия полей, затем проверка занятости email,
// затем хеширование пароля и вставка. Событие о регистрации публикуется
// best-effort: ошибка очереди не откатывает созданную запись.
func (uc *userUseCase) CreateUser(ctx context.Context, input CreateUserInput) (string, error) {
	entity := map[string]string{
		"firstname": input.Firstname,
		"lastname":  input.Lastname,
		"email":     input.Email,
		"password":  input.Password,
	}
	fields := []string{"firstname", "lastname", "email", "password"}
	if err := validate.Fields(entity, createUserRules, fields); err != nil {
		return "", err
	}

	// Предварительная проверка занятости email. Не атомарна со вставкой,
	// поэтому уникальный индекс в бд остается последней линией защиты.
	existing, err := uc.userStorage.GetUserByEmail(ctx, input.Email)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка при проверке занятости email: %w", err)
	}
	if existing != nil {
		return "", apperr.Conflict("A user with the given email already exists.")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("usecase: ошибка хеширования пароля: %w", err)
	}

	user := &domain.User{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Email:     input.Email,
		Password:  string(hash),
	}

	if err := uc.userStorage.SaveUser(ctx, user); err != nil {
		// Конкурентная регистрация проскочила предварительную проверку —
		// нарушение индекса трактуем так же, как занятый email.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return "", apperr.Conflict("A user with the given email already exists.")
		}
		return "", fmt.Errorf("usecase: ошибка при создании пользователя: %w", err)
	}

	uc.logger.Info("user registered", "user_id", user.ID, "email", user.Email)

	event := payloads.UserRegisteredPayload{
		EventID:      uuid.New(),
		UserID:       user.ID,
		Email:        user.Email,
		Firstname:    user.Firstname,
		RegisteredAt: time.Now(),
	}
	if err := uc.publisher.PublishUserRegistered(ctx, event); err != nil {
		uc.logger.Warn("failed to publish user registered event", "user_id", user.ID, "error", err)
	}

	return strconv.FormatUint(uint64(user.ID), 10), nil
}

// AuthenticateUser проверяет учетные данные пользователя.
func (uc *userUseCase) AuthenticateUser(ctx context.Context, creds Credentials) (*domain.User, error) {
	entity := map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	}
	rules := map[string]string{
		"email":    "email",
		"password": "password",
	}
	if err := validate.Fields(entity, rules, []string{"email", "password"}); err != nil {
		return nil, err
	}

	user, err := uc.userStorage.GetUserByEmail(ctx, creds.Email)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при поиске пользователя по email: %w", err)
	}
	if user == nil {
		// сообщение и код совпадают со случаем неверного пароля,
		// чтобы не раскрывать, зарегистрирован ли email
		return nil, apperr.Unauthorized(invalidCredentialsMessage)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(creds.Password)); err != nil {
		return nil, apperr.Unauthorized(invalidCredentialsMessage)
	}

	uc.logger.Info("user authenticated", "user_id", user.ID)

	scrubbed := user.Scrub()
	return &scrubbed, nil
}

// FindUserByEmail ищет пользователя по email, в ответ хеш пароля не попадает.
func (uc *userUseCase) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if email == "" {
		return nil, apperr.BadRequest("email cannot be empty")
	}
	if !validate.EmailShape(email) {
		return nil, apperr.BadRequest("Invalid email")
	}

	user, err := uc.userStorage.GetUserProfileByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при поиске профиля по email: %w", err)
	}
	if user == nil {
		return nil, apperr.BadRequest("Could not find a user with the given email")
	}
	return user, nil
}

// GetUserByID ищет пользователя по первичному ключу.
func (uc *userUseCase) GetUserByID(ctx context.Context, id uint) (*domain.User, error) {
	if id == 0 {
		return nil, apperr.BadRequest("id cannot be empty")
	}

	user, err := uc.userStorage.GetUserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("usecase: ошибка при поиске пользователя по ID: %w", err)
	}
	if user == nil {
		return nil, apperr.BadRequest("Could not find a user with the given id")
	}
	return user, nil
}

// WelcomeUser обрабатывает событие регистрации: перечитывает запись по ID
// и выполняет приветственную обработку. Если пользователя уже нет —
// событие считается обработанным, повторная доставка не нужна.
func (uc *userUseCase) WelcomeUser(ctx context.Context, payload payloads.UserRegisteredPayload) error {
	user, err := uc.GetUserByID(ctx, payload.UserID)
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			uc.logger.Warn("user from registration event not found, skipping",
				"event_id", payload.EventID,
				"user_id", payload.UserID,
			)
			return nil
		}
		return fmt.Errorf("usecase: ошибка при обработке события регистрации: %w", err)
	}

	uc.logger.Info("welcome processing completed",
		"event_id", payload.EventID,
		"user_id", user.ID,
		"firstname", user.Firstname,
		"registered_at", payload.RegisteredAt.Format(time.RFC3339),
	)
	return nil
}
