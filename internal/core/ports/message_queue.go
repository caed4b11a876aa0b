package ports

import (
	"context"

	"github.com/JenTJames/wallit-server/internal/messaging/payloads"
)

// UserRegisteredPublisher определяет методы для публикации событий о регистрации.
// Этот интерфейс используется бизнес-логикой после успешного создания пользователя.
type UserRegisteredPublisher interface {
	PublishUserRegistered(ctx context.Context, payload payloads.UserRegisteredPayload) error
}

// UserRegisteredConsumer определяет методы для потребления событий о регистрации,
// будет использоваться воркером для получения задач из очереди.
type UserRegisteredConsumer interface {
	// StartConsumingUserRegistered начинает прослушивание очереди,
	// принимает функцию-обработчик, которая будет вызываться для каждого события.
	StartConsumingUserRegistered(ctx context.Context, handler func(context.Context, payloads.UserRegisteredPayload) error) error
}
