package payloads

import (
	"time"

	"github.com/google/uuid"
)

// UserRegisteredPayload представляет событие об успешной регистрации пользователя,
// публикуется в RabbitMQ и обрабатывается воркером.
type UserRegisteredPayload struct {
	EventID      uuid.UUID `json:"event_id"`
	UserID       uint      `json:"user_id"`
	Email        string    `json:"email"`
	Firstname    string    `json:"firstname"`
	RegisteredAt time.Time `json:"registered_at"`
}
