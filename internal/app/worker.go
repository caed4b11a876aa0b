package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"time"

	"github.com/JenTJames/wallit-server/internal/core/ports"
	"github.com/JenTJames/wallit-server/internal/messaging/payloads"
	"github.com/JenTJames/wallit-server/internal/usecase"
)

// runWorker запускает потребителя RabbitMQ и обрабатывает события регистрации.
func runWorker(
	ctx context.Context,
	logger *slog.Logger,
	userUseCase usecase.UserUseCase,
	consumer ports.UserRegisteredConsumer,
) error {
	log.Println("Воркер запущен. Ожидание сообщений в очереди RabbitMQ...")

	workerCtx, cancelWorker := context.WithCancel(ctx)
	defer cancelWorker()

	// Обработчик события: приветственная обработка нового пользователя
	messageHandler := func(ctx context.Context, payload payloads.UserRegisteredPayload) error {
		logger.Info("worker: processing registration event",
			"event_id", payload.EventID,
			"user_id", payload.UserID,
		)

		if err := userUseCase.WelcomeUser(ctx, payload); err != nil {
			logger.Error("worker: failed to process registration event",
				"event_id", payload.EventID,
				"error", err,
			)
			return err
		}
		return nil
	}

	err := consumer.StartConsumingUserRegistered(workerCtx, messageHandler)
	if err != nil {
		return fmt.Errorf("ошибка при запуске потребителя RabbitMQ: %w", err)
	}

	// Graceful Shutdown для воркера
	<-ctx.Done()

	log.Println("Worker: Получен сигнал завершения. Завершаем работу воркера...")

	cancelWorker()

	time.Sleep(2 * time.Second) // Небольшая задержка, чтобы логи успели выйти
	log.Println("Worker: Воркер успешно завершил работу.")

	return nil
}
