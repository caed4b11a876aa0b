package app

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"time"

	"github.com/JenTJames/wallit-server/internal/config"
	"github.com/JenTJames/wallit-server/internal/handler"
	"github.com/JenTJames/wallit-server/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// runServer запускает HTTP сервер.
func runServer(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	userUseCase usecase.UserUseCase,
	dbHealth func(context.Context) error,
) error {
	userHandler := handler.NewUserHandler(userUseCase, dbHealth, logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(handler.RequestLogger(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.RequestTimeout))

	r.Get("/health", userHandler.Health)
	r.Post("/users", userHandler.CreateUser)
	r.Post("/users/authenticate", userHandler.AuthenticateUser)
	r.Get("/users", userHandler.FindUserByEmail)

	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Сервер запущен на %s", serverAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful Shutdown
	select {
	case err := <-errCh:
		return fmt.Errorf("ошибка при запуске сервера: %w", err)
	case <-ctx.Done():
	}

	log.Println("Получен сигнал завершения. Завершаем работу сервера...")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	log.Println("Сервер успешно завершил работу.")
	return nil
}
