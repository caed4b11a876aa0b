package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JenTJames/wallit-server/internal/apperr"
	"github.com/JenTJames/wallit-server/internal/usecase"
)

// UserHandler — обработчик HTTP-запросов для работы с пользователями.
type UserHandler struct {
	userUseCase usecase.UserUseCase
	dbHealth    func(context.Context) error
	logger      *slog.Logger
}

// NewUserHandler создаёт новый экземпляр UserHandler.
func NewUserHandler(
	uc usecase.UserUseCase,
	dbHealth func(context.Context) error,
	logger *slog.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: uc,
		dbHealth:    dbHealth,
		logger:      logger,
	}
}

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithText — отправляет ответ в виде простого текста.
func respondWithText(w http.ResponseWriter, code int, body string, logger *slog.Logger) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(code)
	if _, err := w.Write([]byte(body)); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — единая точка отправки ошибок: статус из кода ошибки,
// тело — само сообщение. Код и сообщение логируются.
func respondWithError(w http.ResponseWriter, err error, logger *slog.Logger) {
	appErr := apperr.From(err)
	logger.Error("request failed", "code", appErr.Code, "message", appErr.Message, "error", err)
	respondWithText(w, appErr.Code, appErr.Message, logger)
}

// CreateUser — регистрирует нового пользователя.
// POST /users, 201 с ID новой записи в виде текста.
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var input usecase.CreateUserInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.logger.Warn("invalid request body", "endpoint", "CreateUser", "error", err)
		respondWithText(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	id, err := h.userUseCase.CreateUser(r.Context(), input)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	h.logger.Info("user created", "endpoint", "CreateUser", "user_id", id)
	respondWithText(w, http.StatusCreated, id, h.logger)
}

// AuthenticateUser — проверяет учетные данные пользователя.
// POST /users/authenticate, 200 с записью без поля password.
func (h *UserHandler) AuthenticateUser(w http.ResponseWriter, r *http.Request) {
	var creds usecase.Credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		h.logger.Warn("invalid request body", "endpoint", "AuthenticateUser", "error", err)
		respondWithText(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	user, err := h.userUseCase.AuthenticateUser(r.Context(), creds)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	h.logger.Info("user authenticated", "endpoint", "AuthenticateUser", "user_id", user.ID)
	respondWithJSON(w, http.StatusOK, user, h.logger)
}

// FindUserByEmail — ищет пользователя по email.
// GET /users?email=..., 200 с полями id, firstname, lastname, email.
func (h *UserHandler) FindUserByEmail(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")

	user, err := h.userUseCase.FindUserByEmail(r.Context(), email)
	if err != nil {
		respondWithError(w, err, h.logger)
		return
	}

	h.logger.Info("user found", "endpoint", "FindUserByEmail", "user_id", user.ID)
	respondWithJSON(w, http.StatusOK, user, h.logger)
}

// Health — проверка доступности бд.
// GET /health, 200 "ok" если бд отвечает.
func (h *UserHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.dbHealth(r.Context()); err != nil {
		h.logger.Error("health check failed", "error", err)
		respondWithText(w, http.StatusInternalServerError, "database unreachable", h.logger)
		return
	}
	respondWithText(w, http.StatusOK, "ok", h.logger)
}
