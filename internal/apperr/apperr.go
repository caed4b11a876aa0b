// Package apperr содержит тегированную ошибку приложения: HTTP-код + сообщение.
// HTTP-слой мапит её напрямую в статус и тело ответа.
package apperr

import "errors"

const (
	// DefaultCode используется, когда код не указан или ошибка не классифицирована.
	DefaultCode = 500
	// DefaultMessage — сообщение по умолчанию для неклассифицированных ошибок.
	DefaultMessage = "Oops! something went wrong."
)

// Error — ошибка с HTTP-кодом и сообщением для клиента.
type Error struct {
	Code    int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New создает новую ошибку. Нулевой код заменяется на 500,
// пустое сообщение — на сообщение по умолчанию.
func New(code int, message string) *Error {
	if code == 0 {
		code = DefaultCode
	}
	if message == "" {
		message = DefaultMessage
	}
	return &Error{Code: code, Message: message}
}

// BadRequest — ошибка 400 (отсутствующие/некорректные входные данные, неудачный поиск).
func BadRequest(message string) *Error {
	return New(400, message)
}

// Unauthorized — ошибка 401 (неудачная аутентификация).
func Unauthorized(message string) *Error {
	return New(401, message)
}

// Conflict — ошибка 409 (дубликат email).
func Conflict(message string) *Error {
	return New(409, message)
}

// From приводит произвольную ошибку к *Error.
// Всё, что не является *Error (например, ошибка бд), становится 500 по умолчанию,
// чтобы внутренние детали не утекали клиенту.
func From(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return New(DefaultCode, DefaultMessage)
}
