// Package validate проверяет присутствие обязательных полей сущности
// по переданному набору правил.
package validate

import (
	"fmt"
	"regexp"

	"github.com/JenTJames/wallit-server/internal/apperr"
)

// Поле считается отсутствующим, только если его нет в entity или оно — пустая строка.
// Намеренно НЕ используется общая "falsy"-семантика: для будущих числовых/булевых
// полей ноль и false — валидные значения.

// базовая форма email: непустая локальная часть, @, домен с точкой
var emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Fields проверяет, что каждое поле из fields, для которого есть правило в rules,
// присутствует в entity и не пустое. Возвращает первую найденную ошибку
// в порядке перечисления fields.
func Fields(entity map[string]string, rules map[string]string, fields []string) error {
	if len(entity) == 0 {
		return apperr.BadRequest("nothing to validate")
	}
	if len(rules) == 0 {
		return apperr.BadRequest("validation rules are not defined")
	}
	if len(fields) == 0 {
		return apperr.BadRequest("no fields to validate")
	}

	for _, field := range fields {
		label, ok := rules[field]
		if !ok {
			continue
		}
		if value, present := entity[field]; !present || value == "" {
			return apperr.BadRequest(fmt.Sprintf("%s cannot be empty", label))
		}
	}
	return nil
}

// EmailShape проверяет базовую форму email-адреса.
func EmailShape(email string) bool {
	return emailShape.MatchString(email)
}
