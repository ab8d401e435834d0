package models

import (
	"fmt"
	"strings"
)

// FieldError описывает одну ошибку валидации поля запроса.
type FieldError struct {
	Field    string `json:"field"`
	Rejected string `json:"rejectedValue"`
	Message  string `json:"message"`
}

// ValidationError собирает все ошибки валидации запроса.
// Валидация выполняется целиком до какой-либо записи в хранилище,
// поэтому ошибка содержит полный список проблемных полей, а не первое из них.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	messages := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		messages[i] = fmt.Sprintf("%s: %s", f.Field, f.Message)
	}
	return "валидация не пройдена: " + strings.Join(messages, "; ")
}
