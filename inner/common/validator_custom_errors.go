package common

import "fmt"

// RequestValidationError некорректные данные запроса (400)
type RequestValidationError struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func (err RequestValidationError) Error() string {
	return err.Message
}

// AlreadyExistsError значение уже занято другой записью (400)
type AlreadyExistsError struct {
	Message string `json:"message"`
}

func (err AlreadyExistsError) Error() string {
	return err.Message
}

// NotFoundError представляет ошибку, когда сущность не найдена
type NotFoundError struct {
	Message string `json:"message"`
}

func (err NotFoundError) Error() string {
	return err.Message
}

// DuplicateKeyError нарушение уникального ограничения на уровне базы данных
type DuplicateKeyError struct {
	Field string `json:"field"`
}

func (err DuplicateKeyError) Error() string {
	return fmt.Sprintf("Duplicate value for field %s, please input another value!", err.Field)
}

// NewNotFoundError создаёт новую ошибку "not found"
func NewNotFoundError(message string) error {
	return NotFoundError{Message: message}
}

func NewBadRequestError(message string) error {
	return RequestValidationError{Message: message}
}
