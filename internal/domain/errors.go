package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyCart возвращается при попытке оформить заказ с пустой корзиной.
	ErrEmptyCart = errors.New("cart must contain at least one item")
	// ErrProductNotFound возвращается, если товар не найден в каталоге.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProductID сигнализирует о синтаксически некорректном идентификаторе товара.
	ErrInvalidProductID = errors.New("invalid product id")
	// ErrStoreUnavailable — хранилище не сконфигурировано или недоступно.
	ErrStoreUnavailable = errors.New("store is not available")
	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
)

// FieldError описывает нарушение ограничения конкретного поля входного запроса.
type FieldError struct {
	// Field — путь к полю, например "items[0].quantity".
	Field string
	// Constraint — человекочитаемое описание нарушенного ограничения.
	Constraint string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Constraint)
}

// NewFieldError создаёт ошибку валидации для поля.
func NewFieldError(field, constraint string) *FieldError {
	return &FieldError{Field: field, Constraint: constraint}
}

// ValidationError агрегирует нарушения нескольких полей одного запроса.
type ValidationError struct {
	Violations []error
}

func (e *ValidationError) Error() string {
	return JoinErrors(e.Violations)
}

// IsClientFault проверяет, относится ли ошибка к вине клиента (4xx-эквивалент).
func IsClientFault(err error) bool {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return true
	}
	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return true
	}
	return errors.Is(err, ErrEmptyCart) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrInvalidProductID)
}

// JoinErrors собирает список ошибок валидации в одну строку для логов и ответов.
func JoinErrors(errs []error) string {
	if len(errs) == 0 {
		return ""
	}
	msg := errs[0].Error()
	for _, err := range errs[1:] {
		msg += "; " + err.Error()
	}
	return msg
}
