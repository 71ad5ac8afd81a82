// Package apperror define la taxonomía de errores de la aplicación:
// validación (lista de violaciones por campo), entidad no encontrada y
// conflicto. Los casos de uso retornan estos tipos para que los callers
// no puedan ignorar un camino de falla.
package apperror

import (
	"fmt"
	"strings"
)

// FieldViolation una violación de validación sobre un campo
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa todas las violaciones detectadas en una petición
// Siempre se reporta la lista completa, nunca un único mensaje
type ValidationError struct {
	Violations []FieldViolation
}

// NewValidationError crea un error de validación vacío
func NewValidationError() *ValidationError {
	return &ValidationError{}
}

// Add registra una violación
func (e *ValidationError) Add(field, message string) {
	e.Violations = append(e.Violations, FieldViolation{Field: field, Message: message})
}

// Addf registra una violación con formato
func (e *ValidationError) Addf(field, format string, args ...interface{}) {
	e.Add(field, fmt.Sprintf(format, args...))
}

// HasViolations indica si se registró al menos una violación
func (e *ValidationError) HasViolations() bool {
	return len(e.Violations) > 0
}

// ErrOrNil retorna el error solo si hay violaciones registradas
func (e *ValidationError) ErrOrNil() error {
	if e.HasViolations() {
		return e
	}
	return nil
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Field+": "+v.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}

// NotFoundError indica que la entidad referenciada no existe
type NotFoundError struct {
	Entity string
	ID     string
}

// NewNotFound crea un NotFoundError para la entidad e id dados
func NewNotFound(entity, id string) *NotFoundError {
	return &NotFoundError{Entity: entity, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with ID %s not found", e.Entity, e.ID)
}

// ConflictError indica una petición que choca con el estado actual del sistema
type ConflictError struct {
	Message string
}

// NewConflict crea un ConflictError con el mensaje dado
func NewConflict(message string) *ConflictError {
	return &ConflictError{Message: message}
}

func (e *ConflictError) Error() string {
	return e.Message
}
