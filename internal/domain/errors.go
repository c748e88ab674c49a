package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNoToken      = errors.New("sesión sin token")
	ErrUnauthorized = errors.New("no autorizado")
	ErrForbidden    = errors.New("acceso denegado")
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
	ErrConflict     = errors.New("conflicto con el estado actual")
	ErrUpstream     = errors.New("error del servidor de datos")
)

// APIError respuesta no-2xx del backend. Message es el texto literal que devolvió
// el servidor (campo "message" o "error"), vacío si no envió ninguno.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend HTTP %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend HTTP %d", e.Status)
}

// Unwrap permite errors.Is contra los sentinelas según el código HTTP.
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return ErrInvalidInput
	case http.StatusConflict:
		return ErrConflict
	default:
		return ErrUpstream
	}
}

// ServerMessage devuelve el mensaje literal del backend si err lo trae.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

// IsStatus indica si err es un APIError con el código dado.
func IsStatus(err error, status int) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == status
}
