// Package view compone el estado de cada pantalla: carga en lote, envío de
// formularios con recarga, búsqueda y paginación.
package view

import (
	"github.com/jhoicas/embutidos-web/internal/domain"
)

// DefaultError mensaje genérico cuando el servidor no devuelve uno propio.
const DefaultError = "Ha ocurrido un error"

// Status fase de la vista.
type Status int

const (
	Loading Status = iota
	Ready
	Error
)

func (s Status) String() string {
	switch s {
	case Ready:
		return "ready"
	case Error:
		return "error"
	default:
		return "loading"
	}
}

// State estado observable de una vista. En Error no hay datos parciales a la vista.
type State struct {
	Status  Status
	Err     error
	Message string
}

// IsReady atajo para las plantillas.
func (s State) IsReady() bool { return s.Status == Ready }

// IsError atajo para las plantillas.
func (s State) IsError() bool { return s.Status == Error }

// ReadyState estado listo.
func ReadyState() State { return State{Status: Ready} }

// ErrorState estado de error con el mensaje que se mostrará.
func ErrorState(err error, fallback string) State {
	return State{Status: Error, Err: err, Message: Message(err, fallback)}
}

// Message devuelve el mensaje del servidor o, si no lo hay, el fallback
// (DefaultError si fallback es "").
func Message(err error, fallback string) string {
	if msg, ok := domain.ServerMessage(err); ok {
		return msg
	}
	if fallback == "" {
		return DefaultError
	}
	return fallback
}
