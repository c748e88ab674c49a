package logger

import (
	"context"

	"github.com/rs/zerolog"
)

type requestIDKey struct{}

// WithRequestID guarda el id de la petición en el contexto.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID id de la petición guardado con WithRequestID, o "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// requestIDHook añade request_id a cada evento cuyo contexto lo lleve, ya sea
// por Logger.Ctx o por Event.Ctx.
type requestIDHook struct{}

func (requestIDHook) Run(e *zerolog.Event, _ zerolog.Level, _ string) {
	if id := RequestID(e.GetCtx()); id != "" {
		e.Str("request_id", id)
	}
}

// Ctx sublogger atado al contexto de la petición.
func (l *Logger) Ctx(ctx context.Context) *Logger {
	if RequestID(ctx) == "" {
		return l
	}
	return &Logger{zl: l.zl.With().Ctx(ctx).Logger()}
}
