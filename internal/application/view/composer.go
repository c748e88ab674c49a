package view

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jhoicas/embutidos-web/pkg/logger"
)

// Task lectura de un lote. El resultado solo se publica si todo el lote termina bien.
type Task struct {
	Name string
	run  func(ctx context.Context) (commit func(), err error)
}

// Into crea una tarea que, si el lote completo tiene éxito, deja el resultado en dst.
func Into[T any](name string, dst *T, fetch func(ctx context.Context) (T, error)) Task {
	return Task{
		Name: name,
		run: func(ctx context.Context) (func(), error) {
			v, err := fetch(ctx)
			if err != nil {
				return nil, err
			}
			return func() { *dst = v }, nil
		},
	}
}

// Observer recibe el resultado de cada lote (métricas). Puede ser nil.
type Observer interface {
	ObserveBatch(outcome string, tasks int, elapsed time.Duration)
}

// Composer ejecuta lotes de lecturas y mutaciones.
type Composer struct {
	log      *logger.Logger
	observer Observer
}

// NewComposer construye el compositor.
func NewComposer(log *logger.Logger, observer Observer) *Composer {
	return &Composer{log: log.Component("view"), observer: observer}
}

// Load lanza todas las tareas en paralelo. Si alguna falla el resto se cancela,
// no se publica nada y el estado queda en Error con el mensaje del servidor o
// fallback. Si todas terminan, se publican todos los resultados juntos.
func (c *Composer) Load(ctx context.Context, fallback string, tasks ...Task) State {
	start := time.Now()
	commits := make([]func(), len(tasks))

	g, gctx := errgroup.WithContext(ctx)
	for i, t := range tasks {
		g.Go(func() error {
			commit, err := t.run(gctx)
			if err != nil {
				c.log.Ctx(ctx).Warn().Err(err).Str("task", t.Name).Msg("falló la carga del lote")
				return err
			}
			commits[i] = commit
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		c.observe("error", len(tasks), start)
		return ErrorState(err, fallback)
	}
	for _, commit := range commits {
		commit()
	}
	c.observe("ready", len(tasks), start)
	return ReadyState()
}

func (c *Composer) observe(outcome string, n int, start time.Time) {
	if c.observer != nil {
		c.observer.ObserveBatch(outcome, n, time.Since(start))
	}
}

// Mutation envío de un formulario.
type Mutation struct {
	// Input se valida con Validate antes de llamar al backend. Puede ser nil.
	Input any
	// Check validaciones adicionales que dependen de más de un campo.
	Check func() Violations
	// Call única petición de escritura.
	Call func(ctx context.Context) error
	// Refetch recarga completa de la vista; solo se ejecuta si Call tuvo éxito.
	Refetch func(ctx context.Context) State
	// Success mensaje a mostrar si todo salió bien.
	Success string
	// Fallback mensaje si el backend falla sin texto propio.
	Fallback string
}

// Result resultado del envío.
type Result struct {
	Violations Violations
	Err        error
	Message    string // error a mostrar
	Success    string
	State      State // estado de la recarga
}

// OK indica que la mutación se aplicó.
func (r Result) OK() bool { return len(r.Violations) == 0 && r.Err == nil }

// Submit valida, hace una sola llamada y, si tuvo éxito, una sola recarga.
// Con errores de validación no se llama al backend.
func (c *Composer) Submit(ctx context.Context, m Mutation) Result {
	v := Violations{}
	if m.Input != nil {
		v.Merge(Validate(m.Input))
	}
	if m.Check != nil {
		v.Merge(m.Check())
	}
	if len(v) > 0 {
		return Result{Violations: v}
	}

	if err := m.Call(ctx); err != nil {
		c.log.Ctx(ctx).Warn().Err(err).Msg("falló la operación")
		return Result{Err: err, Message: Message(err, m.Fallback)}
	}

	res := Result{Success: m.Success, State: ReadyState()}
	if m.Refetch != nil {
		res.State = m.Refetch(ctx)
	}
	return res
}
