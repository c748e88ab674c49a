package http

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/jhoicas/embutidos-web/internal/application/auth"
	"github.com/jhoicas/embutidos-web/internal/application/gate"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
	"github.com/jhoicas/embutidos-web/pkg/config"
	"github.com/jhoicas/embutidos-web/pkg/jwt"
	"github.com/jhoicas/embutidos-web/pkg/logger"
)

// Locals keys en Fiber.
const (
	LocalRequestID = "request_id"
	LocalSession   = "session"
	LocalFormToken = "form_token"
)

// HeaderRequestID cabecera de correlación, también reenviada al backend.
const HeaderRequestID = "X-Request-ID"

// FormField nombre del campo oculto con el token de formulario.
const FormField = "_csrf"

// RequestID reutiliza el X-Request-ID entrante o genera uno nuevo y lo deja en
// el contexto de la petición para los logs y las llamadas al backend.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(HeaderRequestID)
		if id == "" || len(id) > 64 {
			id = uuid.NewString()
		}
		c.Locals(LocalRequestID, id)
		c.Set(HeaderRequestID, id)
		c.SetUserContext(logger.WithRequestID(c.UserContext(), id))
		return c.Next()
	}
}

// RequestLogger registra método, ruta, estado y latencia de cada petición.
func RequestLogger(log *logger.Logger) fiber.Handler {
	log = log.Component("http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}
		ev := log.Ctx(c.UserContext()).Info()
		if status >= fiber.StatusInternalServerError {
			ev = log.Ctx(c.UserContext()).Error().Err(err)
		}
		ev.Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Msg("request")
		return err
	}
}

// SessionGate aplica el contrato de sesión a las rutas cubiertas por el gate.
// El resto de rutas pasa sin tocar.
func SessionGate(g *gate.Gate, cookies Cookies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !gate.Matches(c.Path()) {
			return c.Next()
		}
		d := g.Decide(c.UserContext(), c.Path(), cookies.Token(c))
		if d.ClearToken {
			cookies.Clear(c)
		}
		if d.Outcome == gate.Allow {
			return c.Next()
		}
		return c.Redirect(d.Location, fiber.StatusFound)
	}
}

// Profile carga el perfil del usuario y deja la sesión en Locals. Sin token la
// sesión es anónima.
func Profile(uc *auth.AuthUseCase, cookies Cookies) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// Fuera del gate no hay página que use el perfil (404, estáticos).
		if !gate.Matches(c.Path()) {
			return c.Next()
		}
		c.Locals(LocalSession, uc.Session(c.UserContext(), cookies.Token(c)))
		return c.Next()
	}
}

// FormToken emite un token de formulario atado a la sesión en cada GET y lo
// exige en cada POST.
func FormToken(cfg config.FormConfig, cookies Cookies, r *Renderer) fiber.Handler {
	ttl := time.Duration(cfg.TTLMinutes) * time.Minute
	return func(c *fiber.Ctx) error {
		binding := jwt.Binding(cookies.Token(c))
		if c.Method() == fiber.MethodPost {
			if err := jwt.Parse(cfg.Secret, c.FormValue(FormField), binding); err != nil {
				return r.Error(c, fiber.StatusForbidden, "El formulario expiró. Recargue la página e intente de nuevo.")
			}
		}
		tok, err := jwt.Generate(cfg.Secret, binding, ttl)
		if err != nil {
			return err
		}
		c.Locals(LocalFormToken, tok)
		return c.Next()
	}
}

// SessionFrom sesión de la petición; anónima si el middleware Profile no corrió.
func SessionFrom(c *fiber.Ctx) *session.Session {
	if s, ok := c.Locals(LocalSession).(*session.Session); ok && s != nil {
		return s
	}
	return session.Anonymous()
}

func formTokenFrom(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalFormToken).(string)
	return s
}
