// Package gate decide, para cada petición a una ruta protegida, si se deja pasar,
// se manda al login o se manda al dashboard, según el token de sesión.
package gate

import (
	"context"
	"strings"

	"github.com/jhoicas/embutidos-web/pkg/logger"
)

// Rutas fijas del flujo de sesión.
const (
	LoginPath   = "/login"
	HomePath    = "/dashboard"
	RootPath    = "/"
	ExpiredPath = LoginPath + "?sessionExpired=true"
)

// Outcome resultado de la decisión.
type Outcome int

const (
	Allow Outcome = iota
	RedirectLogin
	RedirectHome
)

func (o Outcome) String() string {
	switch o {
	case RedirectLogin:
		return "redirect_login"
	case RedirectHome:
		return "redirect_home"
	default:
		return "allow"
	}
}

// Decision qué hacer con la petición.
type Decision struct {
	Outcome    Outcome
	Location   string // destino de la redirección
	ClearToken bool   // borrar la cookie de sesión
}

// TokenValidator valida un token contra el backend. Solo nil significa token válido.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) error
}

// Recorder registra los resultados (métricas). Puede ser nil.
type Recorder interface {
	GateDecision(outcome string)
}

// Gate aplica el contrato de sesión a las rutas protegidas.
type Gate struct {
	validator TokenValidator
	recorder  Recorder
	log       *logger.Logger
}

// New construye el gate.
func New(validator TokenValidator, recorder Recorder, log *logger.Logger) *Gate {
	return &Gate{validator: validator, recorder: recorder, log: log}
}

// protectedPrefixes rutas cubiertas por el gate además de "/" (coincidencia exacta).
var protectedPrefixes = []string{
	"/login",
	"/logout",
	"/dashboard",
	"/users",
	"/inventario",
	"/products",
	"/ventas",
	"/preventas",
	"/pagos",
	"/reportes",
	"/predicciones",
	"/parametros",
}

// Matches indica si la ruta está cubierta por el gate.
func Matches(path string) bool {
	if path == RootPath || path == "" {
		return true
	}
	for _, prefix := range protectedPrefixes {
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}

// Decide aplica el contrato:
//   - sin token: login pasa, el resto va al login con sessionExpired=true;
//   - token inválido o error al validarlo: al login borrando la cookie;
//   - token válido en "/" o "/login": al dashboard;
//   - cualquier otro caso: pasa.
func (g *Gate) Decide(ctx context.Context, path, token string) Decision {
	d := g.decide(ctx, path, token)
	if g.recorder != nil {
		g.recorder.GateDecision(d.Outcome.String())
	}
	return d
}

func (g *Gate) decide(ctx context.Context, path, token string) Decision {
	isLogin := path == LoginPath

	if token == "" {
		if isLogin {
			return Decision{Outcome: Allow}
		}
		return expired()
	}

	if err := g.validator.ValidateToken(ctx, token); err != nil {
		g.log.Ctx(ctx).Warn().Err(err).Str("path", path).Msg("sesión inválida, redirigiendo al login")
		return expired()
	}

	if isLogin || path == RootPath || path == "" {
		return Decision{Outcome: RedirectHome, Location: HomePath}
	}
	return Decision{Outcome: Allow}
}

func expired() Decision {
	return Decision{Outcome: RedirectLogin, Location: ExpiredPath, ClearToken: true}
}
