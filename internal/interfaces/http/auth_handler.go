package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/embutidos-web/internal/application/auth"
	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/gate"
	"github.com/jhoicas/embutidos-web/internal/application/view"
)

// ExpiredMessage aviso del login cuando el gate echó la sesión.
const ExpiredMessage = "Su sesión ha expirado. Inicie sesión nuevamente."

// AuthHandler login con credenciales, login por QR y logout.
type AuthHandler struct {
	pages
	uc *auth.AuthUseCase
}

// NewAuthHandler construye el handler.
func NewAuthHandler(p pages, uc *auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{pages: p, uc: uc}
}

// LoginPage GET /login
func (h *AuthHandler) LoginPage(c *fiber.Ctx) error {
	v := View{Title: "Iniciar sesión", Form: dto.LoginForm{}}
	if c.Query("sessionExpired") == "true" {
		v.Warning = ExpiredMessage
	}
	return h.r.Render(c, fiber.StatusOK, "login", v)
}

// Login POST /login. Con errores de validación no se llama al backend.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var in dto.LoginForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	out, violations, err := h.uc.Login(c.UserContext(), in)
	if len(violations) > 0 {
		in.Password = ""
		return h.r.Render(c, fiber.StatusUnprocessableEntity, "login", View{Title: "Iniciar sesión", Form: in, Violations: violations})
	}
	if err != nil {
		in.Password = ""
		return h.r.Render(c, fiber.StatusUnauthorized, "login", View{
			Title: "Iniciar sesión",
			Form:  in,
			Error: view.Message(err, auth.LoginFailed),
		})
	}
	h.cookies.Set(c, out.Token, out.MaxAge)
	return c.Redirect(gate.HomePath, fiber.StatusFound)
}

// LoginQR GET /loginqr?token=
func (h *AuthHandler) LoginQR(c *fiber.Ctx) error {
	out, err := h.uc.LoginQR(c.UserContext(), c.Query("token"))
	if err != nil {
		return h.r.Render(c, fiber.StatusUnauthorized, "login", View{
			Title: "Iniciar sesión",
			Form:  dto.LoginForm{},
			Error: auth.QRLoginFailed,
		})
	}
	h.cookies.Set(c, out.Token, out.MaxAge)
	return c.Redirect(gate.HomePath, fiber.StatusFound)
}

// Logout POST /logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.cookies.Clear(c)
	return c.Redirect(gate.LoginPath, fiber.StatusFound)
}
