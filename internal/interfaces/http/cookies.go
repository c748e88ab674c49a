package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/embutidos-web/pkg/config"
)

// Cookies lectura y escritura de la cookie de sesión.
type Cookies struct {
	cfg config.SessionConfig
}

// NewCookies construye el manejador de la cookie.
func NewCookies(cfg config.SessionConfig) Cookies {
	return Cookies{cfg: cfg}
}

// Token devuelve el token guardado ("" si no hay cookie).
func (k Cookies) Token(c *fiber.Ctx) string {
	return c.Cookies(k.cfg.CookieName)
}

// Set guarda el token. maxAge 0 deja una cookie de sesión del navegador.
func (k Cookies) Set(c *fiber.Ctx, token string, maxAge time.Duration) {
	cookie := &fiber.Cookie{
		Name:     k.cfg.CookieName,
		Value:    token,
		Path:     "/",
		HTTPOnly: true,
		Secure:   k.cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
	}
	if maxAge > 0 {
		cookie.MaxAge = int(maxAge.Seconds())
		cookie.Expires = time.Now().Add(maxAge)
	}
	c.Cookie(cookie)
}

// Clear borra la cookie en el navegador.
func (k Cookies) Clear(c *fiber.Ctx) {
	c.Cookie(&fiber.Cookie{
		Name:     k.cfg.CookieName,
		Value:    "",
		Path:     "/",
		HTTPOnly: true,
		Secure:   k.cfg.Secure,
		SameSite: fiber.CookieSameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	})
}
