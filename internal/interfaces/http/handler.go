package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/embutidos-web/internal/application/gate"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain"
)

// pages base común de los handlers de páginas.
type pages struct {
	r       *Renderer
	cookies Cookies
}

// show pinta una página cargada. Un 401 del backend a mitad de sesión manda al
// login borrando la cookie.
func (p pages) show(c *fiber.Ctx, name string, v View, state view.State) error {
	if errors.Is(state.Err, domain.ErrUnauthorized) {
		return p.expired(c)
	}
	status := fiber.StatusOK
	if errors.Is(state.Err, domain.ErrForbidden) {
		status = fiber.StatusForbidden
	}
	return p.r.Render(c, status, name, v)
}

// result pinta el resultado de un envío:
//   - errores de validación o del backend: solo el formulario, con options
//     recargando sus listas;
//   - éxito: la página recargada (reload) con el aviso.
func (p pages) result(c *fiber.Ctx, name string, v View, res view.Result, reload any, options func() any) error {
	if errors.Is(res.Err, domain.ErrUnauthorized) || errors.Is(res.State.Err, domain.ErrUnauthorized) {
		return p.expired(c)
	}
	if !res.OK() {
		v.Violations = res.Violations
		v.Error = res.Message
		v.FormOnly = v.Form != nil
		v.Data = options()
		status := fiber.StatusUnprocessableEntity
		if errors.Is(res.Err, domain.ErrForbidden) {
			status = fiber.StatusForbidden
		} else if res.Err != nil {
			status = fiber.StatusOK
		}
		return p.r.Render(c, status, name, v)
	}
	v.Flash = res.Success
	v.Form = nil
	v.Data = reload
	return p.r.Render(c, fiber.StatusOK, name, v)
}

// download responde el error de una descarga de PDF.
func (p pages) download(c *fiber.Ctx, err error, fallback string) error {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		return p.expired(c)
	case errors.Is(err, domain.ErrForbidden):
		return p.r.Error(c, fiber.StatusForbidden, view.Message(err, "No tienes permiso para descargar este documento."))
	case errors.Is(err, domain.ErrInvalidInput):
		return p.r.Error(c, fiber.StatusBadRequest, "Filtros inválidos para el documento.")
	default:
		return p.r.Error(c, fiber.StatusBadGateway, view.Message(err, fallback))
	}
}

func sendPDF(c *fiber.Ctx, name string, pdf []byte) error {
	c.Attachment(name)
	c.Set(fiber.HeaderContentType, "application/pdf")
	return c.Send(pdf)
}

func (p pages) expired(c *fiber.Ctx) error {
	p.cookies.Clear(c)
	return c.Redirect(gate.ExpiredPath, fiber.StatusFound)
}

// parseForm lee el cuerpo del formulario; un cuerpo ilegible es un 400.
func parseForm(c *fiber.Ctx, out any) error {
	if err := c.BodyParser(out); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "formulario inválido")
	}
	return nil
}

// parseQuery lee los parámetros de la URL; los inválidos quedan en cero.
func parseQuery(c *fiber.Ctx, out any) {
	_ = c.QueryParser(out)
}
