package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/usecase"
	"github.com/jhoicas/embutidos-web/internal/application/view"
)

// UserHandler gestión de usuarios, permisos y QR de acceso.
type UserHandler struct {
	pages
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(p pages, uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{pages: p, uc: uc}
}

const usersTitle = "Usuarios"

// List GET /users?q=&rol=&page=
func (h *UserHandler) List(c *fiber.Ctx) error {
	page := h.uc.Load(c.UserContext(), SessionFrom(c), h.filter(c))
	return h.show(c, "users", View{Title: usersTitle, Data: page}, page.State)
}

// Create POST /users
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.UserForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	page, res := h.uc.CreateUser(c.UserContext(), SessionFrom(c), in, h.filter(c))
	return h.user(c, "", in, page, res)
}

// Update POST /users/:id
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UserForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	id := c.Params("id")
	page, res := h.uc.UpdateUser(c.UserContext(), SessionFrom(c), id, in, h.filter(c))
	return h.user(c, id, in, page, res)
}

// Delete POST /users/:id/delete
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	page, res := h.uc.DeleteUser(c.UserContext(), SessionFrom(c), c.Params("id"), h.filter(c))
	return h.list(c, page, res)
}

// Unlock POST /users/:id/unlock
func (h *UserHandler) Unlock(c *fiber.Ctx) error {
	page, res := h.uc.UnlockUser(c.UserContext(), SessionFrom(c), c.Params("id"), h.filter(c))
	return h.list(c, page, res)
}

// Detail GET /users/:id
func (h *UserHandler) Detail(c *fiber.Ctx) error {
	page := h.uc.Detail(c.UserContext(), SessionFrom(c), c.Params("id"))
	return h.show(c, "user_detail", View{Title: usersTitle, Data: page}, page.State)
}

// UpdatePermissions POST /users/:id/permissions
func (h *UserHandler) UpdatePermissions(c *fiber.Ctx) error {
	var in dto.PermissionsForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	id := c.Params("id")
	page, res := h.uc.UpdatePermissions(c.UserContext(), SessionFrom(c), id, in)
	return h.detail(c, id, page, res)
}

// GenerateQR POST /users/:id/qr
func (h *UserHandler) GenerateQR(c *fiber.Ctx) error {
	id := c.Params("id")
	page, res := h.uc.GenerateQR(c.UserContext(), SessionFrom(c), id)
	return h.detail(c, id, page, res)
}

// QRCard GET /users/:id/qr.pdf
func (h *UserHandler) QRCard(c *fiber.Ctx) error {
	pdf, name, err := h.uc.QRCard(c.UserContext(), SessionFrom(c), c.Params("id"))
	if err != nil {
		return h.download(c, err, "Error al generar la tarjeta QR")
	}
	return sendPDF(c, name, pdf)
}

func (h *UserHandler) filter(c *fiber.Ctx) dto.UserFilter {
	var f dto.UserFilter
	parseQuery(c, &f)
	return f
}

func (h *UserHandler) user(c *fiber.Ctx, id string, in dto.UserForm, page usecase.UsersPage, res view.Result) error {
	in.Password = ""
	v := View{Title: usersTitle, Kind: "usuario", Editing: id, Form: in}
	return h.result(c, "users", v, res, page, func() any {
		return usecase.UsersPage{Roles: h.uc.Roles(c.UserContext(), SessionFrom(c))}
	})
}

func (h *UserHandler) list(c *fiber.Ctx, page usecase.UsersPage, res view.Result) error {
	return h.result(c, "users", View{Title: usersTitle}, res, page, func() any {
		return h.uc.Load(c.UserContext(), SessionFrom(c), h.filter(c))
	})
}

func (h *UserHandler) detail(c *fiber.Ctx, id string, page usecase.UserDetailPage, res view.Result) error {
	return h.result(c, "user_detail", View{Title: usersTitle}, res, page, func() any {
		return h.uc.Detail(c.UserContext(), SessionFrom(c), id)
	})
}
