package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/embutidos-web/internal/application/analytics"
	"github.com/jhoicas/embutidos-web/internal/application/dto"
)

// DashboardHandler página principal con los indicadores.
type DashboardHandler struct {
	pages
	uc *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(p pages, uc *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{pages: p, uc: uc}
}

// Show GET /dashboard?timeRange=
func (h *DashboardHandler) Show(c *fiber.Ctx) error {
	var q dto.DashboardQuery
	parseQuery(c, &q)
	page := h.uc.Load(c.UserContext(), SessionFrom(c), q.TimeRange)
	return h.show(c, "dashboard", View{Title: "Dashboard", Data: page}, page.State)
}
