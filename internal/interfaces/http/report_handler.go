package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/usecase"
)

// ReportHandler reportes, predicciones y parámetros de negocio.
type ReportHandler struct {
	pages
	reports     *usecase.ReportUseCase
	predictions *usecase.PredictionUseCase
	parameters  *usecase.ParameterUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(p pages, reports *usecase.ReportUseCase, predictions *usecase.PredictionUseCase, parameters *usecase.ParameterUseCase) *ReportHandler {
	return &ReportHandler{pages: p, reports: reports, predictions: predictions, parameters: parameters}
}

// Reports GET /reportes?tipo=&filtro=&...
func (h *ReportHandler) Reports(c *fiber.Ctx) error {
	page := h.reports.Load(c.UserContext(), SessionFrom(c), h.filter(c))
	v := View{Title: "Reportes", Data: page, Violations: page.Violations}
	return h.show(c, "reports", v, page.State)
}

// StatementPDF GET /reportes/estado-cuenta.pdf?clienteId=&filtro=&...
func (h *ReportHandler) StatementPDF(c *fiber.Ctx) error {
	pdf, name, err := h.reports.StatementPDF(c.UserContext(), SessionFrom(c), h.filter(c))
	if err != nil {
		return h.download(c, err, "Error al generar el estado de cuenta")
	}
	return sendPDF(c, name, pdf)
}

// Predictions GET /predicciones?producto=&tipo=
func (h *ReportHandler) Predictions(c *fiber.Ctx) error {
	var f dto.PredictionForm
	parseQuery(c, &f)
	page := h.predictions.Load(c.UserContext(), SessionFrom(c), f)
	v := View{Title: "Predicciones", Data: page, Violations: page.Violations}
	return h.show(c, "predictions", v, page.State)
}

// Parameters GET /parametros
func (h *ReportHandler) Parameters(c *fiber.Ctx) error {
	page := h.parameters.Load(c.UserContext(), SessionFrom(c))
	return h.show(c, "parameters", View{Title: "Parámetros", Data: page}, page.State)
}

// UpdateParameter POST /parametros/:id
func (h *ReportHandler) UpdateParameter(c *fiber.Ctx) error {
	var in dto.ParameterForm
	if err := parseForm(c, &in); err != nil {
		return err
	}
	id := c.Params("id")
	page, res := h.parameters.UpdateParameter(c.UserContext(), SessionFrom(c), id, in)
	v := View{Title: "Parámetros", Kind: "parametro", Editing: id}
	return h.result(c, "parameters", v, res, page, func() any {
		return h.parameters.Load(c.UserContext(), SessionFrom(c))
	})
}

func (h *ReportHandler) filter(c *fiber.Ctx) dto.ReportFilter {
	var f dto.ReportFilter
	parseQuery(c, &f)
	return f
}
