package http

import (
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"

	"github.com/jhoicas/embutidos-web/internal/application/analytics"
	"github.com/jhoicas/embutidos-web/internal/application/auth"
	"github.com/jhoicas/embutidos-web/internal/application/gate"
	"github.com/jhoicas/embutidos-web/internal/application/usecase"
	"github.com/jhoicas/embutidos-web/pkg/config"
	"github.com/jhoicas/embutidos-web/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	Renderer *Renderer
	Gate     *gate.Gate
	Session  config.SessionConfig
	Form     config.FormConfig
	Log      *logger.Logger
	// Metrics expone /metrics; nil lo deshabilita.
	Metrics fiber.Handler

	AuthUC       *auth.AuthUseCase
	DashboardUC  *analytics.DashboardUseCase
	ProductUC    *usecase.ProductUseCase
	InventoryUC  *usecase.InventoryUseCase
	SalesUC      *usecase.SalesUseCase
	PresaleUC    *usecase.PresaleUseCase
	PaymentUC    *usecase.PaymentUseCase
	UserUC       *usecase.UserUseCase
	ReportUC     *usecase.ReportUseCase
	PredictionUC *usecase.PredictionUseCase
	ParameterUC  *usecase.ParameterUseCase
}

// Router registra las rutas de las páginas.
func Router(app *fiber.App, deps RouterDeps) {
	cookies := NewCookies(deps.Session)
	p := pages{r: deps.Renderer, cookies: cookies}
	formToken := FormToken(deps.Form, cookies, deps.Renderer)

	app.Use(RequestID(), RequestLogger(deps.Log))

	// Públicas (fuera del gate)
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	if deps.Metrics != nil {
		app.Get("/metrics", deps.Metrics)
	}
	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       nethttp.FS(staticFS),
		PathPrefix: "static",
		MaxAge:     3600,
	}))

	authHandler := NewAuthHandler(p, deps.AuthUC)
	app.Get("/loginqr", formToken, authHandler.LoginQR)

	// Rutas bajo el contrato de sesión
	web := app.Group("/", SessionGate(deps.Gate, cookies), Profile(deps.AuthUC, cookies), formToken)

	web.Get("/", func(c *fiber.Ctx) error { return c.Redirect(gate.HomePath, fiber.StatusFound) })
	web.Get("/login", authHandler.LoginPage)
	web.Post("/login", authHandler.Login)
	web.Post("/logout", authHandler.Logout)

	dashboard := NewDashboardHandler(p, deps.DashboardUC)
	web.Get("/dashboard", dashboard.Show)

	products := NewProductHandler(p, deps.ProductUC)
	web.Get("/products", products.List)
	web.Post("/products", products.Create)
	web.Post("/products/categorias", products.CreateCategory)
	web.Post("/products/categorias/:id", products.UpdateCategory)
	web.Post("/products/categorias/:id/delete", products.DeleteCategory)
	web.Post("/products/:id", products.Update)
	web.Post("/products/:id/delete", products.Delete)

	inventory := NewInventoryHandler(p, deps.InventoryUC)
	web.Get("/inventario", inventory.Show)
	web.Post("/inventario/stock/:productoId", inventory.UpdateStock)
	web.Post("/inventario/stock/:productoId/delete", inventory.DeleteStock)
	web.Post("/inventario/lotes", inventory.CreateBatch)
	web.Post("/inventario/lotes/:id", inventory.UpdateBatch)
	web.Post("/inventario/lotes/:id/delete", inventory.DeleteBatch)
	web.Post("/inventario/movimientos", inventory.CreateMovement)
	web.Post("/inventario/movimientos/:id", inventory.UpdateMovement)
	web.Post("/inventario/movimientos/:id/delete", inventory.DeleteMovement)
	web.Post("/inventario/alertas/generar", inventory.GenerateAlerts)

	sales := NewSalesHandler(p, deps.SalesUC, deps.PresaleUC)
	web.Get("/ventas", sales.List)
	web.Post("/ventas", sales.Create)
	web.Post("/ventas/:id", sales.Update)
	web.Post("/ventas/:id/delete", sales.Delete)
	web.Get("/preventas", sales.Presales)
	web.Post("/preventas", sales.CreatePresale)
	web.Post("/preventas/:id/delete", sales.DeletePresale)
	web.Post("/preventas/:id/entrega", sales.ConfirmDelivery)

	payments := NewPaymentHandler(p, deps.PaymentUC)
	web.Get("/pagos", payments.Show)
	web.Post("/pagos", payments.Create)

	users := NewUserHandler(p, deps.UserUC)
	web.Get("/users", users.List)
	web.Post("/users", users.Create)
	web.Get("/users/:id/qr.pdf", users.QRCard)
	web.Get("/users/:id", users.Detail)
	web.Post("/users/:id", users.Update)
	web.Post("/users/:id/delete", users.Delete)
	web.Post("/users/:id/unlock", users.Unlock)
	web.Post("/users/:id/permissions", users.UpdatePermissions)
	web.Post("/users/:id/qr", users.GenerateQR)

	reports := NewReportHandler(p, deps.ReportUC, deps.PredictionUC, deps.ParameterUC)
	web.Get("/reportes", reports.Reports)
	web.Get("/reportes/estado-cuenta.pdf", reports.StatementPDF)
	web.Get("/predicciones", reports.Predictions)
	web.Get("/parametros", reports.Parameters)
	web.Post("/parametros/:id", reports.UpdateParameter)
}
