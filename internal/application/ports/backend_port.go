package ports

import (
	"context"
	"net/url"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// AuthService autenticación contra el backend.
type AuthService interface {
	Login(ctx context.Context, in dto.LoginPayload) (entity.LoginResult, error)
	LoginQR(ctx context.Context, qrToken string) (entity.LoginResult, error)
	ValidateToken(ctx context.Context, token string) error
	Profile(ctx context.Context, token string) (*entity.Profile, error)
	GenerateQR(ctx context.Context, token, userID string) (entity.QRCode, error)
}

// DashboardService widgets del dashboard.
type DashboardService interface {
	Summary(ctx context.Context, token, timeRange string) (entity.DashboardSummary, error)
	Production(ctx context.Context, token, timeRange string) ([]entity.ProductionPoint, error)
	Sales(ctx context.Context, token, timeRange string) ([]entity.SalesPoint, error)
	Inventory(ctx context.Context, token string) ([]entity.InventoryPoint, error)
	QualityIssues(ctx context.Context, token, timeRange string) ([]entity.QualityIssue, error)
}

// CatalogService productos y categorías.
type CatalogService interface {
	Products(ctx context.Context, token string) ([]entity.Product, error)
	CreateProduct(ctx context.Context, token string, in dto.ProductPayload) error
	UpdateProduct(ctx context.Context, token, id string, in dto.ProductPayload) error
	DeleteProduct(ctx context.Context, token, id string) error
	Categories(ctx context.Context, token string) ([]entity.Category, error)
	CreateCategory(ctx context.Context, token string, in entity.Category) error
	UpdateCategory(ctx context.Context, token, id string, in entity.Category) error
	DeleteCategory(ctx context.Context, token, id string) error
}

// InventoryService stock, lotes, movimientos y alertas.
type InventoryService interface {
	Stocks(ctx context.Context, token string) ([]entity.Stock, error)
	UpdateStock(ctx context.Context, token, productoID string, in dto.StockPayload) error
	DeleteStock(ctx context.Context, token, productoID string) error
	Batches(ctx context.Context, token string) ([]entity.Batch, error)
	CreateBatch(ctx context.Context, token string, in dto.BatchPayload) error
	UpdateBatch(ctx context.Context, token, id string, in dto.BatchPayload) error
	DeleteBatch(ctx context.Context, token, id string) error
	Movements(ctx context.Context, token string) ([]entity.Movement, error)
	CreateMovement(ctx context.Context, token string, in dto.MovementPayload) error
	UpdateMovement(ctx context.Context, token, id string, in dto.MovementPayload) error
	DeleteMovement(ctx context.Context, token, id string) error
	Alerts(ctx context.Context, token string) ([]entity.Alert, error)
	GenerateAlerts(ctx context.Context, token string) error
}

// SalesService ventas, clientes, vendedores y parámetros.
type SalesService interface {
	Sales(ctx context.Context, token string) ([]entity.Sale, error)
	CreateSale(ctx context.Context, token string, in dto.SalePayload) (entity.SaleCreated, error)
	UpdateSale(ctx context.Context, token, id string, in dto.SalePayload) error
	DeleteSale(ctx context.Context, token, id string) error
	Clients(ctx context.Context, token string) ([]entity.User, error)
	Vendors(ctx context.Context, token string) ([]entity.User, error)
	Parameters(ctx context.Context, token string) ([]entity.Parameter, error)
	UpdateParameter(ctx context.Context, token, id string, in dto.ParameterPayload) error
}

// PaymentService pagos de clientes.
type PaymentService interface {
	PendingSales(ctx context.Context, token, clienteID string) ([]entity.PendingSale, error)
	Payments(ctx context.Context, token, clienteID string) ([]entity.Payment, error)
	CreatePayment(ctx context.Context, token string, in dto.PaymentPayload) (entity.PaymentResult, error)
}

// PresaleService preventas.
type PresaleService interface {
	Presales(ctx context.Context, token string) ([]entity.Presale, error)
	CreatePresale(ctx context.Context, token string, in dto.PresalePayload) error
	DeletePresale(ctx context.Context, token, id string) error
	ConfirmDelivery(ctx context.Context, token string, in dto.DeliveryPayload) error
}

// UserService administración de usuarios.
type UserService interface {
	Users(ctx context.Context, token string) ([]entity.User, error)
	User(ctx context.Context, token, id string) (entity.User, error)
	CreateUser(ctx context.Context, token string, in dto.UserPayload) error
	UpdateUser(ctx context.Context, token, id string, in dto.UserPayload) error
	DeleteUser(ctx context.Context, token, id string) error
	UnlockUser(ctx context.Context, token, id string) error
	UpdatePermissions(ctx context.Context, token, id string, in dto.PermissionsPayload) error
	Sessions(ctx context.Context, token, id string) ([]entity.UserSession, error)
	Roles(ctx context.Context, token string) ([]entity.Role, error)
	Permissions(ctx context.Context, token string) ([]entity.PermissionDef, error)
}

// ReportService reportes; query lleva el filtro de fechas.
type ReportService interface {
	ProductReport(ctx context.Context, token string, query url.Values) (entity.ProductReport, error)
	ClientReport(ctx context.Context, token string, query url.Values) (entity.ClientReport, error)
	ClientStatement(ctx context.Context, token, clienteID string, query url.Values) (entity.ClientStatement, error)
	VendorDebts(ctx context.Context, token, vendedorID string, query url.Values) (entity.VendorDebtReport, error)
}

// PredictionService predicciones de ventas y producción.
type PredictionService interface {
	Prediction(ctx context.Context, token, productoID, tipo string) (entity.Prediction, error)
}

// DocumentRenderer genera los PDF descargables.
type DocumentRenderer interface {
	StatementPDF(client entity.User, report entity.ClientStatement) ([]byte, error)
	QRCardPDF(user entity.User, qr entity.QRCode) ([]byte, error)
}
