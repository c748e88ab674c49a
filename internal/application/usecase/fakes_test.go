package usecase

import (
	"context"
	"net/url"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes de los puertos del backend
// ──────────────────────────────────────────────────────────────────────────────

type fakeSales struct {
	calls
	sales     []entity.Sale
	clients   []entity.User
	params    []entity.Parameter
	created   entity.SaleCreated
	lastSale  dto.SalePayload
	salesErr  error
	updateErr error
	lastParam dto.ParameterPayload
}

func (f *fakeSales) Sales(context.Context, string) ([]entity.Sale, error) {
	f.hit("sales")
	return f.sales, f.salesErr
}

func (f *fakeSales) CreateSale(_ context.Context, _ string, in dto.SalePayload) (entity.SaleCreated, error) {
	f.hit("createSale")
	f.lastSale = in
	return f.created, nil
}

func (f *fakeSales) UpdateSale(context.Context, string, string, dto.SalePayload) error {
	f.hit("updateSale")
	return f.updateErr
}

func (f *fakeSales) DeleteSale(context.Context, string, string) error {
	f.hit("deleteSale")
	return nil
}

func (f *fakeSales) Clients(context.Context, string) ([]entity.User, error) {
	f.hit("clients")
	return f.clients, nil
}

func (f *fakeSales) Vendors(context.Context, string) ([]entity.User, error) {
	f.hit("vendors")
	return nil, nil
}

func (f *fakeSales) Parameters(context.Context, string) ([]entity.Parameter, error) {
	f.hit("parameters")
	return f.params, nil
}

func (f *fakeSales) UpdateParameter(_ context.Context, _, _ string, in dto.ParameterPayload) error {
	f.hit("updateParameter")
	f.lastParam = in
	return nil
}

type fakeStock struct {
	calls
	stocks    []entity.Stock
	batches   []entity.Batch
	movements []entity.Movement
	alertsErr error
}

func (f *fakeStock) Stocks(context.Context, string) ([]entity.Stock, error) {
	f.hit("stocks")
	return f.stocks, nil
}

func (f *fakeStock) UpdateStock(context.Context, string, string, dto.StockPayload) error {
	f.hit("updateStock")
	return nil
}

func (f *fakeStock) DeleteStock(context.Context, string, string) error {
	f.hit("deleteStock")
	return nil
}

func (f *fakeStock) Batches(context.Context, string) ([]entity.Batch, error) {
	f.hit("batches")
	return f.batches, nil
}

func (f *fakeStock) CreateBatch(context.Context, string, dto.BatchPayload) error {
	f.hit("createBatch")
	return nil
}

func (f *fakeStock) UpdateBatch(context.Context, string, string, dto.BatchPayload) error {
	f.hit("updateBatch")
	return nil
}

func (f *fakeStock) DeleteBatch(context.Context, string, string) error {
	f.hit("deleteBatch")
	return nil
}

func (f *fakeStock) Movements(context.Context, string) ([]entity.Movement, error) {
	f.hit("movements")
	return f.movements, nil
}

func (f *fakeStock) CreateMovement(context.Context, string, dto.MovementPayload) error {
	f.hit("createMovement")
	return nil
}

func (f *fakeStock) UpdateMovement(context.Context, string, string, dto.MovementPayload) error {
	f.hit("updateMovement")
	return nil
}

func (f *fakeStock) DeleteMovement(context.Context, string, string) error {
	f.hit("deleteMovement")
	return nil
}

func (f *fakeStock) Alerts(context.Context, string) ([]entity.Alert, error) {
	f.hit("alerts")
	return nil, f.alertsErr
}

func (f *fakeStock) GenerateAlerts(context.Context, string) error {
	f.hit("generateAlerts")
	return nil
}

type fakePayments struct {
	calls
	pending []entity.PendingSale
	history []entity.Payment
	result  entity.PaymentResult
	last    dto.PaymentPayload
}

func (f *fakePayments) PendingSales(context.Context, string, string) ([]entity.PendingSale, error) {
	f.hit("pending")
	return f.pending, nil
}

func (f *fakePayments) Payments(context.Context, string, string) ([]entity.Payment, error) {
	f.hit("payments")
	return f.history, nil
}

func (f *fakePayments) CreatePayment(_ context.Context, _ string, in dto.PaymentPayload) (entity.PaymentResult, error) {
	f.hit("createPayment")
	f.last = in
	return f.result, nil
}

type fakePresales struct {
	calls
	presales []entity.Presale
	delivery dto.DeliveryPayload
}

func (f *fakePresales) Presales(context.Context, string) ([]entity.Presale, error) {
	f.hit("presales")
	return f.presales, nil
}

func (f *fakePresales) CreatePresale(context.Context, string, dto.PresalePayload) error {
	f.hit("createPresale")
	return nil
}

func (f *fakePresales) DeletePresale(context.Context, string, string) error {
	f.hit("deletePresale")
	return nil
}

func (f *fakePresales) ConfirmDelivery(_ context.Context, _ string, in dto.DeliveryPayload) error {
	f.hit("confirmDelivery")
	f.delivery = in
	return nil
}

type fakeUsers struct {
	calls
	users    []entity.User
	sessions []entity.UserSession
	perms    dto.PermissionsPayload
}

func (f *fakeUsers) Users(context.Context, string) ([]entity.User, error) {
	f.hit("users")
	return f.users, nil
}

func (f *fakeUsers) User(_ context.Context, _, id string) (entity.User, error) {
	f.hit("user")
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return entity.User{ID: id}, nil
}

func (f *fakeUsers) CreateUser(context.Context, string, dto.UserPayload) error {
	f.hit("createUser")
	return nil
}

func (f *fakeUsers) UpdateUser(context.Context, string, string, dto.UserPayload) error {
	f.hit("updateUser")
	return nil
}

func (f *fakeUsers) DeleteUser(context.Context, string, string) error {
	f.hit("deleteUser")
	return nil
}

func (f *fakeUsers) UnlockUser(context.Context, string, string) error {
	f.hit("unlockUser")
	return nil
}

func (f *fakeUsers) UpdatePermissions(_ context.Context, _, _ string, in dto.PermissionsPayload) error {
	f.hit("updatePermissions")
	f.perms = in
	return nil
}

func (f *fakeUsers) Sessions(context.Context, string, string) ([]entity.UserSession, error) {
	f.hit("sessions")
	return f.sessions, nil
}

func (f *fakeUsers) Roles(context.Context, string) ([]entity.Role, error) {
	f.hit("roles")
	return []entity.Role{{ID: "r1", Name: "cliente"}, {ID: "r2", Name: "vendedor"}}, nil
}

func (f *fakeUsers) Permissions(context.Context, string) ([]entity.PermissionDef, error) {
	f.hit("permissions")
	return nil, nil
}

type fakeReports struct {
	calls
	statement entity.ClientStatement
	lastQuery url.Values
}

func (f *fakeReports) ProductReport(_ context.Context, _ string, q url.Values) (entity.ProductReport, error) {
	f.hit("products")
	f.lastQuery = q
	return entity.ProductReport{}, nil
}

func (f *fakeReports) ClientReport(_ context.Context, _ string, q url.Values) (entity.ClientReport, error) {
	f.hit("clients")
	f.lastQuery = q
	return entity.ClientReport{}, nil
}

func (f *fakeReports) ClientStatement(_ context.Context, _, _ string, q url.Values) (entity.ClientStatement, error) {
	f.hit("statement")
	f.lastQuery = q
	return f.statement, nil
}

func (f *fakeReports) VendorDebts(_ context.Context, _, _ string, q url.Values) (entity.VendorDebtReport, error) {
	f.hit("vendorDebts")
	f.lastQuery = q
	return entity.VendorDebtReport{}, nil
}

type fakeDocs struct {
	calls
}

func (f *fakeDocs) StatementPDF(entity.User, entity.ClientStatement) ([]byte, error) {
	f.hit("statementPDF")
	return []byte("%PDF-estado"), nil
}

func (f *fakeDocs) QRCardPDF(entity.User, entity.QRCode) ([]byte, error) {
	f.hit("qrPDF")
	return []byte("%PDF-qr"), nil
}
