package usecase

import (
	"context"
	"net/http"
	"strings"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/application/ports"
	"github.com/jhoicas/embutidos-web/internal/application/view"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
	"github.com/jhoicas/embutidos-web/internal/domain/session"
)

const (
	// historyMarker texto del 400 del backend cuando el producto no tiene historial.
	historyMarker = "No hay suficientes datos históricos"
	// NotEnoughHistory mensaje mostrado en ese caso.
	NotEnoughHistory = "No hay suficientes datos históricos para este producto. Por favor, seleccione otro producto."
)

// PredictionPage datos de la página de predicciones.
type PredictionPage struct {
	State      view.State
	Form       dto.PredictionForm
	Violations view.Violations
	Products   []entity.Product
	Prediction *entity.Prediction
	// Message error de la predicción; no oculta el selector de productos.
	Message string
}

// PredictionUseCase predicciones de ventas y producción por producto.
type PredictionUseCase struct {
	api      ports.PredictionService
	catalog  ports.CatalogService
	composer *view.Composer
}

// NewPredictionUseCase construye el caso de uso.
func NewPredictionUseCase(api ports.PredictionService, catalog ports.CatalogService, composer *view.Composer) *PredictionUseCase {
	return &PredictionUseCase{api: api, catalog: catalog, composer: composer}
}

// Load lote {productos}; si ya se eligió producto y tipo, pide la predicción.
func (uc *PredictionUseCase) Load(ctx context.Context, sess *session.Session, f dto.PredictionForm) PredictionPage {
	if f.Tipo == "" {
		f.Tipo = "diario"
	}
	page := PredictionPage{Form: f}
	token := sess.Token()

	tasks := when(nil, sess, permission.VerProductos, view.Into("productos", &page.Products, func(ctx context.Context) ([]entity.Product, error) {
		return uc.catalog.Products(ctx, token)
	}))
	page.State = uc.composer.Load(ctx, "Error al cargar los productos", tasks...)
	if !page.State.IsReady() || f.ProductoID == "" {
		return page
	}
	if !sess.Can(permission.VerPredicciones) {
		page.Message = denied("ver predicciones").Message
		return page
	}

	if page.Violations = view.Validate(&f); len(page.Violations) > 0 {
		return page
	}
	pred, err := uc.api.Prediction(ctx, token, f.ProductoID, f.Tipo)
	if err != nil {
		page.Message = PredictionMessage(err)
		return page
	}
	page.Prediction = &pred
	return page
}

// PredictionMessage traduce el error de falta de historial; el resto usa el
// mensaje del servidor.
func PredictionMessage(err error) string {
	if domain.IsStatus(err, http.StatusBadRequest) {
		if msg, ok := domain.ServerMessage(err); ok && strings.Contains(msg, historyMarker) {
			return NotEnoughHistory
		}
	}
	return view.Message(err, "Error al obtener las predicciones")
}
