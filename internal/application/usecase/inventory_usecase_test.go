package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/embutidos-web/internal/application/dto"
	"github.com/jhoicas/embutidos-web/internal/domain"
	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/permission"
)

var inventoryAdmin = []permission.Permission{
	permission.VerStock, permission.VerLotesProduccion, permission.VerMovimientosInventario,
	permission.VerAlertas, permission.VerProductos, permission.CrearLoteProduccion,
	permission.CrearMovimientoInventario, permission.GenerarAlertas,
}

func TestInventoryLoad_BuscaSoloEnLaPestanaActiva(t *testing.T) {
	st := &fakeStock{
		batches: []entity.Batch{
			{ID: "l1", CodigoLote: "LOTE-001", Producto: entity.Ref{ID: "p1", Nombre: "Chorizo"}},
			{ID: "l2", CodigoLote: "LOTE-002", Producto: entity.Ref{ID: "p2", Nombre: "Salchicha"}},
		},
		movements: []entity.Movement{{ID: "m1", Producto: entity.Ref{Nombre: "Salchicha"}, Tipo: entity.MovimientoEntrada}},
	}
	uc := NewInventoryUseCase(st, &fakeCatalog{}, composer())

	page := uc.Load(context.Background(), sessWith(inventoryAdmin...), dto.InventoryQuery{Tab: dto.TabLotes, Q: "chorizo"})

	require.True(t, page.State.IsReady())
	require.Len(t, page.Batches.Items, 1)
	assert.Equal(t, "l1", page.Batches.Items[0].ID)
	assert.Len(t, page.Movements.Items, 1, "otras pestañas sin filtrar")
}

func TestInventoryLoad_PestanaPorDefecto(t *testing.T) {
	page := NewInventoryUseCase(&fakeStock{}, &fakeCatalog{}, composer()).
		Load(context.Background(), sessWith(inventoryAdmin...), dto.InventoryQuery{})
	assert.Equal(t, dto.TabStock, page.Query.Tab)
}

func TestInventoryLoad_SugiereReposicion(t *testing.T) {
	st := &fakeStock{stocks: []entity.Stock{
		{Producto: entity.Ref{ID: "p1"}, StockActual: 2, StockMinimo: 10},
	}}
	cat := &fakeCatalog{products: []entity.Product{{ID: "p1", Nombre: "Chorizo", Costo: decimal.NewFromInt(10)}}}

	page := NewInventoryUseCase(st, cat, composer()).Load(context.Background(), sessWith(inventoryAdmin...), dto.InventoryQuery{})

	require.Len(t, page.Replenishment, 1)
	assert.Equal(t, "Chorizo", page.Replenishment[0].Nombre)
	assert.Equal(t, 13.0, page.Replenishment[0].Cantidad)
}

func TestInventoryLoad_FallanLasAlertas_NadaVisible(t *testing.T) {
	st := &fakeStock{
		stocks:    []entity.Stock{{Producto: entity.Ref{ID: "p1"}, StockActual: 5}},
		alertsErr: errors.New("timeout"),
	}
	page := NewInventoryUseCase(st, &fakeCatalog{}, composer()).Load(context.Background(), sessWith(inventoryAdmin...), dto.InventoryQuery{})

	assert.True(t, page.State.IsError())
	assert.Equal(t, "Error al cargar el inventario", page.State.Message)
	assert.Empty(t, page.Stocks.Items)
}

func TestCreateBatch_UbicacionVacia_SinPeticiones(t *testing.T) {
	st := &fakeStock{}
	_, res := NewInventoryUseCase(st, &fakeCatalog{}, composer()).CreateBatch(context.Background(), sessWith(inventoryAdmin...),
		dto.BatchForm{ProductoID: "p1", CantidadProducida: "20", UbicacionLote: "   "}, dto.InventoryQuery{})

	assert.Equal(t, "La ubicación es obligatoria.", res.Violations.Get("ubicacionLote"))
	assert.Zero(t, st.total())
}

func TestCreateMovement_Valido_UnaLlamadaYUnaRecarga(t *testing.T) {
	st := &fakeStock{}
	_, res := NewInventoryUseCase(st, &fakeCatalog{}, composer()).CreateMovement(context.Background(), sessWith(inventoryAdmin...), dto.MovementForm{
		ProductoID: "p1", Tipo: entity.MovimientoSalida, Cantidad: "3", Razon: "Merma",
	}, dto.InventoryQuery{Tab: dto.TabMovimientos})

	require.True(t, res.OK())
	assert.Equal(t, 1, st.get("createMovement"))
	assert.Equal(t, 1, st.get("movements"))
}

func TestGenerateAlerts_VuelveALaPestanaDeAlertas(t *testing.T) {
	st := &fakeStock{}
	page, res := NewInventoryUseCase(st, &fakeCatalog{}, composer()).GenerateAlerts(context.Background(), sessWith(inventoryAdmin...), dto.InventoryQuery{})

	require.True(t, res.OK())
	assert.Equal(t, dto.TabAlertas, page.Query.Tab)
	assert.Equal(t, 1, st.get("generateAlerts"))
}

func TestDeleteStock_SinPermiso(t *testing.T) {
	st := &fakeStock{}
	_, res := NewInventoryUseCase(st, &fakeCatalog{}, composer()).DeleteStock(context.Background(), sessWith(inventoryAdmin...), "p1", dto.InventoryQuery{})
	assert.ErrorIs(t, res.Err, domain.ErrForbidden)
	assert.Zero(t, st.total())
}
