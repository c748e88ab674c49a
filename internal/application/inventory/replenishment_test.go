package inventory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

func TestReplenishment(t *testing.T) {
	products := []entity.Product{
		{ID: "p1", Nombre: "Chorizo", PrecioVenta: decimal.NewFromInt(50), Costo: decimal.NewFromInt(25)},
		{ID: "p2", Nombre: "Salchicha", PrecioVenta: decimal.NewFromInt(40), Costo: decimal.NewFromInt(30)},
		{ID: "p3", Nombre: "Mortadela", PrecioVenta: decimal.NewFromInt(40), Costo: decimal.NewFromInt(20)},
	}
	stocks := []entity.Stock{
		{Producto: entity.Ref{ID: "p1"}, StockActual: 4, StockMinimo: 10, StockMaximo: 30},
		{Producto: entity.Ref{ID: "p2"}, StockActual: 0, StockMinimo: 10},
		{Producto: entity.Ref{ID: "p3"}, StockActual: 50, StockMinimo: 10},
	}
	batches := []entity.Batch{
		{Producto: entity.Ref{ID: "p1"}, Estado: entity.LoteDisponible, CantidadProducida: 10, CantidadDisponible: 4, CostoLote: decimal.NewFromInt(200)},
	}

	got := Replenishment(stocks, products, batches)

	require.Len(t, got, 2)

	assert.Equal(t, "p1", got[0].ProductoID, "mayor margen primero")
	assert.Equal(t, 30.0, got[0].StockIdeal)
	assert.Equal(t, 26.0, got[0].Cantidad)
	assert.True(t, decimal.NewFromInt(20).Equal(got[0].CostoUnidad), "costo de los lotes")
	assert.True(t, decimal.NewFromInt(520).Equal(got[0].CostoEstimado))
	assert.True(t, decimal.NewFromInt(50).Equal(got[0].MargenPct))

	assert.Equal(t, "Salchicha", got[1].Nombre)
	assert.Equal(t, 15.0, got[1].StockIdeal)
	assert.True(t, decimal.NewFromInt(30).Equal(got[1].CostoUnidad), "costo de catálogo")
	assert.Equal(t, 1.0, got[1].Deficit())
}

func TestReplenishment_SinFaltantes(t *testing.T) {
	got := Replenishment([]entity.Stock{{StockActual: 5}}, nil, nil)
	assert.Empty(t, got)
	assert.NotNil(t, got)
}
