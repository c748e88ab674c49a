package inventory

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// CostCalculator costo promedio ponderado al sumar una entrada.
// NuevoCosto = ((StockActual * CostoActual) + (CantEntrada * CostoEntrada)) / (StockActual + CantEntrada)
func CostCalculator(stockActual, costoActual, cantEntrada, costoEntrada decimal.Decimal) decimal.Decimal {
	sum := stockActual.Add(cantEntrada)
	if sum.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	num := stockActual.Mul(costoActual).Add(cantEntrada.Mul(costoEntrada))
	return num.Div(sum)
}

// UnitCost costo por unidad de un lote (costoLote / cantidadProducida).
func UnitCost(b entity.Batch) decimal.Decimal {
	if b.CantidadProducida <= 0 {
		return decimal.Zero
	}
	return b.CostoLote.Div(decimal.NewFromFloat(b.CantidadProducida))
}

// Valuation costo promedio de las existencias de un producto según sus lotes disponibles.
type Valuation struct {
	Cantidad    decimal.Decimal
	CostoUnidad decimal.Decimal
	CostoTotal  decimal.Decimal
	Lotes       int
}

// Value acumula lote por lote con CostCalculator. Solo cuentan los lotes
// disponibles con cantidad; agotados, dañados y expirados quedan fuera.
func Value(batches []entity.Batch, productoID string) Valuation {
	var v Valuation
	for _, b := range batches {
		if b.Producto.ID != productoID || b.Estado != entity.LoteDisponible || b.CantidadDisponible <= 0 {
			continue
		}
		qty := decimal.NewFromFloat(b.CantidadDisponible)
		v.CostoUnidad = CostCalculator(v.Cantidad, v.CostoUnidad, qty, UnitCost(b))
		v.Cantidad = v.Cantidad.Add(qty)
		v.Lotes++
	}
	v.CostoTotal = v.Cantidad.Mul(v.CostoUnidad).Round(2)
	v.CostoUnidad = v.CostoUnidad.Round(2)
	return v
}
