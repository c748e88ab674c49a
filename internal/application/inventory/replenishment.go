package inventory

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
	"github.com/jhoicas/embutidos-web/internal/domain/inventory"
)

// Suggestion producción sugerida para un producto por debajo de su stock mínimo.
type Suggestion struct {
	ProductoID    string
	Nombre        string
	StockActual   float64
	StockMinimo   float64
	StockIdeal    float64
	Cantidad      float64
	CostoUnidad   decimal.Decimal
	CostoEstimado decimal.Decimal
	MargenPct     decimal.Decimal
}

// Deficit fracción del mínimo que falta (0 = en el mínimo, 1 = sin stock).
func (s Suggestion) Deficit() float64 {
	if s.StockMinimo <= 0 {
		return 0
	}
	return (s.StockMinimo - s.StockActual) / s.StockMinimo
}

// Replenishment lista de reposición: productos bajo mínimo con la cantidad a
// producir hasta el stock ideal (máximo configurado o 1.5 veces el mínimo).
// El costo sale del promedio ponderado de los lotes y, si no hay lotes, del
// costo de catálogo.
func Replenishment(stocks []entity.Stock, products []entity.Product, batches []entity.Batch) []Suggestion {
	byID := make(map[string]entity.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	hundred := decimal.NewFromInt(100)

	out := make([]Suggestion, 0)
	for _, st := range stocks {
		if !st.BajoMinimo() {
			continue
		}
		ideal := st.StockMaximo
		if ideal <= st.StockMinimo {
			ideal = st.StockMinimo * 1.5
		}
		qty := ideal - st.StockActual
		if qty < 0 {
			qty = 0
		}

		p := byID[st.Producto.ID]
		s := Suggestion{
			ProductoID:  st.Producto.ID,
			Nombre:      st.Producto.Label(),
			StockActual: st.StockActual,
			StockMinimo: st.StockMinimo,
			StockIdeal:  ideal,
			Cantidad:    qty,
			CostoUnidad: p.Costo,
		}
		if p.Nombre != "" {
			s.Nombre = p.Nombre
		}
		if v := inventory.Value(batches, st.Producto.ID); v.Lotes > 0 {
			s.CostoUnidad = v.CostoUnidad
		}
		s.CostoEstimado = s.CostoUnidad.Mul(decimal.NewFromFloat(qty)).Round(2)
		if p.PrecioVenta.IsPositive() {
			s.MargenPct = p.Margen().Div(p.PrecioVenta).Mul(hundred).Round(2)
		}
		out = append(out, s)
	}

	// Primero mayor margen, luego mayor déficit relativo.
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if !a.MargenPct.Equal(b.MargenPct) {
			return a.MargenPct.GreaterThan(b.MargenPct)
		}
		return a.Deficit() > b.Deficit()
	})
	return out
}
