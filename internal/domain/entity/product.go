package entity

import "github.com/shopspring/decimal"

// Unidades de medida admitidas para un producto.
const (
	UnidadKilogramos = "Kilogramos"
	UnidadUnidades   = "Unidades"
	UnidadLitros     = "Litros"
)

// Product producto del catálogo (embutido terminado).
type Product struct {
	ID             string          `json:"_id"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
	Categoria      Ref             `json:"categoria"`
	SKU            string          `json:"sku"`
	PrecioVenta    decimal.Decimal `json:"precioVenta"`
	Costo          decimal.Decimal `json:"costo"`
	UnidadMedida   string          `json:"unidadMedida"`
	DiasExpiracion int             `json:"diasExpiracion"`
}

// Margen precio de venta menos costo.
func (p Product) Margen() decimal.Decimal {
	return p.PrecioVenta.Sub(p.Costo)
}

// Category categoría de productos.
type Category struct {
	ID          string `json:"_id"`
	Nombre      string `json:"nombre"`
	Descripcion string `json:"descripcion,omitempty"`
}
