package dto

import (
	"github.com/shopspring/decimal"

	"github.com/jhoicas/embutidos-web/internal/domain/entity"
)

// ProductForm alta/edición de producto.
type ProductForm struct {
	Nombre         string `form:"nombre" validate:"min=2" msg:"El nombre debe tener al menos 2 caracteres."`
	Descripcion    string `form:"descripcion"`
	Categoria      string `form:"categoria" validate:"required" msg:"Seleccione una categoría."`
	SKU            string `form:"sku"`
	PrecioVenta    string `form:"precioVenta" validate:"decpos" msg:"El precio de venta debe ser mayor que 0."`
	Costo          string `form:"costo" validate:"decpos" msg:"El costo debe ser mayor que 0."`
	UnidadMedida   string `form:"unidadMedida" validate:"oneof=Kilogramos Unidades Litros" msg:"Seleccione una unidad de medida."`
	DiasExpiracion int    `form:"diasExpiracion" validate:"gt=0" msg:"Los días de expiración deben ser mayores que 0."`
}

// ProductPayload cuerpo de POST/PUT /products.
type ProductPayload struct {
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion"`
	Categoria      string          `json:"categoria"`
	SKU            string          `json:"sku,omitempty"`
	PrecioVenta    decimal.Decimal `json:"precioVenta"`
	Costo          decimal.Decimal `json:"costo"`
	UnidadMedida   string          `json:"unidadMedida"`
	DiasExpiracion int             `json:"diasExpiracion"`
}

// Payload convierte el formulario ya validado.
func (f ProductForm) Payload() ProductPayload {
	return ProductPayload{
		Nombre:         trim(f.Nombre),
		Descripcion:    trim(f.Descripcion),
		Categoria:      f.Categoria,
		SKU:            trim(f.SKU),
		PrecioVenta:    Decimal(f.PrecioVenta),
		Costo:          Decimal(f.Costo),
		UnidadMedida:   f.UnidadMedida,
		DiasExpiracion: f.DiasExpiracion,
	}
}

// ProductFormFrom rellena el formulario de edición.
func ProductFormFrom(p entity.Product) ProductForm {
	return ProductForm{
		Nombre:         p.Nombre,
		Descripcion:    p.Descripcion,
		Categoria:      p.Categoria.ID,
		SKU:            p.SKU,
		PrecioVenta:    p.PrecioVenta.String(),
		Costo:          p.Costo.String(),
		UnidadMedida:   p.UnidadMedida,
		DiasExpiracion: p.DiasExpiracion,
	}
}

// CategoryForm alta/edición de categoría.
type CategoryForm struct {
	Nombre      string `form:"nombre" validate:"min=2" msg:"El nombre debe tener al menos 2 caracteres."`
	Descripcion string `form:"descripcion"`
}

// CategoryFormFrom rellena el formulario de edición.
func CategoryFormFrom(c entity.Category) CategoryForm {
	return CategoryForm{Nombre: c.Nombre, Descripcion: c.Descripcion}
}

// Payload cuerpo de POST/PUT /categorias.
func (f CategoryForm) Payload() entity.Category {
	return entity.Category{Nombre: trim(f.Nombre), Descripcion: trim(f.Descripcion)}
}
