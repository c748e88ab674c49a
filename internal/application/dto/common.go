package dto

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ListQuery parámetros de listado de las páginas (búsqueda y página).
type ListQuery struct {
	Q    string `query:"q"`
	Page int    `query:"page"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Decimal convierte un campo numérico del formulario; vacío o inválido da cero.
// Solo se usa después de validar.
func Decimal(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// Float igual que Decimal pero para cantidades que el backend guarda como número.
func Float(s string) float64 {
	return Decimal(s).InexactFloat64()
}

func trim(s string) string { return strings.TrimSpace(s) }
