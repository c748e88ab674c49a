package entity

import "github.com/shopspring/decimal"

// Rangos de tiempo admitidos por los endpoints del dashboard.
const (
	RangoDia    = "day"
	RangoSemana = "week"
	RangoMes    = "month"
	RangoAnio   = "year"
)

// DashboardSummary tarjetas de resumen.
type DashboardSummary struct {
	TotalProduction float64         `json:"totalProduction"`
	TotalSales      decimal.Decimal `json:"totalSales"`
	InventoryValue  decimal.Decimal `json:"inventoryValue"`
	ActiveAlerts    int             `json:"activeAlerts"`
}

// ProductionPoint producción agregada por periodo (_id = etiqueta del periodo).
type ProductionPoint struct {
	Period          string  `json:"_id"`
	TotalProduction float64 `json:"totalProduction"`
}

// SalesPoint ventas agregadas por periodo.
type SalesPoint struct {
	Period     string          `json:"_id"`
	TotalSales decimal.Decimal `json:"totalSales"`
}

// InventoryPoint estado de stock por producto.
type InventoryPoint struct {
	ID              string  `json:"_id"`
	ProductoNombre  string  `json:"productoNombre"`
	StockActual     float64 `json:"stockActual"`
	StockMinimo     float64 `json:"stockMinimo"`
	StockMaximo     float64 `json:"stockMaximo"`
	StockDisponible float64 `json:"stockDisponible"`
}

// QualityIssue problemas de calidad (lotes dañados) por producto.
type QualityIssue struct {
	Product struct {
		ProductoID     string `json:"productoId"`
		ProductoNombre string `json:"productoNombre"`
	} `json:"_id"`
	Count int `json:"count"`
}
