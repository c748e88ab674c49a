// Package money formatea montos en bolivianos para vistas y documentos.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Spanish)

// Format devuelve "Bs 12.345,50": separador de miles con punto y dos decimales.
func Format(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("Bs %.2f", f)
}

// Number igual que Format sin el prefijo de moneda.
func Number(d decimal.Decimal) string {
	f, _ := d.Round(2).Float64()
	return printer.Sprintf("%.2f", f)
}
