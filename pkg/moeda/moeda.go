// Package moeda formata valores monetários em Real brasileiro para
// documentos voltados ao cliente (PDF e e-mail de orçamento).
package moeda

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// FormatBRL devolve o valor no formato "R$ 1.234,56".
func FormatBRL(v decimal.Decimal) string {
	f, _ := v.Float64()
	return printer.Sprintf("R$ %v", number.Decimal(f, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
