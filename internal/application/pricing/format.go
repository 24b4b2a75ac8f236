package pricing

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	vesPrinter = message.NewPrinter(language.MustParse("es-VE"))
	usdPrinter = message.NewPrinter(language.MustParse("en-US"))
)

// FormatVes formatea un monto en bolívares con la convención venezolana:
// punto de miles, coma decimal, dos decimales fijos (3000 -> "3.000,00").
func FormatVes(v decimal.Decimal) string {
	f, _ := v.Float64()
	return vesPrinter.Sprintf("%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// FormatUsd formatea un monto en dólares con la convención en-US y el
// símbolo antepuesto (20 -> "$20.00").
func FormatUsd(v decimal.Decimal) string {
	f, _ := v.Float64()
	return usdPrinter.Sprintf("$%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}
