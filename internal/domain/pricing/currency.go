package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// noDivisionCurrencies monedas sin subdivisión: el monto ya viene en unidades mayores.
var noDivisionCurrencies = map[string]struct{}{
	"krw": {}, "jpy": {}, "vnd": {}, "clp": {}, "pyg": {},
	"xaf": {}, "xof": {}, "bif": {}, "djf": {}, "gnf": {},
	"kmf": {}, "mga": {}, "rwf": {}, "xpf": {}, "htg": {},
	"vuv": {}, "xag": {}, "xdr": {}, "xau": {},
}

var (
	hundred = decimal.NewFromInt(100)
	one     = decimal.NewFromInt(1)
)

// IsZeroDecimal indica si la moneda no tiene unidades menores (ej. JPY, KRW).
func IsZeroDecimal(currencyCode string) bool {
	_, ok := noDivisionCurrencies[strings.ToLower(strings.TrimSpace(currencyCode))]
	return ok
}

// convertToDecimal trunca el monto a unidades menores enteras y lo pasa a unidades mayores.
func convertToDecimal(amount decimal.Decimal, region *entity.Region) decimal.Decimal {
	divisor := hundred
	if region != nil && IsZeroDecimal(region.CurrencyCode) {
		divisor = one
	}
	return amount.Floor().Div(divisor)
}

// taxRate devuelve la tasa como fracción (19 -> 0.19). Región vacía = sin impuesto.
func taxRate(region *entity.Region) decimal.Decimal {
	if region.IsEmpty() {
		return decimal.Zero
	}
	return region.TaxRate.Div(hundred)
}
