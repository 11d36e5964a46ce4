package dto

import "github.com/shopspring/decimal"

// RegionResponse salida de una región.
type RegionResponse struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currency_code"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Countries    []string        `json:"countries,omitempty"`
}
