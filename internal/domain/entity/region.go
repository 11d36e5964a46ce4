package entity

import "github.com/shopspring/decimal"

// Region configuración de mercado: moneda, tasa de impuesto (0-100) y países que la componen.
type Region struct {
	ID           string
	Name         string
	CurrencyCode string
	TaxRate      decimal.Decimal // porcentaje, ej. 19 = 19%
	Countries    []string        // códigos ISO 3166-1 alpha-2 en minúsculas
}

// IsEmpty indica que la región no trae datos utilizables (sin ID ni moneda).
func (r *Region) IsEmpty() bool {
	return r == nil || (r.ID == "" && r.CurrencyCode == "")
}
