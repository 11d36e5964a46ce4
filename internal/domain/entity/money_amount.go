package entity

// MoneyAmount precio de una variante para una región o moneda, en unidades menores (centavos).
// CurrencyCode va en minúsculas (ej. "usd"); RegionID es opcional.
type MoneyAmount struct {
	ID           string
	VariantID    string
	Amount       int64
	CurrencyCode string
	RegionID     *string
}

// MatchesRegion indica si el precio está asignado explícitamente a la región.
func (m MoneyAmount) MatchesRegion(regionID string) bool {
	return m.RegionID != nil && regionID != "" && *m.RegionID == regionID
}
