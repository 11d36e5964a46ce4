// Package pricing resuelve y formatea precios de catálogo para una región: búsqueda del precio más
// barato, precio de variante, conversión de unidades menores a decimales, impuestos y formato por locale.
//
// Ninguna función retorna error: los datos faltantes degradan a valores centinela
// (NotAvailableInRegion, 0 o el número sin decorar).
package pricing

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
)

// NotAvailableInRegion texto mostrado cuando no existe precio para el mercado del cliente.
const NotAvailableInRegion = "Not available in your region"

// AmountParams parámetros de FormatAmount. Por defecto se incluyen impuestos.
type AmountParams struct {
	Amount       decimal.Decimal // unidades menores
	Region       *entity.Region
	ExcludeTaxes bool
	LocaleOptions
}

// VariantPriceParams parámetros de FormatVariantPrice. Por defecto se incluyen impuestos.
type VariantPriceParams struct {
	Variant      *entity.ProductVariant
	Region       *entity.Region
	ExcludeTaxes bool
	LocaleOptions
}

// CheapestPrice elige el precio más barato para la región: primero por region_id y, si no hay,
// por código de moneda. En empate gana el primero en orden de entrada.
func CheapestPrice(prices []entity.MoneyAmount, region *entity.Region) (entity.MoneyAmount, bool) {
	if region == nil {
		return entity.MoneyAmount{}, false
	}
	if p, ok := cheapest(prices, func(m entity.MoneyAmount) bool {
		return m.MatchesRegion(region.ID)
	}); ok {
		return p, true
	}
	return cheapest(prices, func(m entity.MoneyAmount) bool {
		return region.CurrencyCode != "" && m.CurrencyCode == region.CurrencyCode
	})
}

// FindCheapestPrice devuelve el precio más barato ya formateado (con impuestos) o NotAvailableInRegion.
func FindCheapestPrice(prices []entity.MoneyAmount, region *entity.Region, opts LocaleOptions) string {
	p, ok := CheapestPrice(prices, region)
	if !ok {
		return NotAvailableInRegion
	}
	return FormatAmount(AmountParams{
		Amount:        decimal.NewFromInt(p.Amount),
		Region:        region,
		LocaleOptions: opts,
	})
}

// FindCheapestProductPrice variante de FindCheapestPrice para el precio "desde" de un producto:
// de cada variante sólo participa su primer precio que coincida con la región (o con la moneda).
func FindCheapestProductPrice(variants []entity.ProductVariant, region *entity.Region, opts LocaleOptions) string {
	return FormatCheapestProductPrice(CheapestPriceParams{Variants: variants, Region: region, LocaleOptions: opts})
}

// CheapestPriceParams parámetros de FormatCheapestProductPrice. Por defecto se incluyen impuestos.
type CheapestPriceParams struct {
	Variants     []entity.ProductVariant
	Region       *entity.Region
	ExcludeTaxes bool
	LocaleOptions
}

// CheapestProductPrice precio "desde" sin formatear: el más barato entre el primer precio de cada
// variante para la región o, si ninguna tiene precio de la región, para su moneda.
func CheapestProductPrice(variants []entity.ProductVariant, region *entity.Region) (entity.MoneyAmount, bool) {
	if region == nil {
		return entity.MoneyAmount{}, false
	}
	candidates := firstPerVariant(variants, func(m entity.MoneyAmount) bool {
		return m.MatchesRegion(region.ID)
	})
	if len(candidates) == 0 {
		candidates = firstPerVariant(variants, func(m entity.MoneyAmount) bool {
			return region.CurrencyCode != "" && m.CurrencyCode == region.CurrencyCode
		})
	}
	return cheapest(candidates, func(entity.MoneyAmount) bool { return true })
}

// FormatCheapestProductPrice precio "desde" formateado o NotAvailableInRegion.
func FormatCheapestProductPrice(p CheapestPriceParams) string {
	m, ok := CheapestProductPrice(p.Variants, p.Region)
	if !ok {
		return NotAvailableInRegion
	}
	return FormatAmount(AmountParams{
		Amount:        decimal.NewFromInt(m.Amount),
		Region:        p.Region,
		ExcludeTaxes:  p.ExcludeTaxes,
		LocaleOptions: p.LocaleOptions,
	})
}

// GetVariantPrice monto (unidades menores) del precio de la variante en la moneda de la región,
// comparando sin distinguir mayúsculas. 0 si no existe.
func GetVariantPrice(variant *entity.ProductVariant, region *entity.Region) int64 {
	if variant == nil || region == nil || region.CurrencyCode == "" {
		return 0
	}
	for _, p := range variant.Prices {
		if strings.EqualFold(p.CurrencyCode, region.CurrencyCode) {
			return p.Amount
		}
	}
	return 0
}

// ComputeAmount convierte unidades menores a decimal y aplica la tasa de impuesto de la región.
// amount se trunca antes de dividir; las monedas sin subdivisión usan divisor 1.
func ComputeAmount(amount decimal.Decimal, region *entity.Region, includeTaxes bool) decimal.Decimal {
	rate := decimal.Zero
	if includeTaxes {
		rate = taxRate(region)
	}
	return convertToDecimal(amount, region).Mul(one.Add(rate))
}

// FormatAmount ComputeAmount seguido de ConvertToLocale con la moneda de la región.
func FormatAmount(p AmountParams) string {
	amount := ComputeAmount(p.Amount, p.Region, !p.ExcludeTaxes)
	return ConvertToLocale(amount, currencyOf(p.Region), p.LocaleOptions)
}

// ComputeVariantPrice precio decimal de la variante en la región.
func ComputeVariantPrice(variant *entity.ProductVariant, region *entity.Region, includeTaxes bool) decimal.Decimal {
	amount := GetVariantPrice(variant, region)
	return ComputeAmount(decimal.NewFromInt(amount), region, includeTaxes)
}

// FormatVariantPrice precio de la variante formateado para el locale.
func FormatVariantPrice(p VariantPriceParams) string {
	amount := ComputeVariantPrice(p.Variant, p.Region, !p.ExcludeTaxes)
	return ConvertToLocale(amount, currencyOf(p.Region), p.LocaleOptions)
}

func cheapest(prices []entity.MoneyAmount, match func(entity.MoneyAmount) bool) (entity.MoneyAmount, bool) {
	var best entity.MoneyAmount
	found := false
	for _, p := range prices {
		if !match(p) {
			continue
		}
		if !found || p.Amount < best.Amount {
			best = p
			found = true
		}
	}
	return best, found
}

func firstPerVariant(variants []entity.ProductVariant, match func(entity.MoneyAmount) bool) []entity.MoneyAmount {
	out := make([]entity.MoneyAmount, 0, len(variants))
	for _, v := range variants {
		for _, p := range v.Prices {
			if match(p) {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

func currencyOf(region *entity.Region) string {
	if region == nil {
		return ""
	}
	return region.CurrencyCode
}
