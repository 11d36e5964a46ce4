package pricing

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultLocale locale usado cuando no se indica otro.
const DefaultLocale = "en-US"

const nbsp = "\u00a0"

// LocaleOptions opciones de formato. Los dígitos nil toman la precisión estándar de la moneda
// (2 para USD, 0 para JPY).
type LocaleOptions struct {
	Locale            string
	MinFractionDigits *int
	MaxFractionDigits *int
}

// Digits helper para construir las opciones de dígitos en línea.
func Digits(n int) *int { return &n }

// placement posición del símbolo respecto al número.
type placement struct {
	suffix bool
	spaced bool
}

// Patrones CLDR más comunes; el resto de idiomas usa prefijo pegado (¤#,##0.00).
var languagePlacements = map[string]placement{
	"de": {suffix: true, spaced: true},
	"fr": {suffix: true, spaced: true},
	"es": {suffix: true, spaced: true},
	"it": {suffix: true, spaced: true},
	"ru": {suffix: true, spaced: true},
	"pl": {suffix: true, spaced: true},
	"sv": {suffix: true, spaced: true},
	"da": {suffix: true, spaced: true},
	"nb": {suffix: true, spaced: true},
	"fi": {suffix: true, spaced: true},
	"cs": {suffix: true, spaced: true},
	"sk": {suffix: true, spaced: true},
	"hu": {suffix: true, spaced: true},
	"ro": {suffix: true, spaced: true},
	"nl": {spaced: true},
	"pt": {spaced: true},
}

var regionPlacements = map[string]placement{
	"es-MX": {},
	"es-US": {},
	"es-CO": {spaced: true},
	"es-AR": {spaced: true},
	"es-CL": {spaced: true},
	"pt-PT": {suffix: true, spaced: true},
	"de-CH": {spaced: true},
	"it-CH": {spaced: true},
}

// ConvertToLocale formatea amount como moneda según el locale. Sin código de moneda devuelve el
// número sin decorar. Un código que no es ISO 4217 se antepone tal cual al número.
func ConvertToLocale(amount decimal.Decimal, currencyCode string, opts LocaleOptions) string {
	code := strings.TrimSpace(currencyCode)
	if code == "" {
		return amount.String()
	}

	tag := parseLocale(opts.Locale)
	p := message.NewPrinter(tag)

	unit, err := currency.ParseISO(strings.ToUpper(code))
	if err != nil {
		minDigits, maxDigits := fractionDigits(2, opts)
		rounded := amount.Round(int32(maxDigits))
		return signOf(rounded) + strings.ToUpper(code) + nbsp + formatNumber(p, rounded.Abs(), minDigits, maxDigits)
	}

	scale, _ := currency.Standard.Rounding(unit)
	minDigits, maxDigits := fractionDigits(scale, opts)
	rounded := amount.Round(int32(maxDigits))
	num := formatNumber(p, rounded.Abs(), minDigits, maxDigits)
	sym := p.Sprintf("%v", currency.Symbol(unit))

	sign := signOf(rounded)
	pl := placementFor(tag)
	sep := ""
	if pl.spaced {
		sep = nbsp
	}
	if pl.suffix {
		return sign + num + sep + sym
	}
	return sign + sym + sep + num
}

func formatNumber(p *message.Printer, v decimal.Decimal, minDigits, maxDigits int) string {
	return p.Sprintf("%v", number.Decimal(
		v.InexactFloat64(),
		number.MinFractionDigits(minDigits),
		number.MaxFractionDigits(maxDigits),
	))
}

func signOf(v decimal.Decimal) string {
	if v.IsNegative() {
		return "-"
	}
	return ""
}

// fractionDigits resuelve min/max igual que Intl.NumberFormat: el valor no indicado se ajusta
// a la precisión de la moneda sin cruzar al otro.
func fractionDigits(scale int, opts LocaleOptions) (int, int) {
	minDigits, maxDigits := scale, scale
	switch {
	case opts.MinFractionDigits != nil && opts.MaxFractionDigits != nil:
		minDigits, maxDigits = *opts.MinFractionDigits, *opts.MaxFractionDigits
	case opts.MinFractionDigits != nil:
		minDigits = *opts.MinFractionDigits
		if minDigits > maxDigits {
			maxDigits = minDigits
		}
	case opts.MaxFractionDigits != nil:
		maxDigits = *opts.MaxFractionDigits
		if minDigits > maxDigits {
			minDigits = maxDigits
		}
	}
	if minDigits < 0 {
		minDigits = 0
	}
	if maxDigits < minDigits {
		maxDigits = minDigits
	}
	return minDigits, maxDigits
}

func parseLocale(locale string) language.Tag {
	if strings.TrimSpace(locale) == "" {
		return language.AmericanEnglish
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return language.AmericanEnglish
	}
	return tag
}

func placementFor(tag language.Tag) placement {
	base, _ := tag.Base()
	if region, conf := tag.Region(); conf == language.Exact {
		if pl, ok := regionPlacements[base.String()+"-"+region.String()]; ok {
			return pl
		}
	}
	return languagePlacements[base.String()]
}
