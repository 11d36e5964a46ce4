// Package pdf genera la versión imprimible de una gift card con entrega impresa.
//
// Layout de la página A5 apaisada:
//
//	┌───────────────────────────────────────────────┐
//	│  Tienda                          GIFT CARD    │
//	│  ───────────────────────────────────────────  │
//	│  Título del producto                          │
//	│  MONTO (grande)                  x cantidad   │
//	│  Para: destinatario   De: remitente           │
//	│  ───────────────────────────────────────────  │
//	│  QR con el código  │  Código + fecha          │
//	└───────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/orientation"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/storefront-api/internal/application/cart"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ cart.GiftCardPDFGenerator = (*GiftCardGenerator)(nil)

// GiftCardGenerator implementa cart.GiftCardPDFGenerator usando Maroto v2.
type GiftCardGenerator struct{}

// NewGiftCardGenerator construye el generador.
func NewGiftCardGenerator() *GiftCardGenerator { return &GiftCardGenerator{} }

// GenerateGiftCardPDF genera el PDF y devuelve sus bytes.
func (g *GiftCardGenerator) GenerateGiftCardPDF(_ context.Context, card cart.GiftCardForPDF) ([]byte, error) {
	if card.Code == "" {
		return nil, fmt.Errorf("pdf: gift card sin código")
	}
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A5).
		WithOrientation(orientation.Horizontal).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Gift Card", true).
		WithAuthor(nonEmpty(card.StoreName, "Storefront"), true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(card))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(amountRow(card))
	m.AddRows(partiesRow(card))
	m.AddRows(line.NewRow(4))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(codeRow(card))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(card cart.GiftCardForPDF) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(nonEmpty(card.StoreName, "Storefront"), props.Text{
				Style: fontstyle.Bold, Size: 14, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New("GIFT CARD", props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Color: colorPrimary, Top: 2,
			}),
		),
	)
}

func amountRow(card cart.GiftCardForPDF) core.Row {
	qty := ""
	if card.Quantity > 1 {
		qty = fmt.Sprintf("x %d", card.Quantity)
	}
	return row.New(34).Add(
		col.New(9).Add(
			text.New(card.Title, props.Text{Size: 11, Top: 3}),
			text.New(card.Amount, props.Text{
				Style: fontstyle.Bold, Size: 28, Color: colorPrimary, Top: 12,
			}),
		),
		col.New(3).Add(
			text.New(qty, props.Text{Size: 12, Align: align.Right, Top: 18, Color: colorGray}),
		),
	)
}

func partiesRow(card cart.GiftCardForPDF) core.Row {
	return row.New(14).Add(
		col.New(6).Add(
			text.New("PARA", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
			text.New(nonEmpty(card.ReceiverName, "-"), props.Text{Size: 11, Top: 5}),
		),
		col.New(6).Add(
			text.New("DE", props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary}),
			text.New(card.SenderName, props.Text{Size: 11, Top: 5}),
			text.New(card.SenderEmail, props.Text{Size: 8, Top: 11, Color: colorGray}),
		),
	)
}

func codeRow(card cart.GiftCardForPDF) core.Row {
	issued := ""
	if !card.IssuedAt.IsZero() {
		issued = "Emitida: " + card.IssuedAt.Format("02/01/2006")
	}
	return row.New(30).Add(
		col.New(3).Add(code.NewQr(card.Code, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Código", props.Text{Style: fontstyle.Bold, Size: 8, Left: 3, Top: 4, Color: colorPrimary}),
			text.New(card.Code, props.Text{Size: 9, Left: 3, Top: 10}),
			text.New(issued, props.Text{Size: 8, Left: 3, Top: 17, Color: colorGray}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
