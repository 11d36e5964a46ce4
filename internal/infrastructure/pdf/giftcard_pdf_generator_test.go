package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/infrastructure/pdf"
)

func TestGenerateGiftCardPDF(t *testing.T) {
	g := pdf.NewGiftCardGenerator()

	out, err := g.GenerateGiftCardPDF(context.Background(), cart.GiftCardForPDF{
		Code:         "li_123",
		StoreName:    "Mi Tienda",
		Title:        "Gift Card - 25",
		Amount:       "$27.50",
		Quantity:     2,
		SenderName:   "Ana",
		SenderEmail:  "ana@correo.com",
		ReceiverName: "Luis",
		IssuedAt:     time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")), "debe ser un documento PDF")
}

func TestGenerateGiftCardPDF_SinCodigo(t *testing.T) {
	_, err := pdf.NewGiftCardGenerator().GenerateGiftCardPDF(context.Background(), cart.GiftCardForPDF{})
	assert.Error(t, err)
}
