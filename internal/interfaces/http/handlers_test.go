package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/storefront-api/internal/application/cart"
	"github.com/jhoicas/storefront-api/internal/application/dto"
	"github.com/jhoicas/storefront-api/internal/application/storefront"
	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/repository"
	"github.com/jhoicas/storefront-api/internal/infrastructure/feed"
	apphttp "github.com/jhoicas/storefront-api/internal/interfaces/http"
	"github.com/jhoicas/storefront-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Repositorio en memoria (implementa todos los puertos)
// ──────────────────────────────────────────────────────────────────────────────

type memDB struct {
	product *entity.Product
	region  *entity.Region
	carts   map[string]*entity.Cart
	items   []*entity.LineItem
}

func (m *memDB) GetByHandle(_ context.Context, h string) (*entity.Product, error) {
	if m.product.Handle == h {
		return m.product, nil
	}
	return nil, nil
}

func (m *memDB) GetByID(_ context.Context, id string) (*entity.Product, error) {
	if m.product.ID == id {
		return m.product, nil
	}
	return nil, nil
}

func (m *memDB) GetVariantByID(_ context.Context, id string) (*entity.ProductVariant, error) {
	return m.product.VariantByID(id), nil
}

func (m *memDB) List(_ context.Context, _, offset int) ([]*entity.Product, error) {
	if offset > 0 {
		return nil, nil
	}
	return []*entity.Product{m.product}, nil
}

type memRegions struct{ db *memDB }

func (r memRegions) GetByID(_ context.Context, id string) (*entity.Region, error) {
	if r.db.region.ID == id {
		return r.db.region, nil
	}
	return nil, nil
}

func (r memRegions) GetByCountryCode(_ context.Context, cc string) (*entity.Region, error) {
	for _, c := range r.db.region.Countries {
		if c == cc {
			return r.db.region, nil
		}
	}
	return nil, nil
}

func (r memRegions) List(context.Context) ([]*entity.Region, error) {
	return []*entity.Region{r.db.region}, nil
}

type memCarts struct{ db *memDB }

func (r memCarts) Create(_ context.Context, c *entity.Cart) error {
	cp := *c
	r.db.carts[c.ID] = &cp
	return nil
}

func (r memCarts) GetByID(_ context.Context, id string) (*entity.Cart, error) {
	c, ok := r.db.carts[id]
	if !ok {
		return nil, nil
	}
	out := *c
	out.Items = nil
	for _, it := range r.db.items {
		if it.CartID == id {
			out.Items = append(out.Items, *it)
		}
	}
	return &out, nil
}

func (r memCarts) Touch(context.Context, string) error { return nil }

type memItems struct{ db *memDB }

func (r memItems) Create(_ context.Context, it *entity.LineItem) error {
	cp := *it
	r.db.items = append(r.db.items, &cp)
	return nil
}

func (r memItems) GetByID(_ context.Context, id string) (*entity.LineItem, error) {
	for _, it := range r.db.items {
		if it.ID == id {
			cp := *it
			return &cp, nil
		}
	}
	return nil, nil
}

func (r memItems) ListByCart(_ context.Context, cartID string) ([]entity.LineItem, error) {
	var out []entity.LineItem
	for _, it := range r.db.items {
		if it.CartID == cartID {
			out = append(out, *it)
		}
	}
	return out, nil
}

type memTx struct{ db *memDB }

func (t memTx) RunCart(_ context.Context, fn func(repository.CartRepository, repository.LineItemRepository) error) error {
	return fn(memCarts{t.db}, memItems{t.db})
}

type stubPDF struct{}

func (stubPDF) GenerateGiftCardPDF(context.Context, cart.GiftCardForPDF) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

// ──────────────────────────────────────────────────────────────────────────────
// App de prueba
// ──────────────────────────────────────────────────────────────────────────────

func intPtr(n int) *int { return &n }

func newDB() *memDB {
	return &memDB{
		region: &entity.Region{ID: "reg_co", Name: "Colombia", CurrencyCode: "usd", TaxRate: decimal.NewFromInt(10), Countries: []string{"co"}},
		product: &entity.Product{
			ID: "prod_1", Handle: "gift-card", Title: "Gift Card",
			Options: []entity.ProductOption{{ID: "opt_amount", Title: "Monto", Values: []string{"25", "50"}}},
			Variants: []entity.ProductVariant{
				{
					ID: "var_25", ProductID: "prod_1", Title: "25",
					Options:         []entity.VariantOption{{OptionID: "opt_amount", Value: "25"}},
					Prices:          []entity.MoneyAmount{{Amount: 2500, CurrencyCode: "usd"}},
					ManageInventory: true, InventoryQuantity: intPtr(5),
				},
				{
					ID: "var_50", ProductID: "prod_1", Title: "50",
					Options: []entity.VariantOption{{OptionID: "opt_amount", Value: "50"}},
					Prices:  []entity.MoneyAmount{{Amount: 5000, CurrencyCode: "usd"}},
				},
			},
		},
		carts: map[string]*entity.Cart{},
	}
}

func buildApp(db *memDB) *fiber.App {
	regions := memRegions{db}
	carts := memCarts{db}
	cfg := storefront.Config{Locale: "en-US", IncludeTaxes: true}

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		ProductActions:  storefront.NewProductActionsUseCase(db, regions, cfg, logger.Nop()),
		Feed:            storefront.NewFeedUseCase(db, regions, feed.NewXMLBuilder(0), cfg, logger.Nop()),
		Cart:            cart.NewCartUseCase(memTx{db}, carts, db, regions, cart.TokenConfig{Secret: testSecret, ExpMinutes: 60, Issuer: testIssuer}, cfg, logger.Nop()),
		Print:           cart.NewPrintUseCase(memItems{db}, carts, regions, stubPDF{}, "Tienda", cfg),
		CartTokenSecret: testSecret,
		StoreBaseURL:    "https://tienda.example",
	})
	return app
}

func send(t *testing.T, app *fiber.App, method, path string, body any, token string) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set(apphttp.CartTokenHeader, token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func addToCartBody(variantID string, qty int) map[string]any {
	return map[string]any{
		"variant_id":      variantID,
		"quantity":        qty,
		"delivery_method": "print",
		"sender_name":     "Ana",
		"sender_email":    "ana@correo.com",
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// Catálogo
// ──────────────────────────────────────────────────────────────────────────────

func TestGetProduct_OK(t *testing.T) {
	app := buildApp(newDB())

	resp := send(t, app, http.MethodGet, "/api/store/co/products/gift-card", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "$27.50", out.CheapestPrice)
	assert.Equal(t, storefront.LabelSelectVariant, out.Actions.ActionLabel)
}

func TestGetProduct_NoEncontrado(t *testing.T) {
	app := buildApp(newDB())

	resp := send(t, app, http.MethodGet, "/api/store/co/products/otro", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "PRODUCT_NOT_FOUND", out.Code)

	resp = send(t, app, http.MethodGet, "/api/store/fr/products/gift-card", nil, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "REGION_NOT_FOUND", decode[dto.ErrorResponse](t, resp).Code)
}

func TestResolveActions_OK(t *testing.T) {
	app := buildApp(newDB())

	resp := send(t, app, http.MethodPost, "/api/store/co/products/gift-card/actions", map[string]any{
		"options":  map[string]string{"opt_amount": "50"},
		"quantity": 2,
		"delivery": map[string]string{"delivery_method": "print", "sender_name": "Ana", "sender_email": "ana@correo.com"},
	}, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	out := decode[dto.ProductActionsState](t, resp)
	require.NotNil(t, out.VariantID)
	assert.Equal(t, "var_50", *out.VariantID)
	assert.Equal(t, "$55.00", out.Price)
	assert.False(t, out.AddToCartDisabled)
}

func TestResolveActions_PasoInvalido(t *testing.T) {
	app := buildApp(newDB())

	resp := send(t, app, http.MethodPost, "/api/store/co/products/gift-card/actions", map[string]any{"quantity_step": "triple"}, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Contains(t, out.Fields, "quantity_step")
}

func TestListRegionsYProductos(t *testing.T) {
	app := buildApp(newDB())

	resp := send(t, app, http.MethodGet, "/api/store/regions", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	regions := decode[[]dto.RegionResponse](t, resp)
	require.Len(t, regions, 1)

	resp = send(t, app, http.MethodGet, "/api/store/co/products?limit=500", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list := decode[dto.ProductListResponse](t, resp)
	assert.Equal(t, 100, list.Page.Limit, "el límite se acota a 100")
	require.Len(t, list.Items, 1)
}

func TestFeed_XML(t *testing.T) {
	app := buildApp(newDB())

	resp := send(t, app, http.MethodGet, "/api/store/co/feed.xml", nil, "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), "application/xml"))
	body, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(body), "<g:price>27.50 USD</g:price>")
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func TestCart_FlujoCompleto(t *testing.T) {
	app := buildApp(newDB())

	// 1. Agregar sin token crea el carrito
	resp := send(t, app, http.MethodPost, "/api/store/co/cart/line-items", addToCartBody("var_25", 2), "")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	token := resp.Header.Get(apphttp.CartTokenHeader)
	added := decode[dto.AddToCartResponse](t, resp)
	require.NotEmpty(t, token)
	assert.Equal(t, token, added.CartToken)
	assert.Equal(t, "$55.00", added.Cart.Total)

	// 2. Consultar con el token
	resp = send(t, app, http.MethodGet, "/api/store/cart", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.CartResponse](t, resp)
	require.Len(t, got.Items, 1)

	// 3. Imprimir la gift card
	resp = send(t, app, http.MethodGet, "/api/store/cart/line-items/"+got.Items[0].ID+"/print", nil, token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get(fiber.HeaderContentType))
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentDisposition), "gift-card-"+got.Items[0].ID+".pdf")

	// 4. Agregar con token reutiliza el carrito y no emite otro
	resp = send(t, app, http.MethodPost, "/api/store/co/cart/line-items", addToCartBody("var_50", 1), token)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	again := decode[dto.AddToCartResponse](t, resp)
	assert.Empty(t, again.CartToken)
	assert.Equal(t, added.Cart.ID, again.Cart.ID)
	assert.Len(t, again.Cart.Items, 2)
}

func TestCart_Validaciones(t *testing.T) {
	app := buildApp(newDB())

	body := addToCartBody("var_25", 0)
	resp := send(t, app, http.MethodPost, "/api/store/co/cart/line-items", body, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	out := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "VALIDATION", out.Code)
	assert.Contains(t, out.Fields, "quantity")

	body = addToCartBody("var_25", 1)
	body["sender_email"] = "no-es-email"
	resp = send(t, app, http.MethodPost, "/api/store/co/cart/line-items", body, "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decode[dto.ErrorResponse](t, resp).Fields, "sender_email")

	body = addToCartBody("var_25", 1)
	body["delivery_method"] = "email"
	resp = send(t, app, http.MethodPost, "/api/store/co/cart/line-items", body, "")
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, "DELIVERY_INCOMPLETE", decode[dto.ErrorResponse](t, resp).Code)

	resp = send(t, app, http.MethodPost, "/api/store/co/cart/line-items", addToCartBody("var_25", 6), "")
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	assert.Equal(t, "OUT_OF_STOCK", decode[dto.ErrorResponse](t, resp).Code)
}

func TestCart_SinTokenNoAutorizado(t *testing.T) {
	app := buildApp(newDB())

	resp := send(t, app, http.MethodGet, "/api/store/cart", nil, "")
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
