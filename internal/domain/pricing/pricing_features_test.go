package pricing_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/storefront-api/internal/domain/entity"
	"github.com/jhoicas/storefront-api/internal/domain/pricing"
)

type pricingTestContext struct {
	region *entity.Region
	prices []entity.MoneyAmount
	result string
}

func (c *pricingTestContext) reset() {
	c.region = nil
	c.prices = nil
	c.result = ""
}

func (c *pricingTestContext) aRegionWithCurrencyAndTax(id, currency string, tax int) error {
	c.region = &entity.Region{ID: id, CurrencyCode: currency, TaxRate: decimal.NewFromInt(int64(tax))}
	return nil
}

func (c *pricingTestContext) aPriceForRegion(amount int, currency, regionID string) error {
	rid := regionID
	c.prices = append(c.prices, entity.MoneyAmount{
		ID:           fmt.Sprintf("ma_%d", len(c.prices)+1),
		Amount:       int64(amount),
		CurrencyCode: currency,
		RegionID:     &rid,
	})
	return nil
}

func (c *pricingTestContext) aPriceWithoutRegion(amount int, currency string) error {
	c.prices = append(c.prices, entity.MoneyAmount{
		ID:           fmt.Sprintf("ma_%d", len(c.prices)+1),
		Amount:       int64(amount),
		CurrencyCode: currency,
	})
	return nil
}

func (c *pricingTestContext) iLookUpTheCheapestPrice() error {
	c.result = pricing.FindCheapestPrice(c.prices, c.region, pricing.LocaleOptions{})
	return nil
}

func (c *pricingTestContext) theDisplayedPriceIs(want string) error {
	if c.result != want {
		return fmt.Errorf("precio esperado %q, obtenido %q", want, c.result)
	}
	return nil
}

func InitializePricingScenario(ctx *godog.ScenarioContext) {
	tc := &pricingTestContext{}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		tc.reset()
		return ctx, nil
	})

	// Given
	ctx.Step(`^una región "([^"]*)" con moneda "([^"]*)" e impuesto (\d+)$`, tc.aRegionWithCurrencyAndTax)
	ctx.Step(`^un precio de (\d+) en "([^"]*)" para la región "([^"]*)"$`, tc.aPriceForRegion)
	ctx.Step(`^un precio de (\d+) en "([^"]*)" sin región$`, tc.aPriceWithoutRegion)

	// When
	ctx.Step(`^busco el precio más barato$`, tc.iLookUpTheCheapestPrice)

	// Then
	ctx.Step(`^el precio mostrado es "([^"]*)"$`, tc.theDisplayedPriceIs)
}

func TestPricingFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: InitializePricingScenario,
		Options: &godog.Options{
			Format:   "pretty",
			Paths:    []string{"features/pricing.feature"},
			TestingT: t,
		},
	}

	if suite.Run() != 0 {
		t.Fatal("non-zero status returned, failed to run feature tests")
	}
}
