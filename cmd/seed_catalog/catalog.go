package main

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// catalog exportación JSON del catálogo (regiones y productos).
type catalog struct {
	Regions  []regionJSON  `json:"regions"`
	Products []productJSON `json:"products"`
}

type regionJSON struct {
	ID           string          `json:"id"`
	Name         string          `json:"name"`
	CurrencyCode string          `json:"currency_code"`
	TaxRate      decimal.Decimal `json:"tax_rate"`
	Countries    []string        `json:"countries"`
}

type productJSON struct {
	ID          string        `json:"id"`
	Handle      string        `json:"handle"`
	Title       string        `json:"title"`
	Description string        `json:"description"`
	Thumbnail   string        `json:"thumbnail"`
	Options     []optionJSON  `json:"options"`
	Variants    []variantJSON `json:"variants"`
}

type optionJSON struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Values []string `json:"values"`
}

type variantJSON struct {
	ID                string            `json:"id"`
	Title             string            `json:"title"`
	SKU               string            `json:"sku"`
	ManageInventory   bool              `json:"manage_inventory"`
	AllowBackorder    bool              `json:"allow_backorder"`
	InventoryQuantity *int              `json:"inventory_quantity"`
	ProcessingFee     int64             `json:"processing_fee"`
	Options           map[string]string `json:"options"`
	Prices            []priceJSON       `json:"prices"`
}

type priceJSON struct {
	ID           string  `json:"id"`
	Amount       int64   `json:"amount"`
	CurrencyCode string  `json:"currency_code"`
	RegionID     *string `json:"region_id"`
}

func decodeCatalog(r io.Reader) (*catalog, error) {
	var c catalog
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decodificar catálogo: %w", err)
	}
	return &c, nil
}

// validate revisa referencias e importes; devuelve un mensaje por problema encontrado.
func (c *catalog) validate() []string {
	var problems []string
	regions := map[string]bool{}
	countries := map[string]string{}
	for _, r := range c.Regions {
		if r.ID == "" || r.CurrencyCode == "" {
			problems = append(problems, fmt.Sprintf("región %q: id y currency_code son obligatorios", r.ID))
		}
		if r.TaxRate.IsNegative() || r.TaxRate.GreaterThan(decimal.NewFromInt(100)) {
			problems = append(problems, fmt.Sprintf("región %q: tax_rate fuera de 0-100", r.ID))
		}
		regions[r.ID] = true
		for _, cc := range r.Countries {
			cc = strings.ToLower(cc)
			if len(cc) != 2 {
				problems = append(problems, fmt.Sprintf("región %q: país %q inválido", r.ID, cc))
			}
			if prev, ok := countries[cc]; ok && prev != r.ID {
				problems = append(problems, fmt.Sprintf("país %q en regiones %q y %q", cc, prev, r.ID))
			}
			countries[cc] = r.ID
		}
	}

	handles := map[string]bool{}
	for _, p := range c.Products {
		if p.ID == "" || p.Handle == "" {
			problems = append(problems, fmt.Sprintf("producto %q: id y handle son obligatorios", p.ID))
		}
		if handles[p.Handle] {
			problems = append(problems, fmt.Sprintf("handle duplicado %q", p.Handle))
		}
		handles[p.Handle] = true

		optionValues := map[string]map[string]bool{}
		for _, o := range p.Options {
			optionValues[o.ID] = map[string]bool{}
			for _, v := range o.Values {
				optionValues[o.ID][v] = true
			}
		}
		for _, v := range p.Variants {
			for optID, val := range v.Options {
				vals, ok := optionValues[optID]
				if !ok {
					problems = append(problems, fmt.Sprintf("variante %q: opción %q no existe", v.ID, optID))
				} else if !vals[val] {
					problems = append(problems, fmt.Sprintf("variante %q: valor %q no está en la opción %q", v.ID, val, optID))
				}
			}
			if len(v.Prices) == 0 {
				problems = append(problems, fmt.Sprintf("variante %q: sin precios", v.ID))
			}
			for _, pr := range v.Prices {
				if pr.Amount < 0 {
					problems = append(problems, fmt.Sprintf("variante %q: monto negativo", v.ID))
				}
				if pr.RegionID != nil && !regions[*pr.RegionID] {
					problems = append(problems, fmt.Sprintf("variante %q: región %q no existe", v.ID, *pr.RegionID))
				}
			}
			if v.ProcessingFee < 0 {
				problems = append(problems, fmt.Sprintf("variante %q: processing_fee negativo", v.ID))
			}
		}
	}
	return problems
}

// writeSQL emite el script de carga. Es idempotente: cada INSERT usa ON CONFLICT.
func (c *catalog) writeSQL(w io.Writer, source string) error {
	b := &strings.Builder{}
	fmt.Fprintf(b, "-- Catálogo del storefront\n-- Generado desde %s\n\n", source)

	b.WriteString("-- 1. Regiones\n")
	for _, r := range c.Regions {
		fmt.Fprintf(b, "INSERT INTO regions (id, name, currency_code, tax_rate) VALUES (%s, %s, %s, %s)\n",
			quote(r.ID), quote(r.Name), quote(strings.ToLower(r.CurrencyCode)), r.TaxRate.String())
		b.WriteString("ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, currency_code = EXCLUDED.currency_code, tax_rate = EXCLUDED.tax_rate;\n")
		for _, cc := range r.Countries {
			fmt.Fprintf(b, "INSERT INTO region_countries (iso_2, region_id) VALUES (%s, %s)\n", quote(strings.ToLower(cc)), quote(r.ID))
			b.WriteString("ON CONFLICT (iso_2) DO UPDATE SET region_id = EXCLUDED.region_id;\n")
		}
	}

	b.WriteString("\n-- 2. Productos\n")
	for _, p := range c.Products {
		fmt.Fprintf(b, "INSERT INTO products (id, handle, title, description, thumbnail) VALUES (%s, %s, %s, %s, %s)\n",
			quote(p.ID), quote(p.Handle), quote(p.Title), quoteNullable(p.Description), quoteNullable(p.Thumbnail))
		b.WriteString("ON CONFLICT (id) DO UPDATE SET handle = EXCLUDED.handle, title = EXCLUDED.title, description = EXCLUDED.description, thumbnail = EXCLUDED.thumbnail, updated_at = now();\n")

		for rank, o := range p.Options {
			fmt.Fprintf(b, "INSERT INTO product_options (id, product_id, title, values, rank) VALUES (%s, %s, %s, %s, %d)\n",
				quote(o.ID), quote(p.ID), quote(o.Title), textArray(o.Values), rank)
			b.WriteString("ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, values = EXCLUDED.values, rank = EXCLUDED.rank;\n")
		}

		for rank, v := range p.Variants {
			inv := "NULL"
			if v.InventoryQuantity != nil {
				inv = fmt.Sprintf("%d", *v.InventoryQuantity)
			}
			fmt.Fprintf(b, "INSERT INTO product_variants (id, product_id, title, sku, manage_inventory, allow_backorder, inventory_quantity, processing_fee, rank) VALUES (%s, %s, %s, %s, %t, %t, %s, %d, %d)\n",
				quote(v.ID), quote(p.ID), quote(v.Title), quoteNullable(v.SKU), v.ManageInventory, v.AllowBackorder, inv, v.ProcessingFee, rank)
			b.WriteString("ON CONFLICT (id) DO UPDATE SET title = EXCLUDED.title, sku = EXCLUDED.sku, manage_inventory = EXCLUDED.manage_inventory, allow_backorder = EXCLUDED.allow_backorder, inventory_quantity = EXCLUDED.inventory_quantity, processing_fee = EXCLUDED.processing_fee, rank = EXCLUDED.rank;\n")

			optIDs := make([]string, 0, len(v.Options))
			for id := range v.Options {
				optIDs = append(optIDs, id)
			}
			sort.Strings(optIDs)
			for _, id := range optIDs {
				fmt.Fprintf(b, "INSERT INTO product_variant_options (variant_id, option_id, value) VALUES (%s, %s, %s)\n",
					quote(v.ID), quote(id), quote(v.Options[id]))
				b.WriteString("ON CONFLICT (variant_id, option_id) DO UPDATE SET value = EXCLUDED.value;\n")
			}

			for prank, pr := range v.Prices {
				region := "NULL"
				if pr.RegionID != nil {
					region = quote(*pr.RegionID)
				}
				fmt.Fprintf(b, "INSERT INTO money_amounts (id, variant_id, amount, currency_code, region_id, rank) VALUES (%s, %s, %d, %s, %s, %d)\n",
					quote(pr.ID), quote(v.ID), pr.Amount, quote(strings.ToLower(pr.CurrencyCode)), region, prank)
				b.WriteString("ON CONFLICT (id) DO UPDATE SET amount = EXCLUDED.amount, currency_code = EXCLUDED.currency_code, region_id = EXCLUDED.region_id, rank = EXCLUDED.rank;\n")
			}
		}
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// summary conteos para el mensaje final.
func (c *catalog) summary() (regions, products, variants int) {
	for _, p := range c.Products {
		variants += len(p.Variants)
	}
	return len(c.Regions), len(c.Products), variants
}

func quote(s string) string {
	return "'" + escapeSQL(s) + "'"
}

func quoteNullable(s string) string {
	if s == "" {
		return "NULL"
	}
	return quote(s)
}

func textArray(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = quote(v)
	}
	return "ARRAY[" + strings.Join(quoted, ", ") + "]::TEXT[]"
}

func escapeSQL(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
