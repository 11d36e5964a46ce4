package entity

import "time"

// Product representa un producto del catálogo de la tienda (ej. una gift card) con sus opciones y variantes.
// Es una instantánea de solo lectura: el storefront nunca la modifica.
type Product struct {
	ID          string
	Handle      string // slug único usado en la URL
	Title       string
	Description string
	Thumbnail   string
	Options     []ProductOption
	Variants    []ProductVariant
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductOption opción seleccionable de un producto (ej. "Monto", "Diseño").
type ProductOption struct {
	ID     string
	Title  string
	Values []string
}

// HasMultipleVariants indica si el cliente debe elegir opciones antes de comprar.
func (p *Product) HasMultipleVariants() bool {
	return p != nil && len(p.Variants) > 1
}

// VariantByID busca una variante del producto por ID.
func (p *Product) VariantByID(id string) *ProductVariant {
	if p == nil || id == "" {
		return nil
	}
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i]
		}
	}
	return nil
}
