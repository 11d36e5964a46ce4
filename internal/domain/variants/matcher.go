// Package variants resuelve qué variante concreta corresponde a la selección de opciones del cliente
// y si esa variante se puede comprar.
package variants

import "github.com/jhoicas/storefront-api/internal/domain/entity"

// Selection valores elegidos por el cliente: option_id -> valor. Puede ser parcial;
// una opción sin elegir simplemente no está en el mapa.
type Selection map[string]string

// Merge devuelve una nueva selección con update aplicado sobre s.
func (s Selection) Merge(update Selection) Selection {
	out := make(Selection, len(s)+len(update))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range update {
		out[k] = v
	}
	return out
}

// Equal compara claves y valores exactos.
func (s Selection) Equal(other Selection) bool {
	if len(s) != len(other) {
		return false
	}
	for k, v := range s {
		ov, ok := other[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}

// Index mapa variant_id -> opciones de la variante, en el orden del catálogo.
type Index struct {
	ids     []string
	options map[string]Selection
}

// BuildIndex aplana las opciones de cada variante. Las variantes sin ID o sin opciones se omiten.
func BuildIndex(variants []entity.ProductVariant) *Index {
	ix := &Index{options: make(map[string]Selection, len(variants))}
	for _, v := range variants {
		if v.ID == "" || len(v.Options) == 0 {
			continue
		}
		sel := make(Selection, len(v.Options))
		for _, o := range v.Options {
			sel[o.OptionID] = o.Value
		}
		if _, seen := ix.options[v.ID]; !seen {
			ix.ids = append(ix.ids, v.ID)
		}
		ix.options[v.ID] = sel
	}
	return ix
}

// Options devuelve la selección completa de una variante indexada.
func (ix *Index) Options(variantID string) (Selection, bool) {
	sel, ok := ix.options[variantID]
	if !ok {
		return nil, false
	}
	return sel.Merge(nil), true
}

// Resolve busca la variante cuyas opciones son exactamente la selección.
// Si varias coinciden (catálogo mal formado) gana la última en orden del índice.
func (ix *Index) Resolve(sel Selection) (string, bool) {
	var match string
	found := false
	for _, id := range ix.ids {
		if ix.options[id].Equal(sel) {
			match = id
			found = true
		}
	}
	return match, found
}

// InitialSelection selección con la que arranca la sesión: si el producto tiene una única variante
// se preselecciona completa; si no, queda vacía.
func InitialSelection(variants []entity.ProductVariant) Selection {
	if len(variants) == 1 && variants[0].ID != "" {
		if sel, ok := BuildIndex(variants).Options(variants[0].ID); ok {
			return sel
		}
	}
	return Selection{}
}

// InStock indica si la variante se puede agregar al carrito.
func InStock(v *entity.ProductVariant) bool {
	if v == nil {
		return false
	}
	// sin control de inventario siempre se puede vender
	if !v.ManageInventory {
		return true
	}
	if v.AllowBackorder {
		return true
	}
	return v.InventoryQuantity != nil && *v.InventoryQuantity > 0
}
