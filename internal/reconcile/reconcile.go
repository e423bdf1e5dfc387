// Package reconcile joins inventory rows against separately-loaded variant,
// family and warehouse collections, guaranteeing every row resolves to a
// displayable entity even when the authoritative lookup fails (legacy rows
// referencing the retired product entity, or a race between collection
// loads). Resolution is deterministic and side-effect-free: synthesized
// placeholders exist only in the response being built and are never written
// back upstream.
package reconcile

import (
	"strings"

	"github.com/omniful/wms-dashboard/internal/hydra"
	"github.com/omniful/wms-dashboard/internal/models"
)

// Label separator used by composite display names ("Crew Tee - Red - M").
const labelSeparator = " - "

// Index holds the lookup maps built from one load of the variant and family
// collections.
type Index struct {
	byVariantID map[string]models.ProductVariant
	byProductID map[string]models.ProductVariant
	bySKU       map[string]models.ProductVariant
	families    map[string]models.ProductFamily
	warehouses  map[string]models.Warehouse
}

// NewIndex builds the lookup maps. Variants are keyed by variant id and, as
// fallbacks, by legacy product id and SKU.
func NewIndex(
	variants []models.ProductVariant,
	families []models.ProductFamily,
	warehouses []models.Warehouse,
) *Index {
	ix := &Index{
		byVariantID: make(map[string]models.ProductVariant, len(variants)),
		byProductID: make(map[string]models.ProductVariant),
		bySKU:       make(map[string]models.ProductVariant, len(variants)),
		families:    make(map[string]models.ProductFamily, len(families)),
		warehouses:  make(map[string]models.Warehouse, len(warehouses)),
	}
	for _, v := range variants {
		if v.VariantID != "" {
			ix.byVariantID[v.VariantID] = v
		}
		if v.LegacyProductID != "" {
			ix.byProductID[v.LegacyProductID] = v
		}
		if v.SKU != "" {
			ix.bySKU[v.SKU] = v
		}
	}
	for _, f := range families {
		if f.ProductFamilyID != "" {
			ix.families[f.ProductFamilyID] = f
		}
	}
	for _, w := range warehouses {
		if w.WarehouseID != "" {
			ix.warehouses[w.WarehouseID] = w
		}
	}
	return ix
}

// Resolved is the display entity for one inventory row.
type Resolved struct {
	Variant models.ProductVariant

	// Placeholder is true when no loaded variant matched and the entity was
	// synthesized from the row's own fields.
	Placeholder bool

	FamilyName string
	Size       string
	Color      string

	Warehouse models.Warehouse
}

// ResolveBalance resolves the display entity for a balance row.
func (ix *Index) ResolveBalance(b models.InventoryBalance) Resolved {
	r := ix.resolve(b.Variant, b.LegacyProductID, b.SKU, b.DisplayName, b.AvgUnitCost.Float64())
	r.Warehouse = ix.resolveWarehouse(b.Warehouse)
	return r
}

// ResolveMovement resolves the display entity for a ledger row.
func (ix *Index) ResolveMovement(m models.InventoryMovement) Resolved {
	r := ix.resolve(m.Variant, m.LegacyProductID, m.SKU, m.DisplayName, m.UnitCost.Float64())
	r.Warehouse = ix.resolveWarehouse(m.Warehouse)
	return r
}

// resolve tries, in order: direct variant-id lookup, legacy product-id
// lookup, SKU lookup. When nothing matches it synthesizes a placeholder from
// the row's own fields so the row still renders with a sensible label.
func (ix *Index) resolve(variant hydra.Ref, legacyProductID, sku, displayName string, unitCost float64) Resolved {
	if v, ok := ix.byVariantID[variant.ID()]; ok {
		return ix.labeled(v, false)
	}
	if v, ok := ix.byProductID[variant.ID()]; ok {
		return ix.labeled(v, false)
	}
	if v, ok := ix.byProductID[legacyProductID]; ok {
		return ix.labeled(v, false)
	}
	if v, ok := ix.bySKU[sku]; ok {
		return ix.labeled(v, false)
	}
	return ix.labeled(synthesize(variant, sku, displayName, unitCost), true)
}

func (ix *Index) resolveWarehouse(ref hydra.Ref) models.Warehouse {
	if w, ok := ix.warehouses[ref.ID()]; ok {
		return w
	}
	var embedded models.Warehouse
	if ref.Embedded(&embedded) && embedded.WarehouseID != "" {
		return embedded
	}
	id := ref.ID()
	return models.Warehouse{WarehouseID: id, Code: id, Name: id}
}

// synthesize builds a placeholder variant from a row's display fields. SKU
// and name are never left blank.
func synthesize(variant hydra.Ref, sku, displayName string, unitCost float64) models.ProductVariant {
	var embedded models.ProductVariant
	if variant.Embedded(&embedded) && embedded.SKU != "" {
		return embedded
	}

	if sku == "" {
		sku = variant.ID()
	}
	if sku == "" {
		sku = "UNKNOWN"
	}
	name := displayName
	if name == "" {
		name = sku
	}
	return models.ProductVariant{
		VariantID: variant.ID(),
		SKU:       sku,
		Name:      name,
		UnitCost:  hydra.Number(unitCost),
	}
}

// labeled fills in the best-effort family/size/color display labels:
// embedded object field, then map lookup by reference id, then the composite
// display-name heuristic, then absent.
func (ix *Index) labeled(v models.ProductVariant, placeholder bool) Resolved {
	r := Resolved{Variant: v, Placeholder: placeholder}

	var embedded models.ProductFamily
	switch {
	case v.Family.Embedded(&embedded) && embedded.FamilyName != "":
		r.FamilyName = embedded.FamilyName
	default:
		if f, ok := ix.families[v.Family.ID()]; ok {
			r.FamilyName = f.FamilyName
			embedded = f
		} else if base, _, found := strings.Cut(v.Name, labelSeparator); found {
			r.FamilyName = base
		}
	}

	r.Size = v.VariantAttributes["size"]
	r.Color = v.VariantAttributes["color"]
	if r.Size != "" || r.Color != "" {
		return r
	}

	segments := strings.Split(v.Name, labelSeparator)
	if len(segments) < 2 {
		return r
	}
	switch embedded.VariantType {
	case models.VariantTypeSize:
		r.Size = segments[len(segments)-1]
	case models.VariantTypeColor:
		r.Color = segments[len(segments)-1]
	case models.VariantTypeSizeColor:
		r.Size = segments[len(segments)-1]
		if len(segments) >= 3 {
			r.Color = segments[len(segments)-2]
		}
	}
	return r
}
