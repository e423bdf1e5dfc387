package reconcile

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniful/wms-dashboard/internal/hydra"
	"github.com/omniful/wms-dashboard/internal/models"
)

func testIndex(t *testing.T) *Index {
	t.Helper()

	variants := []models.ProductVariant{
		{
			VariantID:         "var-1",
			SKU:               "TS-RED-M",
			Name:              "Crew Tee - Red - M",
			Family:            hydra.RefTo("fam-1"),
			VariantAttributes: map[string]string{"size": "M", "color": "Red"},
		},
		{
			VariantID:       "var-2",
			SKU:             "TS-BLU-L",
			Name:            "Crew Tee - Blue - L",
			Family:          hydra.RefTo("fam-1"),
			LegacyProductID: "prod-77",
		},
		{
			VariantID: "var-3",
			SKU:       "MUG-STD",
			Name:      "Stoneware Mug",
		},
	}
	families := []models.ProductFamily{
		{ProductFamilyID: "fam-1", FamilyName: "Crew Tee", VariantType: models.VariantTypeSizeColor},
	}
	warehouses := []models.Warehouse{
		{WarehouseID: "wh-1", Code: "MAIN", Name: "Main DC"},
	}
	return NewIndex(variants, families, warehouses)
}

func balanceRow(t *testing.T, doc string) models.InventoryBalance {
	t.Helper()
	var b models.InventoryBalance
	require.NoError(t, json.Unmarshal([]byte(doc), &b))
	return b
}

func TestResolveByVariantID(t *testing.T) {
	ix := testIndex(t)

	r := ix.ResolveBalance(balanceRow(t, `{
		"variant": "/api/product_variants/var-1",
		"warehouse": "/api/warehouses/wh-1",
		"qtyOnHand": "150.00"
	}`))

	assert.False(t, r.Placeholder)
	assert.Equal(t, "TS-RED-M", r.Variant.SKU)
	assert.Equal(t, "Crew Tee", r.FamilyName)
	assert.Equal(t, "M", r.Size)
	assert.Equal(t, "Red", r.Color)
	assert.Equal(t, "MAIN", r.Warehouse.Code)
}

func TestResolveByLegacyProductID(t *testing.T) {
	ix := testIndex(t)

	// Legacy rows reference the retired product entity instead of a variant.
	r := ix.ResolveBalance(balanceRow(t, `{
		"variant": "/api/products/prod-77",
		"warehouse": "wh-1"
	}`))

	assert.False(t, r.Placeholder)
	assert.Equal(t, "var-2", r.Variant.VariantID)

	// Labels fall back to the composite-name heuristic via the family map.
	assert.Equal(t, "Crew Tee", r.FamilyName)
	assert.Equal(t, "L", r.Size)
	assert.Equal(t, "Blue", r.Color)
}

func TestResolveBySKUBeatsPlaceholder(t *testing.T) {
	ix := testIndex(t)

	r := ix.ResolveBalance(balanceRow(t, `{
		"variant": "/api/product_variants/var-gone",
		"sku": "MUG-STD"
	}`))

	assert.False(t, r.Placeholder)
	assert.Equal(t, "var-3", r.Variant.VariantID)
	assert.Empty(t, r.FamilyName)
}

func TestResolveSynthesizesPlaceholder(t *testing.T) {
	ix := testIndex(t)

	r := ix.ResolveBalance(balanceRow(t, `{
		"variant": "/api/product_variants/var-gone",
		"sku": "GONE-1",
		"displayName": "Discontinued Widget",
		"avgUnitCost": "4.50"
	}`))

	assert.True(t, r.Placeholder)
	assert.Equal(t, "GONE-1", r.Variant.SKU)
	assert.Equal(t, "Discontinued Widget", r.Variant.Name)
	assert.Equal(t, 4.5, r.Variant.UnitCost.Float64())
}

func TestResolvePlaceholderNeverBlank(t *testing.T) {
	ix := testIndex(t)

	r := ix.ResolveBalance(balanceRow(t, `{"variant": null}`))
	assert.True(t, r.Placeholder)
	assert.NotEmpty(t, r.Variant.SKU)
	assert.NotEmpty(t, r.Variant.Name)

	r = ix.ResolveBalance(balanceRow(t, `{"variant": "/api/product_variants/var-gone"}`))
	assert.True(t, r.Placeholder)
	assert.Equal(t, "var-gone", r.Variant.SKU)
	assert.Equal(t, "var-gone", r.Variant.Name)
}

func TestResolveEmbeddedVariantObject(t *testing.T) {
	ix := testIndex(t)

	// Rows sometimes embed the variant wholesale; use it before synthesizing.
	r := ix.ResolveBalance(balanceRow(t, `{
		"variant": {"variantId": "var-x", "sku": "EMB-1", "name": "Embedded Item"}
	}`))

	assert.True(t, r.Placeholder)
	assert.Equal(t, "EMB-1", r.Variant.SKU)
	assert.Equal(t, "Embedded Item", r.Variant.Name)
}

func TestResolveMovement(t *testing.T) {
	ix := testIndex(t)

	var m models.InventoryMovement
	require.NoError(t, json.Unmarshal([]byte(`{
		"variant": "var-1",
		"warehouse": "/api/warehouses/wh-1",
		"movementType": "RECEIPT",
		"qtyDelta": "25",
		"unitCost": "3.10"
	}`), &m))

	r := ix.ResolveMovement(m)
	assert.False(t, r.Placeholder)
	assert.Equal(t, "TS-RED-M", r.Variant.SKU)
	assert.Equal(t, "Main DC", r.Warehouse.Name)
}

func TestResolveUnknownWarehouseStillRenders(t *testing.T) {
	ix := testIndex(t)

	r := ix.ResolveBalance(balanceRow(t, `{
		"variant": "var-1",
		"warehouse": "/api/warehouses/wh-gone"
	}`))
	assert.Equal(t, "wh-gone", r.Warehouse.Code)

	r = ix.ResolveBalance(balanceRow(t, `{
		"variant": "var-1",
		"warehouse": {"warehouseId": "wh-emb", "code": "EMB", "name": "Embedded DC"}
	}`))
	assert.Equal(t, "EMB", r.Warehouse.Code)
}

func TestEndToEndNormalization(t *testing.T) {
	// Spec-level scenario: IRI reference, string quantity, empty optional.
	b := balanceRow(t, `{
		"variant": "/api/product_variants/var-9",
		"qtyOnHand": "150.00",
		"reorderPoint": ""
	}`)

	assert.Equal(t, "var-9", b.Variant.ID())
	assert.Equal(t, float64(150), b.QtyOnHand.Float64())
	assert.Nil(t, b.ReorderPoint.Ptr())
}
