package demo

import (
	"context"
	"time"

	"github.com/omniful/wms-dashboard/internal/hydra"
	"github.com/omniful/wms-dashboard/internal/models"
)

// DemoCompanyID scopes every seeded record.
const DemoCompanyID = "comp-demo"

// Seed writes a coherent demo dataset for one company. Existing datasets are
// overwritten so a reseed always yields a known state.
func (s *Store) Seed(ctx context.Context) error {
	now := time.Now().UTC()
	company := hydra.RefTo(DemoCompanyID)

	warehouses := []models.Warehouse{
		{WarehouseID: "wh-1001", Company: company, Code: "MAIN", Name: "Main Distribution Center", IsActive: true,
			Address: &models.Address{Line1: "12 Harbor Way", City: "Rotterdam", Country: "NL", PostalCode: "3011"}},
		{WarehouseID: "wh-1002", Company: company, Code: "OVRF", Name: "Overflow Depot", IsActive: true},
	}

	suppliers := []models.Supplier{
		{SupplierID: "sup-1001", Company: company, Name: "Acme Textiles", ContactName: "J. Weaver",
			Email: "orders@acme-textiles.example", Status: models.SupplierStatusActive,
			OnTimeRate: 96.5, TotalSpend: 18250.75, LeadTimeDays: hydra.OptionalOf(14)},
		{SupplierID: "sup-1002", Company: company, Name: "Northside Ceramics", Status: models.SupplierStatusTrial,
			OnTimeRate: 88, TotalSpend: 1320},
	}

	families := []models.ProductFamily{
		{ProductFamilyID: "fam-1001", Company: company, FamilyName: "Crew Tee",
			VariantType: models.VariantTypeSizeColor,
			ExpectedVariants: []string{"Red - M", "Red - L", "Blue - M", "Blue - L"},
			BaseSKUPattern:   "TS-{color}-{size}"},
		{ProductFamilyID: "fam-1002", Company: company, FamilyName: "Stoneware Mug",
			VariantType: models.VariantTypeOther},
	}

	variants := []models.ProductVariant{
		{VariantID: "var-1001", Company: company, SKU: "TS-RED-M", Name: "Crew Tee - Red - M",
			Family: hydra.RefTo("fam-1001"), Supplier: hydra.RefTo("sup-1001"),
			UnitCost: 3.5, SellingPrice: 14.95, ReorderPoint: hydra.OptionalOf(40), ReorderQty: hydra.OptionalOf(120),
			IsPrimary: true, IsActive: true,
			VariantAttributes: map[string]string{"size": "M", "color": "Red"}},
		{VariantID: "var-1002", Company: company, SKU: "TS-BLU-L", Name: "Crew Tee - Blue - L",
			Family: hydra.RefTo("fam-1001"), Supplier: hydra.RefTo("sup-1001"),
			UnitCost: 3.5, SellingPrice: 14.95, IsActive: true,
			VariantAttributes: map[string]string{"size": "L", "color": "Blue"},
			LegacyProductID:   "prod-2001"},
		{VariantID: "var-1003", Company: company, SKU: "MUG-STD", Name: "Stoneware Mug",
			Family: hydra.RefTo("fam-1002"), Supplier: hydra.RefTo("sup-1002"),
			UnitCost: 4.1, SellingPrice: 12.5, IsPrimary: true, IsActive: true},
	}

	balances := []models.InventoryBalance{
		{BalanceID: "bal-1001", Company: company, Variant: hydra.RefTo("var-1001"), Warehouse: hydra.RefTo("wh-1001"),
			QtyOnHand: 150, QtyCommitted: 12, QtyAvailable: 138, AvgUnitCost: 3.5, StockValue: 525,
			ReorderPoint: hydra.OptionalOf(40)},
		{BalanceID: "bal-1002", Company: company, Variant: hydra.RefTo("prod-2001"), Warehouse: hydra.RefTo("wh-1001"),
			QtyOnHand: 55, QtyAvailable: 55, AvgUnitCost: 3.5, StockValue: 192.5,
			SKU: "TS-BLU-L", LegacyProductID: "prod-2001"},
		{BalanceID: "bal-1003", Company: company, Variant: hydra.RefTo("var-gone"), Warehouse: hydra.RefTo("wh-1002"),
			QtyOnHand: 9, QtyAvailable: 9, AvgUnitCost: 2.2, StockValue: 19.8,
			SKU: "DISC-01", DisplayName: "Discontinued Coaster"},
	}

	movements := []models.InventoryMovement{
		{MovementID: "mov-1001", Company: company, Variant: hydra.RefTo("var-1001"), Warehouse: hydra.RefTo("wh-1001"),
			MovementType: models.MovementReceipt, QtyDelta: 150, UnitCost: 3.5,
			PerformedAt: now.Add(-72 * time.Hour), SourceDoc: "PO-2024-0007"},
		{MovementID: "mov-1002", Company: company, Variant: hydra.RefTo("var-1001"), Warehouse: hydra.RefTo("wh-1001"),
			MovementType: models.MovementShipment, QtyDelta: -12, UnitCost: 3.5,
			ActualPrice: hydra.OptionalOf(14.95), MarginAmount: hydra.OptionalOf(11.45),
			PerformedAt: now.Add(-24 * time.Hour)},
	}

	expected := now.Add(10 * 24 * time.Hour)
	purchaseOrders := []models.PurchaseOrder{
		{PurchaseOrderID: "po-1001", Company: company, OrderNumber: "PO-2024-0007",
			Supplier: hydra.RefTo("sup-1001"), Warehouse: hydra.RefTo("wh-1001"),
			Status: models.POStatusPartial, OrderDate: now.Add(-96 * time.Hour), ExpectedDate: &expected,
			TotalAmount: 840,
			Lines: []models.PurchaseOrderLine{
				{LineID: "pol-1", Variant: hydra.RefTo("var-1001"), SKU: "TS-RED-M", QtyOrdered: 240, QtyReceived: 150, UnitCost: 3.5},
			}},
		{PurchaseOrderID: "po-1002", Company: company, OrderNumber: "PO-2024-0011",
			Supplier: hydra.RefTo("sup-1002"), Status: models.POStatusDraft, OrderDate: now.Add(-4 * time.Hour),
			TotalAmount: 410,
			Lines: []models.PurchaseOrderLine{
				{LineID: "pol-2", Variant: hydra.RefTo("var-1003"), SKU: "MUG-STD", QtyOrdered: 100, UnitCost: 4.1},
			}},
	}

	if err := s.PutWarehouses(ctx, warehouses); err != nil {
		return err
	}
	if err := s.PutSuppliers(ctx, suppliers); err != nil {
		return err
	}
	if err := s.PutFamilies(ctx, families); err != nil {
		return err
	}
	if err := s.PutVariants(ctx, variants); err != nil {
		return err
	}
	if err := s.PutBalances(ctx, balances); err != nil {
		return err
	}
	if err := s.PutMovements(ctx, movements); err != nil {
		return err
	}
	return s.PutPurchaseOrders(ctx, purchaseOrders)
}
