package models

import (
	"time"

	"github.com/omniful/wms-dashboard/internal/hydra"
)

// Company is the tenant boundary. Every other entity is scoped to exactly
// one company for the lifetime of a session.
type Company struct {
	CompanyID string `json:"companyId"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
}

// ProductVariant is a sellable SKU. It supersedes the legacy Product entity
// on newer routes; legacy rows may still reference a product id.
type ProductVariant struct {
	VariantID         string               `json:"variantId"`
	Company           hydra.Ref            `json:"company"`
	SKU               string               `json:"sku"`
	Name              string               `json:"name"`
	Family            hydra.Ref            `json:"family,omitempty"`
	Supplier          hydra.Ref            `json:"supplier,omitempty"`
	UnitCost          hydra.Number         `json:"unitCost"`
	SellingPrice      hydra.Number         `json:"sellingPrice"`
	ReorderPoint      hydra.OptionalNumber `json:"reorderPoint,omitempty"`
	ReorderQty        hydra.OptionalNumber `json:"reorderQty,omitempty"`
	IsPrimary         bool                 `json:"isPrimary"`
	IsActive          bool                 `json:"isActive"`
	VariantAttributes map[string]string    `json:"variantAttributes,omitempty"`

	// LegacyProductID is set on variants migrated from the retired Product
	// entity; inventory rows may still reference it.
	LegacyProductID string `json:"productId,omitempty"`
}

// Variant type of a product family.
const (
	VariantTypeSize      = "size"
	VariantTypeColor     = "color"
	VariantTypeSizeColor = "size_color"
	VariantTypeOther     = "other"
)

// ProductFamily groups variants under a shared template.
type ProductFamily struct {
	ProductFamilyID  string    `json:"productFamilyId"`
	Company          hydra.Ref `json:"company"`
	FamilyName       string    `json:"familyName"`
	VariantType      string    `json:"variantType"`
	ExpectedVariants []string  `json:"expectedVariants,omitempty"`
	BaseSKUPattern   string    `json:"baseSkuPattern,omitempty"`
}

// Supplier status values.
const (
	SupplierStatusActive   = "active"
	SupplierStatusInactive = "inactive"
	SupplierStatusTrial    = "trial"
)

// Supplier is a vendor. The backend serializes on-time rate and total spend
// as decimal strings.
type Supplier struct {
	SupplierID   string               `json:"supplierId"`
	Company      hydra.Ref            `json:"company"`
	Name         string               `json:"name"`
	ContactName  string               `json:"contactName,omitempty"`
	Email        string               `json:"email,omitempty"`
	Phone        string               `json:"phone,omitempty"`
	Status       string               `json:"status"`
	OnTimeRate   hydra.Number         `json:"onTimeRate"`
	TotalSpend   hydra.Number         `json:"totalSpend"`
	LeadTimeDays hydra.OptionalNumber `json:"leadTimeDays,omitempty"`
}

// Address is the optional structured address of a warehouse.
type Address struct {
	Line1      string `json:"line1,omitempty"`
	Line2      string `json:"line2,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	Country    string `json:"country,omitempty"`
	PostalCode string `json:"postalCode,omitempty"`
}

// Warehouse is a storage location.
type Warehouse struct {
	WarehouseID string    `json:"warehouseId"`
	Company     hydra.Ref `json:"company"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Address     *Address  `json:"address,omitempty"`
	IsActive    bool      `json:"isActive"`
}

// InventoryBalance is a (variant, warehouse) snapshot maintained server-side
// as a projection over movements. It is never created through this service.
type InventoryBalance struct {
	BalanceID    string               `json:"balanceId"`
	Company      hydra.Ref            `json:"company"`
	Variant      hydra.Ref            `json:"variant"`
	Warehouse    hydra.Ref            `json:"warehouse"`
	QtyOnHand    hydra.Number         `json:"qtyOnHand"`
	QtyCommitted hydra.Number         `json:"qtyCommitted"`
	QtyInTransit hydra.Number         `json:"qtyInTransit"`
	QtyAvailable hydra.Number         `json:"qtyAvailable"`
	AvgUnitCost  hydra.Number         `json:"avgUnitCost"`
	StockValue   hydra.Number         `json:"stockValue"`
	ReorderPoint hydra.OptionalNumber `json:"reorderPoint,omitempty"`
	SafetyStock  hydra.OptionalNumber `json:"safetyStock,omitempty"`
	MaxStock     hydra.OptionalNumber `json:"maxStockLevel,omitempty"`

	// Display fields some balance rows carry for legacy variants; used when
	// no authoritative variant record can be resolved.
	SKU         string `json:"sku,omitempty"`
	DisplayName string `json:"displayName,omitempty"`

	// LegacyProductID references the retired Product entity on old rows.
	LegacyProductID string `json:"productId,omitempty"`
}

// Movement types of the inventory ledger.
const (
	MovementReceipt  = "RECEIPT"
	MovementShipment = "SHIPMENT"
	MovementTransfer = "TRANSFER"
	MovementAdjust   = "ADJUST"
	MovementCount    = "COUNT"
	MovementReturn   = "RETURN"
	MovementDamage   = "DAMAGE"
)

// MovementTypes lists every valid movement type.
var MovementTypes = []string{
	MovementReceipt, MovementShipment, MovementTransfer,
	MovementAdjust, MovementCount, MovementReturn, MovementDamage,
}

// IsValidMovementType reports whether t is a known ledger movement type.
func IsValidMovementType(t string) bool {
	for _, known := range MovementTypes {
		if t == known {
			return true
		}
	}
	return false
}

// InventoryMovement is an immutable ledger entry: a quantity delta against a
// (variant, warehouse) pair.
type InventoryMovement struct {
	MovementID   string               `json:"movementId"`
	Company      hydra.Ref            `json:"company"`
	Variant      hydra.Ref            `json:"variant"`
	Warehouse    hydra.Ref            `json:"warehouse"`
	MovementType string               `json:"movementType"`
	QtyDelta     hydra.Number         `json:"qtyDelta"`
	UnitCost     hydra.Number         `json:"unitCost"`
	ActualPrice  hydra.OptionalNumber `json:"actualPrice,omitempty"`
	MarginAmount hydra.OptionalNumber `json:"marginAmount,omitempty"`
	PerformedAt  time.Time            `json:"performedAt"`
	SourceDoc    string               `json:"sourceDoc,omitempty"`
	Note         string               `json:"note,omitempty"`

	// Display fields for rows whose variant lookup may fail.
	SKU         string `json:"sku,omitempty"`
	DisplayName string `json:"displayName,omitempty"`

	LegacyProductID string `json:"productId,omitempty"`
}

// Purchase order status values.
const (
	POStatusDraft     = "DRAFT"
	POStatusOpen      = "OPEN"
	POStatusPartial   = "PARTIAL"
	POStatusClosed    = "CLOSED"
	POStatusCancelled = "CANCELLED"
)

// PurchaseOrder is a procurement document header.
type PurchaseOrder struct {
	PurchaseOrderID string              `json:"purchaseOrderId"`
	Company         hydra.Ref           `json:"company"`
	OrderNumber     string              `json:"orderNumber"`
	Supplier        hydra.Ref           `json:"supplier"`
	Warehouse       hydra.Ref           `json:"warehouse,omitempty"`
	Status          string              `json:"status"`
	OrderDate       time.Time           `json:"orderDate"`
	ExpectedDate    *time.Time          `json:"expectedDate,omitempty"`
	Notes           string              `json:"notes,omitempty"`
	TotalAmount     hydra.Number        `json:"totalAmount"`
	Lines           []PurchaseOrderLine `json:"lines,omitempty"`
}

// PurchaseOrderLine references a variant with ordered/received/invoiced
// quantities.
type PurchaseOrderLine struct {
	LineID      string       `json:"lineId"`
	Variant     hydra.Ref    `json:"variant"`
	SKU         string       `json:"sku,omitempty"`
	QtyOrdered  hydra.Number `json:"qtyOrdered"`
	QtyReceived hydra.Number `json:"qtyReceived"`
	QtyInvoiced hydra.Number `json:"qtyInvoiced"`
	UnitCost    hydra.Number `json:"unitCost"`
}

// ListFilter is the common collection-query filter.
type ListFilter struct {
	Search   string
	Status   string
	Page     int
	PageSize int
}

// MovementFilter narrows a movements listing.
type MovementFilter struct {
	VariantID    string
	WarehouseID  string
	MovementType string
	Page         int
	PageSize     int
}

// AdjustmentRequest is an inventory adjustment keyed by SKU and warehouse
// code rather than opaque ids, matching the upstream by-sku endpoint.
type AdjustmentRequest struct {
	SKU           string   `json:"sku" binding:"required"`
	WarehouseCode string   `json:"warehouseCode" binding:"required"`
	MovementType  string   `json:"movementType" binding:"required"`
	QtyDelta      float64  `json:"qtyDelta" binding:"required"`
	UnitCost      float64  `json:"unitCost"`
	ActualPrice   *float64 `json:"actualPrice,omitempty"`
	SourceDoc     string   `json:"sourceDoc,omitempty"`
	Note          string   `json:"note,omitempty"`
}
