package service

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/omniful/wms-dashboard/internal/cache"
	"github.com/omniful/wms-dashboard/internal/demo"
	"github.com/omniful/wms-dashboard/internal/hydra"
	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/reconcile"
	"github.com/omniful/wms-dashboard/internal/upstream"
)

// InventoryRow is one fully-resolved balance row, ready to render: the raw
// quantities joined with the display fields of the resolved variant and
// warehouse.
type InventoryRow struct {
	BalanceID     string   `json:"balanceId"`
	VariantID     string   `json:"variantId,omitempty"`
	SKU           string   `json:"sku"`
	Name          string   `json:"name"`
	FamilyName    string   `json:"familyName,omitempty"`
	Size          string   `json:"size,omitempty"`
	Color         string   `json:"color,omitempty"`
	WarehouseCode string   `json:"warehouseCode"`
	WarehouseName string   `json:"warehouseName"`
	QtyOnHand     float64  `json:"qtyOnHand"`
	QtyCommitted  float64  `json:"qtyCommitted"`
	QtyInTransit  float64  `json:"qtyInTransit"`
	QtyAvailable  float64  `json:"qtyAvailable"`
	AvgUnitCost   float64  `json:"avgUnitCost"`
	StockValue    float64  `json:"stockValue"`
	ReorderPoint  *float64 `json:"reorderPoint,omitempty"`
	BelowReorder  bool     `json:"belowReorder"`
	Placeholder   bool     `json:"placeholder"`
}

// MovementRow is one resolved ledger entry.
type MovementRow struct {
	MovementID    string    `json:"movementId"`
	VariantID     string    `json:"variantId,omitempty"`
	SKU           string    `json:"sku"`
	Name          string    `json:"name"`
	WarehouseCode string    `json:"warehouseCode"`
	MovementType  string    `json:"movementType"`
	QtyDelta      float64   `json:"qtyDelta"`
	UnitCost      float64   `json:"unitCost"`
	ActualPrice   *float64  `json:"actualPrice,omitempty"`
	PerformedAt   time.Time `json:"performedAt"`
	SourceDoc     string    `json:"sourceDoc,omitempty"`
	Note          string    `json:"note,omitempty"`
	Placeholder   bool      `json:"placeholder"`
}

type InventoryService interface {
	GetInventory(ctx context.Context, companyID string, filter models.ListFilter) (Listing[InventoryRow], error)
	ListMovements(ctx context.Context, companyID string, filter models.MovementFilter) (Listing[MovementRow], error)
	Adjust(ctx context.Context, companyID string, adj *models.AdjustmentRequest) (*models.InventoryMovement, error)
	ExportCSV(ctx context.Context, companyID string, filter models.ListFilter, w io.Writer) error
}

type inventoryService struct {
	api    *upstream.Client
	store  *demo.Store
	lookup *cache.Cache
	opts   Options
}

func NewInventoryService(api *upstream.Client, store *demo.Store, lookup *cache.Cache, opts Options) InventoryService {
	return &inventoryService{api: api, store: store, lookup: lookup, opts: opts}
}

// inventoryDataset is one coherent load of everything the inventory screen
// joins against.
type inventoryDataset struct {
	variants   []models.ProductVariant
	families   []models.ProductFamily
	warehouses []models.Warehouse
	balances   []models.InventoryBalance
	total      int64
}

// loadLive fetches the four collections in parallel. Lookup collections are
// loaded unpaginated and served read-through from the cache; only the balance
// listing honors the caller's filter and is always fetched fresh.
func (s *inventoryService) loadLive(ctx context.Context, companyID string, filter models.ListFilter) (*inventoryDataset, error) {
	ds := &inventoryDataset{}
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		ds.variants, err = cachedList(gctx, s.lookup, cache.KeyVariantsPrefix+companyID,
			func() ([]models.ProductVariant, error) {
				items, _, err := s.api.ListVariants(gctx, companyID, models.ListFilter{})
				return items, err
			})
		return err
	})
	g.Go(func() error {
		var err error
		ds.families, err = cachedList(gctx, s.lookup, cache.KeyFamiliesPrefix+companyID,
			func() ([]models.ProductFamily, error) {
				items, _, err := s.api.ListFamilies(gctx, companyID, models.ListFilter{})
				return items, err
			})
		return err
	})
	g.Go(func() error {
		var err error
		ds.warehouses, err = cachedList(gctx, s.lookup, cache.KeyWarehousesPrefix+companyID,
			func() ([]models.Warehouse, error) {
				items, _, err := s.api.ListWarehouses(gctx, companyID, models.ListFilter{})
				return items, err
			})
		return err
	})
	g.Go(func() error {
		var err error
		ds.balances, ds.total, err = s.api.ListBalances(gctx, companyID, filter)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return ds, nil
}

func cachedList[T any](ctx context.Context, c *cache.Cache, key string, fetch func() ([]T, error)) ([]T, error) {
	if items, ok := cache.GetList[T](ctx, c, key); ok {
		return items, nil
	}
	items, err := fetch()
	if err != nil {
		return nil, err
	}
	cache.PutList(ctx, c, key, items)
	return items, nil
}

func (s *inventoryService) loadDemo(ctx context.Context) (*inventoryDataset, error) {
	ds := &inventoryDataset{}
	var err error
	if ds.variants, err = s.store.Variants(ctx); err != nil {
		return nil, err
	}
	if ds.families, err = s.store.Families(ctx); err != nil {
		return nil, err
	}
	if ds.warehouses, err = s.store.Warehouses(ctx); err != nil {
		return nil, err
	}
	if ds.balances, err = s.store.Balances(ctx); err != nil {
		return nil, err
	}
	ds.total = int64(len(ds.balances))
	return ds, nil
}

func (s *inventoryService) GetInventory(ctx context.Context, companyID string, filter models.ListFilter) (Listing[InventoryRow], error) {
	source := SourceLive
	ds, err := s.load(ctx, companyID, filter, &source)
	if err != nil {
		return Listing[InventoryRow]{}, err
	}

	ix := reconcile.NewIndex(ds.variants, ds.families, ds.warehouses)
	rows := make([]InventoryRow, 0, len(ds.balances))
	for _, b := range ds.balances {
		rows = append(rows, buildRow(b, ix.ResolveBalance(b)))
	}
	if filter.Search != "" {
		rows = filterRows(rows, filter.Search)
	}
	return Listing[InventoryRow]{Items: rows, Total: ds.total, Source: source}, nil
}

// load picks the data source and records the one actually used in *source.
func (s *inventoryService) load(ctx context.Context, companyID string, filter models.ListFilter, source *string) (*inventoryDataset, error) {
	if s.opts.DevMode {
		*source = SourceDemo
		return s.loadDemo(ctx)
	}

	ds, err := s.loadLive(ctx, companyID, filter)
	if err != nil {
		if s.opts.shouldFallBack(err) {
			if demoDS, demoErr := s.loadDemo(ctx); demoErr == nil {
				logFallback("inventory", err)
				*source = SourceDemo
				return demoDS, nil
			}
		}
		return nil, fmt.Errorf("failed to load inventory: %w", err)
	}
	return ds, nil
}

func buildRow(b models.InventoryBalance, r reconcile.Resolved) InventoryRow {
	row := InventoryRow{
		BalanceID:     b.BalanceID,
		VariantID:     r.Variant.VariantID,
		SKU:           r.Variant.SKU,
		Name:          r.Variant.Name,
		FamilyName:    r.FamilyName,
		Size:          r.Size,
		Color:         r.Color,
		WarehouseCode: r.Warehouse.Code,
		WarehouseName: r.Warehouse.Name,
		QtyOnHand:     b.QtyOnHand.Float64(),
		QtyCommitted:  b.QtyCommitted.Float64(),
		QtyInTransit:  b.QtyInTransit.Float64(),
		QtyAvailable:  b.QtyAvailable.Float64(),
		AvgUnitCost:   b.AvgUnitCost.Float64(),
		StockValue:    b.StockValue.Float64(),
		Placeholder:   r.Placeholder,
	}

	// The balance row's own reorder point wins; the variant's is a default.
	switch {
	case b.ReorderPoint.IsSet():
		row.ReorderPoint = b.ReorderPoint.Ptr()
	case r.Variant.ReorderPoint.IsSet():
		row.ReorderPoint = r.Variant.ReorderPoint.Ptr()
	}
	if row.ReorderPoint != nil {
		row.BelowReorder = row.QtyAvailable < *row.ReorderPoint
	}
	return row
}

func filterRows(rows []InventoryRow, search string) []InventoryRow {
	needle := strings.ToLower(search)
	kept := rows[:0]
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.SKU), needle) ||
			strings.Contains(strings.ToLower(row.Name), needle) ||
			strings.Contains(strings.ToLower(row.WarehouseCode), needle) {
			kept = append(kept, row)
		}
	}
	return kept
}

func (s *inventoryService) ListMovements(ctx context.Context, companyID string, filter models.MovementFilter) (Listing[MovementRow], error) {
	var (
		movements []models.InventoryMovement
		total     int64
		source    = SourceLive
		ds        *inventoryDataset
	)

	if s.opts.DevMode {
		source = SourceDemo
		var err error
		if ds, err = s.loadDemo(ctx); err != nil {
			return Listing[MovementRow]{}, err
		}
		if movements, err = s.store.Movements(ctx); err != nil {
			return Listing[MovementRow]{}, err
		}
		movements = filterMovements(movements, filter)
		total = int64(len(movements))
	} else {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			ds, err = s.loadLive(gctx, companyID, models.ListFilter{})
			return err
		})
		g.Go(func() error {
			var err error
			movements, total, err = s.api.ListMovements(gctx, companyID, filter)
			return err
		})
		if err := g.Wait(); err != nil {
			return Listing[MovementRow]{}, fmt.Errorf("failed to load movements: %w", err)
		}
	}

	ix := reconcile.NewIndex(ds.variants, ds.families, ds.warehouses)
	rows := make([]MovementRow, 0, len(movements))
	for _, m := range movements {
		r := ix.ResolveMovement(m)
		rows = append(rows, MovementRow{
			MovementID:    m.MovementID,
			VariantID:     r.Variant.VariantID,
			SKU:           r.Variant.SKU,
			Name:          r.Variant.Name,
			WarehouseCode: r.Warehouse.Code,
			MovementType:  m.MovementType,
			QtyDelta:      m.QtyDelta.Float64(),
			UnitCost:      m.UnitCost.Float64(),
			ActualPrice:   m.ActualPrice.Ptr(),
			PerformedAt:   m.PerformedAt,
			SourceDoc:     m.SourceDoc,
			Note:          m.Note,
			Placeholder:   r.Placeholder,
		})
	}
	return Listing[MovementRow]{Items: rows, Total: total, Source: source}, nil
}

func filterMovements(movements []models.InventoryMovement, filter models.MovementFilter) []models.InventoryMovement {
	kept := movements[:0]
	for _, m := range movements {
		if filter.VariantID != "" && m.Variant.ID() != filter.VariantID {
			continue
		}
		if filter.WarehouseID != "" && m.Warehouse.ID() != filter.WarehouseID {
			continue
		}
		if filter.MovementType != "" && m.MovementType != filter.MovementType {
			continue
		}
		kept = append(kept, m)
	}
	return kept
}

// Adjust appends a ledger entry keyed by SKU and warehouse code. The balance
// projection is maintained upstream; in dev mode the matching demo balance is
// updated in place so the screen stays coherent.
func (s *inventoryService) Adjust(ctx context.Context, companyID string, adj *models.AdjustmentRequest) (*models.InventoryMovement, error) {
	if !models.IsValidMovementType(adj.MovementType) {
		return nil, fmt.Errorf("invalid movement type %q", adj.MovementType)
	}
	if adj.QtyDelta == 0 {
		return nil, errors.New("qtyDelta must be non-zero")
	}

	if !s.opts.DevMode {
		return s.api.AdjustBySKU(ctx, companyID, adj)
	}

	variants, err := s.store.Variants(ctx)
	if err != nil {
		return nil, err
	}
	warehouses, err := s.store.Warehouses(ctx)
	if err != nil {
		return nil, err
	}

	var variant *models.ProductVariant
	for i := range variants {
		if variants[i].SKU == adj.SKU {
			variant = &variants[i]
			break
		}
	}
	if variant == nil {
		return nil, fmt.Errorf("unknown sku %q: %w", adj.SKU, upstream.ErrNotFound)
	}
	var warehouse *models.Warehouse
	for i := range warehouses {
		if strings.EqualFold(warehouses[i].Code, adj.WarehouseCode) {
			warehouse = &warehouses[i]
			break
		}
	}
	if warehouse == nil {
		return nil, fmt.Errorf("unknown warehouse code %q: %w", adj.WarehouseCode, upstream.ErrNotFound)
	}

	unitCost := adj.UnitCost
	if unitCost == 0 {
		unitCost = variant.UnitCost.Float64()
	}
	movement := models.InventoryMovement{
		MovementID:   uuid.NewString(),
		Variant:      hydra.RefTo(variant.VariantID),
		Warehouse:    hydra.RefTo(warehouse.WarehouseID),
		MovementType: adj.MovementType,
		QtyDelta:     hydra.Number(adj.QtyDelta),
		UnitCost:     hydra.Number(unitCost),
		PerformedAt:  time.Now().UTC(),
		SourceDoc:    adj.SourceDoc,
		Note:         adj.Note,
		SKU:          variant.SKU,
		DisplayName:  variant.Name,
	}
	if adj.ActualPrice != nil {
		movement.ActualPrice = hydra.OptionalOf(*adj.ActualPrice)
	}
	if err := s.store.AppendMovement(ctx, movement); err != nil {
		return nil, err
	}
	if err := s.applyToBalance(ctx, variant.VariantID, warehouse.WarehouseID, adj.QtyDelta); err != nil {
		return nil, err
	}
	return &movement, nil
}

// applyToBalance folds a quantity delta into the demo balance projection.
func (s *inventoryService) applyToBalance(ctx context.Context, variantID, warehouseID string, delta float64) error {
	balances, err := s.store.Balances(ctx)
	if err != nil {
		if errors.Is(err, demo.ErrNotSeeded) {
			return nil
		}
		return err
	}
	for i := range balances {
		b := &balances[i]
		if b.Variant.ID() != variantID || b.Warehouse.ID() != warehouseID {
			continue
		}
		b.QtyOnHand = hydra.Number(b.QtyOnHand.Float64() + delta)
		b.QtyAvailable = hydra.Number(b.QtyOnHand.Float64() - b.QtyCommitted.Float64())
		b.StockValue = hydra.Number(b.QtyOnHand.Float64() * b.AvgUnitCost.Float64())
		return s.store.PutBalances(ctx, balances)
	}
	balances = append(balances, models.InventoryBalance{
		BalanceID:    uuid.NewString(),
		Variant:      hydra.RefTo(variantID),
		Warehouse:    hydra.RefTo(warehouseID),
		QtyOnHand:    hydra.Number(delta),
		QtyAvailable: hydra.Number(delta),
	})
	return s.store.PutBalances(ctx, balances)
}

var exportHeader = []string{
	"sku", "name", "family", "size", "color",
	"warehouse_code", "warehouse_name",
	"qty_on_hand", "qty_committed", "qty_in_transit", "qty_available",
	"avg_unit_cost", "stock_value", "reorder_point",
}

// ExportCSV streams the resolved inventory rows as CSV.
func (s *inventoryService) ExportCSV(ctx context.Context, companyID string, filter models.ListFilter, w io.Writer) error {
	listing, err := s.GetInventory(ctx, companyID, filter)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("failed to write export header: %w", err)
	}
	for _, row := range listing.Items {
		reorder := ""
		if row.ReorderPoint != nil {
			reorder = formatQty(*row.ReorderPoint)
		}
		record := []string{
			row.SKU, row.Name, row.FamilyName, row.Size, row.Color,
			row.WarehouseCode, row.WarehouseName,
			formatQty(row.QtyOnHand), formatQty(row.QtyCommitted),
			formatQty(row.QtyInTransit), formatQty(row.QtyAvailable),
			formatQty(row.AvgUnitCost), formatQty(row.StockValue), reorder,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write export row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatQty(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
