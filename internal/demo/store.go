// Package demo is the local fixture store backing dev mode and the opt-in
// degraded fallback. Each entity collection lives under one fixed redis key
// as a JSON blob, mirroring how the dashboard previously kept demo datasets
// in browser local storage.
package demo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/go-redis/redis/v8"

	"github.com/omniful/wms-dashboard/internal/models"
)

// Fixed storage keys, one per entity type.
const (
	KeyVariants       = "demo:product_variants"
	KeyFamilies       = "demo:product_families"
	KeySuppliers      = "demo:suppliers"
	KeyWarehouses     = "demo:warehouses"
	KeyBalances       = "demo:inventory_balances"
	KeyMovements      = "demo:inventory_movements"
	KeyPurchaseOrders = "demo:purchase_orders"
)

// ErrNotSeeded is returned when a demo dataset key is missing.
var ErrNotSeeded = errors.New("demo dataset not seeded")

// Store reads and writes demo datasets.
type Store struct {
	rdb *redis.Client
}

// NewStore wraps a redis client.
func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func getList[T any](ctx context.Context, rdb *redis.Client, key string) ([]T, error) {
	raw, err := rdb.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("%w: %s", ErrNotSeeded, key)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read demo dataset %s: %w", key, err)
	}
	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("corrupt demo dataset %s: %w", key, err)
	}
	return items, nil
}

func putList[T any](ctx context.Context, rdb *redis.Client, key string, items []T) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to marshal demo dataset %s: %w", key, err)
	}
	if err := rdb.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write demo dataset %s: %w", key, err)
	}
	return nil
}

func (s *Store) Variants(ctx context.Context) ([]models.ProductVariant, error) {
	return getList[models.ProductVariant](ctx, s.rdb, KeyVariants)
}

func (s *Store) PutVariants(ctx context.Context, items []models.ProductVariant) error {
	return putList(ctx, s.rdb, KeyVariants, items)
}

func (s *Store) Families(ctx context.Context) ([]models.ProductFamily, error) {
	return getList[models.ProductFamily](ctx, s.rdb, KeyFamilies)
}

func (s *Store) PutFamilies(ctx context.Context, items []models.ProductFamily) error {
	return putList(ctx, s.rdb, KeyFamilies, items)
}

func (s *Store) Suppliers(ctx context.Context) ([]models.Supplier, error) {
	return getList[models.Supplier](ctx, s.rdb, KeySuppliers)
}

func (s *Store) PutSuppliers(ctx context.Context, items []models.Supplier) error {
	return putList(ctx, s.rdb, KeySuppliers, items)
}

func (s *Store) Warehouses(ctx context.Context) ([]models.Warehouse, error) {
	return getList[models.Warehouse](ctx, s.rdb, KeyWarehouses)
}

func (s *Store) PutWarehouses(ctx context.Context, items []models.Warehouse) error {
	return putList(ctx, s.rdb, KeyWarehouses, items)
}

func (s *Store) Balances(ctx context.Context) ([]models.InventoryBalance, error) {
	return getList[models.InventoryBalance](ctx, s.rdb, KeyBalances)
}

func (s *Store) PutBalances(ctx context.Context, items []models.InventoryBalance) error {
	return putList(ctx, s.rdb, KeyBalances, items)
}

func (s *Store) Movements(ctx context.Context) ([]models.InventoryMovement, error) {
	return getList[models.InventoryMovement](ctx, s.rdb, KeyMovements)
}

func (s *Store) PutMovements(ctx context.Context, items []models.InventoryMovement) error {
	return putList(ctx, s.rdb, KeyMovements, items)
}

// AppendMovement prepends a ledger entry; the ledger itself stays
// append-only, newest first.
func (s *Store) AppendMovement(ctx context.Context, m models.InventoryMovement) error {
	existing, err := s.Movements(ctx)
	if err != nil && !errors.Is(err, ErrNotSeeded) {
		return err
	}
	return s.PutMovements(ctx, append([]models.InventoryMovement{m}, existing...))
}

func (s *Store) PurchaseOrders(ctx context.Context) ([]models.PurchaseOrder, error) {
	return getList[models.PurchaseOrder](ctx, s.rdb, KeyPurchaseOrders)
}

func (s *Store) PutPurchaseOrders(ctx context.Context, items []models.PurchaseOrder) error {
	return putList(ctx, s.rdb, KeyPurchaseOrders, items)
}
