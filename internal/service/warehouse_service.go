package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/omniful/wms-dashboard/internal/cache"
	"github.com/omniful/wms-dashboard/internal/demo"
	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/upstream"
)

type WarehouseService interface {
	List(ctx context.Context, companyID string, filter models.ListFilter) (Listing[models.Warehouse], error)
	Get(ctx context.Context, companyID, warehouseID string) (*models.Warehouse, error)
	Create(ctx context.Context, companyID string, warehouse *models.Warehouse) (*models.Warehouse, error)
	Update(ctx context.Context, companyID, warehouseID string, warehouse *models.Warehouse) (*models.Warehouse, error)
	Delete(ctx context.Context, companyID, warehouseID string) error
}

type warehouseService struct {
	api    *upstream.Client
	store  *demo.Store
	lookup *cache.Cache
	opts   Options
}

func NewWarehouseService(api *upstream.Client, store *demo.Store, lookup *cache.Cache, opts Options) WarehouseService {
	return &warehouseService{api: api, store: store, lookup: lookup, opts: opts}
}

func (s *warehouseService) List(ctx context.Context, companyID string, filter models.ListFilter) (Listing[models.Warehouse], error) {
	if s.opts.DevMode {
		items, err := s.store.Warehouses(ctx)
		if err != nil {
			return Listing[models.Warehouse]{}, err
		}
		return demoListing(items), nil
	}

	items, total, err := s.api.ListWarehouses(ctx, companyID, filter)
	if err != nil {
		if s.opts.shouldFallBack(err) {
			if demoItems, demoErr := s.store.Warehouses(ctx); demoErr == nil {
				logFallback("warehouses", err)
				return demoListing(demoItems), nil
			}
		}
		return Listing[models.Warehouse]{}, fmt.Errorf("failed to list warehouses: %w", err)
	}
	return liveListing(items, total), nil
}

func (s *warehouseService) Get(ctx context.Context, companyID, warehouseID string) (*models.Warehouse, error) {
	if s.opts.DevMode {
		items, err := s.store.Warehouses(ctx)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].WarehouseID == warehouseID {
				return &items[i], nil
			}
		}
		return nil, upstream.ErrNotFound
	}
	return s.api.GetWarehouse(ctx, companyID, warehouseID)
}

func (s *warehouseService) Create(ctx context.Context, companyID string, warehouse *models.Warehouse) (*models.Warehouse, error) {
	if warehouse.Code == "" || warehouse.Name == "" {
		return nil, errors.New("warehouse code and name are required")
	}
	warehouse.Code = strings.ToUpper(warehouse.Code)

	if s.opts.DevMode {
		items, err := s.store.Warehouses(ctx)
		if err != nil && !errors.Is(err, demo.ErrNotSeeded) {
			return nil, err
		}
		for _, existing := range items {
			if existing.Code == warehouse.Code {
				return nil, fmt.Errorf("warehouse with code %s already exists", warehouse.Code)
			}
		}
		warehouse.WarehouseID = uuid.NewString()
		if err := s.store.PutWarehouses(ctx, append(items, *warehouse)); err != nil {
			return nil, err
		}
		return warehouse, nil
	}

	created, err := s.api.CreateWarehouse(ctx, companyID, warehouse)
	if err != nil {
		return nil, err
	}
	s.lookup.Invalidate(ctx, cache.KeyWarehousesPrefix+companyID)
	return created, nil
}

func (s *warehouseService) Update(ctx context.Context, companyID, warehouseID string, warehouse *models.Warehouse) (*models.Warehouse, error) {
	if warehouse.Code != "" {
		warehouse.Code = strings.ToUpper(warehouse.Code)
	}

	if s.opts.DevMode {
		items, err := s.store.Warehouses(ctx)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].WarehouseID == warehouseID {
				warehouse.WarehouseID = warehouseID
				items[i] = *warehouse
				if err := s.store.PutWarehouses(ctx, items); err != nil {
					return nil, err
				}
				return warehouse, nil
			}
		}
		return nil, upstream.ErrNotFound
	}

	updated, err := s.api.UpdateWarehouse(ctx, companyID, warehouseID, warehouse)
	if err != nil {
		return nil, err
	}
	s.lookup.Invalidate(ctx, cache.KeyWarehousesPrefix+companyID)
	return updated, nil
}

func (s *warehouseService) Delete(ctx context.Context, companyID, warehouseID string) error {
	if s.opts.DevMode {
		items, err := s.store.Warehouses(ctx)
		if err != nil {
			return err
		}
		kept := items[:0]
		found := false
		for _, w := range items {
			if w.WarehouseID == warehouseID {
				found = true
				continue
			}
			kept = append(kept, w)
		}
		if !found {
			return upstream.ErrNotFound
		}
		return s.store.PutWarehouses(ctx, kept)
	}

	if err := s.api.DeleteWarehouse(ctx, companyID, warehouseID); err != nil {
		return err
	}
	s.lookup.Invalidate(ctx, cache.KeyWarehousesPrefix+companyID)
	return nil
}
