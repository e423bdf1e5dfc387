package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/omniful/wms-dashboard/internal/demo"
	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/upstream"
)

var validSupplierStatuses = map[string]bool{
	models.SupplierStatusActive:   true,
	models.SupplierStatusInactive: true,
	models.SupplierStatusTrial:    true,
}

type SupplierService interface {
	List(ctx context.Context, companyID string, filter models.ListFilter) (Listing[models.Supplier], error)
	Get(ctx context.Context, companyID, supplierID string) (*models.Supplier, error)
	Create(ctx context.Context, companyID string, supplier *models.Supplier) (*models.Supplier, error)
	Update(ctx context.Context, companyID, supplierID string, supplier *models.Supplier) (*models.Supplier, error)
	Delete(ctx context.Context, companyID, supplierID string) error
}

type supplierService struct {
	api   *upstream.Client
	store *demo.Store
	opts  Options
}

func NewSupplierService(api *upstream.Client, store *demo.Store, opts Options) SupplierService {
	return &supplierService{api: api, store: store, opts: opts}
}

func (s *supplierService) List(ctx context.Context, companyID string, filter models.ListFilter) (Listing[models.Supplier], error) {
	if s.opts.DevMode {
		items, err := s.store.Suppliers(ctx)
		if err != nil {
			return Listing[models.Supplier]{}, err
		}
		return demoListing(items), nil
	}

	items, total, err := s.api.ListSuppliers(ctx, companyID, filter)
	if err != nil {
		if s.opts.shouldFallBack(err) {
			if demoItems, demoErr := s.store.Suppliers(ctx); demoErr == nil {
				logFallback("suppliers", err)
				return demoListing(demoItems), nil
			}
		}
		return Listing[models.Supplier]{}, fmt.Errorf("failed to list suppliers: %w", err)
	}
	return liveListing(items, total), nil
}

func (s *supplierService) Get(ctx context.Context, companyID, supplierID string) (*models.Supplier, error) {
	if s.opts.DevMode {
		items, err := s.store.Suppliers(ctx)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].SupplierID == supplierID {
				return &items[i], nil
			}
		}
		return nil, upstream.ErrNotFound
	}
	return s.api.GetSupplier(ctx, companyID, supplierID)
}

func (s *supplierService) Create(ctx context.Context, companyID string, supplier *models.Supplier) (*models.Supplier, error) {
	if supplier.Name == "" {
		return nil, errors.New("supplier name is required")
	}
	if supplier.Status == "" {
		supplier.Status = models.SupplierStatusActive
	}
	if !validSupplierStatuses[supplier.Status] {
		return nil, fmt.Errorf("invalid supplier status %q", supplier.Status)
	}

	if s.opts.DevMode {
		items, err := s.store.Suppliers(ctx)
		if err != nil && !errors.Is(err, demo.ErrNotSeeded) {
			return nil, err
		}
		supplier.SupplierID = uuid.NewString()
		if err := s.store.PutSuppliers(ctx, append(items, *supplier)); err != nil {
			return nil, err
		}
		return supplier, nil
	}
	return s.api.CreateSupplier(ctx, companyID, supplier)
}

func (s *supplierService) Update(ctx context.Context, companyID, supplierID string, supplier *models.Supplier) (*models.Supplier, error) {
	if supplier.Status != "" && !validSupplierStatuses[supplier.Status] {
		return nil, fmt.Errorf("invalid supplier status %q", supplier.Status)
	}

	if s.opts.DevMode {
		items, err := s.store.Suppliers(ctx)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].SupplierID == supplierID {
				supplier.SupplierID = supplierID
				items[i] = *supplier
				if err := s.store.PutSuppliers(ctx, items); err != nil {
					return nil, err
				}
				return supplier, nil
			}
		}
		return nil, upstream.ErrNotFound
	}
	return s.api.UpdateSupplier(ctx, companyID, supplierID, supplier)
}

func (s *supplierService) Delete(ctx context.Context, companyID, supplierID string) error {
	if s.opts.DevMode {
		items, err := s.store.Suppliers(ctx)
		if err != nil {
			return err
		}
		kept := items[:0]
		found := false
		for _, sup := range items {
			if sup.SupplierID == supplierID {
				found = true
				continue
			}
			kept = append(kept, sup)
		}
		if !found {
			return upstream.ErrNotFound
		}
		return s.store.PutSuppliers(ctx, kept)
	}
	return s.api.DeleteSupplier(ctx, companyID, supplierID)
}
