package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/omniful/wms-dashboard/internal/cache"
	"github.com/omniful/wms-dashboard/internal/demo"
	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/upstream"
)

type VariantService interface {
	List(ctx context.Context, companyID string, filter models.ListFilter) (Listing[models.ProductVariant], error)
	Get(ctx context.Context, companyID, variantID string) (*models.ProductVariant, error)
	Create(ctx context.Context, companyID string, variant *models.ProductVariant) (*models.ProductVariant, error)
	Update(ctx context.Context, companyID, variantID string, variant *models.ProductVariant) (*models.ProductVariant, error)
	Delete(ctx context.Context, companyID, variantID string) error
}

type variantService struct {
	api    *upstream.Client
	store  *demo.Store
	lookup *cache.Cache
	opts   Options
}

func NewVariantService(api *upstream.Client, store *demo.Store, lookup *cache.Cache, opts Options) VariantService {
	return &variantService{api: api, store: store, lookup: lookup, opts: opts}
}

func (s *variantService) List(ctx context.Context, companyID string, filter models.ListFilter) (Listing[models.ProductVariant], error) {
	if s.opts.DevMode {
		items, err := s.store.Variants(ctx)
		if err != nil {
			return Listing[models.ProductVariant]{}, err
		}
		return demoListing(items), nil
	}

	items, total, err := s.api.ListVariants(ctx, companyID, filter)
	if err != nil {
		if s.opts.shouldFallBack(err) {
			if demoItems, demoErr := s.store.Variants(ctx); demoErr == nil {
				logFallback("product variants", err)
				return demoListing(demoItems), nil
			}
		}
		return Listing[models.ProductVariant]{}, fmt.Errorf("failed to list product variants: %w", err)
	}
	return liveListing(items, total), nil
}

func (s *variantService) Get(ctx context.Context, companyID, variantID string) (*models.ProductVariant, error) {
	if s.opts.DevMode {
		items, err := s.store.Variants(ctx)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].VariantID == variantID {
				return &items[i], nil
			}
		}
		return nil, upstream.ErrNotFound
	}
	return s.api.GetVariant(ctx, companyID, variantID)
}

func (s *variantService) Create(ctx context.Context, companyID string, variant *models.ProductVariant) (*models.ProductVariant, error) {
	if variant.SKU == "" {
		return nil, errors.New("sku is required")
	}
	if variant.Name == "" {
		return nil, errors.New("name is required")
	}

	if s.opts.DevMode {
		items, err := s.store.Variants(ctx)
		if err != nil && !errors.Is(err, demo.ErrNotSeeded) {
			return nil, err
		}
		for _, existing := range items {
			if existing.SKU == variant.SKU {
				return nil, fmt.Errorf("variant with SKU %s already exists", variant.SKU)
			}
		}
		variant.VariantID = uuid.NewString()
		if err := s.store.PutVariants(ctx, append(items, *variant)); err != nil {
			return nil, err
		}
		return variant, nil
	}

	created, err := s.api.CreateVariant(ctx, companyID, variant)
	if err != nil {
		return nil, err
	}
	s.lookup.Invalidate(ctx, cache.KeyVariantsPrefix+companyID)
	return created, nil
}

func (s *variantService) Update(ctx context.Context, companyID, variantID string, variant *models.ProductVariant) (*models.ProductVariant, error) {
	if s.opts.DevMode {
		items, err := s.store.Variants(ctx)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].VariantID == variantID {
				variant.VariantID = variantID
				items[i] = *variant
				if err := s.store.PutVariants(ctx, items); err != nil {
					return nil, err
				}
				return variant, nil
			}
		}
		return nil, upstream.ErrNotFound
	}

	updated, err := s.api.UpdateVariant(ctx, companyID, variantID, variant)
	if err != nil {
		return nil, err
	}
	s.lookup.Invalidate(ctx, cache.KeyVariantsPrefix+companyID)
	return updated, nil
}

func (s *variantService) Delete(ctx context.Context, companyID, variantID string) error {
	if s.opts.DevMode {
		items, err := s.store.Variants(ctx)
		if err != nil {
			return err
		}
		kept := items[:0]
		found := false
		for _, v := range items {
			if v.VariantID == variantID {
				found = true
				continue
			}
			kept = append(kept, v)
		}
		if !found {
			return upstream.ErrNotFound
		}
		return s.store.PutVariants(ctx, kept)
	}

	if err := s.api.DeleteVariant(ctx, companyID, variantID); err != nil {
		return err
	}
	s.lookup.Invalidate(ctx, cache.KeyVariantsPrefix+companyID)
	return nil
}
