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

var validVariantTypes = map[string]bool{
	models.VariantTypeSize:      true,
	models.VariantTypeColor:     true,
	models.VariantTypeSizeColor: true,
	models.VariantTypeOther:     true,
}

type FamilyService interface {
	List(ctx context.Context, companyID string, filter models.ListFilter) (Listing[models.ProductFamily], error)
	Create(ctx context.Context, companyID string, family *models.ProductFamily) (*models.ProductFamily, error)
	Update(ctx context.Context, companyID, familyID string, family *models.ProductFamily) (*models.ProductFamily, error)
	Delete(ctx context.Context, companyID, familyID string) error
}

type familyService struct {
	api    *upstream.Client
	store  *demo.Store
	lookup *cache.Cache
	opts   Options
}

func NewFamilyService(api *upstream.Client, store *demo.Store, lookup *cache.Cache, opts Options) FamilyService {
	return &familyService{api: api, store: store, lookup: lookup, opts: opts}
}

func (s *familyService) List(ctx context.Context, companyID string, filter models.ListFilter) (Listing[models.ProductFamily], error) {
	if s.opts.DevMode {
		items, err := s.store.Families(ctx)
		if err != nil {
			return Listing[models.ProductFamily]{}, err
		}
		return demoListing(items), nil
	}

	items, total, err := s.api.ListFamilies(ctx, companyID, filter)
	if err != nil {
		if s.opts.shouldFallBack(err) {
			if demoItems, demoErr := s.store.Families(ctx); demoErr == nil {
				logFallback("product families", err)
				return demoListing(demoItems), nil
			}
		}
		return Listing[models.ProductFamily]{}, fmt.Errorf("failed to list product families: %w", err)
	}
	return liveListing(items, total), nil
}

func (s *familyService) Create(ctx context.Context, companyID string, family *models.ProductFamily) (*models.ProductFamily, error) {
	if family.FamilyName == "" {
		return nil, errors.New("family name is required")
	}
	if !validVariantTypes[family.VariantType] {
		return nil, fmt.Errorf("invalid variant type %q", family.VariantType)
	}

	if s.opts.DevMode {
		items, err := s.store.Families(ctx)
		if err != nil && !errors.Is(err, demo.ErrNotSeeded) {
			return nil, err
		}
		family.ProductFamilyID = uuid.NewString()
		if err := s.store.PutFamilies(ctx, append(items, *family)); err != nil {
			return nil, err
		}
		return family, nil
	}

	created, err := s.api.CreateFamily(ctx, companyID, family)
	if err != nil {
		return nil, err
	}
	s.lookup.Invalidate(ctx, cache.KeyFamiliesPrefix+companyID)
	return created, nil
}

func (s *familyService) Update(ctx context.Context, companyID, familyID string, family *models.ProductFamily) (*models.ProductFamily, error) {
	if family.VariantType != "" && !validVariantTypes[family.VariantType] {
		return nil, fmt.Errorf("invalid variant type %q", family.VariantType)
	}

	if s.opts.DevMode {
		items, err := s.store.Families(ctx)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].ProductFamilyID == familyID {
				family.ProductFamilyID = familyID
				items[i] = *family
				if err := s.store.PutFamilies(ctx, items); err != nil {
					return nil, err
				}
				return family, nil
			}
		}
		return nil, upstream.ErrNotFound
	}

	updated, err := s.api.UpdateFamily(ctx, companyID, familyID, family)
	if err != nil {
		return nil, err
	}
	s.lookup.Invalidate(ctx, cache.KeyFamiliesPrefix+companyID)
	return updated, nil
}

func (s *familyService) Delete(ctx context.Context, companyID, familyID string) error {
	if s.opts.DevMode {
		items, err := s.store.Families(ctx)
		if err != nil {
			return err
		}
		kept := items[:0]
		found := false
		for _, f := range items {
			if f.ProductFamilyID == familyID {
				found = true
				continue
			}
			kept = append(kept, f)
		}
		if !found {
			return upstream.ErrNotFound
		}
		return s.store.PutFamilies(ctx, kept)
	}

	if err := s.api.DeleteFamily(ctx, companyID, familyID); err != nil {
		return err
	}
	s.lookup.Invalidate(ctx, cache.KeyFamiliesPrefix+companyID)
	return nil
}
