package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/omniful/wms-dashboard/internal/demo"
	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/upstream"
)

var validPOStatuses = map[string]bool{
	models.POStatusDraft:     true,
	models.POStatusOpen:      true,
	models.POStatusPartial:   true,
	models.POStatusClosed:    true,
	models.POStatusCancelled: true,
}

type PurchaseOrderService interface {
	List(ctx context.Context, companyID string, filter models.ListFilter) (Listing[models.PurchaseOrder], error)
	Get(ctx context.Context, companyID, orderID string) (*models.PurchaseOrder, error)
	Create(ctx context.Context, companyID string, order *models.PurchaseOrder) (*models.PurchaseOrder, error)
	Update(ctx context.Context, companyID, orderID string, order *models.PurchaseOrder) (*models.PurchaseOrder, error)
	Delete(ctx context.Context, companyID, orderID string) error
}

type purchaseOrderService struct {
	api   *upstream.Client
	store *demo.Store
	opts  Options
}

func NewPurchaseOrderService(api *upstream.Client, store *demo.Store, opts Options) PurchaseOrderService {
	return &purchaseOrderService{api: api, store: store, opts: opts}
}

func (s *purchaseOrderService) List(ctx context.Context, companyID string, filter models.ListFilter) (Listing[models.PurchaseOrder], error) {
	if s.opts.DevMode {
		items, err := s.store.PurchaseOrders(ctx)
		if err != nil {
			return Listing[models.PurchaseOrder]{}, err
		}
		return demoListing(items), nil
	}

	items, total, err := s.api.ListPurchaseOrders(ctx, companyID, filter)
	if err != nil {
		if s.opts.shouldFallBack(err) {
			if demoItems, demoErr := s.store.PurchaseOrders(ctx); demoErr == nil {
				logFallback("purchase orders", err)
				return demoListing(demoItems), nil
			}
		}
		return Listing[models.PurchaseOrder]{}, fmt.Errorf("failed to list purchase orders: %w", err)
	}
	return liveListing(items, total), nil
}

func (s *purchaseOrderService) Get(ctx context.Context, companyID, orderID string) (*models.PurchaseOrder, error) {
	if s.opts.DevMode {
		items, err := s.store.PurchaseOrders(ctx)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].PurchaseOrderID == orderID {
				return &items[i], nil
			}
		}
		return nil, upstream.ErrNotFound
	}
	return s.api.GetPurchaseOrder(ctx, companyID, orderID)
}

func (s *purchaseOrderService) Create(ctx context.Context, companyID string, order *models.PurchaseOrder) (*models.PurchaseOrder, error) {
	if order.Supplier.IsZero() {
		return nil, errors.New("supplier is required")
	}
	if len(order.Lines) == 0 {
		return nil, errors.New("at least one order line is required")
	}
	if order.Status == "" {
		order.Status = models.POStatusDraft
	}
	if !validPOStatuses[order.Status] {
		return nil, fmt.Errorf("invalid purchase order status %q", order.Status)
	}
	if order.OrderDate.IsZero() {
		order.OrderDate = time.Now().UTC()
	}

	if s.opts.DevMode {
		items, err := s.store.PurchaseOrders(ctx)
		if err != nil && !errors.Is(err, demo.ErrNotSeeded) {
			return nil, err
		}
		order.PurchaseOrderID = uuid.NewString()
		if order.OrderNumber == "" {
			order.OrderNumber = fmt.Sprintf("PO-%s-%04d", order.OrderDate.Format("2006"), len(items)+1)
		}
		if err := s.store.PutPurchaseOrders(ctx, append(items, *order)); err != nil {
			return nil, err
		}
		return order, nil
	}
	return s.api.CreatePurchaseOrder(ctx, companyID, order)
}

func (s *purchaseOrderService) Update(ctx context.Context, companyID, orderID string, order *models.PurchaseOrder) (*models.PurchaseOrder, error) {
	if order.Status != "" && !validPOStatuses[order.Status] {
		return nil, fmt.Errorf("invalid purchase order status %q", order.Status)
	}

	if s.opts.DevMode {
		items, err := s.store.PurchaseOrders(ctx)
		if err != nil {
			return nil, err
		}
		for i := range items {
			if items[i].PurchaseOrderID == orderID {
				order.PurchaseOrderID = orderID
				items[i] = *order
				if err := s.store.PutPurchaseOrders(ctx, items); err != nil {
					return nil, err
				}
				return order, nil
			}
		}
		return nil, upstream.ErrNotFound
	}
	return s.api.UpdatePurchaseOrder(ctx, companyID, orderID, order)
}

// Delete removes an order; only drafts may be deleted, matching the backend
// rule so dev mode behaves like live.
func (s *purchaseOrderService) Delete(ctx context.Context, companyID, orderID string) error {
	if s.opts.DevMode {
		items, err := s.store.PurchaseOrders(ctx)
		if err != nil {
			return err
		}
		kept := items[:0]
		found := false
		for _, po := range items {
			if po.PurchaseOrderID == orderID {
				if po.Status != models.POStatusDraft {
					return fmt.Errorf("cannot delete purchase order in status %s", po.Status)
				}
				found = true
				continue
			}
			kept = append(kept, po)
		}
		if !found {
			return upstream.ErrNotFound
		}
		return s.store.PutPurchaseOrders(ctx, kept)
	}
	return s.api.DeletePurchaseOrder(ctx, companyID, orderID)
}
