package upstream

import (
	"context"
	"net/http"

	"github.com/omniful/wms-dashboard/internal/hydra"
	"github.com/omniful/wms-dashboard/internal/models"
)

func (c *Client) ListPurchaseOrders(ctx context.Context, companyID string, filter models.ListFilter) ([]models.PurchaseOrder, int64, error) {
	col, err := c.list(ctx, companyID, "/purchase_orders", listQuery(filter))
	if err != nil {
		return nil, 0, err
	}
	return hydra.DecodeMembers[models.PurchaseOrder](col), col.TotalItems, nil
}

func (c *Client) GetPurchaseOrder(ctx context.Context, companyID, orderID string) (*models.PurchaseOrder, error) {
	var po models.PurchaseOrder
	if err := c.doRequest(ctx, companyID, http.MethodGet, "/purchase_orders/"+orderID, nil, nil, &po); err != nil {
		return nil, err
	}
	return &po, nil
}

func (c *Client) CreatePurchaseOrder(ctx context.Context, companyID string, order *models.PurchaseOrder) (*models.PurchaseOrder, error) {
	var created models.PurchaseOrder
	if err := c.doRequest(ctx, companyID, http.MethodPost, "/purchase_orders", nil, order, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdatePurchaseOrder(ctx context.Context, companyID, orderID string, order *models.PurchaseOrder) (*models.PurchaseOrder, error) {
	var updated models.PurchaseOrder
	if err := c.doRequest(ctx, companyID, http.MethodPut, "/purchase_orders/"+orderID, nil, order, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeletePurchaseOrder removes a draft order. The backend rejects deletes on
// orders past DRAFT; that surfaces as a plain APIError.
func (c *Client) DeletePurchaseOrder(ctx context.Context, companyID, orderID string) error {
	return c.doRequest(ctx, companyID, http.MethodDelete, "/purchase_orders/"+orderID, nil, nil, nil)
}
