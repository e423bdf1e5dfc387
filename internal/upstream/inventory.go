package upstream

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/omniful/wms-dashboard/internal/hydra"
	"github.com/omniful/wms-dashboard/internal/models"
)

// ListBalances fetches the (variant, warehouse) snapshots. Balances are a
// server-side projection over movements and cannot be created here.
func (c *Client) ListBalances(ctx context.Context, companyID string, filter models.ListFilter) ([]models.InventoryBalance, int64, error) {
	col, err := c.list(ctx, companyID, "/inventory_balances", listQuery(filter))
	if err != nil {
		return nil, 0, err
	}
	return hydra.DecodeMembers[models.InventoryBalance](col), col.TotalItems, nil
}

// ListMovements fetches ledger entries, newest first.
func (c *Client) ListMovements(ctx context.Context, companyID string, filter models.MovementFilter) ([]models.InventoryMovement, int64, error) {
	q := url.Values{}
	if filter.VariantID != "" {
		q.Set("variant", filter.VariantID)
	}
	if filter.WarehouseID != "" {
		q.Set("warehouse", filter.WarehouseID)
	}
	if filter.MovementType != "" {
		q.Set("movementType", filter.MovementType)
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		q.Set("itemsPerPage", strconv.Itoa(filter.PageSize))
	}

	col, err := c.list(ctx, companyID, "/inventory_movements", q)
	if err != nil {
		return nil, 0, err
	}
	return hydra.DecodeMembers[models.InventoryMovement](col), col.TotalItems, nil
}

// CreateMovement appends a ledger entry against opaque variant/warehouse ids.
func (c *Client) CreateMovement(ctx context.Context, companyID string, movement *models.InventoryMovement) (*models.InventoryMovement, error) {
	var created models.InventoryMovement
	if err := c.doRequest(ctx, companyID, http.MethodPost, "/inventory_movements", nil, movement, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

// AdjustBySKU appends a ledger entry through the convenience endpoint keyed
// by SKU and warehouse code rather than opaque ids.
func (c *Client) AdjustBySKU(ctx context.Context, companyID string, adj *models.AdjustmentRequest) (*models.InventoryMovement, error) {
	var created models.InventoryMovement
	if err := c.doRequest(ctx, companyID, http.MethodPost, "/inventory_movements/by-sku", nil, adj, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
