package upstream

import (
	"context"
	"net/http"

	"github.com/omniful/wms-dashboard/internal/hydra"
	"github.com/omniful/wms-dashboard/internal/models"
)

// Product variants

func (c *Client) ListVariants(ctx context.Context, companyID string, filter models.ListFilter) ([]models.ProductVariant, int64, error) {
	col, err := c.list(ctx, companyID, "/product_variants", listQuery(filter))
	if err != nil {
		return nil, 0, err
	}
	return hydra.DecodeMembers[models.ProductVariant](col), col.TotalItems, nil
}

func (c *Client) GetVariant(ctx context.Context, companyID, variantID string) (*models.ProductVariant, error) {
	var v models.ProductVariant
	if err := c.doRequest(ctx, companyID, http.MethodGet, "/product_variants/"+variantID, nil, nil, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (c *Client) CreateVariant(ctx context.Context, companyID string, variant *models.ProductVariant) (*models.ProductVariant, error) {
	var created models.ProductVariant
	if err := c.doRequest(ctx, companyID, http.MethodPost, "/product_variants", nil, variant, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateVariant(ctx context.Context, companyID, variantID string, variant *models.ProductVariant) (*models.ProductVariant, error) {
	var updated models.ProductVariant
	if err := c.doRequest(ctx, companyID, http.MethodPut, "/product_variants/"+variantID, nil, variant, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteVariant(ctx context.Context, companyID, variantID string) error {
	return c.doRequest(ctx, companyID, http.MethodDelete, "/product_variants/"+variantID, nil, nil, nil)
}

// Product families

func (c *Client) ListFamilies(ctx context.Context, companyID string, filter models.ListFilter) ([]models.ProductFamily, int64, error) {
	col, err := c.list(ctx, companyID, "/product_families", listQuery(filter))
	if err != nil {
		return nil, 0, err
	}
	return hydra.DecodeMembers[models.ProductFamily](col), col.TotalItems, nil
}

func (c *Client) GetFamily(ctx context.Context, companyID, familyID string) (*models.ProductFamily, error) {
	var f models.ProductFamily
	if err := c.doRequest(ctx, companyID, http.MethodGet, "/product_families/"+familyID, nil, nil, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *Client) CreateFamily(ctx context.Context, companyID string, family *models.ProductFamily) (*models.ProductFamily, error) {
	var created models.ProductFamily
	if err := c.doRequest(ctx, companyID, http.MethodPost, "/product_families", nil, family, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateFamily(ctx context.Context, companyID, familyID string, family *models.ProductFamily) (*models.ProductFamily, error) {
	var updated models.ProductFamily
	if err := c.doRequest(ctx, companyID, http.MethodPut, "/product_families/"+familyID, nil, family, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteFamily(ctx context.Context, companyID, familyID string) error {
	return c.doRequest(ctx, companyID, http.MethodDelete, "/product_families/"+familyID, nil, nil, nil)
}

// Suppliers

func (c *Client) ListSuppliers(ctx context.Context, companyID string, filter models.ListFilter) ([]models.Supplier, int64, error) {
	col, err := c.list(ctx, companyID, "/suppliers", listQuery(filter))
	if err != nil {
		return nil, 0, err
	}
	return hydra.DecodeMembers[models.Supplier](col), col.TotalItems, nil
}

func (c *Client) GetSupplier(ctx context.Context, companyID, supplierID string) (*models.Supplier, error) {
	var s models.Supplier
	if err := c.doRequest(ctx, companyID, http.MethodGet, "/suppliers/"+supplierID, nil, nil, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) CreateSupplier(ctx context.Context, companyID string, supplier *models.Supplier) (*models.Supplier, error) {
	var created models.Supplier
	if err := c.doRequest(ctx, companyID, http.MethodPost, "/suppliers", nil, supplier, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateSupplier(ctx context.Context, companyID, supplierID string, supplier *models.Supplier) (*models.Supplier, error) {
	var updated models.Supplier
	if err := c.doRequest(ctx, companyID, http.MethodPut, "/suppliers/"+supplierID, nil, supplier, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteSupplier(ctx context.Context, companyID, supplierID string) error {
	return c.doRequest(ctx, companyID, http.MethodDelete, "/suppliers/"+supplierID, nil, nil, nil)
}

// Warehouses

func (c *Client) ListWarehouses(ctx context.Context, companyID string, filter models.ListFilter) ([]models.Warehouse, int64, error) {
	col, err := c.list(ctx, companyID, "/warehouses", listQuery(filter))
	if err != nil {
		return nil, 0, err
	}
	return hydra.DecodeMembers[models.Warehouse](col), col.TotalItems, nil
}

func (c *Client) GetWarehouse(ctx context.Context, companyID, warehouseID string) (*models.Warehouse, error) {
	var w models.Warehouse
	if err := c.doRequest(ctx, companyID, http.MethodGet, "/warehouses/"+warehouseID, nil, nil, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (c *Client) CreateWarehouse(ctx context.Context, companyID string, warehouse *models.Warehouse) (*models.Warehouse, error) {
	var created models.Warehouse
	if err := c.doRequest(ctx, companyID, http.MethodPost, "/warehouses", nil, warehouse, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateWarehouse(ctx context.Context, companyID, warehouseID string, warehouse *models.Warehouse) (*models.Warehouse, error) {
	var updated models.Warehouse
	if err := c.doRequest(ctx, companyID, http.MethodPut, "/warehouses/"+warehouseID, nil, warehouse, &updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

func (c *Client) DeleteWarehouse(ctx context.Context, companyID, warehouseID string) error {
	return c.doRequest(ctx, companyID, http.MethodDelete, "/warehouses/"+warehouseID, nil, nil, nil)
}
