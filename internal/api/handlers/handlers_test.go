package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniful/wms-dashboard/internal/demo"
	"github.com/omniful/wms-dashboard/internal/service"
	"github.com/omniful/wms-dashboard/internal/upstream"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	store := demo.NewStore(redis.NewClient(&redis.Options{Addr: mr.Addr()}))
	require.NoError(t, store.Seed(context.Background()))

	opts := service.Options{DevMode: true}
	router := gin.New()
	api := router.Group("/api/v1")

	NewVariantHandler(service.NewVariantService(nil, store, nil, opts)).RegisterRoutes(api)
	NewFamilyHandler(service.NewFamilyService(nil, store, nil, opts)).RegisterRoutes(api)
	NewSupplierHandler(service.NewSupplierService(nil, store, opts)).RegisterRoutes(api)
	NewWarehouseHandler(service.NewWarehouseService(nil, store, nil, opts)).RegisterRoutes(api)
	NewPurchaseOrderHandler(service.NewPurchaseOrderService(nil, store, opts)).RegisterRoutes(api)
	NewInventoryHandler(service.NewInventoryService(nil, store, nil, opts)).RegisterRoutes(api)
	return router
}

func doRequest(router *gin.Engine, method, path, companyID, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if companyID != "" {
		req.Header.Set(upstream.HeaderCompanyID, companyID)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestMissingCompanyHeader(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/product-variants", "", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "X-Company-ID")
}

func TestListVariantsMarksDemoSource(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/product-variants", demo.DemoCompanyID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, service.SourceDemo, w.Header().Get(HeaderDataSource))

	var resp struct {
		Data       []json.RawMessage `json:"data"`
		Source     string            `json:"source"`
		Pagination struct {
			Total int `json:"total"`
		} `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, service.SourceDemo, resp.Source)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, 3, resp.Pagination.Total)
}

func TestCreateVariantValidation(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/product-variants", demo.DemoCompanyID,
		`{"name":"No SKU"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVariantCRUD(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/product-variants", demo.DemoCompanyID,
		`{"sku":"NEW-01","name":"New Thing","unitCost":"2.50"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		VariantID string `json:"variantId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotEmpty(t, created.VariantID)

	w = doRequest(router, http.MethodGet, "/api/v1/product-variants/"+created.VariantID, demo.DemoCompanyID, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(router, http.MethodDelete, "/api/v1/product-variants/"+created.VariantID, demo.DemoCompanyID, "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doRequest(router, http.MethodGet, "/api/v1/product-variants/"+created.VariantID, demo.DemoCompanyID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetPurchaseOrderNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/purchase-orders/po-nope", demo.DemoCompanyID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetInventory(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/inventory", demo.DemoCompanyID, "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			SKU         string `json:"sku"`
			Placeholder bool   `json:"placeholder"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 3)
}

func TestAdjustInvalidMovementType(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/inventory/adjust", demo.DemoCompanyID,
		`{"sku":"TS-RED-M","warehouseCode":"MAIN","movementType":"BOGUS","qtyDelta":5}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdjustLowercasesAccepted(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodPost, "/api/v1/inventory/adjust", demo.DemoCompanyID,
		`{"sku":"TS-RED-M","warehouseCode":"MAIN","movementType":"count","qtyDelta":5}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"COUNT"`)
}

func TestListMovementsInvalidTypeFilter(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/inventory/movements?movement_type=bogus", demo.DemoCompanyID, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExportCSV(t *testing.T) {
	router := newTestRouter(t)

	w := doRequest(router, http.MethodGet, "/api/v1/inventory/export", demo.DemoCompanyID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/csv", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.True(t, strings.HasPrefix(w.Body.String(), "sku,name,family"))
}
