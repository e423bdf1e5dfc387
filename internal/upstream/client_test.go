package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omniful/wms-dashboard/internal/auth"
	"github.com/omniful/wms-dashboard/internal/models"
)

const testCompany = "comp-1"

func newTestClient(t *testing.T, handler http.Handler) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, 5*time.Second, auth.Static("tok-test")), srv
}

func TestListVariantsHydraEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/product_variants", r.URL.Path)
		assert.Equal(t, "Bearer tok-test", r.Header.Get("Authorization"))
		assert.Equal(t, testCompany, r.Header.Get(HeaderCompanyID))

		w.Header().Set("Content-Type", "application/ld+json")
		_, _ = w.Write([]byte(`{
			"@context": "/api/contexts/ProductVariant",
			"hydra:member": [
				{"variantId": "var-1", "sku": "TS-RED-M", "unitCost": "3.50", "supplier": "/api/suppliers/sup-1"},
				{"variantId": "var-2", "sku": "TS-BLU-L", "unitCost": 4.25, "supplier": {"supplierId": "sup-2"}}
			],
			"hydra:totalItems": 2
		}`))
	}))

	variants, total, err := client.ListVariants(context.Background(), testCompany, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, variants, 2)

	assert.Equal(t, 3.5, variants[0].UnitCost.Float64())
	assert.Equal(t, "sup-1", variants[0].Supplier.ID())
	assert.Equal(t, "sup-2", variants[1].Supplier.ID())
}

func TestListVariantsPlainEnvelope(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"member": [{"variantId": "var-1", "sku": "A"}], "totalItems": 1}`))
	}))

	variants, total, err := client.ListVariants(context.Background(), testCompany, models.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, variants, 1)
	assert.Equal(t, "A", variants[0].SKU)
}

func TestListFilterQuery(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "tee", r.URL.Query().Get("search"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "50", r.URL.Query().Get("itemsPerPage"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"member": [], "totalItems": 0}`))
	}))

	_, _, err := client.ListVariants(context.Background(), testCompany, models.ListFilter{
		Search: "tee", Page: 2, PageSize: 50,
	})
	require.NoError(t, err)
}

func TestMissingSessionAbortsBeforeSend(t *testing.T) {
	var called bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	client := NewClient(srv.URL, time.Second, auth.Static(""))
	_, _, err := client.ListVariants(context.Background(), testCompany, models.ListFilter{})
	require.ErrorIs(t, err, auth.ErrNoSession)
	assert.False(t, called)
}

func TestMissingCompanyRejected(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	_, _, err := client.ListVariants(context.Background(), "", models.ListFilter{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "company id")
}

func TestStructuredErrorPayload(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/ld+json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{"hydra:title": "An error occurred", "hydra:description": "sku: This value is already used."}`))
	}))

	_, err := client.CreateVariant(context.Background(), testCompany, &models.ProductVariant{SKU: "DUP"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnprocessableEntity, apiErr.Status)
	assert.Equal(t, "sku: This value is already used.", apiErr.Message)
}

func TestHTMLErrorBodyFallback(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html><body>Bad Gateway</body></html>`))
	}))

	_, err := client.GetVariant(context.Background(), testCompany, "var-1")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNotFoundMatchesSentinel(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"detail": "Variant not found"}`))
	}))

	_, err := client.GetVariant(context.Background(), testCompany, "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnexpectedContentType(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html>login page</html>`))
	}))

	_, err := client.GetVariant(context.Background(), testCompany, "var-1")
	assert.ErrorIs(t, err, ErrUnexpectedResponse)
}

func TestAdjustBySKU(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/inventory_movements/by-sku", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{
			"movementId": "mov-1",
			"movementType": "ADJUST",
			"qtyDelta": "-3",
			"variant": "/api/product_variants/var-1"
		}`))
	}))

	created, err := client.AdjustBySKU(context.Background(), testCompany, &models.AdjustmentRequest{
		SKU:           "TS-RED-M",
		WarehouseCode: "MAIN",
		MovementType:  models.MovementAdjust,
		QtyDelta:      -3,
	})
	require.NoError(t, err)
	assert.Equal(t, "mov-1", created.MovementID)
	assert.Equal(t, float64(-3), created.QtyDelta.Float64())
	assert.Equal(t, "var-1", created.Variant.ID())
}

func TestCircuitOpensAfterRepeatedFailures(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"detail": "boom"}`))
	}))

	for i := 0; i < 5; i++ {
		_, err := client.GetVariant(context.Background(), testCompany, "var-1")
		require.Error(t, err)
	}

	_, err := client.GetVariant(context.Background(), testCompany, "var-1")
	assert.ErrorIs(t, err, ErrUnavailable)
}
