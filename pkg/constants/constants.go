package constants

const (
	// Error Messages
	ErrInvalidRequest  = "Invalid request data"
	ErrMissingCompany  = "X-Company-ID header is required"
	ErrInternalServer  = "Internal server error"
	ErrUpstreamDown    = "Warehouse API unavailable"
	ErrRecordNotFound  = "record not found"
	ErrNoActiveSession = "no active session"

	// Pagination defaults
	DefaultPage     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100

	// API Endpoints
	EndpointHealth         = "/health"
	EndpointVariants       = "/api/v1/product-variants"
	EndpointFamilies       = "/api/v1/product-families"
	EndpointSuppliers      = "/api/v1/suppliers"
	EndpointWarehouses     = "/api/v1/warehouses"
	EndpointInventory      = "/api/v1/inventory"
	EndpointPurchaseOrders = "/api/v1/purchase-orders"

	// Service identity
	ServiceName    = "wms-dashboard"
	ServiceVersion = "1.0.0"
)
