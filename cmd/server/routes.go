package main

import (
	"github.com/gin-gonic/gin"

	"github.com/omniful/wms-dashboard/internal/api/handlers"
	"github.com/omniful/wms-dashboard/internal/cache"
	"github.com/omniful/wms-dashboard/internal/demo"
	"github.com/omniful/wms-dashboard/internal/service"
	"github.com/omniful/wms-dashboard/internal/upstream"
)

// setupRoutes wires the services and registers every /api/v1 route group.
func setupRoutes(router *gin.RouterGroup, api *upstream.Client, store *demo.Store, lookup *cache.Cache, opts service.Options) {
	// Initialize services
	variantService := service.NewVariantService(api, store, lookup, opts)
	familyService := service.NewFamilyService(api, store, lookup, opts)
	supplierService := service.NewSupplierService(api, store, opts)
	warehouseService := service.NewWarehouseService(api, store, lookup, opts)
	purchaseOrderService := service.NewPurchaseOrderService(api, store, opts)
	inventoryService := service.NewInventoryService(api, store, lookup, opts)

	// Initialize handlers
	variantHandler := handlers.NewVariantHandler(variantService)
	familyHandler := handlers.NewFamilyHandler(familyService)
	supplierHandler := handlers.NewSupplierHandler(supplierService)
	warehouseHandler := handlers.NewWarehouseHandler(warehouseService)
	purchaseOrderHandler := handlers.NewPurchaseOrderHandler(purchaseOrderService)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)

	// Register routes
	variantHandler.RegisterRoutes(router)
	familyHandler.RegisterRoutes(router)
	supplierHandler.RegisterRoutes(router)
	warehouseHandler.RegisterRoutes(router)
	purchaseOrderHandler.RegisterRoutes(router)
	inventoryHandler.RegisterRoutes(router)
}
