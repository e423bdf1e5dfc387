package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/service"
	"github.com/omniful/wms-dashboard/pkg/constants"
)

type WarehouseHandler struct {
	service service.WarehouseService
}

func NewWarehouseHandler(service service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{service: service}
}

func (h *WarehouseHandler) RegisterRoutes(r *gin.RouterGroup) {
	warehouses := r.Group("/warehouses")
	warehouses.GET("", h.ListWarehouses)
	warehouses.POST("", h.CreateWarehouse)
	warehouses.GET("/:id", h.GetWarehouse)
	warehouses.PUT("/:id", h.UpdateWarehouse)
	warehouses.DELETE("/:id", h.DeleteWarehouse)
}

func (h *WarehouseHandler) ListWarehouses(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}
	filter := getListFilter(c)

	listing, err := h.service.List(c.Request.Context(), companyID, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	writeListing(c, listing, filter.Page, filter.PageSize)
}

func (h *WarehouseHandler) GetWarehouse(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	warehouse, err := h.service.Get(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, warehouse)
}

func (h *WarehouseHandler) CreateWarehouse(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var warehouse models.Warehouse
	if err := c.ShouldBindJSON(&warehouse); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}
	if warehouse.Code == "" || warehouse.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and name are required"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), companyID, &warehouse)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *WarehouseHandler) UpdateWarehouse(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var warehouse models.Warehouse
	if err := c.ShouldBindJSON(&warehouse); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), companyID, c.Param("id"), &warehouse)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *WarehouseHandler) DeleteWarehouse(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), companyID, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
