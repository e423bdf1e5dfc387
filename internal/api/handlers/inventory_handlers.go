package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/service"
	"github.com/omniful/wms-dashboard/pkg/constants"
)

type InventoryHandler struct {
	service service.InventoryService
}

func NewInventoryHandler(service service.InventoryService) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) RegisterRoutes(r *gin.RouterGroup) {
	inventory := r.Group("/inventory")
	inventory.GET("", h.GetInventory)
	inventory.GET("/movements", h.ListMovements)
	inventory.POST("/adjust", h.Adjust)
	inventory.GET("/export", h.ExportCSV)
}

// GetInventory returns the resolved balance rows for the inventory screen.
func (h *InventoryHandler) GetInventory(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}
	filter := getListFilter(c)

	listing, err := h.service.GetInventory(c.Request.Context(), companyID, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	writeListing(c, listing, filter.Page, filter.PageSize)
}

func (h *InventoryHandler) ListMovements(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}
	page, pageSize := getPaginationParams(c)
	filter := models.MovementFilter{
		VariantID:    c.Query("variant_id"),
		WarehouseID:  c.Query("warehouse_id"),
		MovementType: strings.ToUpper(c.Query("movement_type")),
		Page:         page,
		PageSize:     pageSize,
	}
	if filter.MovementType != "" && !models.IsValidMovementType(filter.MovementType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movement_type"})
		return
	}

	listing, err := h.service.ListMovements(c.Request.Context(), companyID, filter)
	if err != nil {
		writeError(c, err)
		return
	}
	writeListing(c, listing, page, pageSize)
}

// Adjust appends a ledger entry keyed by SKU and warehouse code.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var req models.AdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}
	req.MovementType = strings.ToUpper(req.MovementType)
	if !models.IsValidMovementType(req.MovementType) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid movementType"})
		return
	}

	created, err := h.service.Adjust(c.Request.Context(), companyID, &req)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ExportCSV streams the current inventory view as a CSV download.
func (h *InventoryHandler) ExportCSV(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}
	filter := models.ListFilter{Search: c.Query("search")}

	filename := "inventory-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.service.ExportCSV(c.Request.Context(), companyID, filter, c.Writer); err != nil {
		// Headers may already be out; all we can do is abort the stream.
		c.Abort()
	}
}
