package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/service"
	"github.com/omniful/wms-dashboard/pkg/constants"
)

type PurchaseOrderHandler struct {
	service service.PurchaseOrderService
}

func NewPurchaseOrderHandler(service service.PurchaseOrderService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{service: service}
}

func (h *PurchaseOrderHandler) RegisterRoutes(r *gin.RouterGroup) {
	orders := r.Group("/purchase-orders")
	orders.GET("", h.ListPurchaseOrders)
	orders.POST("", h.CreatePurchaseOrder)
	orders.GET("/:id", h.GetPurchaseOrder)
	orders.PUT("/:id", h.UpdatePurchaseOrder)
	orders.DELETE("/:id", h.DeletePurchaseOrder)
}

func (h *PurchaseOrderHandler) ListPurchaseOrders(c *gin.Context) {
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

func (h *PurchaseOrderHandler) GetPurchaseOrder(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	order, err := h.service.Get(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

func (h *PurchaseOrderHandler) CreatePurchaseOrder(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var order models.PurchaseOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}
	if order.Supplier.IsZero() || len(order.Lines) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "supplier and at least one line are required"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), companyID, &order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PurchaseOrderHandler) UpdatePurchaseOrder(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var order models.PurchaseOrder
	if err := c.ShouldBindJSON(&order); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), companyID, c.Param("id"), &order)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PurchaseOrderHandler) DeletePurchaseOrder(c *gin.Context) {
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
