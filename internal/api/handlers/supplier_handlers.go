package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/service"
	"github.com/omniful/wms-dashboard/pkg/constants"
)

type SupplierHandler struct {
	service service.SupplierService
}

func NewSupplierHandler(service service.SupplierService) *SupplierHandler {
	return &SupplierHandler{service: service}
}

func (h *SupplierHandler) RegisterRoutes(r *gin.RouterGroup) {
	suppliers := r.Group("/suppliers")
	suppliers.GET("", h.ListSuppliers)
	suppliers.POST("", h.CreateSupplier)
	suppliers.GET("/:id", h.GetSupplier)
	suppliers.PUT("/:id", h.UpdateSupplier)
	suppliers.DELETE("/:id", h.DeleteSupplier)
}

// ListSuppliers supports the status filter on top of the common search and
// pagination parameters.
func (h *SupplierHandler) ListSuppliers(c *gin.Context) {
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

func (h *SupplierHandler) GetSupplier(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	supplier, err := h.service.Get(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, supplier)
}

func (h *SupplierHandler) CreateSupplier(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}
	if supplier.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), companyID, &supplier)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *SupplierHandler) UpdateSupplier(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var supplier models.Supplier
	if err := c.ShouldBindJSON(&supplier); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), companyID, c.Param("id"), &supplier)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *SupplierHandler) DeleteSupplier(c *gin.Context) {
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
