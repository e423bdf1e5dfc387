package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/service"
	"github.com/omniful/wms-dashboard/pkg/constants"
)

type VariantHandler struct {
	service service.VariantService
}

func NewVariantHandler(service service.VariantService) *VariantHandler {
	return &VariantHandler{service: service}
}

func (h *VariantHandler) RegisterRoutes(r *gin.RouterGroup) {
	variants := r.Group("/product-variants")
	variants.GET("", h.ListVariants)
	variants.POST("", h.CreateVariant)
	variants.GET("/:id", h.GetVariant)
	variants.PUT("/:id", h.UpdateVariant)
	variants.DELETE("/:id", h.DeleteVariant)
}

// ListVariants returns the company's variants with pagination and search.
func (h *VariantHandler) ListVariants(c *gin.Context) {
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

func (h *VariantHandler) GetVariant(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	variant, err := h.service.Get(c.Request.Context(), companyID, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, variant)
}

func (h *VariantHandler) CreateVariant(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var variant models.ProductVariant
	if err := c.ShouldBindJSON(&variant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}
	if variant.SKU == "" || variant.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "sku and name are required"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), companyID, &variant)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *VariantHandler) UpdateVariant(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var variant models.ProductVariant
	if err := c.ShouldBindJSON(&variant); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), companyID, c.Param("id"), &variant)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *VariantHandler) DeleteVariant(c *gin.Context) {
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
