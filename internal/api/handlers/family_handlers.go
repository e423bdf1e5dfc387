package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/service"
	"github.com/omniful/wms-dashboard/pkg/constants"
)

type FamilyHandler struct {
	service service.FamilyService
}

func NewFamilyHandler(service service.FamilyService) *FamilyHandler {
	return &FamilyHandler{service: service}
}

func (h *FamilyHandler) RegisterRoutes(r *gin.RouterGroup) {
	families := r.Group("/product-families")
	families.GET("", h.ListFamilies)
	families.POST("", h.CreateFamily)
	families.PUT("/:id", h.UpdateFamily)
	families.DELETE("/:id", h.DeleteFamily)
}

func (h *FamilyHandler) ListFamilies(c *gin.Context) {
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

func (h *FamilyHandler) CreateFamily(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var family models.ProductFamily
	if err := c.ShouldBindJSON(&family); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}
	if family.FamilyName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "familyName is required"})
		return
	}

	created, err := h.service.Create(c.Request.Context(), companyID, &family)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *FamilyHandler) UpdateFamily(c *gin.Context) {
	companyID, ok := getCompanyID(c)
	if !ok {
		return
	}

	var family models.ProductFamily
	if err := c.ShouldBindJSON(&family); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrInvalidRequest})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), companyID, c.Param("id"), &family)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *FamilyHandler) DeleteFamily(c *gin.Context) {
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
