// Package handlers exposes the dashboard operations over HTTP. Every route
// under /api/v1 requires the X-Company-ID header; responses carry an
// X-Data-Source header whenever demo data was substituted for live data.
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/omniful/wms-dashboard/internal/auth"
	"github.com/omniful/wms-dashboard/internal/models"
	"github.com/omniful/wms-dashboard/internal/service"
	"github.com/omniful/wms-dashboard/internal/upstream"
	"github.com/omniful/wms-dashboard/pkg/constants"
)

// HeaderDataSource marks responses served from the demo store.
const HeaderDataSource = "X-Data-Source"

func getCompanyID(c *gin.Context) (string, bool) {
	companyID := c.GetHeader(upstream.HeaderCompanyID)
	if companyID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": constants.ErrMissingCompany})
		return "", false
	}
	return companyID, true
}

func getPaginationParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page <= 0 {
		page = constants.DefaultPage
	}
	if pageSize <= 0 || pageSize > constants.MaxPageSize {
		pageSize = constants.DefaultPageSize
	}
	return page, pageSize
}

func getListFilter(c *gin.Context) models.ListFilter {
	page, pageSize := getPaginationParams(c)
	return models.ListFilter{
		Search:   c.Query("search"),
		Status:   c.Query("status"),
		Page:     page,
		PageSize: pageSize,
	}
}

// writeListing renders the common paginated collection response and marks
// demo-sourced data in the response header.
func writeListing[T any](c *gin.Context, listing service.Listing[T], page, pageSize int) {
	if listing.Source == service.SourceDemo {
		c.Header(HeaderDataSource, service.SourceDemo)
	}
	pages := 0
	if pageSize > 0 {
		pages = (int(listing.Total) + pageSize - 1) / pageSize
	}
	c.JSON(http.StatusOK, gin.H{
		"data":   listing.Items,
		"source": listing.Source,
		"pagination": gin.H{
			"total":     listing.Total,
			"page":      page,
			"page_size": pageSize,
			"pages":     pages,
		},
	})
}

// writeError maps service and upstream errors onto HTTP statuses. API
// failures keep their upstream status; everything unrecognized is a 500.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, auth.ErrNoSession):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, upstream.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, upstream.ErrUnavailable):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		var apiErr *upstream.APIError
		if errors.As(err, &apiErr) {
			c.JSON(apiErr.Status, gin.H{"error": apiErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
