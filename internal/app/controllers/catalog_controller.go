package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/iug/student-portal/internal/app/services"
	"github.com/iug/student-portal/internal/middleware"
)

// CatalogController serves the faculty/department enumeration used by the
// registration form.
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{
		catalogService: catalogService,
	}
}

// GetFaculties handles GET /api/faculties, returning every faculty with its
// departments nested.
func (c *CatalogController) GetFaculties(ctx *gin.Context) {
	faculties, err := c.catalogService.GetFaculties(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, faculties)
}
