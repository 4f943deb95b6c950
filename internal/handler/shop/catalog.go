package shop

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListProducts returns the catalog
// @Summary      List products
// @Tags         shop
// @Produce      json
// @Param        category  query     string  false  "category slug"
// @Success      200       {object}  map[string]interface{}
// @Router       /api/v1/shop/products [get]
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.catalogService.ListProducts(c.Request.Context(), c.Query("category"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to list products",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    products,
	})
}

// GetProduct returns one product
// @Summary      Get product
// @Tags         shop
// @Produce      json
// @Param        id   path      string  true  "product id"
// @Success      200  {object}  map[string]interface{}
// @Failure      404  {object}  ErrorResponse
// @Router       /api/v1/shop/products/{id} [get]
func (h *Handler) GetProduct(c *gin.Context) {
	product, err := h.catalogService.GetProduct(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{
			Code:    40401,
			Message: "product not found",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    product,
	})
}

// ListCategories returns the catalog sections
// @Summary      List categories
// @Tags         shop
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/shop/categories [get]
func (h *Handler) ListCategories(c *gin.Context) {
	categories, err := h.catalogService.ListCategories(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to list categories",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    categories,
	})
}

// ListBanners returns the promotional banners
// @Summary      List banners
// @Tags         shop
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/shop/banners [get]
func (h *Handler) ListBanners(c *gin.Context) {
	banners, err := h.catalogService.ListBanners(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to list banners",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    banners,
	})
}

// GetSettings returns the public storefront settings
// @Summary      Storefront settings
// @Tags         shop
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/shop/settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := h.catalogService.GetSettings(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to load settings",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "success",
		"data":    settings,
	})
}
