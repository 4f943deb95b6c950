package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"gother/internal/model/store"
	"gother/internal/service"
)

// ProductRequest product create/edit payload
type ProductRequest struct {
	Name       string         `json:"name" binding:"required"`
	NameAr     string         `json:"name_ar,omitempty"`
	Category   string         `json:"category,omitempty"`
	CategoryAr string         `json:"category_ar,omitempty"`
	Price      float64        `json:"price"`
	PreviewURL string         `json:"preview_url,omitempty"`
	VideoURL   string         `json:"video_url,omitempty"`
	Formats    []store.Format `json:"formats,omitempty"`
	Tags       []string       `json:"tags,omitempty"`
	Level      store.Level    `json:"level,omitempty"`
	Brand      string         `json:"brand,omitempty"`
}

// CreateProduct adds a catalog item
// @Summary      Create product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      ProductRequest  true  "product"
// @Success      201      {object}  map[string]interface{}
// @Router       /api/v1/admin/products [post]
func (h *Handler) CreateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	product := &store.Product{
		Name:       req.Name,
		NameAr:     req.NameAr,
		Category:   req.Category,
		CategoryAr: req.CategoryAr,
		Price:      req.Price,
		PreviewURL: req.PreviewURL,
		VideoURL:   req.VideoURL,
		Formats:    req.Formats,
		Tags:       req.Tags,
		Level:      req.Level,
		Brand:      req.Brand,
	}

	if err := h.catalogService.CreateProduct(c.Request.Context(), product); err != nil {
		status := http.StatusInternalServerError
		errorCode := 50001
		if err == service.ErrInvalidProduct {
			status = http.StatusBadRequest
			errorCode = 40006
		}
		c.JSON(status, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "product created",
		"data":    product,
	})
}

// UpdateProduct edits a catalog item
// @Summary      Update product
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string          true  "product id"
// @Param        request  body      ProductRequest  true  "product"
// @Success      200      {object}  map[string]interface{}
// @Router       /api/v1/admin/products/{id} [put]
func (h *Handler) UpdateProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	update := bson.M{
		"name":        req.Name,
		"name_ar":     req.NameAr,
		"category":    req.Category,
		"category_ar": req.CategoryAr,
		"price":       req.Price,
		"preview_url": req.PreviewURL,
		"video_url":   req.VideoURL,
		"formats":     req.Formats,
		"tags":        req.Tags,
		"level":       req.Level,
		"brand":       req.Brand,
	}

	if err := h.catalogService.UpdateProduct(c.Request.Context(), c.Param("id"), update); err != nil {
		status := http.StatusInternalServerError
		errorCode := 50001
		if err == service.ErrProductNotFound {
			status = http.StatusNotFound
			errorCode = 40401
		}
		c.JSON(status, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "product updated",
	})
}

// DeleteProduct removes a catalog item
// @Summary      Delete product
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "product id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/admin/products/{id} [delete]
func (h *Handler) DeleteProduct(c *gin.Context) {
	if err := h.catalogService.DeleteProduct(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to delete product",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "product deleted",
	})
}

// CategoryRequest category create/edit payload
type CategoryRequest struct {
	Name   string `json:"name" binding:"required"`
	NameAr string `json:"name_ar,omitempty"`
	Icon   string `json:"icon,omitempty"`
}

// CreateCategory adds a catalog section
// @Summary      Create category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      CategoryRequest  true  "category"
// @Success      201      {object}  map[string]interface{}
// @Router       /api/v1/admin/categories [post]
func (h *Handler) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	category := &store.Category{
		Name:   req.Name,
		NameAr: req.NameAr,
		Icon:   req.Icon,
	}
	if err := h.catalogService.CreateCategory(c.Request.Context(), category); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "category created",
		"data":    category,
	})
}

// UpdateCategory edits a catalog section
// @Summary      Update category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string           true  "category slug"
// @Param        request  body      CategoryRequest  true  "category"
// @Success      200      {object}  map[string]interface{}
// @Router       /api/v1/admin/categories/{id} [put]
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	update := bson.M{
		"name":    req.Name,
		"name_ar": req.NameAr,
		"icon":    req.Icon,
	}
	if err := h.catalogService.UpdateCategory(c.Request.Context(), c.Param("id"), update); err != nil {
		status := http.StatusInternalServerError
		errorCode := 50001
		if err == service.ErrCategoryNotFound {
			status = http.StatusNotFound
			errorCode = 40403
		}
		c.JSON(status, ErrorResponse{
			Code:    errorCode,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "category updated",
	})
}

// DeleteCategory removes a catalog section
// @Summary      Delete category
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "category slug"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/admin/categories/{id} [delete]
func (h *Handler) DeleteCategory(c *gin.Context) {
	if err := h.catalogService.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to delete category",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "category deleted",
	})
}

// BannerRequest banner creation payload
type BannerRequest struct {
	URL  string `json:"url" binding:"required"`
	Link string `json:"link,omitempty"`
}

// CreateBanner adds a promotional banner
// @Summary      Create banner
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      BannerRequest  true  "banner"
// @Success      201      {object}  map[string]interface{}
// @Router       /api/v1/admin/banners [post]
func (h *Handler) CreateBanner(c *gin.Context) {
	var req BannerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Code:    40001,
			Message: "Invalid request body",
			Detail:  err.Error(),
		})
		return
	}

	banner := &store.Banner{
		URL:  req.URL,
		Link: req.Link,
	}
	if err := h.catalogService.CreateBanner(c.Request.Context(), banner); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"code":    0,
		"message": "banner created",
		"data":    banner,
	})
}

// DeleteBanner removes a promotional banner
// @Summary      Delete banner
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "banner id"
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/admin/banners/{id} [delete]
func (h *Handler) DeleteBanner(c *gin.Context) {
	if err := h.catalogService.DeleteBanner(c.Request.Context(), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Code:    50001,
			Message: "failed to delete banner",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"code":    0,
		"message": "banner deleted",
	})
}
