package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

type saveProductRequest struct {
	ProductInfo Product `json:"productInfo"`
}

// SaveProduct handles POST /product.
func (h *Handler) SaveProduct(c *gin.Context) {
	var req saveProductRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.Save(c.Request.Context(), req.ProductInfo); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": req.ProductInfo})
}

// ListProducts handles GET /products.
func (h *Handler) ListProducts(c *gin.Context) {
	products, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": products})
}
