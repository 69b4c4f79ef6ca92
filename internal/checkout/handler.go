package checkout

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

type checkoutRequest struct {
	Products []LineItem `json:"products"`
}

// Checkout handles POST /checkout.
func (h *Handler) Checkout(c *gin.Context) {
	var req checkoutRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	id, err := h.service.Checkout(c.Request.Context(), req.Products)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}})
}

// GetTransaction handles GET /transaction/:id. An unknown ID answers a
// null result, not 404.
func (h *Handler) GetTransaction(c *gin.Context) {
	tx, err := h.service.GetTransaction(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": tx})
}
