package detection

import (
	"encoding/base64"
	"errors"
	"net/http"
	"regexp"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

var dataURLPrefix = regexp.MustCompile(`^data:image/\w+;base64,`)

type predictRequest struct {
	Image      string   `json:"image"`
	Confidence *float64 `json:"confidence"`
}

// PredictImage handles POST /predict-image. The image arrives as a data
// URL (or bare base64); confidence is required, there is no default.
func (h *Handler) PredictImage(c *gin.Context) {
	var req predictRequest
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if req.Image == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": ErrEmptyImage.Error()})
		return
	}
	if req.Confidence == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confidence is required"})
		return
	}
	if err := ValidateConfidence(*req.Confidence); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	stripped := dataURLPrefix.ReplaceAllString(req.Image, "")
	imageBytes, err := base64.StdEncoding.DecodeString(stripped)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is not valid base64"})
		return
	}

	results, err := h.service.Predict(c.Request.Context(), imageBytes, *req.Confidence)
	if err != nil {
		var svcErr *ServiceError
		if errors.As(err, &svcErr) {
			c.JSON(http.StatusBadGateway, gin.H{"error": svcErr.Error()})
			return
		}
		// Remaining failures are bad input: unreadable image, bad confidence.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": results})
}
