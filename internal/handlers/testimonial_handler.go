package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/silfira/realty/api/internal/httperr"
	"github.com/silfira/realty/api/internal/services"
)

// TestimonialHandler handles testimonial-related HTTP requests.
type TestimonialHandler struct {
	service services.TestimonialService
}

// NewTestimonialHandler creates a new TestimonialHandler instance.
func NewTestimonialHandler(service services.TestimonialService) *TestimonialHandler {
	return &TestimonialHandler{
		service: service,
	}
}

// List handles GET /api/v1/testimonials. Only approved testimonials are
// returned.
func (h *TestimonialHandler) List(c *gin.Context) {
	testimonials, err := h.service.ListApproved(c.Request.Context())
	if err != nil {
		httperr.InternalServerError(c, "Failed to query testimonials", err)
		return
	}

	c.JSON(http.StatusOK, testimonials)
}
