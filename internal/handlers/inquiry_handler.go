package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/silfira/realty/api/internal/httperr"
	"github.com/silfira/realty/api/internal/models"
	"github.com/silfira/realty/api/internal/services"
)

// InquiryHandler handles inquiry-related HTTP requests.
type InquiryHandler struct {
	service services.InquiryService
}

// NewInquiryHandler creates a new InquiryHandler instance.
func NewInquiryHandler(service services.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		service: service,
	}
}

// Create handles POST /api/v1/inquiries.
func (h *InquiryHandler) Create(c *gin.Context) {
	var input models.InquiryCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			httperr.Validation(c, validationErrors)
			return
		}
		httperr.BadRequest(c, "Invalid request body", nil)
		return
	}

	inquiry, err := h.service.SubmitInquiry(c.Request.Context(), input)
	if err != nil {
		httperr.InternalServerError(c, "Failed to create inquiry", err)
		return
	}

	c.JSON(http.StatusCreated, inquiry)
}

// List handles GET /api/v1/inquiries.
func (h *InquiryHandler) List(c *gin.Context) {
	inquiries, err := h.service.ListInquiries(c.Request.Context())
	if err != nil {
		httperr.InternalServerError(c, "Failed to query inquiries", err)
		return
	}

	c.JSON(http.StatusOK, inquiries)
}
