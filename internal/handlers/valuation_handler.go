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

// ValuationHandler handles valuation request HTTP endpoints.
type ValuationHandler struct {
	service services.ValuationService
}

// NewValuationHandler creates a new ValuationHandler instance.
func NewValuationHandler(service services.ValuationService) *ValuationHandler {
	return &ValuationHandler{
		service: service,
	}
}

// Create handles POST /api/v1/valuations.
func (h *ValuationHandler) Create(c *gin.Context) {
	var input models.ValuationCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			httperr.Validation(c, validationErrors)
			return
		}
		httperr.BadRequest(c, "Invalid request body", nil)
		return
	}

	valuation, err := h.service.SubmitValuation(c.Request.Context(), input)
	if err != nil {
		httperr.InternalServerError(c, "Failed to create valuation", err)
		return
	}

	c.JSON(http.StatusCreated, valuation)
}

// List handles GET /api/v1/valuations.
func (h *ValuationHandler) List(c *gin.Context) {
	valuations, err := h.service.ListValuations(c.Request.Context())
	if err != nil {
		httperr.InternalServerError(c, "Failed to query valuations", err)
		return
	}

	c.JSON(http.StatusOK, valuations)
}
