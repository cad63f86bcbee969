package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/silfira/realty/api/internal/httperr"
	"github.com/silfira/realty/api/internal/models"
	"github.com/silfira/realty/api/internal/repository"
	"github.com/silfira/realty/api/internal/services"
)

// PropertyHandler handles property-related HTTP requests, including the
// statistics endpoint.
type PropertyHandler struct {
	service services.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler instance.
func NewPropertyHandler(service services.PropertyService) *PropertyHandler {
	return &PropertyHandler{
		service: service,
	}
}

// ListPropertiesRequest represents the optional query parameters for the
// property listing endpoint. Enum values are validated here, before any
// filter is built; pointer fields distinguish absent from zero.
type ListPropertiesRequest struct {
	Type   string `form:"type" binding:"omitempty,oneof=villa penthouse estate loft house"`
	Status string `form:"status" binding:"omitempty,oneof=for-sale for-rent"`
	// Price bounds are unconstrained; a negative bound is harmless and
	// simply selects everything above (or below) it.
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
	Location string   `form:"location"`
	Featured *bool    `form:"featured"`
}

// List handles GET /api/v1/properties.
func (h *PropertyHandler) List(c *gin.Context) {
	var req ListPropertiesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			httperr.Validation(c, validationErrors)
			return
		}
		httperr.BadRequest(c, "Invalid query parameters", nil)
		return
	}

	filter := repository.PropertyFilter{
		Type:     req.Type,
		Status:   req.Status,
		Location: req.Location,
		MinPrice: req.MinPrice,
		MaxPrice: req.MaxPrice,
		Featured: req.Featured,
	}

	properties, err := h.service.ListProperties(c.Request.Context(), filter)
	if err != nil {
		httperr.InternalServerError(c, "Failed to query properties", err)
		return
	}

	c.JSON(http.StatusOK, properties)
}

// Get handles GET /api/v1/properties/:id.
func (h *PropertyHandler) Get(c *gin.Context) {
	property, err := h.service.GetProperty(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrPropertyNotFound) {
			httperr.NotFound(c, "Property not found")
			return
		}
		httperr.InternalServerError(c, "Failed to query property", err)
		return
	}

	c.JSON(http.StatusOK, property)
}

// Create handles POST /api/v1/properties.
func (h *PropertyHandler) Create(c *gin.Context) {
	var input models.PropertyCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			httperr.Validation(c, validationErrors)
			return
		}
		httperr.BadRequest(c, "Invalid request body", nil)
		return
	}

	property, err := h.service.CreateProperty(c.Request.Context(), input)
	if err != nil {
		httperr.InternalServerError(c, "Failed to create property", err)
		return
	}

	c.JSON(http.StatusCreated, property)
}

// Stats handles GET /api/v1/stats.
func (h *PropertyHandler) Stats(c *gin.Context) {
	stats, err := h.service.GetStats(c.Request.Context())
	if err != nil {
		httperr.InternalServerError(c, "Failed to compute stats", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
