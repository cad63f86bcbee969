package models

import "time"

// Valuation status value set.
const (
	ValuationStatusPending   = "pending"
	ValuationStatusCompleted = "completed"
)

// Valuation is a property valuation request. PropertyType is free text
// supplied by the customer, not the Property type enum.
type Valuation struct {
	ID             string    `json:"id" bson:"_id"`
	Name           string    `json:"name" bson:"name"`
	Email          string    `json:"email" bson:"email"`
	Phone          string    `json:"phone" bson:"phone"`
	PropertyType   string    `json:"property_type" bson:"property_type"`
	Address        string    `json:"address" bson:"address"`
	Bedrooms       int       `json:"bedrooms" bson:"bedrooms"`
	Bathrooms      int       `json:"bathrooms" bson:"bathrooms"`
	Area           float64   `json:"area" bson:"area"`
	YearBuilt      *int      `json:"year_built,omitempty" bson:"year_built,omitempty"`
	AdditionalInfo *string   `json:"additional_info,omitempty" bson:"additional_info,omitempty"`
	Status         string    `json:"status" bson:"status"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`
}

// ValuationCreate is the request body for submitting a valuation request.
// It deliberately has no Status field; new requests always start "pending".
type ValuationCreate struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Phone          string  `json:"phone" binding:"required"`
	PropertyType   string  `json:"property_type" binding:"required"`
	Address        string  `json:"address" binding:"required"`
	Bedrooms       int     `json:"bedrooms" binding:"gte=0"`
	Bathrooms      int     `json:"bathrooms" binding:"gte=0"`
	Area           float64 `json:"area" binding:"required,gt=0"`
	YearBuilt      *int    `json:"year_built"`
	AdditionalInfo *string `json:"additional_info"`
}
