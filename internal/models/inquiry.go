package models

import "time"

// Inquiry type and status value sets.
const (
	InquiryTypeProperty = "property-inquiry"
	InquiryTypeGeneral  = "general-contact"

	InquiryStatusNew       = "new"
	InquiryStatusContacted = "contacted"
	InquiryStatusClosed    = "closed"
)

// Inquiry is a customer inquiry, either about a specific property or a
// general contact-form submission. PropertyID is a soft reference.
type Inquiry struct {
	ID         string    `json:"id" bson:"_id"`
	PropertyID *string   `json:"property_id,omitempty" bson:"property_id,omitempty"`
	Name       string    `json:"name" bson:"name"`
	Email      string    `json:"email" bson:"email"`
	Phone      string    `json:"phone" bson:"phone"`
	Message    string    `json:"message" bson:"message"`
	Type       string    `json:"type" bson:"type"`
	Status     string    `json:"status" bson:"status"`
	CreatedAt  time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt  time.Time `json:"updated_at" bson:"updated_at"`
}

// InquiryCreate is the request body for submitting an inquiry. It deliberately
// has no Status field; new inquiries always start as "new".
type InquiryCreate struct {
	PropertyID *string `json:"property_id"`
	Name       string  `json:"name" binding:"required"`
	Email      string  `json:"email" binding:"required,email"`
	Phone      string  `json:"phone" binding:"required"`
	Message    string  `json:"message" binding:"required"`
	Type       string  `json:"type" binding:"omitempty,oneof=property-inquiry general-contact"`
}
