package models

import "time"

// DefaultTestimonialRating is used when a testimonial is created without an
// explicit rating.
const DefaultTestimonialRating = 5

// Testimonial is a customer testimonial. Only approved testimonials are ever
// served by the public API.
type Testimonial struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Role      string    `json:"role" bson:"role"`
	Content   string    `json:"content" bson:"content"`
	Rating    int       `json:"rating" bson:"rating"`
	Image     string    `json:"image" bson:"image"`
	Approved  bool      `json:"approved" bson:"approved"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
