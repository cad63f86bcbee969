package models

import "time"

// Agent is a real-estate agent profile. The Listings counter is static once
// seeded; it is not maintained when properties referencing the agent are
// created.
type Agent struct {
	ID          string    `json:"id" bson:"_id"`
	Name        string    `json:"name" bson:"name"`
	Title       string    `json:"title" bson:"title"`
	Image       string    `json:"image" bson:"image"`
	Email       string    `json:"email" bson:"email"`
	Phone       string    `json:"phone" bson:"phone"`
	Bio         string    `json:"bio" bson:"bio"`
	Specialties []string  `json:"specialties" bson:"specialties"`
	Listings    int       `json:"listings" bson:"listings"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
