package models

import "time"

// Property type and status value sets. Enforcement happens at the input
// validation boundary, regardless of which backend is active.
const (
	PropertyTypeVilla     = "villa"
	PropertyTypePenthouse = "penthouse"
	PropertyTypeEstate    = "estate"
	PropertyTypeLoft      = "loft"
	PropertyTypeHouse     = "house"

	PropertyStatusForSale = "for-sale"
	PropertyStatusForRent = "for-rent"
)

// Property is a real-estate listing. The Agent field is a soft reference to
// an Agent id; no referential integrity is guaranteed across entities.
type Property struct {
	ID          string    `json:"id" bson:"_id"`
	Title       string    `json:"title" bson:"title"`
	Type        string    `json:"type" bson:"type"`
	Status      string    `json:"status" bson:"status"`
	Price       float64   `json:"price" bson:"price"`
	Location    string    `json:"location" bson:"location"`
	Bedrooms    int       `json:"bedrooms" bson:"bedrooms"`
	Bathrooms   int       `json:"bathrooms" bson:"bathrooms"`
	Area        float64   `json:"area" bson:"area"`
	Image       string    `json:"image" bson:"image"`
	Images      []string  `json:"images" bson:"images"`
	Description string    `json:"description" bson:"description"`
	Features    []string  `json:"features" bson:"features"`
	Agent       string    `json:"agent" bson:"agent"`
	Featured    bool      `json:"featured" bson:"featured"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}

// PropertyCreate is the request body for creating a property. It carries no
// id, status flags beyond Featured, or timestamps; those are assigned at
// insertion time.
type PropertyCreate struct {
	Title       string   `json:"title" binding:"required"`
	Type        string   `json:"type" binding:"required,oneof=villa penthouse estate loft house"`
	Status      string   `json:"status" binding:"required,oneof=for-sale for-rent"`
	Price       float64  `json:"price" binding:"required,gt=0"`
	Location    string   `json:"location" binding:"required"`
	Bedrooms    int      `json:"bedrooms" binding:"gte=0"`
	Bathrooms   int      `json:"bathrooms" binding:"gte=0"`
	Area        float64  `json:"area" binding:"required,gt=0"`
	Image       string   `json:"image" binding:"required"`
	Images      []string `json:"images"`
	Description string   `json:"description" binding:"required"`
	Features    []string `json:"features"`
	Agent       string   `json:"agent" binding:"required"`
	Featured    bool     `json:"featured"`
}

// Entity builds the canonical Property from validated creation input.
// List fields are normalized so they are present (possibly empty), never nil.
func (in PropertyCreate) Entity() *Property {
	return &Property{
		Title:       in.Title,
		Type:        in.Type,
		Status:      in.Status,
		Price:       in.Price,
		Location:    in.Location,
		Bedrooms:    in.Bedrooms,
		Bathrooms:   in.Bathrooms,
		Area:        in.Area,
		Image:       in.Image,
		Images:      NormalizeList(in.Images),
		Description: in.Description,
		Features:    NormalizeList(in.Features),
		Agent:       in.Agent,
		Featured:    in.Featured,
	}
}

// NormalizeList returns the list unchanged unless it is nil, in which case
// it returns an empty list. List-valued fields may be empty but not absent.
func NormalizeList(list []string) []string {
	if list == nil {
		return []string{}
	}
	return list
}
