package gormstore

import (
	"time"

	"github.com/silfira/realty/api/internal/models"
)

// Record types mirror the relational schema. List-valued fields are stored
// as JSON text columns; the property's agent reference becomes an agent_id
// foreign-key column.

type agentRecord struct {
	ID          string            `gorm:"primaryKey;size:36;column:id"`
	Name        string            `gorm:"size:255;not null;column:name"`
	Title       string            `gorm:"size:255;not null;column:title"`
	Image       string            `gorm:"type:text;column:image"`
	Email       string            `gorm:"size:255;not null;uniqueIndex;column:email"`
	Phone       string            `gorm:"size:50;not null;column:phone"`
	Bio         string            `gorm:"type:text;column:bio"`
	Specialties models.StringList `gorm:"type:text;column:specialties"`
	Listings    int               `gorm:"not null;default:0;column:listings"`
	CreatedAt   time.Time         `gorm:"not null;column:created_at"`
	UpdatedAt   time.Time         `gorm:"not null;column:updated_at"`
}

func (agentRecord) TableName() string { return "agents" }

type propertyRecord struct {
	ID          string            `gorm:"primaryKey;size:36;column:id"`
	Title       string            `gorm:"size:255;not null;column:title"`
	Type        string            `gorm:"size:20;not null;index;column:type"`
	Status      string            `gorm:"size:20;not null;index;column:status"`
	Price       float64           `gorm:"not null;index;column:price"`
	Location    string            `gorm:"size:255;not null;index;column:location"`
	Bedrooms    int               `gorm:"not null;column:bedrooms"`
	Bathrooms   int               `gorm:"not null;column:bathrooms"`
	Area        float64           `gorm:"not null;column:area"`
	Image       string            `gorm:"type:text;column:image"`
	Images      models.StringList `gorm:"type:text;column:images"`
	Description string            `gorm:"type:text;column:description"`
	Features    models.StringList `gorm:"type:text;column:features"`
	AgentID     string            `gorm:"size:36;not null;index;column:agent_id"`
	AgentRef    *agentRecord      `gorm:"foreignKey:AgentID;references:ID"`
	Featured    bool              `gorm:"not null;default:false;index;column:featured"`
	CreatedAt   time.Time         `gorm:"not null;column:created_at"`
	UpdatedAt   time.Time         `gorm:"not null;column:updated_at"`
}

func (propertyRecord) TableName() string { return "properties" }

type inquiryRecord struct {
	ID         string    `gorm:"primaryKey;size:36;column:id"`
	PropertyID *string   `gorm:"size:36;column:property_id"`
	Name       string    `gorm:"size:255;not null;column:name"`
	Email      string    `gorm:"size:255;not null;column:email"`
	Phone      string    `gorm:"size:50;not null;column:phone"`
	Message    string    `gorm:"type:text;not null;column:message"`
	Type       string    `gorm:"size:30;not null;column:type"`
	Status     string    `gorm:"size:20;not null;column:status"`
	CreatedAt  time.Time `gorm:"not null;index;column:created_at"`
	UpdatedAt  time.Time `gorm:"not null;column:updated_at"`
}

func (inquiryRecord) TableName() string { return "inquiries" }

type valuationRecord struct {
	ID             string    `gorm:"primaryKey;size:36;column:id"`
	Name           string    `gorm:"size:255;not null;column:name"`
	Email          string    `gorm:"size:255;not null;column:email"`
	Phone          string    `gorm:"size:50;not null;column:phone"`
	PropertyType   string    `gorm:"size:100;not null;column:property_type"`
	Address        string    `gorm:"type:text;not null;column:address"`
	Bedrooms       int       `gorm:"not null;column:bedrooms"`
	Bathrooms      int       `gorm:"not null;column:bathrooms"`
	Area           float64   `gorm:"not null;column:area"`
	YearBuilt      *int      `gorm:"column:year_built"`
	AdditionalInfo *string   `gorm:"type:text;column:additional_info"`
	Status         string    `gorm:"size:20;not null;column:status"`
	CreatedAt      time.Time `gorm:"not null;index;column:created_at"`
	UpdatedAt      time.Time `gorm:"not null;column:updated_at"`
}

func (valuationRecord) TableName() string { return "valuations" }

type testimonialRecord struct {
	ID        string    `gorm:"primaryKey;size:36;column:id"`
	Name      string    `gorm:"size:255;not null;column:name"`
	Role      string    `gorm:"size:255;not null;column:role"`
	Content   string    `gorm:"type:text;not null;column:content"`
	Rating    int       `gorm:"not null;default:5;column:rating"`
	Image     string    `gorm:"type:text;column:image"`
	Approved  bool      `gorm:"not null;default:false;index;column:approved"`
	CreatedAt time.Time `gorm:"not null;column:created_at"`
	UpdatedAt time.Time `gorm:"not null;column:updated_at"`
}

func (testimonialRecord) TableName() string { return "testimonials" }

// Translators between the relational record shape and the canonical entity
// shape. Read-side translation guarantees ordered, non-nil list fields and
// UTC timestamps regardless of what the driver hands back.

func propertyToRecord(p *models.Property) propertyRecord {
	return propertyRecord{
		ID:          p.ID,
		Title:       p.Title,
		Type:        p.Type,
		Status:      p.Status,
		Price:       p.Price,
		Location:    p.Location,
		Bedrooms:    p.Bedrooms,
		Bathrooms:   p.Bathrooms,
		Area:        p.Area,
		Image:       p.Image,
		Images:      models.StringList(models.NormalizeList(p.Images)),
		Description: p.Description,
		Features:    models.StringList(models.NormalizeList(p.Features)),
		AgentID:     p.Agent,
		Featured:    p.Featured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func propertyToEntity(rec *propertyRecord) *models.Property {
	return &models.Property{
		ID:          rec.ID,
		Title:       rec.Title,
		Type:        rec.Type,
		Status:      rec.Status,
		Price:       rec.Price,
		Location:    rec.Location,
		Bedrooms:    rec.Bedrooms,
		Bathrooms:   rec.Bathrooms,
		Area:        rec.Area,
		Image:       rec.Image,
		Images:      models.NormalizeList(rec.Images),
		Description: rec.Description,
		Features:    models.NormalizeList(rec.Features),
		Agent:       rec.AgentID,
		Featured:    rec.Featured,
		CreatedAt:   rec.CreatedAt.UTC(),
		UpdatedAt:   rec.UpdatedAt.UTC(),
	}
}

func agentToRecord(a *models.Agent) agentRecord {
	return agentRecord{
		ID:          a.ID,
		Name:        a.Name,
		Title:       a.Title,
		Image:       a.Image,
		Email:       a.Email,
		Phone:       a.Phone,
		Bio:         a.Bio,
		Specialties: models.StringList(models.NormalizeList(a.Specialties)),
		Listings:    a.Listings,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func agentToEntity(rec *agentRecord) *models.Agent {
	return &models.Agent{
		ID:          rec.ID,
		Name:        rec.Name,
		Title:       rec.Title,
		Image:       rec.Image,
		Email:       rec.Email,
		Phone:       rec.Phone,
		Bio:         rec.Bio,
		Specialties: models.NormalizeList(rec.Specialties),
		Listings:    rec.Listings,
		CreatedAt:   rec.CreatedAt.UTC(),
		UpdatedAt:   rec.UpdatedAt.UTC(),
	}
}

func inquiryToRecord(i *models.Inquiry) inquiryRecord {
	return inquiryRecord{
		ID:         i.ID,
		PropertyID: i.PropertyID,
		Name:       i.Name,
		Email:      i.Email,
		Phone:      i.Phone,
		Message:    i.Message,
		Type:       i.Type,
		Status:     i.Status,
		CreatedAt:  i.CreatedAt,
		UpdatedAt:  i.UpdatedAt,
	}
}

func inquiryToEntity(rec *inquiryRecord) *models.Inquiry {
	return &models.Inquiry{
		ID:         rec.ID,
		PropertyID: rec.PropertyID,
		Name:       rec.Name,
		Email:      rec.Email,
		Phone:      rec.Phone,
		Message:    rec.Message,
		Type:       rec.Type,
		Status:     rec.Status,
		CreatedAt:  rec.CreatedAt.UTC(),
		UpdatedAt:  rec.UpdatedAt.UTC(),
	}
}

func valuationToRecord(v *models.Valuation) valuationRecord {
	return valuationRecord{
		ID:             v.ID,
		Name:           v.Name,
		Email:          v.Email,
		Phone:          v.Phone,
		PropertyType:   v.PropertyType,
		Address:        v.Address,
		Bedrooms:       v.Bedrooms,
		Bathrooms:      v.Bathrooms,
		Area:           v.Area,
		YearBuilt:      v.YearBuilt,
		AdditionalInfo: v.AdditionalInfo,
		Status:         v.Status,
		CreatedAt:      v.CreatedAt,
		UpdatedAt:      v.UpdatedAt,
	}
}

func valuationToEntity(rec *valuationRecord) *models.Valuation {
	return &models.Valuation{
		ID:             rec.ID,
		Name:           rec.Name,
		Email:          rec.Email,
		Phone:          rec.Phone,
		PropertyType:   rec.PropertyType,
		Address:        rec.Address,
		Bedrooms:       rec.Bedrooms,
		Bathrooms:      rec.Bathrooms,
		Area:           rec.Area,
		YearBuilt:      rec.YearBuilt,
		AdditionalInfo: rec.AdditionalInfo,
		Status:         rec.Status,
		CreatedAt:      rec.CreatedAt.UTC(),
		UpdatedAt:      rec.UpdatedAt.UTC(),
	}
}

func testimonialToRecord(t *models.Testimonial) testimonialRecord {
	return testimonialRecord{
		ID:        t.ID,
		Name:      t.Name,
		Role:      t.Role,
		Content:   t.Content,
		Rating:    t.Rating,
		Image:     t.Image,
		Approved:  t.Approved,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func testimonialToEntity(rec *testimonialRecord) *models.Testimonial {
	return &models.Testimonial{
		ID:        rec.ID,
		Name:      rec.Name,
		Role:      rec.Role,
		Content:   rec.Content,
		Rating:    rec.Rating,
		Image:     rec.Image,
		Approved:  rec.Approved,
		CreatedAt: rec.CreatedAt.UTC(),
		UpdatedAt: rec.UpdatedAt.UTC(),
	}
}
