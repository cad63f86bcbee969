// Package seed loads the demo dataset used by the public site: one agent,
// a handful of listings referencing that agent, and a set of testimonials.
// Inquiries and valuations are never seeded; those collections only ever
// hold real submissions.
package seed

import (
	"context"
	"fmt"

	"github.com/silfira/realty/api/internal/logger"
	"github.com/silfira/realty/api/internal/models"
	"github.com/silfira/realty/api/internal/repository"
	"github.com/silfira/realty/api/internal/repository/mongostore"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

var agent = models.Agent{
	Name:  "Rohan Darji",
	Title: "Principal Agent & Founder",
	Image: "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=600",
	Email: "rohan@silfirarealtors.com",
	Phone: "+1 (415) 555-0137",
	Bio: "With over a decade in luxury residential sales, Rohan has closed more " +
		"than 2,500 transactions across the Bay Area and built a reputation for " +
		"discretion and market insight.",
	Specialties: []string{"Luxury Homes", "Waterfront Properties", "Investment Properties"},
	Listings:    127,
}

var properties = []models.Property{
	{
		Title:       "Oceanview Modern Villa",
		Type:        models.PropertyTypeVilla,
		Status:      models.PropertyStatusForSale,
		Price:       4850000,
		Location:    "Sausalito, CA",
		Bedrooms:    5,
		Bathrooms:   4,
		Area:        4200,
		Image:       "https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=1200",
		Images:      []string{"https://images.unsplash.com/photo-1613490493576-7fde63acd811?w=1200"},
		Description: "Floor-to-ceiling glass opens onto panoramic bay views from every level of this architect-designed villa.",
		Features:    []string{"Infinity Pool", "Home Theater", "Wine Cellar", "3-Car Garage"},
		Featured:    true,
	},
	{
		Title:       "Downtown Skyline Penthouse",
		Type:        models.PropertyTypePenthouse,
		Status:      models.PropertyStatusForSale,
		Price:       3200000,
		Location:    "San Francisco, CA",
		Bedrooms:    3,
		Bathrooms:   3,
		Area:        2800,
		Image:       "https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1200",
		Images:      []string{"https://images.unsplash.com/photo-1512917774080-9991f1c4c750?w=1200"},
		Description: "Full-floor penthouse with a private elevator lobby, chef's kitchen, and a wraparound terrace above the city.",
		Features:    []string{"Private Elevator", "Terrace", "Concierge", "Gym Access"},
		Featured:    true,
	},
	{
		Title:       "Hillside Country Estate",
		Type:        models.PropertyTypeEstate,
		Status:      models.PropertyStatusForSale,
		Price:       7500000,
		Location:    "Napa Valley, CA",
		Bedrooms:    7,
		Bathrooms:   6,
		Area:        8500,
		Image:       "https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1200",
		Images:      []string{"https://images.unsplash.com/photo-1600596542815-ffad4c1539a9?w=1200"},
		Description: "Gated twelve-acre estate among the vineyards with a guest house, pool pavilion, and producing olive grove.",
		Features:    []string{"Guest House", "Vineyard Views", "Pool Pavilion", "Olive Grove"},
		Featured:    true,
	},
	{
		Title:       "Industrial Arts District Loft",
		Type:        models.PropertyTypeLoft,
		Status:      models.PropertyStatusForRent,
		Price:       6500,
		Location:    "Oakland, CA",
		Bedrooms:    2,
		Bathrooms:   2,
		Area:        1900,
		Image:       "https://images.unsplash.com/photo-1536376072261-38c75010e6c9?w=1200",
		Images:      []string{"https://images.unsplash.com/photo-1536376072261-38c75010e6c9?w=1200"},
		Description: "Converted warehouse loft with sixteen-foot ceilings, exposed brick, and original timber beams.",
		Features:    []string{"Exposed Brick", "High Ceilings", "Freight Elevator"},
		Featured:    false,
	},
	{
		Title:       "Craftsman Family House",
		Type:        models.PropertyTypeHouse,
		Status:      models.PropertyStatusForSale,
		Price:       1850000,
		Location:    "Berkeley, CA",
		Bedrooms:    4,
		Bathrooms:   2,
		Area:        2400,
		Image:       "https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=1200",
		Images:      []string{"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=1200"},
		Description: "Restored 1920s craftsman on a tree-lined street, walking distance to schools and the farmers market.",
		Features:    []string{"Original Woodwork", "Garden", "Detached Studio"},
		Featured:    false,
	},
}

var testimonials = []models.Testimonial{
	{
		Name:     "Priya Shah",
		Role:     "Homeowner",
		Content:  "Rohan found us a home we didn't think existed in our budget. The whole process took six weeks start to finish.",
		Rating:   5,
		Image:    "https://images.unsplash.com/photo-1573496359142-b8d87734a5a2?w=400",
		Approved: true,
	},
	{
		Name:     "Marcus Webb",
		Role:     "Property Investor",
		Content:  "I've bought four units through Silfira. Their off-market pipeline alone is worth the relationship.",
		Rating:   5,
		Image:    "https://images.unsplash.com/photo-1560250097-0b93528c311a?w=400",
		Approved: true,
	},
	{
		Name:     "Elena Torres",
		Role:     "First-time Buyer",
		Content:  "Patient with every question we had. We never felt rushed into an offer.",
		Rating:   4,
		Image:    "https://images.unsplash.com/photo-1580489944761-15a19d654956?w=400",
		Approved: true,
	},
	{
		Name:     "Daniel Kim",
		Role:     "Seller",
		Content:  "Sold above asking in eleven days.",
		Rating:   5,
		Image:    "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400",
		Approved: false,
	},
}

// Load inserts the demo dataset through the repository layer so both
// backends receive identically stamped records. The agent is inserted first
// and its generated id becomes the soft reference on every property.
func Load(ctx context.Context, store *repository.Store, log *logger.Logger) error {
	storedAgent, err := store.Agents.Insert(ctx, &agent)
	if err != nil {
		return fmt.Errorf("failed to seed agent: %w", err)
	}
	log.Info("Seeded agent", map[string]interface{}{
		"id":   storedAgent.ID,
		"name": storedAgent.Name,
	})

	for i := range properties {
		property := properties[i]
		property.Agent = storedAgent.ID
		if _, err := store.Properties.Insert(ctx, &property); err != nil {
			return fmt.Errorf("failed to seed property %q: %w", property.Title, err)
		}
	}
	log.Info("Seeded properties", map[string]interface{}{
		"count": len(properties),
	})

	for i := range testimonials {
		testimonial := testimonials[i]
		if _, err := store.Testimonials.Insert(ctx, &testimonial); err != nil {
			return fmt.Errorf("failed to seed testimonial from %q: %w", testimonial.Name, err)
		}
	}
	log.Info("Seeded testimonials", map[string]interface{}{
		"count": len(testimonials),
	})

	return nil
}

// WipePostgres clears the seeded tables. Properties go first so the agent
// foreign key never blocks the delete.
func WipePostgres(ctx context.Context, db *gorm.DB) error {
	for _, table := range []string{"properties", "agents", "testimonials"} {
		if err := db.WithContext(ctx).Exec("DELETE FROM " + table).Error; err != nil {
			return fmt.Errorf("failed to clear table %s: %w", table, err)
		}
	}
	return nil
}

// WipeMongo drops the seeded collections.
func WipeMongo(ctx context.Context, db *mongo.Database) error {
	for _, name := range []string{
		mongostore.PropertiesCollection,
		mongostore.AgentsCollection,
		mongostore.TestimonialsCollection,
	} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			return fmt.Errorf("failed to drop collection %s: %w", name, err)
		}
	}
	return nil
}
