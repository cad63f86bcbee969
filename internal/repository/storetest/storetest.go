// Package storetest is a conformance suite for the repository contract. Both
// persistence adapters run the same suite, which is what keeps their
// API-visible behavior identical: stamping, ordering, filtering, and the
// (nil, nil) miss convention are asserted here once.
package storetest

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/silfira/realty/api/internal/models"
	"github.com/silfira/realty/api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns a fresh, empty store for one test.
type Factory func(t *testing.T) *repository.Store

// Run executes the full conformance suite against stores produced by the
// factory.
func Run(t *testing.T, newStore Factory) {
	t.Run("PropertyInsertStampsRecord", func(t *testing.T) { testPropertyInsertStamps(t, newStore(t)) })
	t.Run("PropertyFindByID", func(t *testing.T) { testPropertyFindByID(t, newStore(t)) })
	t.Run("PropertyFindByIDMissing", func(t *testing.T) { testPropertyFindByIDMissing(t, newStore(t)) })
	t.Run("PropertyFindAll", func(t *testing.T) { testPropertyFindAll(t, newStore(t)) })
	t.Run("PropertyFilters", func(t *testing.T) { testPropertyFilters(t, newStore(t)) })
	t.Run("PropertyLocationFilter", func(t *testing.T) { testPropertyLocationFilter(t, newStore(t)) })
	t.Run("PropertyCount", func(t *testing.T) { testPropertyCount(t, newStore(t)) })
	t.Run("AgentInsertAndFind", func(t *testing.T) { testAgentInsertAndFind(t, newStore(t)) })
	t.Run("AgentFindByIDMissing", func(t *testing.T) { testAgentFindByIDMissing(t, newStore(t)) })
	t.Run("InquiryNewestFirst", func(t *testing.T) { testInquiryNewestFirst(t, newStore(t)) })
	t.Run("ValuationNewestFirst", func(t *testing.T) { testValuationNewestFirst(t, newStore(t)) })
	t.Run("TestimonialApprovedOnly", func(t *testing.T) { testTestimonialApprovedOnly(t, newStore(t)) })
	t.Run("TestimonialDefaultRating", func(t *testing.T) { testTestimonialDefaultRating(t, newStore(t)) })
}

func seedAgent(t *testing.T, store *repository.Store) *models.Agent {
	t.Helper()
	agent, err := store.Agents.Insert(context.Background(), &models.Agent{
		Name:        "Rohan Darji",
		Title:       "Principal Agent",
		Email:       "rohan@example.com",
		Phone:       "+1 555 0100",
		Bio:         "Bay Area luxury specialist.",
		Specialties: []string{"Luxury Homes"},
		Listings:    10,
	})
	require.NoError(t, err)
	return agent
}

func sampleProperty(agentID string) *models.Property {
	return &models.Property{
		Title:       "Oceanview Modern Villa",
		Type:        models.PropertyTypeVilla,
		Status:      models.PropertyStatusForSale,
		Price:       4850000,
		Location:    "Sausalito, CA",
		Bedrooms:    5,
		Bathrooms:   4,
		Area:        4200,
		Image:       "https://example.com/villa.jpg",
		Images:      []string{"https://example.com/villa-1.jpg"},
		Description: "Bay views from every level.",
		Features:    []string{"Infinity Pool", "Wine Cellar"},
		Agent:       agentID,
		Featured:    true,
	}
}

func insertProperty(t *testing.T, store *repository.Store, mutate func(*models.Property)) *models.Property {
	t.Helper()
	property := sampleProperty("")
	if mutate != nil {
		mutate(property)
	}
	stored, err := store.Properties.Insert(context.Background(), property)
	require.NoError(t, err)
	return stored
}

func testPropertyInsertStamps(t *testing.T, store *repository.Store) {
	agent := seedAgent(t, store)
	stored := insertProperty(t, store, func(p *models.Property) { p.Agent = agent.ID })

	assert.NotEmpty(t, stored.ID)
	assert.False(t, stored.CreatedAt.IsZero())
	assert.Equal(t, stored.CreatedAt, stored.UpdatedAt, "created_at and updated_at must match at insertion")
	assert.Equal(t, time.UTC, stored.CreatedAt.Location())
	assert.Equal(t, stored.CreatedAt, stored.CreatedAt.Truncate(time.Millisecond), "timestamps carry millisecond precision")

	// Two inserts never share an id
	second := insertProperty(t, store, func(p *models.Property) { p.Agent = agent.ID })
	assert.NotEqual(t, stored.ID, second.ID)
}

func testPropertyFindByID(t *testing.T, store *repository.Store) {
	agent := seedAgent(t, store)
	stored := insertProperty(t, store, func(p *models.Property) { p.Agent = agent.ID })

	found, err := store.Properties.FindByID(context.Background(), stored.ID)
	require.NoError(t, err)
	require.NotNil(t, found)

	assert.Equal(t, stored.ID, found.ID)
	assert.Equal(t, stored.Title, found.Title)
	assert.Equal(t, stored.Price, found.Price)
	assert.Equal(t, stored.Agent, found.Agent)
	assert.Equal(t, []string{"https://example.com/villa-1.jpg"}, found.Images)
	assert.Equal(t, []string{"Infinity Pool", "Wine Cellar"}, found.Features)
	assert.Equal(t, stored.CreatedAt, found.CreatedAt, "timestamps round-trip exactly")
	assert.Equal(t, stored.UpdatedAt, found.UpdatedAt)
}

func testPropertyFindByIDMissing(t *testing.T, store *repository.Store) {
	found, err := store.Properties.FindByID(context.Background(), "no-such-id")
	require.NoError(t, err, "a miss is not an error")
	assert.Nil(t, found)
}

func testPropertyFindAll(t *testing.T, store *repository.Store) {
	agent := seedAgent(t, store)

	stored := make([]*models.Property, 0, 3)
	for i := 0; i < 3; i++ {
		stored = append(stored, insertProperty(t, store, func(p *models.Property) {
			p.Agent = agent.ID
			p.Title = fmt.Sprintf("Listing %d", i)
		}))
		time.Sleep(2 * time.Millisecond)
	}
	// Inserts usually land on distinct milliseconds, but a coarse clock can
	// collapse two of them; the id tie-break keeps the order well-defined
	// either way, so assert against the (created_at, id) expectation.
	expected := oldestFirstIDs(stored)

	properties, err := store.Properties.Find(context.Background(), repository.PropertyFilter{})
	require.NoError(t, err)
	require.Len(t, properties, 3)

	for i, property := range properties {
		assert.Equal(t, expected[i], property.ID, "oldest first")
		assert.NotNil(t, property.Images)
		assert.NotNil(t, property.Features)
	}
}

// oldestFirstIDs returns the ids sorted the way list reads are pinned:
// created_at ascending with id as the tie-break.
func oldestFirstIDs(properties []*models.Property) []string {
	sorted := make([]*models.Property, len(properties))
	copy(sorted, properties)
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].CreatedAt.Equal(sorted[j].CreatedAt) {
			return sorted[i].CreatedAt.Before(sorted[j].CreatedAt)
		}
		return sorted[i].ID < sorted[j].ID
	})

	ids := make([]string, len(sorted))
	for i, p := range sorted {
		ids[i] = p.ID
	}
	return ids
}

func testPropertyFilters(t *testing.T, store *repository.Store) {
	agent := seedAgent(t, store)
	ctx := context.Background()

	insertProperty(t, store, func(p *models.Property) {
		p.Agent = agent.ID
		p.Title = "Villa"
		p.Type = models.PropertyTypeVilla
		p.Status = models.PropertyStatusForSale
		p.Price = 4000000
		p.Featured = true
	})
	insertProperty(t, store, func(p *models.Property) {
		p.Agent = agent.ID
		p.Title = "Loft"
		p.Type = models.PropertyTypeLoft
		p.Status = models.PropertyStatusForRent
		p.Price = 6500
		p.Featured = false
	})
	insertProperty(t, store, func(p *models.Property) {
		p.Agent = agent.ID
		p.Title = "House"
		p.Type = models.PropertyTypeHouse
		p.Status = models.PropertyStatusForSale
		p.Price = 1850000
		p.Featured = false
	})

	fptr := func(f float64) *float64 { return &f }
	bptr := func(b bool) *bool { return &b }

	tests := []struct {
		name   string
		filter repository.PropertyFilter
		titles []string
	}{
		{
			name:   "by type",
			filter: repository.PropertyFilter{Type: models.PropertyTypeVilla},
			titles: []string{"Villa"},
		},
		{
			name:   "by status",
			filter: repository.PropertyFilter{Status: models.PropertyStatusForSale},
			titles: []string{"Villa", "House"},
		},
		{
			name:   "min price is inclusive",
			filter: repository.PropertyFilter{MinPrice: fptr(1850000)},
			titles: []string{"Villa", "House"},
		},
		{
			name:   "max price is inclusive",
			filter: repository.PropertyFilter{MaxPrice: fptr(6500)},
			titles: []string{"Loft"},
		},
		{
			name:   "price range",
			filter: repository.PropertyFilter{MinPrice: fptr(1000000), MaxPrice: fptr(2000000)},
			titles: []string{"House"},
		},
		{
			name:   "featured true",
			filter: repository.PropertyFilter{Featured: bptr(true)},
			titles: []string{"Villa"},
		},
		{
			name:   "featured false is a constraint, not absence",
			filter: repository.PropertyFilter{Featured: bptr(false)},
			titles: []string{"Loft", "House"},
		},
		{
			name: "combined predicates AND together",
			filter: repository.PropertyFilter{
				Status:   models.PropertyStatusForSale,
				MinPrice: fptr(2000000),
			},
			titles: []string{"Villa"},
		},
		{
			name:   "no match yields empty list",
			filter: repository.PropertyFilter{Type: models.PropertyTypePenthouse},
			titles: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			properties, err := store.Properties.Find(ctx, tt.filter)
			require.NoError(t, err)
			require.NotNil(t, properties)

			titles := make([]string, 0, len(properties))
			for _, p := range properties {
				titles = append(titles, p.Title)
			}
			assert.ElementsMatch(t, tt.titles, titles)
		})
	}
}

func testPropertyLocationFilter(t *testing.T, store *repository.Store) {
	agent := seedAgent(t, store)
	ctx := context.Background()

	insertProperty(t, store, func(p *models.Property) {
		p.Agent = agent.ID
		p.Title = "SF Penthouse"
		p.Location = "San Francisco, CA"
	})
	insertProperty(t, store, func(p *models.Property) {
		p.Agent = agent.ID
		p.Title = "Oakland Loft"
		p.Location = "Oakland, CA"
	})

	tests := []struct {
		name     string
		location string
		titles   []string
	}{
		{
			name:     "case-insensitive substring",
			location: "francisco",
			titles:   []string{"SF Penthouse"},
		},
		{
			name:     "uppercase input",
			location: "OAKLAND",
			titles:   []string{"Oakland Loft"},
		},
		{
			name:     "shared suffix matches both",
			location: ", ca",
			titles:   []string{"SF Penthouse", "Oakland Loft"},
		},
		{
			name:     "pattern metacharacters match literally",
			location: "100% Main_St",
			titles:   []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			properties, err := store.Properties.Find(ctx, repository.PropertyFilter{Location: tt.location})
			require.NoError(t, err)

			titles := make([]string, 0, len(properties))
			for _, p := range properties {
				titles = append(titles, p.Title)
			}
			assert.ElementsMatch(t, tt.titles, titles)
		})
	}
}

func testPropertyCount(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	total, err := store.Properties.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), total)

	agent := seedAgent(t, store)
	insertProperty(t, store, func(p *models.Property) { p.Agent = agent.ID })
	insertProperty(t, store, func(p *models.Property) { p.Agent = agent.ID })

	total, err = store.Properties.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
}

func testAgentInsertAndFind(t *testing.T, store *repository.Store) {
	ctx := context.Background()
	agent := seedAgent(t, store)

	assert.NotEmpty(t, agent.ID)
	assert.Equal(t, agent.CreatedAt, agent.UpdatedAt)

	found, err := store.Agents.FindByID(ctx, agent.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, agent.Name, found.Name)
	assert.Equal(t, []string{"Luxury Homes"}, found.Specialties)
	assert.Equal(t, 10, found.Listings)

	agents, err := store.Agents.Find(ctx)
	require.NoError(t, err)
	require.Len(t, agents, 1)
	assert.Equal(t, agent.ID, agents[0].ID)
}

func testAgentFindByIDMissing(t *testing.T, store *repository.Store) {
	found, err := store.Agents.FindByID(context.Background(), "no-such-id")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func testInquiryNewestFirst(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	stored := make([]*models.Inquiry, 0, 3)
	for i := 0; i < 3; i++ {
		inserted, err := store.Inquiries.Insert(ctx, &models.Inquiry{
			Name:    fmt.Sprintf("Customer %d", i),
			Email:   "customer@example.com",
			Phone:   "+1 555 0100",
			Message: "Interested in a viewing.",
			Type:    models.InquiryTypeGeneral,
			Status:  models.InquiryStatusNew,
		})
		require.NoError(t, err)
		stored = append(stored, inserted)
		time.Sleep(2 * time.Millisecond)
	}
	sort.Slice(stored, func(i, j int) bool {
		if !stored[i].CreatedAt.Equal(stored[j].CreatedAt) {
			return stored[i].CreatedAt.After(stored[j].CreatedAt)
		}
		return stored[i].ID > stored[j].ID
	})

	inquiries, err := store.Inquiries.Find(ctx)
	require.NoError(t, err)
	require.Len(t, inquiries, 3)

	for i, inquiry := range inquiries {
		assert.Equal(t, stored[i].ID, inquiry.ID, "newest first")
	}
}

func testValuationNewestFirst(t *testing.T, store *repository.Store) {
	ctx := context.Background()
	year := 1998

	stored := make([]*models.Valuation, 0, 2)
	for i := 0; i < 2; i++ {
		inserted, err := store.Valuations.Insert(ctx, &models.Valuation{
			Name:         fmt.Sprintf("Owner %d", i),
			Email:        "owner@example.com",
			Phone:        "+1 555 0100",
			PropertyType: "house",
			Address:      "12 Elm St, Berkeley, CA",
			Bedrooms:     3,
			Bathrooms:    2,
			Area:         1800,
			YearBuilt:    &year,
			Status:       models.ValuationStatusPending,
		})
		require.NoError(t, err)
		stored = append(stored, inserted)
		time.Sleep(2 * time.Millisecond)
	}
	sort.Slice(stored, func(i, j int) bool {
		if !stored[i].CreatedAt.Equal(stored[j].CreatedAt) {
			return stored[i].CreatedAt.After(stored[j].CreatedAt)
		}
		return stored[i].ID > stored[j].ID
	})

	valuations, err := store.Valuations.Find(ctx)
	require.NoError(t, err)
	require.Len(t, valuations, 2)

	assert.Equal(t, stored[0].ID, valuations[0].ID, "newest first")
	assert.Equal(t, stored[1].ID, valuations[1].ID)
	require.NotNil(t, valuations[0].YearBuilt)
	assert.Equal(t, year, *valuations[0].YearBuilt)
	assert.Nil(t, valuations[0].AdditionalInfo)
}

func testTestimonialApprovedOnly(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	approved, err := store.Testimonials.Insert(ctx, &models.Testimonial{
		Name:     "Priya Shah",
		Role:     "Homeowner",
		Content:  "Found us the perfect home.",
		Rating:   5,
		Approved: true,
	})
	require.NoError(t, err)

	_, err = store.Testimonials.Insert(ctx, &models.Testimonial{
		Name:     "Daniel Kim",
		Role:     "Seller",
		Content:  "Pending moderation.",
		Rating:   4,
		Approved: false,
	})
	require.NoError(t, err)

	testimonials, err := store.Testimonials.FindApproved(ctx)
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, approved.ID, testimonials[0].ID)
	assert.True(t, testimonials[0].Approved)
}

func testTestimonialDefaultRating(t *testing.T, store *repository.Store) {
	ctx := context.Background()

	stored, err := store.Testimonials.Insert(ctx, &models.Testimonial{
		Name:     "Elena Torres",
		Role:     "Buyer",
		Content:  "Smooth closing from start to finish.",
		Approved: true,
	})
	require.NoError(t, err)
	assert.Equal(t, models.DefaultTestimonialRating, stored.Rating, "omitted rating defaults on insert")

	testimonials, err := store.Testimonials.FindApproved(ctx)
	require.NoError(t, err)
	require.Len(t, testimonials, 1)
	assert.Equal(t, models.DefaultTestimonialRating, testimonials[0].Rating, "default survives a read back")

	// An explicit rating is never overwritten
	rated, err := store.Testimonials.Insert(ctx, &models.Testimonial{
		Name:     "Marcus Webb",
		Role:     "Investor",
		Content:  "Solid guidance on the rental market.",
		Rating:   4,
		Approved: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 4, rated.Rating)
}
