// Package mongostore is the document persistence adapter. Entities are
// stored as self-describing documents with native array fields; no schema
// migration is required.
package mongostore

import (
	"context"
	"errors"
	"fmt"

	"github.com/silfira/realty/api/internal/models"
	"github.com/silfira/realty/api/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names.
const (
	PropertiesCollection   = "properties"
	AgentsCollection       = "agents"
	InquiriesCollection    = "inquiries"
	ValuationsCollection   = "valuations"
	TestimonialsCollection = "testimonials"
)

// Sort orders shared by the list reads. Insertion order is pinned by
// (created_at, _id) so results match the relational adapter exactly.
var (
	sortOldestFirst = bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}
	sortNewestFirst = bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}
)

// New returns a Store backed by the given Mongo database.
func New(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Properties:   &propertyRepository{col: db.Collection(PropertiesCollection)},
		Agents:       &agentRepository{col: db.Collection(AgentsCollection)},
		Inquiries:    &inquiryRepository{col: db.Collection(InquiriesCollection)},
		Valuations:   &valuationRepository{col: db.Collection(ValuationsCollection)},
		Testimonials: &testimonialRepository{col: db.Collection(TestimonialsCollection)},
	}
}

type propertyRepository struct {
	col *mongo.Collection
}

func (r *propertyRepository) Insert(ctx context.Context, property *models.Property) (*models.Property, error) {
	stored := *property
	stored.ID = repository.NewID()
	now := repository.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.Images = models.NormalizeList(stored.Images)
	stored.Features = models.NormalizeList(stored.Features)

	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}
	return &stored, nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	var property models.Property
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&property)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find property %s: %w", id, err)
	}
	normalizeProperty(&property)
	return &property, nil
}

func (r *propertyRepository) Find(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error) {
	opts := options.Find().
		SetSort(sortOldestFirst).
		SetLimit(repository.PropertyResultCap)

	cursor, err := r.col.Find(ctx, buildPropertyFilter(filter), opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}

	properties := []models.Property{}
	if err := cursor.All(ctx, &properties); err != nil {
		return nil, fmt.Errorf("failed to decode properties: %w", err)
	}
	for i := range properties {
		normalizeProperty(&properties[i])
	}
	return properties, nil
}

func (r *propertyRepository) Count(ctx context.Context) (int64, error) {
	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return total, nil
}

type agentRepository struct {
	col *mongo.Collection
}

func (r *agentRepository) Insert(ctx context.Context, agent *models.Agent) (*models.Agent, error) {
	stored := *agent
	stored.ID = repository.NewID()
	now := repository.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	stored.Specialties = models.NormalizeList(stored.Specialties)

	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, fmt.Errorf("failed to insert agent: %w", err)
	}
	return &stored, nil
}

func (r *agentRepository) FindByID(ctx context.Context, id string) (*models.Agent, error) {
	var agent models.Agent
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&agent)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find agent %s: %w", id, err)
	}
	normalizeAgent(&agent)
	return &agent, nil
}

func (r *agentRepository) Find(ctx context.Context) ([]models.Agent, error) {
	opts := options.Find().
		SetSort(sortOldestFirst).
		SetLimit(repository.AgentResultCap)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}

	agents := []models.Agent{}
	if err := cursor.All(ctx, &agents); err != nil {
		return nil, fmt.Errorf("failed to decode agents: %w", err)
	}
	for i := range agents {
		normalizeAgent(&agents[i])
	}
	return agents, nil
}

type inquiryRepository struct {
	col *mongo.Collection
}

func (r *inquiryRepository) Insert(ctx context.Context, inquiry *models.Inquiry) (*models.Inquiry, error) {
	stored := *inquiry
	stored.ID = repository.NewID()
	now := repository.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return &stored, nil
}

func (r *inquiryRepository) Find(ctx context.Context) ([]models.Inquiry, error) {
	opts := options.Find().
		SetSort(sortNewestFirst).
		SetLimit(repository.InquiryResultCap)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}

	inquiries := []models.Inquiry{}
	if err := cursor.All(ctx, &inquiries); err != nil {
		return nil, fmt.Errorf("failed to decode inquiries: %w", err)
	}
	for i := range inquiries {
		inquiries[i].CreatedAt = inquiries[i].CreatedAt.UTC()
		inquiries[i].UpdatedAt = inquiries[i].UpdatedAt.UTC()
	}
	return inquiries, nil
}

type valuationRepository struct {
	col *mongo.Collection
}

func (r *valuationRepository) Insert(ctx context.Context, valuation *models.Valuation) (*models.Valuation, error) {
	stored := *valuation
	stored.ID = repository.NewID()
	now := repository.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, fmt.Errorf("failed to insert valuation: %w", err)
	}
	return &stored, nil
}

func (r *valuationRepository) Find(ctx context.Context) ([]models.Valuation, error) {
	opts := options.Find().
		SetSort(sortNewestFirst).
		SetLimit(repository.ValuationResultCap)

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query valuations: %w", err)
	}

	valuations := []models.Valuation{}
	if err := cursor.All(ctx, &valuations); err != nil {
		return nil, fmt.Errorf("failed to decode valuations: %w", err)
	}
	for i := range valuations {
		valuations[i].CreatedAt = valuations[i].CreatedAt.UTC()
		valuations[i].UpdatedAt = valuations[i].UpdatedAt.UTC()
	}
	return valuations, nil
}

type testimonialRepository struct {
	col *mongo.Collection
}

func (r *testimonialRepository) Insert(ctx context.Context, testimonial *models.Testimonial) (*models.Testimonial, error) {
	stored := *testimonial
	stored.ID = repository.NewID()
	now := repository.Now()
	stored.CreatedAt = now
	stored.UpdatedAt = now
	if stored.Rating == 0 {
		stored.Rating = models.DefaultTestimonialRating
	}

	if _, err := r.col.InsertOne(ctx, &stored); err != nil {
		return nil, fmt.Errorf("failed to insert testimonial: %w", err)
	}
	return &stored, nil
}

func (r *testimonialRepository) FindApproved(ctx context.Context) ([]models.Testimonial, error) {
	opts := options.Find().
		SetSort(sortOldestFirst).
		SetLimit(repository.TestimonialResultCap)

	cursor, err := r.col.Find(ctx, bson.M{"approved": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}

	testimonials := []models.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, fmt.Errorf("failed to decode testimonials: %w", err)
	}
	for i := range testimonials {
		testimonials[i].CreatedAt = testimonials[i].CreatedAt.UTC()
		testimonials[i].UpdatedAt = testimonials[i].UpdatedAt.UTC()
	}
	return testimonials, nil
}

// normalizeProperty repairs driver decoding artifacts: list fields decode to
// nil when the stored array is empty or missing, and datetimes come back in
// the local zone.
func normalizeProperty(p *models.Property) {
	p.Images = models.NormalizeList(p.Images)
	p.Features = models.NormalizeList(p.Features)
	p.CreatedAt = p.CreatedAt.UTC()
	p.UpdatedAt = p.UpdatedAt.UTC()
}

func normalizeAgent(a *models.Agent) {
	a.Specialties = models.NormalizeList(a.Specialties)
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
}
