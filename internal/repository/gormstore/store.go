// Package gormstore is the relational persistence adapter, implemented with
// GORM. It works against PostgreSQL in production and SQLite in tests.
package gormstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/silfira/realty/api/internal/models"
	"github.com/silfira/realty/api/internal/repository"
	"gorm.io/gorm"
)

// New migrates the schema and returns a Store backed by the given database.
// Agents migrate first so the property foreign key has a target.
func New(db *gorm.DB) (*repository.Store, error) {
	if err := db.AutoMigrate(
		&agentRecord{},
		&propertyRecord{},
		&inquiryRecord{},
		&valuationRecord{},
		&testimonialRecord{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &repository.Store{
		Properties:   &propertyRepository{db: db},
		Agents:       &agentRepository{db: db},
		Inquiries:    &inquiryRepository{db: db},
		Valuations:   &valuationRepository{db: db},
		Testimonials: &testimonialRepository{db: db},
	}, nil
}

type propertyRepository struct {
	db *gorm.DB
}

func (r *propertyRepository) Insert(ctx context.Context, property *models.Property) (*models.Property, error) {
	rec := propertyToRecord(property)
	rec.ID = repository.NewID()
	now := repository.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	// GORM wraps the write in an implicit transaction: committed on
	// success, rolled back on error.
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}
	return propertyToEntity(&rec), nil
}

func (r *propertyRepository) FindByID(ctx context.Context, id string) (*models.Property, error) {
	var rec propertyRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find property %s: %w", id, err)
	}
	return propertyToEntity(&rec), nil
}

func (r *propertyRepository) Find(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error) {
	var recs []propertyRecord
	q := applyPropertyFilter(r.db.WithContext(ctx).Model(&propertyRecord{}), filter)
	if err := q.Order("created_at ASC, id ASC").Limit(repository.PropertyResultCap).Find(&recs).Error; err != nil {
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}

	properties := make([]models.Property, 0, len(recs))
	for i := range recs {
		properties = append(properties, *propertyToEntity(&recs[i]))
	}
	return properties, nil
}

func (r *propertyRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&propertyRecord{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count properties: %w", err)
	}
	return total, nil
}

// applyPropertyFilter translates the filter into chained WHERE clauses.
// Absent predicates add no clause; supplied predicates AND together.
func applyPropertyFilter(q *gorm.DB, filter repository.PropertyFilter) *gorm.DB {
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.Location != "" {
		q = q.Where(`LOWER(location) LIKE ? ESCAPE '\'`, "%"+escapeLike(strings.ToLower(filter.Location))+"%")
	}
	if filter.Featured != nil {
		q = q.Where("featured = ?", *filter.Featured)
	}
	return q
}

// escapeLike neutralizes LIKE pattern characters so the location filter is a
// literal substring match.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}

type agentRepository struct {
	db *gorm.DB
}

func (r *agentRepository) Insert(ctx context.Context, agent *models.Agent) (*models.Agent, error) {
	rec := agentToRecord(agent)
	rec.ID = repository.NewID()
	now := repository.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to insert agent: %w", err)
	}
	return agentToEntity(&rec), nil
}

func (r *agentRepository) FindByID(ctx context.Context, id string) (*models.Agent, error) {
	var rec agentRecord
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find agent %s: %w", id, err)
	}
	return agentToEntity(&rec), nil
}

func (r *agentRepository) Find(ctx context.Context) ([]models.Agent, error) {
	var recs []agentRecord
	err := r.db.WithContext(ctx).
		Order("created_at ASC, id ASC").
		Limit(repository.AgentResultCap).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}

	agents := make([]models.Agent, 0, len(recs))
	for i := range recs {
		agents = append(agents, *agentToEntity(&recs[i]))
	}
	return agents, nil
}

type inquiryRepository struct {
	db *gorm.DB
}

func (r *inquiryRepository) Insert(ctx context.Context, inquiry *models.Inquiry) (*models.Inquiry, error) {
	rec := inquiryToRecord(inquiry)
	rec.ID = repository.NewID()
	now := repository.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to insert inquiry: %w", err)
	}
	return inquiryToEntity(&rec), nil
}

func (r *inquiryRepository) Find(ctx context.Context) ([]models.Inquiry, error) {
	var recs []inquiryRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(repository.InquiryResultCap).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}

	inquiries := make([]models.Inquiry, 0, len(recs))
	for i := range recs {
		inquiries = append(inquiries, *inquiryToEntity(&recs[i]))
	}
	return inquiries, nil
}

type valuationRepository struct {
	db *gorm.DB
}

func (r *valuationRepository) Insert(ctx context.Context, valuation *models.Valuation) (*models.Valuation, error) {
	rec := valuationToRecord(valuation)
	rec.ID = repository.NewID()
	now := repository.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to insert valuation: %w", err)
	}
	return valuationToEntity(&rec), nil
}

func (r *valuationRepository) Find(ctx context.Context) ([]models.Valuation, error) {
	var recs []valuationRecord
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Limit(repository.ValuationResultCap).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query valuations: %w", err)
	}

	valuations := make([]models.Valuation, 0, len(recs))
	for i := range recs {
		valuations = append(valuations, *valuationToEntity(&recs[i]))
	}
	return valuations, nil
}

type testimonialRepository struct {
	db *gorm.DB
}

func (r *testimonialRepository) Insert(ctx context.Context, testimonial *models.Testimonial) (*models.Testimonial, error) {
	rec := testimonialToRecord(testimonial)
	rec.ID = repository.NewID()
	now := repository.Now()
	rec.CreatedAt = now
	rec.UpdatedAt = now
	if rec.Rating == 0 {
		rec.Rating = models.DefaultTestimonialRating
	}

	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, fmt.Errorf("failed to insert testimonial: %w", err)
	}
	return testimonialToEntity(&rec), nil
}

func (r *testimonialRepository) FindApproved(ctx context.Context) ([]models.Testimonial, error) {
	var recs []testimonialRecord
	err := r.db.WithContext(ctx).
		Where("approved = ?", true).
		Order("created_at ASC, id ASC").
		Limit(repository.TestimonialResultCap).
		Find(&recs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}

	testimonials := make([]models.Testimonial, 0, len(recs))
	for i := range recs {
		testimonials = append(testimonials, *testimonialToEntity(&recs[i]))
	}
	return testimonials, nil
}
