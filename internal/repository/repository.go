// Package repository defines the uniform data-access contract implemented by
// both persistence backends (gormstore for PostgreSQL, mongostore for
// MongoDB). Both implementations must produce identical API-visible results
// for every operation, including ordering and decoded list-field contents.
package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/silfira/realty/api/internal/models"
)

// Hard result ceilings for list reads. These are not pagination; callers
// cannot request records beyond the cap.
const (
	PropertyResultCap    = 1000
	AgentResultCap       = 100
	InquiryResultCap     = 1000
	ValuationResultCap   = 1000
	TestimonialResultCap = 100
)

// PropertyFilter carries the optional query predicates for property reads.
// Zero-valued string fields and nil pointers impose no constraint; all
// supplied predicates combine with logical AND.
type PropertyFilter struct {
	// Type and Status match exactly against their enumerated value sets.
	// Invalid enum values are rejected at the input-validation boundary
	// before a filter is ever built.
	Type   string
	Status string

	// Location matches as a case-insensitive substring.
	Location string

	// MinPrice and MaxPrice are inclusive bounds; either or both may be set.
	MinPrice *float64
	MaxPrice *float64

	// Featured distinguishes "featured=false" from "no constraint" (nil).
	Featured *bool
}

// PropertyRepository is the data-access contract for properties.
// FindByID returns (nil, nil) when no record matches; errors are reserved
// for actual persistence failures.
type PropertyRepository interface {
	Insert(ctx context.Context, property *models.Property) (*models.Property, error)
	FindByID(ctx context.Context, id string) (*models.Property, error)
	Find(ctx context.Context, filter PropertyFilter) ([]models.Property, error)
	Count(ctx context.Context) (int64, error)
}

// AgentRepository is the data-access contract for agents.
type AgentRepository interface {
	Insert(ctx context.Context, agent *models.Agent) (*models.Agent, error)
	FindByID(ctx context.Context, id string) (*models.Agent, error)
	Find(ctx context.Context) ([]models.Agent, error)
}

// InquiryRepository is the data-access contract for inquiries.
// Find returns newest-first; admin consumers expect a reverse-chronological
// review queue.
type InquiryRepository interface {
	Insert(ctx context.Context, inquiry *models.Inquiry) (*models.Inquiry, error)
	Find(ctx context.Context) ([]models.Inquiry, error)
}

// ValuationRepository is the data-access contract for valuation requests.
// Find returns newest-first.
type ValuationRepository interface {
	Insert(ctx context.Context, valuation *models.Valuation) (*models.Valuation, error)
	Find(ctx context.Context) ([]models.Valuation, error)
}

// TestimonialRepository is the data-access contract for testimonials.
// FindApproved never returns unapproved records.
type TestimonialRepository interface {
	Insert(ctx context.Context, testimonial *models.Testimonial) (*models.Testimonial, error)
	FindApproved(ctx context.Context) ([]models.Testimonial, error)
}

// Store bundles the per-entity repositories for one backend.
type Store struct {
	Properties   PropertyRepository
	Agents       AgentRepository
	Inquiries    InquiryRepository
	Valuations   ValuationRepository
	Testimonials TestimonialRepository
}

// NewID returns a new opaque unique identifier for a stored record.
func NewID() string {
	return uuid.New().String()
}

// Now returns the timestamp stamped onto records at insertion: UTC,
// truncated to millisecond precision so a value round-trips identically
// through MongoDB's millisecond datetimes and SQL timestamp columns.
func Now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}
