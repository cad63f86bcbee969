package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/silfira/realty/api/internal/logger"
	"github.com/silfira/realty/api/internal/models"
	"github.com/silfira/realty/api/internal/repository"
)

// Service-level errors
var (
	ErrPropertyNotFound = errors.New("property not found")
	ErrAgentNotFound    = errors.New("agent not found")
)

// Fixed business figures returned by the statistics endpoint. Only the
// property total is computed.
const (
	StatsTotalSales      = 2500
	StatsTotalClients    = 1800
	StatsYearsExperience = 25
)

// PropertyService defines the business logic for property listings and the
// statistics endpoint.
type PropertyService interface {
	// ListProperties returns the properties matching the conjunction of the
	// supplied filter predicates.
	ListProperties(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error)

	// GetProperty returns the property with the given id.
	// Returns ErrPropertyNotFound if no such property exists.
	GetProperty(ctx context.Context, id string) (*models.Property, error)

	// CreateProperty persists a new property from validated creation input
	// and returns the stored form.
	CreateProperty(ctx context.Context, input models.PropertyCreate) (*models.Property, error)

	// GetStats returns the website statistics.
	GetStats(ctx context.Context) (*models.Stats, error)
}

type propertyService struct {
	repo repository.PropertyRepository
	log  *logger.Logger
}

// NewPropertyService creates a new instance of PropertyService.
func NewPropertyService(repo repository.PropertyRepository, log *logger.Logger) PropertyService {
	return &propertyService{
		repo: repo,
		log:  log,
	}
}

func (s *propertyService) ListProperties(ctx context.Context, filter repository.PropertyFilter) ([]models.Property, error) {
	properties, err := s.repo.Find(ctx, filter)
	if err != nil {
		s.log.Error("Failed to query properties", err, nil)
		return nil, fmt.Errorf("failed to query properties: %w", err)
	}
	return properties, nil
}

func (s *propertyService) GetProperty(ctx context.Context, id string) (*models.Property, error) {
	property, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to query property", err, map[string]interface{}{"id": id})
		return nil, fmt.Errorf("failed to query property: %w", err)
	}
	if property == nil {
		return nil, ErrPropertyNotFound
	}
	return property, nil
}

func (s *propertyService) CreateProperty(ctx context.Context, input models.PropertyCreate) (*models.Property, error) {
	property, err := s.repo.Insert(ctx, input.Entity())
	if err != nil {
		s.log.Error("Failed to insert property", err, map[string]interface{}{
			"title": input.Title,
		})
		return nil, fmt.Errorf("failed to insert property: %w", err)
	}

	s.log.Info("Property created", map[string]interface{}{
		"id":    property.ID,
		"type":  property.Type,
		"price": property.Price,
	})
	return property, nil
}

func (s *propertyService) GetStats(ctx context.Context) (*models.Stats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		s.log.Error("Failed to count properties", err, nil)
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}

	return &models.Stats{
		TotalProperties: total,
		TotalSales:      StatsTotalSales,
		TotalClients:    StatsTotalClients,
		YearsExperience: StatsYearsExperience,
	}, nil
}
