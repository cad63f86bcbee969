package services

import (
	"context"
	"fmt"

	"github.com/silfira/realty/api/internal/logger"
	"github.com/silfira/realty/api/internal/models"
	"github.com/silfira/realty/api/internal/repository"
)

// ValuationService defines the business logic for valuation requests.
type ValuationService interface {
	// SubmitValuation persists a new valuation request. The status is always
	// forced to "pending"; the create input cannot carry one.
	SubmitValuation(ctx context.Context, input models.ValuationCreate) (*models.Valuation, error)

	// ListValuations returns all valuation requests, newest first.
	ListValuations(ctx context.Context) ([]models.Valuation, error)
}

type valuationService struct {
	repo repository.ValuationRepository
	log  *logger.Logger
}

// NewValuationService creates a new instance of ValuationService.
func NewValuationService(repo repository.ValuationRepository, log *logger.Logger) ValuationService {
	return &valuationService{
		repo: repo,
		log:  log,
	}
}

func (s *valuationService) SubmitValuation(ctx context.Context, input models.ValuationCreate) (*models.Valuation, error) {
	valuation := &models.Valuation{
		Name:           input.Name,
		Email:          input.Email,
		Phone:          input.Phone,
		PropertyType:   input.PropertyType,
		Address:        input.Address,
		Bedrooms:       input.Bedrooms,
		Bathrooms:      input.Bathrooms,
		Area:           input.Area,
		YearBuilt:      input.YearBuilt,
		AdditionalInfo: input.AdditionalInfo,
		Status:         models.ValuationStatusPending,
	}

	stored, err := s.repo.Insert(ctx, valuation)
	if err != nil {
		s.log.Error("Failed to insert valuation", err, map[string]interface{}{
			"property_type": input.PropertyType,
		})
		return nil, fmt.Errorf("failed to insert valuation: %w", err)
	}

	s.log.Info("Valuation submitted", map[string]interface{}{
		"id": stored.ID,
	})
	return stored, nil
}

func (s *valuationService) ListValuations(ctx context.Context) ([]models.Valuation, error) {
	valuations, err := s.repo.Find(ctx)
	if err != nil {
		s.log.Error("Failed to query valuations", err, nil)
		return nil, fmt.Errorf("failed to query valuations: %w", err)
	}
	return valuations, nil
}
