package services

import (
	"context"
	"fmt"

	"github.com/silfira/realty/api/internal/logger"
	"github.com/silfira/realty/api/internal/models"
	"github.com/silfira/realty/api/internal/repository"
)

// TestimonialService defines the business logic for testimonials.
type TestimonialService interface {
	// ListApproved returns approved testimonials only; unapproved records
	// are never served.
	ListApproved(ctx context.Context) ([]models.Testimonial, error)
}

type testimonialService struct {
	repo repository.TestimonialRepository
	log  *logger.Logger
}

// NewTestimonialService creates a new instance of TestimonialService.
func NewTestimonialService(repo repository.TestimonialRepository, log *logger.Logger) TestimonialService {
	return &testimonialService{
		repo: repo,
		log:  log,
	}
}

func (s *testimonialService) ListApproved(ctx context.Context) ([]models.Testimonial, error) {
	testimonials, err := s.repo.FindApproved(ctx)
	if err != nil {
		s.log.Error("Failed to query testimonials", err, nil)
		return nil, fmt.Errorf("failed to query testimonials: %w", err)
	}
	return testimonials, nil
}
