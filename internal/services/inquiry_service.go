package services

import (
	"context"
	"fmt"

	"github.com/silfira/realty/api/internal/logger"
	"github.com/silfira/realty/api/internal/models"
	"github.com/silfira/realty/api/internal/repository"
)

// InquiryService defines the business logic for customer inquiries.
type InquiryService interface {
	// SubmitInquiry persists a new inquiry. The status is always forced to
	// "new" regardless of the input; the create input cannot carry one.
	SubmitInquiry(ctx context.Context, input models.InquiryCreate) (*models.Inquiry, error)

	// ListInquiries returns all inquiries, newest first.
	ListInquiries(ctx context.Context) ([]models.Inquiry, error)
}

type inquiryService struct {
	repo repository.InquiryRepository
	log  *logger.Logger
}

// NewInquiryService creates a new instance of InquiryService.
func NewInquiryService(repo repository.InquiryRepository, log *logger.Logger) InquiryService {
	return &inquiryService{
		repo: repo,
		log:  log,
	}
}

func (s *inquiryService) SubmitInquiry(ctx context.Context, input models.InquiryCreate) (*models.Inquiry, error) {
	inquiryType := input.Type
	if inquiryType == "" {
		inquiryType = models.InquiryTypeGeneral
	}

	inquiry := &models.Inquiry{
		PropertyID: input.PropertyID,
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Message:    input.Message,
		Type:       inquiryType,
		Status:     models.InquiryStatusNew,
	}

	stored, err := s.repo.Insert(ctx, inquiry)
	if err != nil {
		s.log.Error("Failed to insert inquiry", err, map[string]interface{}{
			"type": inquiryType,
		})
		return nil, fmt.Errorf("failed to insert inquiry: %w", err)
	}

	s.log.Info("Inquiry submitted", map[string]interface{}{
		"id":   stored.ID,
		"type": stored.Type,
	})
	return stored, nil
}

func (s *inquiryService) ListInquiries(ctx context.Context) ([]models.Inquiry, error) {
	inquiries, err := s.repo.Find(ctx)
	if err != nil {
		s.log.Error("Failed to query inquiries", err, nil)
		return nil, fmt.Errorf("failed to query inquiries: %w", err)
	}
	return inquiries, nil
}
