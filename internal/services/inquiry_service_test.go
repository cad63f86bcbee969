package services

import (
	"context"
	"errors"
	"testing"

	"github.com/silfira/realty/api/internal/logger"
	"github.com/silfira/realty/api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockInquiryRepository is a mock implementation of InquiryRepository for testing
type MockInquiryRepository struct {
	mock.Mock
}

func (m *MockInquiryRepository) Insert(ctx context.Context, inquiry *models.Inquiry) (*models.Inquiry, error) {
	args := m.Called(ctx, inquiry)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Inquiry), args.Error(1)
}

func (m *MockInquiryRepository) Find(ctx context.Context) ([]models.Inquiry, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Inquiry), args.Error(1)
}

func TestSubmitInquiry_ForcesNewStatus(t *testing.T) {
	mockRepo := new(MockInquiryRepository)
	log := logger.New("test")
	service := NewInquiryService(mockRepo, log)

	ctx := context.Background()
	propertyID := "p1"
	input := models.InquiryCreate{
		PropertyID: &propertyID,
		Name:       "Priya Shah",
		Email:      "priya@example.com",
		Phone:      "+1 555 0100",
		Message:    "Is this still available?",
		Type:       models.InquiryTypeProperty,
	}

	mockRepo.On("Insert", ctx, mock.MatchedBy(func(i *models.Inquiry) bool {
		return i.Status == models.InquiryStatusNew && i.Type == models.InquiryTypeProperty
	})).Return(&models.Inquiry{ID: "i1", Status: models.InquiryStatusNew}, nil)

	inquiry, err := service.SubmitInquiry(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, models.InquiryStatusNew, inquiry.Status)
	mockRepo.AssertExpectations(t)
}

func TestSubmitInquiry_DefaultsTypeToGeneral(t *testing.T) {
	mockRepo := new(MockInquiryRepository)
	log := logger.New("test")
	service := NewInquiryService(mockRepo, log)

	ctx := context.Background()
	input := models.InquiryCreate{
		Name:    "Marcus Webb",
		Email:   "marcus@example.com",
		Phone:   "+1 555 0101",
		Message: "Please call me back.",
		// Type omitted
	}

	mockRepo.On("Insert", ctx, mock.MatchedBy(func(i *models.Inquiry) bool {
		return i.Type == models.InquiryTypeGeneral && i.Status == models.InquiryStatusNew
	})).Return(&models.Inquiry{ID: "i1", Type: models.InquiryTypeGeneral, Status: models.InquiryStatusNew}, nil)

	inquiry, err := service.SubmitInquiry(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, models.InquiryTypeGeneral, inquiry.Type)
	mockRepo.AssertExpectations(t)
}

func TestSubmitInquiry_RepositoryError(t *testing.T) {
	mockRepo := new(MockInquiryRepository)
	log := logger.New("test")
	service := NewInquiryService(mockRepo, log)

	ctx := context.Background()
	dbError := errors.New("insert failed")
	mockRepo.On("Insert", ctx, mock.Anything).Return(nil, dbError)

	inquiry, err := service.SubmitInquiry(ctx, models.InquiryCreate{Name: "x"})

	assert.Error(t, err)
	assert.Nil(t, inquiry)
	assert.ErrorIs(t, err, dbError)
	mockRepo.AssertExpectations(t)
}

func TestListInquiries_Success(t *testing.T) {
	mockRepo := new(MockInquiryRepository)
	log := logger.New("test")
	service := NewInquiryService(mockRepo, log)

	ctx := context.Background()
	expected := []models.Inquiry{
		{ID: "i2", Status: models.InquiryStatusNew},
		{ID: "i1", Status: models.InquiryStatusContacted},
	}
	mockRepo.On("Find", ctx).Return(expected, nil)

	inquiries, err := service.ListInquiries(ctx)

	require.NoError(t, err)
	assert.Equal(t, expected, inquiries)
	mockRepo.AssertExpectations(t)
}

func TestListInquiries_RepositoryError(t *testing.T) {
	mockRepo := new(MockInquiryRepository)
	log := logger.New("test")
	service := NewInquiryService(mockRepo, log)

	ctx := context.Background()
	dbError := errors.New("database connection failed")
	mockRepo.On("Find", ctx).Return(nil, dbError)

	inquiries, err := service.ListInquiries(ctx)

	assert.Error(t, err)
	assert.Nil(t, inquiries)
	assert.ErrorIs(t, err, dbError)
	mockRepo.AssertExpectations(t)
}
