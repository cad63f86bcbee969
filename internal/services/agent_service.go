package services

import (
	"context"
	"fmt"

	"github.com/silfira/realty/api/internal/logger"
	"github.com/silfira/realty/api/internal/models"
	"github.com/silfira/realty/api/internal/repository"
)

// AgentService defines the business logic for agent profiles.
type AgentService interface {
	// ListAgents returns all agents.
	ListAgents(ctx context.Context) ([]models.Agent, error)

	// GetAgent returns the agent with the given id.
	// Returns ErrAgentNotFound if no such agent exists.
	GetAgent(ctx context.Context, id string) (*models.Agent, error)
}

type agentService struct {
	repo repository.AgentRepository
	log  *logger.Logger
}

// NewAgentService creates a new instance of AgentService.
func NewAgentService(repo repository.AgentRepository, log *logger.Logger) AgentService {
	return &agentService{
		repo: repo,
		log:  log,
	}
}

func (s *agentService) ListAgents(ctx context.Context) ([]models.Agent, error) {
	agents, err := s.repo.Find(ctx)
	if err != nil {
		s.log.Error("Failed to query agents", err, nil)
		return nil, fmt.Errorf("failed to query agents: %w", err)
	}
	return agents, nil
}

func (s *agentService) GetAgent(ctx context.Context, id string) (*models.Agent, error) {
	agent, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to query agent", err, map[string]interface{}{"id": id})
		return nil, fmt.Errorf("failed to query agent: %w", err)
	}
	if agent == nil {
		return nil, ErrAgentNotFound
	}
	return agent, nil
}
