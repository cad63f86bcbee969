package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/silfira/realty/api/internal/httperr"
	"github.com/silfira/realty/api/internal/services"
)

// AgentHandler handles agent-related HTTP requests.
type AgentHandler struct {
	service services.AgentService
}

// NewAgentHandler creates a new AgentHandler instance.
func NewAgentHandler(service services.AgentService) *AgentHandler {
	return &AgentHandler{
		service: service,
	}
}

// List handles GET /api/v1/agents.
func (h *AgentHandler) List(c *gin.Context) {
	agents, err := h.service.ListAgents(c.Request.Context())
	if err != nil {
		httperr.InternalServerError(c, "Failed to query agents", err)
		return
	}

	c.JSON(http.StatusOK, agents)
}

// Get handles GET /api/v1/agents/:id.
func (h *AgentHandler) Get(c *gin.Context) {
	agent, err := h.service.GetAgent(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrAgentNotFound) {
			httperr.NotFound(c, "Agent not found")
			return
		}
		httperr.InternalServerError(c, "Failed to query agent", err)
		return
	}

	c.JSON(http.StatusOK, agent)
}
