package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kusasa/backend/catalog"
	"github.com/kusasa/backend/models"
	"github.com/kusasa/backend/tools"
)

// Version is reported by the health check
const Version = "1.0.0"

// SystemHandler serves health and tool introspection
type SystemHandler struct {
	catalog  *catalog.Catalog
	registry *tools.ToolRegistry
}

// NewSystemHandler creates a new system handler
func NewSystemHandler(cat *catalog.Catalog, registry *tools.ToolRegistry) *SystemHandler {
	return &SystemHandler{
		catalog:  cat,
		registry: registry,
	}
}

// HealthCheck returns server health status
// @Summary Health check
// @Description Check if the server is running and healthy
// @Tags System
// @Produce json
// @Success 200 {object} models.HealthResponse "Server is healthy"
// @Router /health [get]
func (h *SystemHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "healthy",
		Version:   Version,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Jobs:      h.catalog.Len(),
	})
}

// GetTools returns available MCP tools
// @Summary List available tools
// @Description Get a list of all available MCP tools for AI agents
// @Tags Tools
// @Produce json
// @Success 200 {object} map[string]interface{} "List of tools"
// @Router /tools [get]
func (h *SystemHandler) GetTools(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tools": h.registry.GetToolDefinitions(),
	})
}
