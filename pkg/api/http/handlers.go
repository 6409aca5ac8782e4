package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// WelcomeMessage is returned by the root endpoint
const WelcomeMessage = "Welcome to the Production-Ready AI Service Template!"

// RootResponse represents the root endpoint response
type RootResponse struct {
	Message string `json:"message" jsonschema_description:"Welcome message"`
}

// HealthResponse represents a health check response
type HealthResponse struct {
	Status string `json:"status" jsonschema:"enum=ok" jsonschema_description:"Liveness status"`
}

// handleRoot handles requests to the service root
func (s *Server) handleRoot(c *gin.Context) {
	c.JSON(http.StatusOK, RootResponse{Message: WelcomeMessage})
}

// handleHealth handles health check requests.
// It reports process liveness only; dependency state is published over gRPC health.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, HealthResponse{Status: "ok"})
}
