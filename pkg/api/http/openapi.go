package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/invopop/jsonschema"
)

// OpenAPIDocument describes the public API
type OpenAPIDocument struct {
	OpenAPI string                     `json:"openapi"`
	Info    OpenAPIInfo                `json:"info"`
	Paths   map[string]OpenAPIPathItem `json:"paths"`
}

// OpenAPIInfo carries service metadata
type OpenAPIInfo struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Version     string `json:"version"`
}

// OpenAPIPathItem holds the operations of one path
type OpenAPIPathItem struct {
	Get *OpenAPIOperation `json:"get,omitempty"`
}

// OpenAPIOperation describes a single operation
type OpenAPIOperation struct {
	Summary     string                     `json:"summary"`
	OperationID string                     `json:"operationId"`
	Responses   map[string]OpenAPIResponse `json:"responses"`
}

// OpenAPIResponse describes one response status
type OpenAPIResponse struct {
	Description string                      `json:"description"`
	Content     map[string]OpenAPIMediaType `json:"content,omitempty"`
}

// OpenAPIMediaType binds a schema to a content type
type OpenAPIMediaType struct {
	Schema *jsonschema.Schema `json:"schema"`
}

func generateSchema[T any]() *jsonschema.Schema {
	r := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Anonymous:                 true,
	}
	var v T
	schema := r.Reflect(v)
	// OpenAPI embeds schemas, so the standalone dialect marker is dropped
	schema.Version = ""
	return schema
}

func jsonOperation(summary, operationID string, schema *jsonschema.Schema) *OpenAPIOperation {
	return &OpenAPIOperation{
		Summary:     summary,
		OperationID: operationID,
		Responses: map[string]OpenAPIResponse{
			"200": {
				Description: "Successful Response",
				Content: map[string]OpenAPIMediaType{
					"application/json": {Schema: schema},
				},
			},
		},
	}
}

// NewOpenAPIDocument builds the document for the routes registered by Server
func NewOpenAPIDocument(title, description, version string) *OpenAPIDocument {
	return &OpenAPIDocument{
		OpenAPI: "3.1.0",
		Info: OpenAPIInfo{
			Title:       title,
			Description: description,
			Version:     version,
		},
		Paths: map[string]OpenAPIPathItem{
			"/": {
				Get: jsonOperation("Get Root", "get_root", generateSchema[RootResponse]()),
			},
			"/health": {
				Get: jsonOperation("Get Health", "get_health", generateSchema[HealthResponse]()),
			},
		},
	}
}

// handleOpenAPI returns a handler serving doc as JSON
func handleOpenAPI(doc *OpenAPIDocument) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, doc)
	}
}
