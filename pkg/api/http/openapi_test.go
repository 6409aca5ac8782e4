package http

import (
	"encoding/json"
	"net/http"
	"testing"
)

type openAPIBody struct {
	OpenAPI string `json:"openapi"`
	Info    struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		Version     string `json:"version"`
	} `json:"info"`
	Paths map[string]struct {
		Get struct {
			OperationID string `json:"operationId"`
			Responses   map[string]struct {
				Content map[string]struct {
					Schema struct {
						Type                 string                     `json:"type"`
						Required             []string                   `json:"required"`
						AdditionalProperties *bool                      `json:"additionalProperties"`
						Properties           map[string]json.RawMessage `json:"properties"`
					} `json:"schema"`
				} `json:"content"`
			} `json:"responses"`
		} `json:"get"`
	} `json:"paths"`
}

func TestOpenAPIDocumentServedOnMetricsServer(t *testing.T) {
	doc := NewOpenAPIDocument("Production-Ready AI Service", "A template for building and deploying AI services.", "0.1.0")
	m := NewMetricsServer(&MetricsConfig{Handler: http.NotFoundHandler(), OpenAPI: doc})

	rec := doRequest(t, m.Handler(), http.MethodGet, "/openapi.json")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body openAPIBody
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode document: %v", err)
	}

	if body.OpenAPI != "3.1.0" {
		t.Fatalf("unexpected openapi version %q", body.OpenAPI)
	}
	if body.Info.Title != "Production-Ready AI Service" || body.Info.Version != "0.1.0" ||
		body.Info.Description != "A template for building and deploying AI services." {
		t.Fatalf("unexpected info: %+v", body.Info)
	}
	if len(body.Paths) != 2 {
		t.Fatalf("expected exactly two documented paths, got %d", len(body.Paths))
	}

	tests := map[string]struct {
		operationID string
		field       string
	}{
		"/":       {"get_root", "message"},
		"/health": {"get_health", "status"},
	}
	for path, want := range tests {
		item, ok := body.Paths[path]
		if !ok {
			t.Fatalf("missing path %s", path)
		}
		if item.Get.OperationID != want.operationID {
			t.Fatalf("%s: unexpected operationId %q", path, item.Get.OperationID)
		}
		schema := item.Get.Responses["200"].Content["application/json"].Schema
		if schema.Type != "object" {
			t.Fatalf("%s: expected object schema, got %q", path, schema.Type)
		}
		if len(schema.Required) != 1 || schema.Required[0] != want.field {
			t.Fatalf("%s: expected required [%s], got %v", path, want.field, schema.Required)
		}
		if _, ok := schema.Properties[want.field]; !ok || len(schema.Properties) != 1 {
			t.Fatalf("%s: expected single property %s, got %v", path, want.field, schema.Properties)
		}
		if schema.AdditionalProperties == nil || *schema.AdditionalProperties {
			t.Fatalf("%s: expected additionalProperties false", path)
		}
	}
}

func TestOpenAPIDocumentNotOnPublicServer(t *testing.T) {
	s := newTestServer(t, nil)

	if rec := doRequest(t, s.Handler(), http.MethodGet, "/openapi.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 on public port, got %d", rec.Code)
	}
}

func TestMetricsServerWithoutOpenAPI(t *testing.T) {
	m := NewMetricsServer(&MetricsConfig{Handler: http.NotFoundHandler()})

	if rec := doRequest(t, m.Handler(), http.MethodGet, "/openapi.json"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 when no document configured, got %d", rec.Code)
	}
}
