// Package http provides the HTTP REST API implementation.
//
// The public server exposes exactly two endpoints:
//   - GET /        service welcome message
//   - GET /health  liveness check for container orchestrators
//
// Unknown paths and methods fall through to gin's default 404 and 405
// responses. Prometheus metrics and the OpenAPI document are served by a
// separate MetricsServer so they never widen the public surface.
package http
