// Package grpc serves the standard grpc.health.v1 service for
// orchestrators that probe over gRPC.
package grpc
