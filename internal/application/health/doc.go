// Package health monitors the external dependencies of the service.
//
// The monitor runs every configured probe on a fixed interval and pushes
// each result to a status sink (the gRPC health server) and the metrics
// collector. It never influences the HTTP /health liveness response.
package health
