// Package http provides the HTTP API implementation.
//
// The HTTP server exposes endpoints for:
//   - Arithmetic calculation (GET /calculate)
//   - Health checks
//   - Prometheus metrics
package http
