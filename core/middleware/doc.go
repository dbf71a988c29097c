// Package middleware contains HTTP middleware for the Fiber application.
//
// It provides cross-cutting concerns that sit between the request and the handler.
//
// # Components
//
//   - auth: API key validation through the X-API-Key header.
//   - rayid: assigns every request a ray ID, stored in the "ray_id" local
//     and echoed in the X-Ray-ID response header for tracing.
//
// These middleware components are registered globally in cmd/start.go.
package middleware
