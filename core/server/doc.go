// Package server holds the HTTP server configuration.
//
// The start command builds the Fiber application itself; this package only
// defines the settings it reads: the listen port, the API key checked by
// the auth middleware and the graceful shutdown bound.
//
// # Usage
//
// This package is embedded by core/config and read by cmd/start.go.
package server
