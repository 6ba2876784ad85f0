// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware for the static
// asset host. Cross-cutting concerns such as request tracing, access logging,
// and response compression are handled in this package before requests reach
// the file-serving and API handlers.
package http
