// Package http implements the HTTP transport layer of the application.
//
// It exposes the unlock endpoint, the public view and the version endpoint.
// Request tracing, access logging, response compression and body size limits
// are handled here before requests reach the service layer. Credentials only
// ever travel in request bodies and are never logged.
package http
