// Package http implements the HTTP transport layer of the authentication
// service.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, request tracing, access
// logging, and CORS are handled in this package before requests are delegated
// to the service layer. Every endpoint answers with the [models.Response]
// envelope.
package http
