// Package http implements the HTTP transport layer of the application.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as authentication, authorization, request
// tracing, access logging, and response compression are handled in this
// package before requests are delegated to the service layer.
package http
