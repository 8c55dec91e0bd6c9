// Package http implements the HTTP transport layer of the membership
// intake service. It provides middleware, route handlers, and
// request/response utilities for the REST API. Tracing, logging, security
// headers, rate limiting, and staff authentication concerns are all handled
// at this layer before requests are forwarded to the service layer.
package http
