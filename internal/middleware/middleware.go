// Package middleware holds the global and route-level Echo middleware:
// request ids, request-scoped logging, New Relic tracing, optional Clerk
// identity, rate limiting, CORS, recovery and the global error handler.
package middleware
