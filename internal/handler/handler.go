// Package handler is the HTTP layer behind the router.
//
// Each endpoint declares a typed request struct that binds path, query and
// body data and validates itself; the generic Handle pipeline runs bind,
// validate, execute and respond with logging and tracing around each step,
// and the service layer makes every business decision.
package handler
