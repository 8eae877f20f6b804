// Package validation binds request data and validates it.
//
// Rules live in `validate` struct tags checked by go-playground/validator;
// failures are returned as a 400 carrying one entry per offending field,
// named by its JSON key.
package validation
