// Package errs defines the error shapes returned to API clients.
//
// Every failure that leaves the process is an *HTTPError. The constructors
// in types.go cover the four categories the API distinguishes:
// validation (400), authorization (403), not found (404) and store (500).
package errs
