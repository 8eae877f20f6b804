// Package model holds the documents stored in the services, bookings and
// users collections, plus the small value types shared by the service and
// handler layers.
package model

// Ownership is the pair of owner fields recorded on a Service. Either may
// be nil; a Service with neither is owned by nobody.
type Ownership struct {
	UID           *string
	ProviderEmail *string
}

// Caller is the identity a request claims. Both fields may be empty.
type Caller struct {
	UID   string
	Email string
}

// Ack is the body returned by mutations that have nothing else to report.
type Ack struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// StringPtr returns nil for the empty string and a pointer otherwise.
func StringPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Deref returns the pointed-to string or "".
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
