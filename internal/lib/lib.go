// Package lib holds integrations that do not belong to a single layer:
// background job processing on Redis (asynq) and transactional email
// delivery (Resend).
package lib
