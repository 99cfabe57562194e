// Package jobs contains the scheduled background work of the application.
//
// The only job today is stale-order cleanup: PENDING orders that nobody
// confirmed within the configured TTL are canceled through the normal
// status-update path, so every lifecycle rule and audit event applies to
// them exactly as it would to a manual cancellation.
package jobs
