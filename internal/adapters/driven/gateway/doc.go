// Package gateway implements driven.LineageGateway over HTTP.
//
// Every request carries the bearer credential of the configured
// TokenProvider. Responses are mapped onto the domain error taxonomy:
//
//   - 401, 403: domain.ErrAuthInvalid
//   - 404: domain.ErrNotFound
//   - any other non-200 status, transport failure or undecodable body: domain.ErrFetchFailed
//
// The gateway never retries. Proactive throttling with a token bucket is
// the only flow control it applies.
package gateway
