// Package driven declares the infrastructure the core depends on.
//
// A LineageGateway is mandatory: it turns a lineage id into a raw payload,
// whether from the HTTP API, a fixture file or memory. A ConfigStore persists
// settings.
//
// TokenProvider, TokenStore and PasswordAuthenticator are optional. A nil
// TokenProvider sends unauthenticated requests, and password login is only
// available when both TokenStore and PasswordAuthenticator are wired.
//
// Nothing here imports an adapter; only the domain package is allowed.
package driven
