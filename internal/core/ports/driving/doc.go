// Package driving declares what the CLI, TUI and MCP adapters may ask of the
// core.
//
// LineageService answers read-only table, history and ancestry queries.
// DiffSelector holds the two-slot diff buffer, and LineageSession combines
// both for a single loaded lineage. SessionFactory hands out independent
// sessions so concurrent callers never share a selection. AuthService and
// SettingsService cover login state and persisted configuration.
package driving
