// Package domain holds the value types shared by every layer: version
// records and their lineage groups, the flattened table, diff requests,
// warnings, auth tokens and settings.
//
// It imports the standard library only.
package domain
