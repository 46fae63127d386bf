// Package file persists settings and login tokens in a TOML file, by default
// ~/.lineage/config.toml. The file is written with owner-only permissions.
package file
