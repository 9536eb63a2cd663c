// Package pkguid provides helpers for generating unique identifiers.
//
// The router uses these to stamp a correlation ID on every request. The
// strategy is chosen by configuration: RFC 9562 UUIDv7 strings (default) or
// Snowflake IDs rendered as decimal strings.
package pkguid
