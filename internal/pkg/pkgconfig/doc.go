// Package pkgconfig provides a small abstraction for reading configuration values.
//
// Business code depends on the Config interface so it stays easy to test and
// does not care where values come from. The Viper implementation reads a YAML
// file and lets environment variables prefixed with GOBOOK_ override any key
// (dots become underscores, so server.address.http is GOBOOK_SERVER_ADDRESS_HTTP).
package pkgconfig
