//go:build !nofs

// Package core ties configuration, the time zone database and the chrono
// operations together behind a Service used by the CLI and the MCP server.
// It also builds and unpacks zoneinfo.zip archives.
package core
