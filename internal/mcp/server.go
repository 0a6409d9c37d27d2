//go:build !nofs

package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/Fuabioo/tzkit/internal/core"
)

const (
	serverName    = "tzkit"
	serverVersion = "0.1.0"
)

// Server wraps the MCP server with the tzkit service its tools call.
type Server struct {
	mcp *server.MCPServer
	svc *core.Service
}

// NewServer creates and configures the MCP server with all tzkit tools registered.
func NewServer(svc *core.Service) *Server {
	s := &Server{
		svc: svc,
		mcp: server.NewMCPServer(serverName, serverVersion, server.WithToolCapabilities(false)),
	}
	s.registerTools()
	return s
}

func (s *Server) registerTools() {
	// tz_lookup
	s.mcp.AddTool(mcp.NewTool("tz_lookup",
		mcp.WithDescription("Looks up an IANA time zone and returns its current offset and abbreviation"),
		mcp.WithString("zone",
			mcp.Description("IANA zone name such as \"America/New_York\" (default: configured zone)")),
	), s.handleLookup)

	// tz_list
	s.mcp.AddTool(mcp.NewTool("tz_list",
		mcp.WithDescription("Lists the time zones in the database"),
		mcp.WithString("prefix",
			mcp.Description("Only zones whose name starts with prefix, e.g. \"Europe/\"")),
		mcp.WithBoolean("tree",
			mcp.Description("Group zones by area as a tree (default: false)")),
		mcp.WithNumber("max_depth",
			mcp.Description("Maximum depth of the tree (default: unlimited)")),
	), s.handleList)

	// date_check
	s.mcp.AddTool(mcp.NewTool("date_check",
		mcp.WithDescription("Checks that a YYYY-MM-DD date exists in the proleptic Gregorian calendar"),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("Date such as \"2024-02-29\"")),
	), s.handleDateCheck)

	// timestamp_convert
	s.mcp.AddTool(mcp.NewTool("timestamp_convert",
		mcp.WithDescription("Converts a Unix or RFC 3339 timestamp into a time zone"),
		mcp.WithNumber("seconds",
			mcp.Description("Seconds since the Unix epoch")),
		mcp.WithNumber("nanos",
			mcp.Description("Nanoseconds added to seconds (default: 0)")),
		mcp.WithString("rfc3339",
			mcp.Description("RFC 3339 timestamp, used instead of seconds")),
		mcp.WithString("zone",
			mcp.Description("Target zone (default: configured zone)")),
	), s.handleTimestampConvert)

	// uuid_timestamp
	s.mcp.AddTool(mcp.NewTool("uuid_timestamp",
		mcp.WithDescription("Returns the creation time embedded in a version 1, 6 or 7 UUID"),
		mcp.WithString("uuid",
			mcp.Required(),
			mcp.Description("UUID in canonical text form")),
		mcp.WithString("zone",
			mcp.Description("Target zone (default: configured zone)")),
	), s.handleUUIDTimestamp)

	// tz_now
	s.mcp.AddTool(mcp.NewTool("tz_now",
		mcp.WithDescription("Returns the current time in a time zone"),
		mcp.WithString("zone",
			mcp.Description("Target zone (default: configured zone)")),
	), s.handleNow)
}
