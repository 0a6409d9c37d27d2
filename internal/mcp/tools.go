//go:build !nofs

package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/Fuabioo/tzkit/internal/chrono"
	"github.com/Fuabioo/tzkit/internal/core"
	"github.com/Fuabioo/tzkit/internal/errors"
)

// handleLookup implements tz_lookup: describes a time zone as it is now.
func (s *Server) handleLookup(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	info, err := s.svc.DescribeZone(request.GetString("zone", ""))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(info), nil
}

// handleList implements tz_list: lists zone names, flat or as a tree.
func (s *Server) handleList(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	names := s.svc.Zones(request.GetString("prefix", ""))

	if request.GetBool("tree", false) {
		treeStr, zoneCount, groupCount := core.ZoneTree(names, request.GetInt("max_depth", 0))
		return jsonResult(map[string]interface{}{
			"tree":        treeStr,
			"zone_count":  zoneCount,
			"group_count": groupCount,
		}), nil
	}

	return jsonResult(map[string]interface{}{
		"origin": s.svc.Database().Origin(),
		"zones":  names,
		"count":  len(names),
	}), nil
}

// handleDateCheck implements date_check. An invalid date is a successful
// call reporting valid=false and the reason.
func (s *Server) handleDateCheck(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date, err := request.RequireString("date")
	if err != nil {
		return errorResult(errors.Adhoc("date is required")), nil
	}

	d, err := s.svc.CheckDate(date)
	if err != nil {
		return jsonResult(map[string]interface{}{
			"date":   date,
			"valid":  false,
			"reason": err.Error(),
		}), nil
	}

	return jsonResult(map[string]interface{}{
		"date":  d.String(),
		"valid": true,
		"year":  d.Year(),
		"month": d.Month(),
		"day":   d.Day(),
	}), nil
}

// handleTimestampConvert implements timestamp_convert from either Unix
// seconds or an RFC 3339 string.
func (s *Server) handleTimestampConvert(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	zone := request.GetString("zone", "")
	args := request.GetArguments()

	var (
		z   chrono.Zoned
		err error
	)
	if value := request.GetString("rfc3339", ""); value != "" {
		z, err = s.svc.ParseTimestamp(value, zone)
	} else if raw, ok := args["seconds"]; ok {
		second, nanos, convErr := timestampArgs(raw, args["nanos"])
		if convErr != nil {
			return errorResult(convErr), nil
		}
		z, err = s.svc.ConvertTimestamp(second, nanos, zone)
	} else {
		return errorResult(errors.Adhoc("one of seconds or rfc3339 is required")), nil
	}
	if err != nil {
		return errorResult(err), nil
	}

	return jsonResult(core.Describe(z)), nil
}

// timestampArgs converts JSON numbers into whole seconds and nanoseconds.
func timestampArgs(rawSeconds, rawNanos interface{}) (int64, int32, error) {
	seconds, ok := rawSeconds.(float64)
	if !ok || math.Trunc(seconds) != seconds || math.Abs(seconds) >= 1<<63 {
		return 0, 0, errors.Adhocf("seconds must be a whole number, got %v", rawSeconds)
	}

	var nanos float64
	if rawNanos != nil {
		nanos, ok = rawNanos.(float64)
		if !ok || math.Trunc(nanos) != nanos {
			return 0, 0, errors.Adhocf("nanos must be a whole number, got %v", rawNanos)
		}
		if math.Abs(nanos) > 999_999_999 {
			return 0, 0, errors.Signed("nanosecond", int64(nanos), -999_999_999, 999_999_999)
		}
	}

	return int64(seconds), int32(nanos), nil
}

// handleUUIDTimestamp implements uuid_timestamp.
func (s *Server) handleUUIDTimestamp(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := request.RequireString("uuid")
	if err != nil {
		return errorResult(errors.Adhoc("uuid is required")), nil
	}

	z, err := s.svc.UUIDTimestamp(id, request.GetString("zone", ""))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(core.Describe(z)), nil
}

// handleNow implements tz_now.
func (s *Server) handleNow(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	z, err := s.svc.Now(request.GetString("zone", ""))
	if err != nil {
		return errorResult(err), nil
	}
	return jsonResult(core.Describe(z)), nil
}

// errorResult creates an MCP error result carrying the whole causal chain.
func errorResult(err error) *mcp.CallToolResult {
	errorData := map[string]interface{}{
		"error": map[string]interface{}{
			"message": err.Error(),
		},
	}

	jsonBytes, jsonErr := json.Marshal(errorData)
	if jsonErr != nil {
		// Fallback to simple text
		return mcp.NewToolResultError(fmt.Sprintf("Error: %s", err))
	}

	result := mcp.NewToolResultText(string(jsonBytes))
	result.IsError = true
	return result
}

// jsonResult creates an MCP success result from a JSON-serializable object.
func jsonResult(data interface{}) *mcp.CallToolResult {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return errorResult(errors.Context(err, "failed to marshal response"))
	}

	return mcp.NewToolResultText(string(jsonBytes))
}
