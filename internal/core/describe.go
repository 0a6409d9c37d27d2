//go:build !nofs

package core

import (
	"github.com/Fuabioo/tzkit/internal/chrono"
	"github.com/Fuabioo/tzkit/internal/convert"
	"github.com/Fuabioo/tzkit/internal/tz"
)

// ZonedInfo is the printable form of a zoned time shared by the CLI and
// the MCP server.
type ZonedInfo struct {
	Time          string          `json:"time"`
	UTC           string          `json:"utc"`
	Zone          string          `json:"zone"`
	Abbreviation  string          `json:"abbreviation"`
	Weekday       string          `json:"weekday"`
	Proto         *ProtoTimestamp `json:"proto,omitempty"`
	Unix          int64           `json:"unix"`
	Nanos         int32           `json:"nanos"`
	OffsetSeconds int32           `json:"offset_seconds"`
}

// ProtoTimestamp mirrors google.protobuf.Timestamp.
type ProtoTimestamp struct {
	Seconds int64 `json:"seconds"`
	Nanos   int32 `json:"nanos"`
}

// Describe returns the printable form of z. Proto is left out for instants
// a protobuf Timestamp cannot represent, before year 1.
func Describe(z chrono.Zoned) ZonedInfo {
	ts := z.Timestamp()
	offset, abbrev := z.Offset()

	info := ZonedInfo{
		Time:          z.String(),
		UTC:           ts.String(),
		Zone:          z.TimeZone().Name(),
		Abbreviation:  abbrev,
		Weekday:       convert.TimeFromTimestamp(ts).In(z.TimeZone().Location()).Weekday().String(),
		Unix:          ts.Second(),
		Nanos:         ts.Nanosecond(),
		OffsetSeconds: offset,
	}

	if p := convert.ProtoFromZoned(z); p.CheckValid() == nil {
		info.Proto = &ProtoTimestamp{Seconds: p.GetSeconds(), Nanos: p.GetNanos()}
	}
	return info
}

// ZoneInfo describes a time zone as it is now.
type ZoneInfo struct {
	Name          string `json:"name"`
	Origin        string `json:"origin"`
	Abbreviation  string `json:"abbreviation"`
	Now           string `json:"now"`
	OffsetSeconds int32  `json:"offset_seconds"`
}

// DescribeZone returns zone as it is at now.
func DescribeZone(zone *tz.TimeZone, origin string, now chrono.Timestamp) ZoneInfo {
	z := now.ToZoned(zone)
	offset, abbrev := z.Offset()
	return ZoneInfo{
		Name:          zone.Name(),
		Origin:        origin,
		Abbreviation:  abbrev,
		Now:           z.String(),
		OffsetSeconds: offset,
	}
}
