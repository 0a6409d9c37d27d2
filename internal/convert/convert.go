// Package convert moves instants between chrono and the timestamp types of
// other libraries: protobuf's well-known Timestamp, the standard library's
// time.Time and the timestamps embedded in UUIDs.
//
// Conversions into chrono fail only with the range errors of
// chrono.NewTimestamp, or, for inputs that carry no instant at all, with an
// ad hoc error.
package convert

import (
	"encoding/binary"
	"time"

	"github.com/google/uuid"
	"google.golang.org/protobuf/types/known/timestamppb"

	"github.com/Fuabioo/tzkit/internal/chrono"
	"github.com/Fuabioo/tzkit/internal/errors"
	"github.com/Fuabioo/tzkit/internal/tz"
)

// TimestampFromProto converts a protobuf Timestamp.
func TimestampFromProto(p *timestamppb.Timestamp) (chrono.Timestamp, error) {
	if p == nil {
		return chrono.Timestamp{}, errors.Adhoc("protobuf timestamp is nil")
	}
	return chrono.NewTimestamp(p.GetSeconds(), p.GetNanos())
}

// ZonedFromProto converts a protobuf Timestamp to a zoned time in UTC.
// Protobuf timestamps carry no zone.
func ZonedFromProto(p *timestamppb.Timestamp) (chrono.Zoned, error) {
	ts, err := TimestampFromProto(p)
	if err != nil {
		return chrono.Zoned{}, err
	}
	return ts.ToZoned(tz.UTC), nil
}

// ProtoFromTimestamp converts ts to a protobuf Timestamp, whose nanos are
// never negative.
func ProtoFromTimestamp(ts chrono.Timestamp) *timestamppb.Timestamp {
	second, nanos := floor(ts)
	return &timestamppb.Timestamp{Seconds: second, Nanos: nanos}
}

// ProtoFromZoned converts the instant of z to a protobuf Timestamp. The
// zone is dropped.
func ProtoFromZoned(z chrono.Zoned) *timestamppb.Timestamp {
	return ProtoFromTimestamp(z.Timestamp())
}

// TimestampFromTime converts a time.Time. Its location is ignored.
func TimestampFromTime(t time.Time) (chrono.Timestamp, error) {
	return chrono.NewTimestamp(t.Unix(), int32(t.Nanosecond()))
}

// TimeFromTimestamp converts ts to a time.Time in UTC.
func TimeFromTimestamp(ts chrono.Timestamp) time.Time {
	second, nanos := floor(ts)
	return time.Unix(second, int64(nanos)).UTC()
}

// TimestampFromUUID extracts the creation time of a version 1, 6 or 7
// UUID. Other versions embed no time. Version 2 is refused as well: its
// time_low field holds a local domain ID, leaving only a coarse time.
func TimestampFromUUID(u uuid.UUID) (chrono.Timestamp, error) {
	switch v := u.Version(); v {
	case 1, 7:
		second, nanos := u.Time().UnixTime()
		return chrono.NewTimestamp(second, int32(nanos))
	case 6:
		second, nanos := uuidV6Time(u).UnixTime()
		return chrono.NewTimestamp(second, int32(nanos))
	default:
		return chrono.Timestamp{}, errors.Adhocf("uuid version %d does not embed a timestamp", int(v))
	}
}

// uuidV6Time reassembles the 60-bit count of 100ns intervals of a version 6
// UUID. uuid.UUID.Time does not strip the version nibble that sits between
// the high 48 bits and the low 12 bits.
func uuidV6Time(u uuid.UUID) uuid.Time {
	high := binary.BigEndian.Uint64(u[:8]) >> 16
	low := binary.BigEndian.Uint16(u[6:8]) & 0x0fff
	return uuid.Time(high<<12 | uint64(low))
}

func floor(ts chrono.Timestamp) (int64, int32) {
	second, nanos := ts.Second(), ts.Nanosecond()
	if nanos < 0 {
		second--
		nanos += 1_000_000_000
	}
	return second, nanos
}
