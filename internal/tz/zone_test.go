package tz

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUTC(t *testing.T) {
	assert.Equal(t, "UTC", UTC.Name())
	assert.Equal(t, "UTC", UTC.String())
	assert.Same(t, time.UTC, UTC.Location())

	for _, sec := range []int64{-377705116800, 0, 1627680004, 253402207200} {
		offset, abbrev := UTC.Offset(sec)
		assert.Equal(t, int32(0), offset, "second %d", sec)
		assert.Equal(t, "UTC", abbrev, "second %d", sec)
	}
}

func TestTimeZone_Offset(t *testing.T) {
	paris, err := System().Get("Europe/Paris")
	require.NoError(t, err)

	tests := []struct {
		name       string
		second     int64
		wantOffset int32
		wantAbbrev string
	}{
		{name: "winter", second: time.Date(2021, 1, 15, 12, 0, 0, 0, time.UTC).Unix(), wantOffset: 3600, wantAbbrev: "CET"},
		{name: "summer", second: time.Date(2021, 7, 30, 12, 0, 0, 0, time.UTC).Unix(), wantOffset: 7200, wantAbbrev: "CEST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offset, abbrev := paris.Offset(tt.second)
			assert.Equal(t, tt.wantOffset, offset)
			assert.Equal(t, tt.wantAbbrev, abbrev)
		})
	}
}
