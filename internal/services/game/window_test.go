package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseWindow(t *testing.T) {
	now := time.Date(2025, 4, 19, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name      string
		window    string
		wantStart time.Time
		wantStop  time.Time
		wantErr   error
	}{
		{
			name:      "regular window",
			window:    "13:00-14:30",
			wantStart: time.Date(2025, 4, 19, 13, 0, 0, 0, time.UTC),
			wantStop:  time.Date(2025, 4, 19, 14, 30, 0, 0, time.UTC),
		},
		{
			name:      "spaces around parts",
			window:    " 09:05 - 10:00 ",
			wantStart: time.Date(2025, 4, 19, 9, 5, 0, 0, time.UTC),
			wantStop:  time.Date(2025, 4, 19, 10, 0, 0, 0, time.UTC),
		},
		{name: "missing separator", window: "13:00", wantErr: ErrInvalidWindow},
		{name: "not a time", window: "lunch-dinner", wantErr: ErrInvalidWindow},
		{name: "hour out of range", window: "25:00-26:00", wantErr: ErrInvalidWindow},
		{name: "stop before start", window: "14:00-13:00", wantErr: ErrInvalidWindow},
		{name: "empty window", window: "12:00-12:00", wantErr: ErrInvalidWindow},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			start, stop, err := parseWindow(tc.window, now, time.UTC)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantStart, start)
			assert.Equal(t, tc.wantStop, stop)
		})
	}
}

func TestParseWindowUsesLocation(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)

	// 22:30 UTC is already the next day in MSK
	now := time.Date(2025, 4, 19, 22, 30, 0, 0, time.UTC)

	start, stop, err := parseWindow("10:00-11:00", now, loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 4, 20, 10, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2025, 4, 20, 11, 0, 0, 0, loc), stop)
	assert.Equal(t, 7*time.Hour, start.Sub(now))
}
