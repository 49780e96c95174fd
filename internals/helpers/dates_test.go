package helper

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("15-06-2025")
	require.NoError(t, err)
	assert.Equal(t, 2025, parsed.Year())
	assert.Equal(t, time.June, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
}

func TestParseDate_RejectsOutOfRangeDay(t *testing.T) {
	_, err := ParseDate("31-02-2025")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestParseDate_RejectsOtherLayouts(t *testing.T) {
	for _, s := range []string{"2025-06-15", "15/06/2025", "15-6-2025", ""} {
		_, err := ParseDate(s)
		assert.ErrorIs(t, err, ErrInvalidDate, s)
	}
}

func TestFormatDate_RoundTrip(t *testing.T) {
	parsed, err := ParseDate("01-12-2030")
	require.NoError(t, err)
	assert.Equal(t, "01-12-2030", FormatDate(parsed))
}
