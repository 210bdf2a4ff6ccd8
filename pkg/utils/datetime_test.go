package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDateTime(t *testing.T) {
	got, err := ComposeDateTime("12/02/2024", "08:24")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2024, time.February, 12, 8, 24, 0, 0, time.UTC)))
}

func TestComposeDateTimeTwoDigitYear(t *testing.T) {
	got, err := ComposeDateTime("31/12/99", "23:59")
	require.NoError(t, err)
	assert.True(t, got.Equal(time.Date(2099, time.December, 31, 23, 59, 0, 0, time.UTC)))
}

func TestComposeDateTimeRejectsMalformedInput(t *testing.T) {
	_, err := ComposeDateTime("2024-02-12", "08:24")
	assert.Error(t, err)

	_, err = ComposeDateTime("12/02/2024", "8:24")
	assert.Error(t, err)

	_, err = ComposeDateTime("12/02/2024", "24:00")
	assert.Error(t, err)
}

func TestIsValidDate(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"01/01/2024", true},
		{"31/12/24", true},
		{"00/01/2024", false},
		{"32/01/2024", false},
		{"12/13/2024", false},
		{"12/02/202", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidDate(tt.in), "date %q", tt.in)
	}
}

func TestIsValidTime(t *testing.T) {
	tests := []struct {
		in    string
		valid bool
	}{
		{"00:00", true},
		{"23:59", true},
		{"08:24", true},
		{"24:00", false},
		{"8:24", false},
		{"12:60", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, IsValidTime(tt.in), "time %q", tt.in)
	}
}

func TestFormatRoundTrip(t *testing.T) {
	dt := time.Date(2024, time.March, 1, 10, 15, 0, 0, time.UTC)
	assert.Equal(t, "01/03/2024", FormatDate(dt))
	assert.Equal(t, "10:15", FormatTime(dt))

	recomposed, err := ComposeDateTime(FormatDate(dt), FormatTime(dt))
	require.NoError(t, err)
	assert.True(t, recomposed.Equal(dt))
}
