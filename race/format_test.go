package race

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatTime(t *testing.T) {
	cases := []struct {
		ms   int64
		want string
	}{
		{0, "0:00.00"},
		{9, "0:00.00"},
		{10, "0:00.01"},
		{61234, "1:01.23"},
		{599990, "9:59.99"},
		{600000, "10:00.00"},
		{3599999, "59:59.99"},
		{-1500, "-0:01.50"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTime(tc.ms), "ms=%d", tc.ms)
	}
}

func TestFormatTimeExtremes(t *testing.T) {
	assert.NotPanics(t, func() { FormatTime(math.MinInt64) })
	assert.NotPanics(t, func() { FormatTime(math.MaxInt64) })
	assert.Equal(t, "153722867280912:55.80", FormatTime(math.MaxInt64))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "1:01.23", FormatDuration(61234*time.Millisecond+900*time.Microsecond))
}
