package race

import (
	"strconv"
	"time"
)

// FormatTime renders milliseconds as M:SS.CC (minutes unbounded, centiseconds truncated)
// Negative input is rendered with a leading minus rather than rejected
func FormatTime(ms int64) string {
	neg := ms < 0
	var u uint64
	if neg {
		u = uint64(-(ms + 1)) + 1
	} else {
		u = uint64(ms)
	}

	minutes := u / 60000
	seconds := (u % 60000) / 1000
	centis := (u % 1000) / 10

	buf := make([]byte, 0, 16)
	if neg {
		buf = append(buf, '-')
	}
	buf = strconv.AppendUint(buf, minutes, 10)
	buf = append(buf, ':')
	buf = appendPad2(buf, seconds)
	buf = append(buf, '.')
	buf = appendPad2(buf, centis)
	return string(buf)
}

// FormatDuration is FormatTime for a time.Duration
func FormatDuration(d time.Duration) string {
	return FormatTime(d.Milliseconds())
}

func appendPad2(buf []byte, v uint64) []byte {
	return append(buf, byte('0'+v/10), byte('0'+v%10))
}
