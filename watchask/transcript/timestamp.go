package transcript

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// FormatTimestamp renders a timeline offset as "[MM:SS]".
func FormatTimestamp(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("[%d:%02d]", total/60, total%60)
}

// ParseTimestamp accepts "1:30", "[1:30]", "1:02:03", or plain seconds
// ("90", "90.5") and returns the timeline offset. Unparsable input yields zero.
func ParseTimestamp(raw string) time.Duration {
	raw = strings.TrimSpace(raw)
	raw = strings.Trim(raw, "[]")
	if raw == "" {
		return 0
	}

	if strings.Contains(raw, ":") {
		parts := strings.Split(raw, ":")
		fields := make([]int, 0, len(parts))
		for _, p := range parts {
			n, err := strconv.Atoi(strings.TrimSpace(p))
			if err != nil {
				return 0
			}
			fields = append(fields, n)
		}
		switch len(fields) {
		case 2:
			return time.Duration(fields[0]*60+fields[1]) * time.Second
		case 3:
			return time.Duration(fields[0]*3600+fields[1]*60+fields[2]) * time.Second
		}
		return 0
	}

	secs, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return time.Duration(secs * float64(time.Second))
}
