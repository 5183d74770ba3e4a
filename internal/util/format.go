package util

import (
	"fmt"
	"strconv"
	"strings"
)

// FormatDuration renders whole seconds as MM:SS, or HH:MM:SS from one hour up.
// It backs both the live countdown and the profile total, so the two always agree.
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

// ParseDuration accepts SS, MM:SS or HH:MM:SS and returns whole seconds.
func ParseDuration(value string) (int64, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, fmt.Errorf("empty duration")
	}
	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("duration %q: too many fields", value)
	}
	var total int64
	for i, part := range parts {
		n, err := strconv.ParseInt(part, 10, 64)
		if err != nil || n < 0 {
			return 0, fmt.Errorf("duration %q: invalid field %q", value, part)
		}
		if i > 0 && n > 59 {
			return 0, fmt.Errorf("duration %q: field %q out of range", value, part)
		}
		total = total*60 + n
	}
	return total, nil
}
