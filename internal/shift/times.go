package shift

import (
	"regexp"
	"strings"
)

// TimeOff is the sentinel for "no shift". Start and end are always either
// both TimeOff or both zero-padded HH:MM values.
const TimeOff = "OFF"

const (
	DefaultStartTime = "11:00"
	DefaultEndTime   = "23:30"
)

var hhmmPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)

func IsOff(v string) bool {
	return v == TimeOff
}

// PadTime zero-pads a scraped clock value ("9:30" -> "09:30"). Values that
// are already five characters, or the OFF sentinel, pass through unchanged.
func PadTime(v string) string {
	v = strings.TrimSpace(v)
	if v == TimeOff || len(v) >= 5 {
		return v
	}
	return strings.Repeat("0", 5-len(v)) + v
}

// ValidTime reports whether v is the OFF sentinel or a zero-padded HH:MM.
func ValidTime(v string) bool {
	return v == TimeOff || hhmmPattern.MatchString(v)
}

// Inverted reports whether a start/end pair runs backwards. Both values must
// be clock times; OFF pairs are never inverted. Lexicographic comparison is
// exact because both sides are zero-padded.
func Inverted(start, end string) bool {
	if IsOff(start) || IsOff(end) {
		return false
	}
	return start >= end
}
