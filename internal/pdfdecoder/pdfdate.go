package pdfdecoder

import (
	"strconv"
	"strings"
	"time"
)

// parsePDFDate parses a PDF date string of the form D:YYYYMMDDHHmmSSOHH'mm'.
// Every component after the year is optional. The result is normalised to UTC.
func parsePDFDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "D:")

	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	digits, rest := s[:i], strings.TrimSpace(s[i:])
	if len(digits) < 4 {
		return time.Time{}, false
	}

	// year, month, day, hour, minute, second
	parts := [6]int{0, 1, 1, 0, 0, 0}
	widths := [6]int{4, 2, 2, 2, 2, 2}
	pos := 0
	for k, w := range widths {
		if pos+w > len(digits) {
			break
		}
		n, err := strconv.Atoi(digits[pos : pos+w])
		if err != nil {
			return time.Time{}, false
		}
		parts[k] = n
		pos += w
	}

	if parts[1] < 1 || parts[1] > 12 || parts[2] < 1 || parts[2] > 31 ||
		parts[3] > 23 || parts[4] > 59 || parts[5] > 59 {
		return time.Time{}, false
	}

	loc := time.UTC
	if rest != "" && (rest[0] == '+' || rest[0] == '-') {
		sign := 1
		if rest[0] == '-' {
			sign = -1
		}
		tz := strings.NewReplacer("'", "", ":", "").Replace(rest[1:])
		hh, mm := 0, 0
		if len(tz) >= 2 {
			hh, _ = strconv.Atoi(tz[:2])
		}
		if len(tz) >= 4 {
			mm, _ = strconv.Atoi(tz[2:4])
		}
		loc = time.FixedZone("", sign*(hh*3600+mm*60))
	}

	t := time.Date(parts[0], time.Month(parts[1]), parts[2], parts[3], parts[4], parts[5], 0, loc)
	return t.UTC(), true
}

func datePtr(raw string) *time.Time {
	if t, ok := parsePDFDate(raw); ok {
		return &t
	}
	return nil
}
