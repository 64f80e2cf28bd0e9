package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

// KST is the society's local zone (UTC+9, no DST).
var KST = time.FixedZone("KST", 9*60*60)

var ErrInvalidDateTime = errors.New("invalid datetime")

var explicitZone = regexp.MustCompile(`(?i)(z|[+-]\d{2}:?\d{2})$`)

var zonedLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04Z0700",
}

var localLayouts = []string{
	"2006-01-02T15:04",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04",
	"2006-01-02 15:04:05",
}

// ParseLocalDateTime parses a datetime-local style value. Values without a
// zone designator are read as KST; values with Z or a numeric offset keep it.
// The result is always in UTC.
func ParseLocalDateTime(value string) (time.Time, error) {
	v := strings.TrimSpace(value)
	if v == "" {
		return time.Time{}, ErrInvalidDateTime
	}

	if explicitZone.MatchString(v) && strings.Contains(v, "T") {
		v = strings.Replace(v, "z", "Z", 1)
		for _, layout := range zonedLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t.UTC(), nil
			}
		}
		return time.Time{}, ErrInvalidDateTime
	}

	for _, layout := range localLayouts {
		if t, err := time.ParseInLocation(layout, v, KST); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDateTime
}

// FormatKST renders t the way Korean locales show a medium date with a
// short 24h time, e.g. "2025. 3. 1. 10:00".
func FormatKST(t time.Time) string {
	return t.In(KST).Format("2006. 1. 2. 15:04")
}

// FormatKSTPtr is FormatKST with "-" for a missing time.
func FormatKSTPtr(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return FormatKST(*t)
}
