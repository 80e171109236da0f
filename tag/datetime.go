package tag

import "time"

// Date-time values are ISO-8601 with a handful of shapes seen in the wild:
// fractional seconds or not, colon or no colon in the zone offset, and the
// occasional missing zone (read as UTC). Parsing walks the layouts from
// most to least common and takes the first match.
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999Z0700",
	"2006-01-02T15:04:05.999999999",
}

func parseDateTime(s string) (time.Time, bool) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// appendDateTime renders in RFC 3339 form with the fractional second
// trimmed to what the value carries.
func appendDateTime(b []byte, t time.Time) []byte {
	return t.AppendFormat(b, time.RFC3339Nano)
}
