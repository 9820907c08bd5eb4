// timestamp.go parses and re-serializes Org timestamps.
package org

import (
	"regexp"
	"strings"
)

// Timestamp is a parsed Org timestamp such as <2019-07-30 Tue 14:00-15:30 +1w -2d>.
// Fields keep their source spelling; String rebuilds the canonical form.
type Timestamp struct {
	Active   bool   // <...> when true, [...] when false
	Raw      string // exact source span
	Date     string // YYYY-MM-DD
	DayName  string // "Tue" etc., "" if absent
	Time     string // "14:00", "" if absent
	EndTime  string // range end, "" if absent
	Repeater string // "+1w", "++1w" or ".+1w", "" if absent
	Warning  string // "-2d" or "--2d", "" if absent
}

// timestampRegexp matches a timestamp anchored at the start of its input.
// Group order: open bracket, date, day name, time, end time, repeater,
// warning, close bracket.
var timestampRegexp = regexp.MustCompile(
	`^([<\[])(\d{4}-\d{2}-\d{2})` +
		`(?:[ \t]+([A-Za-z][A-Za-z.]*))?` +
		`(?:[ \t]+(\d{1,2}:\d{2})(?:-(\d{1,2}:\d{2}))?)?` +
		`(?:[ \t]+([.+]?\+\d+[hdwmy]))?` +
		`(?:[ \t]+(--?\d+[hdwmy]))?` +
		`([>\]])`)

// matchTimestamp parses a timestamp at the start of s. It returns the
// parsed value and the number of bytes consumed, or ok=false if s does
// not begin with a well-formed timestamp.
func matchTimestamp(s string) (Timestamp, int, bool) {
	m := timestampRegexp.FindStringSubmatch(s)
	if m == nil {
		return Timestamp{}, 0, false
	}
	// Brackets must pair up: <...> or [...].
	if (m[1] == "<") != (m[8] == ">") {
		return Timestamp{}, 0, false
	}
	ts := Timestamp{
		Active:   m[1] == "<",
		Raw:      m[0],
		Date:     m[2],
		DayName:  m[3],
		Time:     m[4],
		EndTime:  m[5],
		Repeater: m[6],
		Warning:  m[7],
	}
	return ts, len(m[0]), true
}

// ParseTimestamp parses s as a complete timestamp. It returns ok=false
// when s contains anything besides a single well-formed timestamp.
func ParseTimestamp(s string) (Timestamp, bool) {
	ts, n, ok := matchTimestamp(s)
	if !ok || n != len(s) {
		return Timestamp{}, false
	}
	return ts, true
}

// String rebuilds the canonical text form of the timestamp: date, day
// name, time range, repeater and warning joined by single spaces inside
// the bracket pair matching the active flag.
func (t Timestamp) String() string {
	var b strings.Builder
	if t.Active {
		b.WriteByte('<')
	} else {
		b.WriteByte('[')
	}
	b.WriteString(t.Date)
	if t.DayName != "" {
		b.WriteByte(' ')
		b.WriteString(t.DayName)
	}
	if t.Time != "" {
		b.WriteByte(' ')
		b.WriteString(t.Time)
		if t.EndTime != "" {
			b.WriteByte('-')
			b.WriteString(t.EndTime)
		}
	}
	if t.Repeater != "" {
		b.WriteByte(' ')
		b.WriteString(t.Repeater)
	}
	if t.Warning != "" {
		b.WriteByte(' ')
		b.WriteString(t.Warning)
	}
	if t.Active {
		b.WriteByte('>')
	} else {
		b.WriteByte(']')
	}
	return b.String()
}
