// planning.go extracts SCHEDULED/DEADLINE/CLOSED lines from header bodies.
package org

import (
	"regexp"
	"strings"
)

var planningKeywordRegexp = regexp.MustCompile(`^(SCHEDULED|DEADLINE|CLOSED):[ \t]*`)

// ParsePlanningItems splits leading planning lines off a header body.
// Only lines at the very start of body consisting solely of one or more
// KEYWORD: <timestamp> pairs are consumed; the first line that is not
// pure planning syntax stops consumption. The returned description
// starts exactly where the remaining content started: when no planning
// syntax is present it equals body byte for byte.
func ParsePlanningItems(body string) ([]PlanningItem, string) {
	var items []PlanningItem
	rest := body
	for rest != "" {
		line, lineLen := firstLine(rest)
		lineItems, ok := parsePlanningLine(line)
		if !ok {
			break
		}
		items = append(items, lineItems...)
		rest = rest[lineLen:]
	}
	return items, rest
}

// firstLine returns the first line of s without its newline, plus the
// number of bytes to skip past it including the newline if present.
func firstLine(s string) (string, int) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i], i + 1
	}
	return s, len(s)
}

// parsePlanningLine parses one line as planning syntax. It returns
// ok=false when any part of the line is not a keyword/timestamp pair,
// including a malformed timestamp after a valid keyword, the whole
// line then falls through to ordinary body text.
func parsePlanningLine(line string) ([]PlanningItem, bool) {
	var items []PlanningItem
	pos := 0
	// Leading indentation is allowed on a planning line.
	for pos < len(line) && (line[pos] == ' ' || line[pos] == '\t') {
		pos++
	}
	if pos == len(line) {
		return nil, false
	}
	for pos < len(line) {
		m := planningKeywordRegexp.FindStringSubmatch(line[pos:])
		if m == nil {
			return nil, false
		}
		itemStart := pos
		pos += len(m[0])
		ts, n, ok := matchTimestamp(line[pos:])
		if !ok {
			return nil, false
		}
		pos += n
		items = append(items, PlanningItem{
			Keyword:   PlanningKeyword(m[1]),
			Timestamp: ts,
			Raw:       line[itemStart:pos],
		})
		for pos < len(line) && (line[pos] == ' ' || line[pos] == '\t') {
			pos++
		}
	}
	if len(items) == 0 {
		return nil, false
	}
	return items, true
}
