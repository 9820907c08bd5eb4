// parser.go implements the document and header structural parser.
package org

import (
	"regexp"
	"strings"
)

// ParseOptions carries the external configuration the parser needs.
type ParseOptions struct {
	// DefaultTodoKeywords is the application-wide keyword list used to
	// synthesize the implicit set when the document has no explicit
	// #+TODO line. Empty means the built-in TODO/DONE pair.
	DefaultTodoKeywords []string
}

// lineKind is the closed set of line shapes the structural parser
// dispatches on. Classification happens once per line, up front.
type lineKind int

const (
	lineOther lineKind = iota
	lineHeadline
	lineTodoConfig
)

var (
	headlineRegexp  = regexp.MustCompile(`^(\*+)[ \t]`)
	priorityRegexp  = regexp.MustCompile(`^\[#([A-Za-z0-9])\] ?`)
	tagsRegexp      = regexp.MustCompile(`^(.*?)[ \t]*(:(?:[A-Za-z0-9_@#%]+:)+)[ \t]*$`)
	propertyRegexp  = regexp.MustCompile(`^:([^:\s]+):(?:[ \t]+(.*))?$`)
	stateLineRegexp = regexp.MustCompile(`^- State "`)
)

func classifyLine(line string) lineKind {
	if headlineRegexp.MatchString(line) {
		return lineHeadline
	}
	if todoConfigRegexp.MatchString(line) {
		return lineTodoConfig
	}
	return lineOther
}

// Parse parses a full Org document using the built-in default TODO
// keywords. It is total: any string input produces a Document.
func Parse(text string) *Document {
	return ParseWithOptions(text, ParseOptions{})
}

// ParseWithOptions parses a full Org document. The input is treated as
// literal content; no line-ending or whitespace normalization happens.
func ParseWithOptions(text string, opts ParseOptions) *Document {
	doc := &Document{
		NoFinalNewline: text != "" && !strings.HasSuffix(text, "\n"),
	}

	lines := splitLines(text)
	kinds := make([]lineKind, len(lines))
	for i, ln := range lines {
		kinds[i] = classifyLine(strings.TrimSuffix(ln, "\n"))
	}

	// Keyword config lines are collected wherever they appear, in the
	// preamble or inside any header body, and stay part of the text
	// they were found in, so round trips are unaffected.
	defaultSet := DefaultTodoKeywordSet(opts.DefaultTodoKeywords)
	var configIdx []int
	var configSets []*TodoKeywordSet
	for i := range lines {
		if kinds[i] != lineTodoConfig {
			continue
		}
		if set := ParseTodoKeywordConfig(strings.TrimSuffix(lines[i], "\n")); set != nil {
			configIdx = append(configIdx, i)
			configSets = append(configSets, set)
		}
	}
	if len(configSets) > 0 {
		doc.TodoKeywordSets = configSets
	} else {
		doc.TodoKeywordSets = []*TodoKeywordSet{defaultSet}
	}

	// A header's TODO recognition uses the set in effect at its line:
	// the last config line above it, or the default set.
	activeSetAt := func(lineIdx int) *TodoKeywordSet {
		active := defaultSet
		for k, idx := range configIdx {
			if idx >= lineIdx {
				break
			}
			active = configSets[k]
		}
		return active
	}

	firstHeadline := len(lines)
	for i := range lines {
		if kinds[i] == lineHeadline {
			firstHeadline = i
			break
		}
	}
	doc.Preamble = strings.Join(lines[:firstHeadline], "")

	for i := firstHeadline; i < len(lines); {
		end := i + 1
		for end < len(lines) && kinds[end] != lineHeadline {
			end++
		}
		titleRaw := strings.TrimSuffix(lines[i], "\n")
		rawBody := strings.Join(lines[i+1:end], "")
		doc.Headers = append(doc.Headers, parseHeader(titleRaw, rawBody, activeSetAt(i)))
		i = end
	}

	return doc
}

// parseHeader decomposes one header span: the title line into keyword,
// priority, inline title and tags, and the raw body through the
// planning → properties → logbook → description pipeline.
func parseHeader(titleRaw, rawBody string, active *TodoKeywordSet) *Header {
	level := 0
	for level < len(titleRaw) && titleRaw[level] == '*' {
		level++
	}
	h := &Header{Level: level}
	h.Title = parseTitleLine(titleRaw, level, active)

	h.Planning, rawBody = ParsePlanningItems(rawBody)
	h.Properties, rawBody = parsePropertyDrawer(rawBody)
	h.Logbook, rawBody = parseLogbook(rawBody)
	h.RawDescription = rawBody
	h.Description = ParseMarkupAndCookies(rawBody)
	return h
}

// parseTitleLine splits a headline into its components. Keyword
// recognition runs strictly before inline markup scanning of the rest
// of the title, and only keywords of the active set are recognized; a
// keyword must be followed by a space or end of line, so a token fused
// to a markup delimiter stays plain title text.
func parseTitleLine(titleRaw string, level int, active *TodoKeywordSet) TitleLine {
	t := TitleLine{Raw: titleRaw}
	rest := strings.TrimLeft(titleRaw[level:], " \t")

	for _, kw := range active.Keywords {
		if !strings.HasPrefix(rest, kw.Name) {
			continue
		}
		switch {
		case len(rest) == len(kw.Name):
			t.Todo = kw.Name
			rest = ""
		case rest[len(kw.Name)] == ' ':
			t.Todo = kw.Name
			rest = rest[len(kw.Name)+1:]
		default:
			continue
		}
		break
	}

	if m := priorityRegexp.FindStringSubmatch(rest); m != nil {
		t.Priority = m[1]
		rest = rest[len(m[0]):]
	}

	if m := tagsRegexp.FindStringSubmatch(rest); m != nil && m[2] != "" {
		rest = m[1]
		t.Tags = strings.Split(strings.Trim(m[2], ":"), ":")
	}

	t.RawTitle = rest
	t.Title = ParseMarkupAndCookies(rest)
	return t
}

// parsePropertyDrawer consumes a :PROPERTIES: ... :END: block at the
// start of body. Without a matching :END: the body is returned
// untouched and no drawer is reported.
func parsePropertyDrawer(body string) (*PropertyDrawer, string) {
	line, n := firstLine(body)
	if !strings.EqualFold(strings.TrimSpace(line), ":PROPERTIES:") {
		return nil, body
	}
	rest := body[n:]
	var props []Property
	for rest != "" {
		line, n := firstLine(rest)
		trimmed := strings.TrimSpace(line)
		rest = rest[n:]
		if strings.EqualFold(trimmed, ":END:") {
			return &PropertyDrawer{Properties: props}, rest
		}
		if m := propertyRegexp.FindStringSubmatch(trimmed); m != nil {
			props = append(props, Property{Key: m[1], Value: m[2]})
		}
	}
	return nil, body
}

// parseLogbook consumes a :LOGBOOK: ... :END: block at the start of
// body, keeping every entry line verbatim with a parsed kind tag.
func parseLogbook(body string) (*Logbook, string) {
	line, n := firstLine(body)
	if !strings.EqualFold(strings.TrimSpace(line), ":LOGBOOK:") {
		return nil, body
	}
	rest := body[n:]
	var entries []LogbookEntry
	for rest != "" {
		line, n := firstLine(rest)
		trimmed := strings.TrimSpace(line)
		rest = rest[n:]
		if strings.EqualFold(trimmed, ":END:") {
			return &Logbook{Entries: entries}, rest
		}
		entries = append(entries, LogbookEntry{Raw: line, Kind: classifyLogLine(trimmed)})
	}
	return nil, body
}

func classifyLogLine(trimmed string) LogbookEntryKind {
	switch {
	case strings.HasPrefix(trimmed, "CLOCK:"):
		return LogbookClock
	case stateLineRegexp.MatchString(trimmed):
		return LogbookState
	default:
		return LogbookNote
	}
}

// splitLines splits text into lines, each keeping its trailing newline
// except a final unterminated line.
func splitLines(text string) []string {
	var lines []string
	for len(text) > 0 {
		i := strings.IndexByte(text, '\n')
		if i < 0 {
			lines = append(lines, text)
			break
		}
		lines = append(lines, text[:i+1])
		text = text[i+1:]
	}
	return lines
}
