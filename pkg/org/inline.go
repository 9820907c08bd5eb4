// inline.go implements the inline markup and cookie scanner.
package org

import (
	"regexp"
	"strings"
)

// markupDelimiters are the six span delimiter characters. Each opens a
// span only under the boundary rules checked in openerOK/closerOK.
const markupDelimiters = "*/_+=~"

// closerPunctuation may directly follow a closing delimiter.
const closerPunctuation = `.,;:!?'")]}`

var (
	linkRegexp   = regexp.MustCompile(`^\[\[([^\[\]]+)\](?:\[([^\[\]]*)\])?\]`)
	cookieRegexp = regexp.MustCompile(`^\[(?:\d*%|\d*/\d*)\]`)
	urlRegexp    = regexp.MustCompile(`https?://[^ \t\n]+`)
	wwwRegexp    = regexp.MustCompile(`\bwww\.[^ \t\n]+`)
	emailRegexp  = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
	phoneRegexp  = regexp.MustCompile(`\+\d+`)
)

// ParseMarkupAndCookies tokenizes text into a sequence of inline nodes.
// It is total: unrecognized spans fall back to plain text, and the Raw
// spans of the returned nodes exactly partition the input.
func ParseMarkupAndCookies(text string) []InlineNode {
	var nodes []InlineNode
	textStart := 0
	pos := 0

	flush := func(end int) {
		if end > textStart {
			nodes = appendPlainRun(nodes, text[textStart:end])
		}
	}

	for pos < len(text) {
		c := text[pos]
		switch {
		case c == '[':
			if node, n, ok := matchBracketAtom(text[pos:]); ok {
				flush(pos)
				nodes = append(nodes, node)
				pos += n
				textStart = pos
				continue
			}
			pos++

		case c == '<':
			if ts, n, ok := matchTimestamp(text[pos:]); ok {
				flush(pos)
				nodes = append(nodes, timestampNode(ts))
				pos += n
				textStart = pos
				continue
			}
			pos++

		case strings.IndexByte(markupDelimiters, c) >= 0:
			// A + that starts a phone number is never a markup opener;
			// leave it in the text run for the plain-text pass.
			if c == '+' {
				if n := phoneLenAt(text, pos); n > 0 {
					pos += n
					continue
				}
			}
			if !openerOK(text, pos) {
				pos++
				continue
			}
			end, ok := findClose(text, pos, c)
			if !ok {
				// Unbalanced delimiter stays literal text.
				pos++
				continue
			}
			flush(pos)
			nodes = append(nodes, markupNode(c, text[pos:end+1]))
			pos = end + 1
			textStart = pos

		default:
			pos++
		}
	}

	flush(len(text))
	return nodes
}

// matchBracketAtom recognizes the atoms that start with '[': links,
// statistics cookies and inactive timestamps, in that order.
func matchBracketAtom(s string) (InlineNode, int, bool) {
	if m := linkRegexp.FindStringSubmatch(s); m != nil {
		return InlineNode{
			Kind:     InlineLink,
			Raw:      m[0],
			LinkURL:  m[1],
			LinkDesc: m[2],
		}, len(m[0]), true
	}
	if m := cookieRegexp.FindString(s); m != "" {
		return InlineNode{Kind: InlineCookie, Raw: m}, len(m), true
	}
	if ts, n, ok := matchTimestamp(s); ok {
		return timestampNode(ts), n, true
	}
	return InlineNode{}, 0, false
}

func timestampNode(ts Timestamp) InlineNode {
	t := ts
	return InlineNode{Kind: InlineTimestamp, Raw: ts.Raw, Timestamp: &t}
}

// markupNode builds a markup span node from its full raw span including
// both delimiters. Code and verbatim content is kept as literal text;
// the other spans are parsed recursively so markup can nest.
func markupNode(delim byte, raw string) InlineNode {
	inner := raw[1 : len(raw)-1]
	node := InlineNode{
		Kind:      markupKind(delim),
		Raw:       raw,
		Delimiter: delim,
	}
	if delim == '=' || delim == '~' {
		node.Children = []InlineNode{{Kind: InlineText, Raw: inner}}
	} else {
		node.Children = ParseMarkupAndCookies(inner)
	}
	return node
}

func markupKind(delim byte) InlineKind {
	switch delim {
	case '*':
		return InlineBold
	case '/':
		return InlineItalic
	case '_':
		return InlineUnderline
	case '+':
		return InlineStrikethrough
	case '=':
		return InlineVerbatim
	case '~':
		return InlineCode
	}
	return InlineText
}

// openerOK reports whether the delimiter at pos may open a span: it must
// sit at line start or after whitespace or an opening bracket, and its
// content must start immediately with a non-space character that is not
// the delimiter itself.
func openerOK(text string, pos int) bool {
	if pos > 0 {
		prev := text[pos-1]
		if !isSpaceByte(prev) && strings.IndexByte(`([{'"`, prev) < 0 {
			return false
		}
	}
	if pos+1 >= len(text) {
		return false
	}
	next := text[pos+1]
	return !isSpaceByte(next) && next != text[pos]
}

// findClose scans forward for a valid closing delimiter. A candidate
// closes the span only when preceded by a non-space character and
// followed by whitespace, end of input or closing punctuation. The scan
// never crosses a blank line.
func findClose(text string, start int, delim byte) (int, bool) {
	for j := start + 2; j < len(text); j++ {
		c := text[j]
		if c == '\n' && j+1 < len(text) && text[j+1] == '\n' {
			return 0, false
		}
		if c != delim || isSpaceByte(text[j-1]) {
			continue
		}
		if j+1 == len(text) {
			return j, true
		}
		next := text[j+1]
		if isSpaceByte(next) || strings.IndexByte(closerPunctuation, next) >= 0 {
			return j, true
		}
	}
	return 0, false
}

// appendPlainRun splits a raw text run into plain text plus any bare
// URLs, www links, emails and phone numbers it contains, appending the
// resulting nodes in source order.
func appendPlainRun(nodes []InlineNode, run string) []InlineNode {
	pos := 0
	for pos < len(run) {
		start, end, kind, ok := nextPlainMatch(run, pos)
		if !ok {
			break
		}
		if start > pos {
			nodes = append(nodes, InlineNode{Kind: InlineText, Raw: run[pos:start]})
		}
		nodes = append(nodes, InlineNode{Kind: kind, Raw: run[start:end]})
		pos = end
	}
	if pos < len(run) {
		nodes = append(nodes, InlineNode{Kind: InlineText, Raw: run[pos:]})
	}
	return nodes
}

// nextPlainMatch finds the leftmost URL/www/email/phone match at or
// after pos. Ties on start position resolve in that priority order.
func nextPlainMatch(run string, pos int) (start, end int, kind InlineKind, ok bool) {
	type candidate struct {
		start, end int
		kind       InlineKind
	}
	var best *candidate
	consider := func(c candidate) {
		if best == nil || c.start < best.start {
			best = &c
		}
	}

	if loc := urlRegexp.FindStringIndex(run[pos:]); loc != nil {
		s, e := pos+loc[0], pos+loc[1]
		e = trimTrailingPunctuation(run, s, e)
		consider(candidate{s, e, InlineURL})
	}
	if loc := wwwRegexp.FindStringIndex(run[pos:]); loc != nil {
		s, e := pos+loc[0], pos+loc[1]
		e = trimTrailingPunctuation(run, s, e)
		consider(candidate{s, e, InlineWWWURL})
	}
	if loc := emailRegexp.FindStringIndex(run[pos:]); loc != nil {
		consider(candidate{pos + loc[0], pos + loc[1], InlineEmail})
	}
	if s, e, found := findPhone(run, pos); found {
		consider(candidate{s, e, InlinePhone})
	}

	if best == nil {
		return 0, 0, InlineText, false
	}
	return best.start, best.end, best.kind, true
}

// trimTrailingPunctuation backs the match end off over punctuation that
// reads as sentence text rather than part of the address.
func trimTrailingPunctuation(run string, start, end int) int {
	for end > start && strings.IndexByte(`.,;:!?'")`, run[end-1]) >= 0 {
		end--
	}
	return end
}

// findPhone locates the next +digits run that sits on word boundaries.
func findPhone(run string, pos int) (int, int, bool) {
	for pos < len(run) {
		loc := phoneRegexp.FindStringIndex(run[pos:])
		if loc == nil {
			return 0, 0, false
		}
		s, e := pos+loc[0], pos+loc[1]
		if phoneBoundariesOK(run, s, e) {
			return s, e, true
		}
		pos = e
	}
	return 0, 0, false
}

// phoneLenAt returns the length of a phone number starting exactly at
// pos, or 0 when pos does not start one.
func phoneLenAt(text string, pos int) int {
	loc := phoneRegexp.FindStringIndex(text[pos:])
	if loc == nil || loc[0] != 0 {
		return 0
	}
	if !phoneBoundariesOK(text, pos, pos+loc[1]) {
		return 0
	}
	return loc[1]
}

func phoneBoundariesOK(s string, start, end int) bool {
	if start > 0 {
		prev := s[start-1]
		if !isSpaceByte(prev) && prev != '(' {
			return false
		}
	}
	if end < len(s) && isAlnumByte(s[end]) {
		return false
	}
	return true
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}

func isAlnumByte(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
