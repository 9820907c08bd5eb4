// export.go re-serializes parsed documents back to Org text.
package org

import (
	"fmt"
	"strings"
)

// ExportOptions holds the external formatting toggles. They never
// change what a document means, only how reconstructed lines indent.
type ExportOptions struct {
	// DontIndent disables the level-based indentation of planning
	// lines and drawers.
	DontIndent bool
}

// Export serializes the document with default options. For text written
// with the standard formatting conventions the result is byte-identical
// to the source.
func Export(doc *Document) string {
	return ExportWithOptions(doc, ExportOptions{})
}

// ExportWithOptions serializes the document. It is a pure function of
// the tree and the options.
func ExportWithOptions(doc *Document, opts ExportOptions) string {
	var b strings.Builder
	b.WriteString(doc.Preamble)
	for _, h := range doc.Headers {
		writeHeader(&b, h, opts)
	}
	out := b.String()
	if doc.NoFinalNewline {
		out = strings.TrimSuffix(out, "\n")
	}
	return out
}

// ExportHeader serializes a single header, title line through body.
func ExportHeader(h *Header, opts ExportOptions) string {
	var b strings.Builder
	writeHeader(&b, h, opts)
	return b.String()
}

func writeHeader(b *strings.Builder, h *Header, opts ExportOptions) {
	b.WriteString(strings.Repeat("*", h.Level))
	b.WriteByte(' ')
	if h.Title.Todo != "" {
		b.WriteString(h.Title.Todo)
		b.WriteByte(' ')
	}
	if h.Title.Priority != "" {
		b.WriteString("[#")
		b.WriteString(h.Title.Priority)
		b.WriteString("] ")
	}
	b.WriteString(ExportInline(h.Title.Title))
	if len(h.Title.Tags) > 0 {
		b.WriteString(" :")
		b.WriteString(strings.Join(h.Title.Tags, ":"))
		b.WriteByte(':')
	}
	b.WriteByte('\n')

	indent := ""
	if !opts.DontIndent {
		indent = strings.Repeat(" ", h.Level+1)
	}

	if len(h.Planning) > 0 {
		b.WriteString(indent)
		b.WriteString(exportPlanning(h.Planning))
		b.WriteByte('\n')
	}
	if h.Properties != nil {
		b.WriteString(indent)
		b.WriteString(":PROPERTIES:\n")
		for _, p := range h.Properties.Properties {
			b.WriteString(indent)
			b.WriteByte(':')
			b.WriteString(p.Key)
			b.WriteByte(':')
			if p.Value != "" {
				b.WriteByte(' ')
				b.WriteString(p.Value)
			}
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteString(":END:\n")
	}
	if h.Logbook != nil {
		b.WriteString(indent)
		b.WriteString(":LOGBOOK:\n")
		for _, e := range h.Logbook.Entries {
			b.WriteString(e.Raw)
			b.WriteByte('\n')
		}
		b.WriteString(indent)
		b.WriteString(":END:\n")
	}

	b.WriteString(h.RawDescription)
}

// exportPlanning reconstructs a planning line from its items: canonical
// keyword labels and canonical timestamp forms, joined by single spaces
// in fixed SCHEDULED, DEADLINE, CLOSED order.
func exportPlanning(items []PlanningItem) string {
	var parts []string
	for _, keyword := range []PlanningKeyword{PlanningScheduled, PlanningDeadline, PlanningClosed} {
		for _, item := range items {
			if item.Keyword != keyword {
				continue
			}
			parts = append(parts, string(keyword)+": "+item.Timestamp.String())
		}
	}
	return strings.Join(parts, " ")
}

// ExportInline re-emits an inline node sequence. Markup spans use the
// delimiter characters recorded at parse time rather than a canonical
// pair; every other node re-emits its raw span, so an unmodified
// sequence concatenates to exactly its source text.
func ExportInline(nodes []InlineNode) string {
	var b strings.Builder
	for _, n := range nodes {
		writeInline(&b, n)
	}
	return b.String()
}

func writeInline(b *strings.Builder, n InlineNode) {
	switch n.Kind {
	case InlineText, InlineLink, InlineURL, InlineWWWURL, InlineEmail,
		InlinePhone, InlineCookie, InlineTimestamp:
		b.WriteString(n.Raw)
	case InlineBold, InlineItalic, InlineUnderline, InlineStrikethrough,
		InlineCode, InlineVerbatim:
		b.WriteByte(n.Delimiter)
		for _, child := range n.Children {
			writeInline(b, child)
		}
		b.WriteByte(n.Delimiter)
	default:
		// A kind outside the closed set is a caller bug, not bad input.
		panic(fmt.Sprintf("org: cannot export inline node of unknown kind %d", n.Kind))
	}
}
