// Package convert translates between Org outline text and other
// document formats.
package convert

import (
	"strings"

	"github.com/orgtools/org-cli/pkg/org"
)

// OrgToMarkdown converts a parsed document to GitHub-flavored markdown.
// Headlines become hash headings, TODO keywords become task checkboxes
// and inline markup is re-spelled in markdown delimiters.
func OrgToMarkdown(doc *org.Document) string {
	var md strings.Builder

	preamble := preambleToMarkdown(doc.Preamble)
	if preamble != "" {
		md.WriteString(preamble)
	}

	for _, h := range doc.Headers {
		writeHeaderMarkdown(&md, doc, h)
	}

	return md.String()
}

func preambleToMarkdown(preamble string) string {
	var out strings.Builder
	for _, line := range strings.Split(preamble, "\n") {
		trimmed := strings.TrimSpace(line)

		// #+TITLE becomes a top-level heading, remaining in-buffer
		// settings are dropped
		if strings.HasPrefix(strings.ToLower(trimmed), "#+title:") {
			title := strings.TrimSpace(trimmed[8:])
			if title != "" {
				out.WriteString("# " + title + "\n")
			}
			continue
		}
		if strings.HasPrefix(trimmed, "#+") {
			continue
		}

		out.WriteString(inlineToMarkdown(org.ParseMarkupAndCookies(line)) + "\n")
	}

	s := out.String()
	if strings.TrimSpace(s) == "" {
		return ""
	}
	return s
}

func writeHeaderMarkdown(md *strings.Builder, doc *org.Document, h *org.Header) {
	md.WriteString(strings.Repeat("#", h.Level) + " ")

	if h.Title.Todo != "" {
		checkbox := "[ ]"
		if doc.IsDoneKeyword(h.Title.Todo) {
			checkbox = "[x]"
		}
		md.WriteString("- " + checkbox + " ")
	}

	md.WriteString(inlineToMarkdown(h.Title.Title))

	if len(h.Title.Tags) > 0 {
		md.WriteString(" `:" + strings.Join(h.Title.Tags, ":") + ":`")
	}
	md.WriteString("\n")

	for _, p := range h.Planning {
		md.WriteString(string(p.Keyword) + ": " + p.Timestamp.Date)
		if p.Timestamp.Time != "" {
			md.WriteString(" " + p.Timestamp.Time)
		}
		md.WriteString("\n")
	}

	body := strings.TrimRight(h.RawDescription, "\n")
	if body == "" {
		return
	}
	for _, line := range strings.Split(body, "\n") {
		md.WriteString(inlineToMarkdown(org.ParseMarkupAndCookies(line)) + "\n")
	}
}

// inlineToMarkdown renders inline nodes with markdown delimiters.
func inlineToMarkdown(nodes []org.InlineNode) string {
	var out strings.Builder
	for _, n := range nodes {
		writeInlineMarkdown(&out, n)
	}
	return out.String()
}

func writeInlineMarkdown(out *strings.Builder, n org.InlineNode) {
	switch n.Kind {
	case org.InlineBold:
		out.WriteString("**")
		for _, c := range n.Children {
			writeInlineMarkdown(out, c)
		}
		out.WriteString("**")
	case org.InlineItalic:
		out.WriteString("*")
		for _, c := range n.Children {
			writeInlineMarkdown(out, c)
		}
		out.WriteString("*")
	case org.InlineUnderline:
		// Markdown has no underline, fall back to emphasis
		out.WriteString("*")
		for _, c := range n.Children {
			writeInlineMarkdown(out, c)
		}
		out.WriteString("*")
	case org.InlineStrikethrough:
		out.WriteString("~~")
		for _, c := range n.Children {
			writeInlineMarkdown(out, c)
		}
		out.WriteString("~~")
	case org.InlineCode, org.InlineVerbatim:
		out.WriteString("`")
		for _, c := range n.Children {
			out.WriteString(c.Raw)
		}
		out.WriteString("`")
	case org.InlineLink:
		if n.LinkDesc != "" {
			out.WriteString("[" + n.LinkDesc + "](" + n.LinkURL + ")")
		} else {
			out.WriteString("<" + n.LinkURL + ">")
		}
	case org.InlineURL, org.InlineWWWURL, org.InlineEmail, org.InlinePhone:
		out.WriteString(n.Raw)
	case org.InlineCookie:
		out.WriteString("`" + n.Raw + "`")
	case org.InlineTimestamp:
		out.WriteString("`" + n.Raw + "`")
	default:
		out.WriteString(n.Raw)
	}
}
