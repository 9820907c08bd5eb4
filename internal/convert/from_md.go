package convert

import (
	"regexp"
	"strings"
)

var (
	mdHeadingRegexp  = regexp.MustCompile(`^(#{1,9})[ \t]+(.*)$`)
	mdTaskRegexp     = regexp.MustCompile(`^-[ \t]+\[([ xX])\][ \t]+(.*)$`)
	mdLinkRegexp     = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	mdAutolinkRegexp = regexp.MustCompile(`<(https?://[^>]+)>`)
	mdBoldRegexp     = regexp.MustCompile(`\*\*([^*]+)\*\*`)
	mdStrikeRegexp   = regexp.MustCompile(`~~([^~]+)~~`)
	mdItalicRegexp   = regexp.MustCompile(`(^|[\s(])\*([^*\s][^*]*)\*`)
	mdCodeRegexp     = regexp.MustCompile("`([^`]+)`")
)

// MarkdownToOrg converts markdown text to Org outline text. Hash
// headings become star headlines, task checkboxes become TODO/DONE
// keywords, fenced code blocks become src blocks and inline markup is
// re-spelled in Org delimiters.
func MarkdownToOrg(markdown string) string {
	var out strings.Builder

	inFence := false
	for _, line := range strings.Split(strings.TrimRight(markdown, "\n"), "\n") {
		trimmed := strings.TrimSpace(line)

		if strings.HasPrefix(trimmed, "```") {
			if inFence {
				out.WriteString("#+END_SRC\n")
			} else {
				lang := strings.TrimSpace(strings.TrimPrefix(trimmed, "```"))
				out.WriteString(strings.TrimSpace("#+BEGIN_SRC " + lang))
				out.WriteString("\n")
			}
			inFence = !inFence
			continue
		}
		if inFence {
			out.WriteString(line + "\n")
			continue
		}

		if m := mdHeadingRegexp.FindStringSubmatch(line); m != nil {
			stars := strings.Repeat("*", len(m[1]))
			rest := m[2]

			// A task heading carries its checkbox state as a keyword
			if tm := mdTaskRegexp.FindStringSubmatch(rest); tm != nil {
				keyword := "TODO"
				if tm[1] != " " {
					keyword = "DONE"
				}
				out.WriteString(stars + " " + keyword + " " + inlineToOrg(tm[2]) + "\n")
				continue
			}

			out.WriteString(stars + " " + inlineToOrg(rest) + "\n")
			continue
		}

		if strings.HasPrefix(trimmed, "> ") {
			out.WriteString("#+BEGIN_QUOTE\n" + inlineToOrg(strings.TrimPrefix(trimmed, "> ")) + "\n#+END_QUOTE\n")
			continue
		}

		out.WriteString(inlineToOrg(line) + "\n")
	}

	if inFence {
		out.WriteString("#+END_SRC\n")
	}

	return out.String()
}

// inlineToOrg rewrites markdown inline markup in Org delimiters.
// Italic runs before bold so the stars produced for Org bold are not
// picked up again as markdown emphasis.
func inlineToOrg(s string) string {
	s = mdLinkRegexp.ReplaceAllString(s, "[[$2][$1]]")
	s = mdAutolinkRegexp.ReplaceAllString(s, "[[$1]]")
	s = mdItalicRegexp.ReplaceAllString(s, "$1/$2/")
	s = mdBoldRegexp.ReplaceAllString(s, "*$1*")
	s = mdStrikeRegexp.ReplaceAllString(s, "+$1+")
	s = mdCodeRegexp.ReplaceAllString(s, "~$1~")
	return s
}
