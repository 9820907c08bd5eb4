package convert

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/orgtools/org-cli/pkg/org"
)

// htmlParser is a pre-configured goldmark instance with GFM extensions
// for task lists and strikethrough.
var htmlParser = goldmark.New(
	goldmark.WithExtensions(extension.TaskList, extension.Strikethrough),
)

// OrgToHTML renders a parsed document to HTML by way of markdown.
func OrgToHTML(doc *org.Document) (string, error) {
	markdown := OrgToMarkdown(doc)
	if markdown == "" {
		return "", nil
	}

	var buf bytes.Buffer
	if err := htmlParser.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}

	return buf.String(), nil
}
