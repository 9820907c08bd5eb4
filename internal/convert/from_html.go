package convert

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// HTMLToOrg converts an HTML document to Org outline text by way of
// markdown.
func HTMLToOrg(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", err
	}

	return MarkdownToOrg(strings.TrimSpace(markdown)), nil
}
