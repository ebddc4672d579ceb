// Package render builds the detail page HTML and turns it into terminal text.
package render

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/muesli/reflow/wordwrap"
)

const documentTemplate = `<html>
<head>
<meta name="viewport" content="width=device-width, initial-scale=1">
<style> body { font-size: 175%%; color: white; background-color: black } </style>
</head>
<body>
%s
</body>
</html>
`

// Document wraps a petition body in the fixed detail page. The body is
// embedded verbatim: petition bodies are trusted API content and may carry
// their own markup.
func Document(body string) string {
	return fmt.Sprintf(documentTemplate, body)
}

// Text renders an HTML document as plain terminal text wrapped at width.
// Block elements and <br> start new lines; runs of blank lines collapse.
func Text(document string, width int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(document))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	body := doc.Find("body")
	body.Find("script, style").Remove()
	body.Find("br").ReplaceWithHtml("\n")
	body.Find("p, div, li, h1, h2, h3, h4, h5, h6, blockquote, tr").Each(func(_ int, s *goquery.Selection) {
		s.AppendHtml("\n")
	})
	body.Find("li").Each(func(_ int, s *goquery.Selection) {
		s.PrependHtml("• ")
	})

	text := normalize(body.Text())
	if width > 0 {
		text = wordwrap.String(text, width)
	}
	return text, nil
}

// normalize trims each line and collapses consecutive blank lines.
func normalize(s string) string {
	lines := strings.Split(strings.ReplaceAll(s, "\r\n", "\n"), "\n")
	out := make([]string, 0, len(lines))
	blank := false
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			if !blank && len(out) > 0 {
				out = append(out, "")
			}
			blank = true
			continue
		}
		blank = false
		out = append(out, line)
	}
	return strings.TrimRight(strings.Join(out, "\n"), "\n")
}
