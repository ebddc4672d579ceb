package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentHasFixedHeadAndVerbatimBody(t *testing.T) {
	body := `Reduce <b>emissions</b> & "now"`
	doc := Document(body)

	assert.True(t, strings.HasPrefix(doc, "<html>\n<head>\n"))
	assert.Contains(t, doc, `<meta name="viewport" content="width=device-width, initial-scale=1">`)
	assert.Contains(t, doc, `<style> body { font-size: 175%; color: white; background-color: black } </style>`)
	assert.Contains(t, doc, "<body>\n"+body+"\n</body>")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(doc), "</html>"))
}

func TestDocumentBodyWithPercentSign(t *testing.T) {
	doc := Document("raise it by 50%d")
	assert.Contains(t, doc, "raise it by 50%d")
}

func TestTextExtractsBodyOnly(t *testing.T) {
	out, err := Text(Document("Simplify taxes"), 0)
	require.NoError(t, err)
	assert.Equal(t, "Simplify taxes", out)
}

func TestTextBlocksAndBreaks(t *testing.T) {
	out, err := Text(Document("<p>First   paragraph</p><p>Second<br>line</p><ul><li>one</li><li>two</li></ul>"), 0)
	require.NoError(t, err)
	assert.Equal(t, "First paragraph\nSecond\nline\n• one\n• two", out)
}

func TestTextPreservesPlainNewlines(t *testing.T) {
	out, err := Text(Document("line one\n\n\n\nline two"), 0)
	require.NoError(t, err)
	assert.Equal(t, "line one\n\nline two", out)
}

func TestTextWraps(t *testing.T) {
	out, err := Text(Document("alpha beta gamma delta epsilon"), 12)
	require.NoError(t, err)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len(line), 12, line)
	}
	assert.Contains(t, out, "alpha beta")
}
