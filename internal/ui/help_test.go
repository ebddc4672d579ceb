package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagerDocument(t *testing.T) {
	doc := pagerDocument("Road Repair", "Fix potholes")
	lines := strings.Split(doc, "\n")

	assert.Equal(t, "Road Repair", lines[0])
	assert.Equal(t, strings.Repeat("─", len("Road Repair")), lines[1])
	assert.Equal(t, "", lines[2])
	assert.Equal(t, "Fix potholes", lines[3])
}

func TestPagerWithoutProgram(t *testing.T) {
	var p *Pager
	assert.Error(t, p.Show("text"))
	assert.Error(t, NewPager(nil).Show("text"))
}
