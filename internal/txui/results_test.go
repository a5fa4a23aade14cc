package txui

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestPrintSummaryNoChanges(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	PrintSummary(&buf, &Results{})
	assert.Contains(t, buf.String(), "no changes")
}

func TestPrintSummaryWithFailure(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	PrintSummary(&buf, &Results{Installed: 2, Failed: 1})
	out := buf.String()
	assert.Contains(t, out, "installed:   2")
	assert.Contains(t, out, "failed:      1")
	assert.Contains(t, out, "errors")
}
