package outputters

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTable(t *testing.T) {
	out := Table(sampleRows())

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 6) // heading, blank, header, divider, two rows

	assert.Contains(t, out, "# Azure Cost Management Recommendations")
	assert.Contains(t, out, "| recommendation ")
	assert.Contains(t, out, "accelNetEnabled")
	assert.Contains(t, out, "Standard_D2")

	// Nil cells render empty, column count stays fixed.
	for _, line := range lines[2:] {
		assert.Equal(t, len(Headers)+1, strings.Count(line, "|"))
	}
}
