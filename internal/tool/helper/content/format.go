package content

import (
	"fmt"
	"strings"
)

// LineNumbered prefixes each line of content with a 1-based line number
// starting after offset. Numbers are right-aligned to the width of the
// largest number in the output and separated from the line by a tab. Lines
// longer than maxLineLength bytes are cut and marked with "...".
func LineNumbered(content string, offset int, maxLineLength int) string {
	lines := SplitLines(content)
	width := len(fmt.Sprintf("%d", offset+len(lines)))

	var b strings.Builder
	for i, line := range lines {
		if maxLineLength > 3 && len(line) > maxLineLength {
			line = line[:maxLineLength-3] + "..."
		}
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "%*d\t%s", width, offset+i+1, line)
	}
	return b.String()
}

// Truncate caps output at maxBytes and appends a notice stating the original
// size. Output at or under the limit is returned unchanged.
func Truncate(output string, maxBytes int) string {
	if maxBytes <= 0 || len(output) <= maxBytes {
		return output
	}
	return fmt.Sprintf("%s\n\n[Output truncated: %d bytes total, showing first %d bytes]",
		output[:maxBytes], len(output), maxBytes)
}
