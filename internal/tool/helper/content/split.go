package content

import "strings"

// SplitLines splits content into lines, handling both \n and \r\n line endings.
// A trailing newline sequence does NOT produce a trailing empty line.
func SplitLines(content string) []string {
	if content == "" {
		return nil
	}
	normalized := strings.ReplaceAll(content, "\r\n", "\n")
	normalized = strings.TrimSuffix(normalized, "\n")
	return strings.Split(normalized, "\n")
}
