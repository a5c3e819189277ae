package util

import "strings"

// NiceJoin joins items for human-facing messages, e.g.
// "a, b or c". conjunction may be "or"/"and"; an empty conjunction
// yields a plain separator join.
func NiceJoin(items []string, sep, conjunction string) string {
	if len(items) <= 1 || conjunction == "" {
		return strings.Join(items, sep)
	}
	return strings.Join(items[:len(items)-1], sep) + " " + conjunction + " " + items[len(items)-1]
}

// SplitLines splits data into trimmed, non-empty lines.
func SplitLines(data []byte) []string {
	var lines []string
	for _, line := range strings.Split(string(data), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
