// Package textutil holds text helpers for help rendering.
package textutil

import "strings"

// Wrap splits text into lines no longer than width, breaking at spaces. Words longer than width are
// kept whole on their own line. It always returns at least one line.
func Wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 || width <= 0 {
		return []string{text}
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		if len(line)+1+len(w) > width {
			lines = append(lines, line)
			line = w
			continue
		}
		line += " " + w
	}
	return append(lines, line)
}
