package imagepkg

// Line is one wrapped line and its baseline.
type Line struct {
	Text string
	Y    float64
}

// WrapText breaks text greedily per character: a line ends when the summed
// character widths exceed maxWidth or at an explicit newline. Breaks can
// fall inside words. The newline itself is dropped and not measured; the
// character that overflowed starts the next line, whose running width
// restarts at zero.
func WrapText(text string, y, maxWidth, lineHeight float64, measure func(string) float64) []Line {
	var lines []Line
	runes := []rune(text)
	start := 0
	width := 0.0
	for i, r := range runes {
		if r == '\n' {
			lines = append(lines, Line{Text: string(runes[start:i]), Y: y})
			y += lineHeight
			width = 0
			start = i + 1
			continue
		}
		width += measure(string(r))
		if width > maxWidth {
			lines = append(lines, Line{Text: string(runes[start:i]), Y: y})
			y += lineHeight
			width = 0
			start = i
		}
	}
	if start < len(runes) {
		lines = append(lines, Line{Text: string(runes[start:]), Y: y})
	}
	return lines
}
