package text

import "strings"

// line accumulates the words of the line being packed. Words are slices of
// the input, never copies.
type line struct {
	words []string
	// minLength is the rendered length with a single space in every gap.
	minLength int
}

func newLine(capacity int) *line {
	return &line{words: make([]string, 0, capacity)}
}

func (l *line) empty() bool {
	return len(l.words) == 0
}

// add appends word, first flushing the line into out when the word would not
// fit within lineWidth.
func (l *line) add(word string, lineWidth int, out *strings.Builder) {
	minLength := len(word)
	if !l.empty() {
		minLength = l.minLength + spaceSize + len(word)
	}

	if minLength > lineWidth {
		l.flush(lineWidth, out)
		minLength = len(word)
	}

	l.words = append(l.words, word)
	l.minLength = minLength
}

// flush renders the line into out padded to exactly lineWidth bytes and
// resets it. A line break precedes every line but the first one written.
func (l *line) flush(lineWidth int, out *strings.Builder) {
	if out.Len() > 0 {
		out.WriteString(lineBreak)
	}

	freeSpace := lineWidth - l.minLength
	separators := len(l.words) - 1

	separatorWidth := 0
	if separators > 0 {
		separatorWidth = freeSpace / separators
	}
	extraSpaces := freeSpace - separators*separatorWidth

	for i, word := range l.words {
		if i > 0 {
			width := spaceSize + separatorWidth
			if extraSpaces > 0 {
				width++
				extraSpaces--
			}
			writeSpaces(out, width)
		}
		out.WriteString(word)
	}

	if extraSpaces > 0 {
		writeSpaces(out, extraSpaces)
	}

	l.words = l.words[:0]
	l.minLength = 0
}

func writeSpaces(out *strings.Builder, n int) {
	out.WriteString(strings.Repeat(space, n))
}
