package text

import "strings"

const (
	space     = " "
	spaceSize = len(space)
	lineBreak = "\n"
)

// Transform reflows input into lines of exactly lineWidth bytes. Words are
// separated by single ASCII spaces in the input; runs of spaces collapse.
// Extra padding goes between words, leftmost gaps first, and a line holding a
// single word is padded on the right. The final line is padded the same way.
//
// Lengths are byte counts, not display columns. If any word is longer than
// lineWidth a *WordTooLongError is returned and no output is produced.
func Transform(input string, lineWidth int) (string, error) {
	if input == "" {
		return "", nil
	}

	var result strings.Builder
	// A line holds at most one word per two bytes of width or of input.
	current := newLine(max(min(lineWidth/2+1, len(input)/2+1), 1))

	for rest := input; rest != ""; {
		var word string
		word, rest = nextWord(rest)

		if word == "" {
			continue
		}

		if len(word) > lineWidth {
			return "", &WordTooLongError{Word: strings.Clone(word), LineWidth: lineWidth}
		}

		current.add(word, lineWidth, &result)
	}

	if !current.empty() {
		current.flush(lineWidth, &result)
	}

	return result.String(), nil
}

// nextWord splits input at the first space. The word may be empty when input
// starts with a space.
func nextWord(input string) (word string, rest string) {
	i := strings.Index(input, space)
	if i < 0 {
		return input, ""
	}

	return input[:i], input[i+spaceSize:]
}
