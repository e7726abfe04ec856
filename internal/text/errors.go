package text

import "fmt"

// WordTooLongError is returned by Transform when a single word does not fit
// within the requested line width.
type WordTooLongError struct {
	Word      string
	LineWidth int
}

func (e *WordTooLongError) Error() string {
	return fmt.Sprintf("'%s' length is more than %d", e.Word, e.LineWidth)
}

// MinimumWidth is the smallest line width that would accept the word.
func (e *WordTooLongError) MinimumWidth() int {
	return len(e.Word)
}
