package interp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ReaderInput reads scanf values from a plain reader and writes prompts to
// w. It's used for non-interactive sessions.
type ReaderInput struct {
	r *bufio.Reader
	w io.Writer
}

// NewReaderInput creates a ReaderInput.
func NewReaderInput(r io.Reader, w io.Writer) *ReaderInput {
	return &ReaderInput{r: bufio.NewReader(r), w: w}
}

// ReadLine implements the Input interface. The returned line has no
// trailing newline.
func (ri *ReaderInput) ReadLine(prompt string) (string, error) {
	if _, err := fmt.Fprint(ri.w, prompt); err != nil {
		return "", err
	}
	line, err := ri.r.ReadString('\n')
	return strings.TrimRight(line, "\r\n"), err
}
