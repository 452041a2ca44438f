package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// LinePrompter implements commands.Prompter over a line-oriented reader.
// Reads block until a full line (or end of input) is available.
type LinePrompter struct {
	r   *bufio.Reader
	out io.Writer
}

// NewLinePrompter creates a prompter that prints labels to out and reads from in.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		r:   bufio.NewReader(in),
		out: out,
	}
}

// Prompt prints label and returns the next line without its line ending.
// A final line without a newline is returned as-is; after that, io.EOF.
func (p *LinePrompter) Prompt(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
