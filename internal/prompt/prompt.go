// Package prompt implements the line-based interactive prompts the CLI
// uses for per-file decisions.
//
// Prompts read from an injected reader and write to an injected writer so
// tests can drive them without a terminal. The per-item selector supports
// an "all" answer that applies yes to every remaining item in one stroke,
// and "quit" which declines the rest.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrAborted reports that input ended before the user answered.
var ErrAborted = errors.New("prompt aborted")

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New builds a Prompter over the given streams.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Confirm asks a yes/no question. Empty input selects the default.
func (p *Prompter) Confirm(question string, defaultYes bool) (bool, error) {
	hint := "y/N"
	if defaultYes {
		hint = "Y/n"
	}
	fmt.Fprintf(p.out, "%s [%s]: ", question, hint)
	answer, err := p.readLine()
	if err != nil {
		return false, err
	}
	switch answer {
	case "":
		return defaultYes, nil
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}

// SelectEach walks the labels asking yes/no per item. Answering "a"
// selects the current and every remaining item; "q" declines the rest.
// The returned slice has one decision per label.
func (p *Prompter) SelectEach(header string, labels []string) ([]bool, error) {
	if len(labels) == 0 {
		return nil, nil
	}
	fmt.Fprintln(p.out, header)

	selected := make([]bool, len(labels))
	for i, label := range labels {
		fmt.Fprintf(p.out, "  %s [y/N/a/q]: ", label)
		answer, err := p.readLine()
		if err != nil {
			return nil, err
		}
		switch answer {
		case "y", "yes":
			selected[i] = true
		case "a", "all":
			for j := i; j < len(labels); j++ {
				selected[j] = true
			}
			return selected, nil
		case "q", "quit":
			return selected, nil
		}
	}
	return selected, nil
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && strings.TrimSpace(line) != "" {
			return strings.ToLower(strings.TrimSpace(line)), nil
		}
		return "", fmt.Errorf("%w: %s", ErrAborted, err)
	}
	return strings.ToLower(strings.TrimSpace(line)), nil
}
