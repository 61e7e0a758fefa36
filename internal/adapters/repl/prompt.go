package repl

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// linePrompt reads operator input one line at a time. It implements
// core.Prompt for the order builder and backs the wizards directly.
type linePrompt struct {
	in     *bufio.Reader
	out    io.Writer
	errOut io.Writer
}

// Line prints the label and returns the next line, trimmed. An end-of-input
// or read failure is fatal to the caller.
func (p *linePrompt) Line(label string) (string, error) {
	fmt.Fprint(p.out, label)
	line, err := p.in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return "", errors.Wrap(err, "read input")
	}
	return strings.TrimSpace(line), nil
}

// Quantity reads an unsigned number, re-prompting until one parses.
func (p *linePrompt) Quantity(label string) (uint32, error) {
	for {
		line, err := p.Line(label)
		if err != nil {
			return 0, err
		}
		n, err := strconv.ParseUint(line, 10, 32)
		if err != nil {
			fmt.Fprintln(p.errOut, "Invalid input, try again.")
			continue
		}
		return uint32(n), nil
	}
}
