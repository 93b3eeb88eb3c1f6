package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/lixenwraith/vi-maze/constants"
	"github.com/lixenwraith/vi-maze/game"
)

// LineReader reads one command per line, used in plain mode
type LineReader struct {
	scanner *bufio.Scanner
	out     io.Writer
	keys    *KeyTable
}

// NewLineReader prompts on out and reads lines from in; nil keys selects the default table
func NewLineReader(in io.Reader, out io.Writer, keys *KeyTable) *LineReader {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &LineReader{
		scanner: bufio.NewScanner(in),
		out:     out,
		keys:    keys,
	}
}

func (r *LineReader) readLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.scanner.Text()), nil
}

// ReadCommand prompts until a line starting with a bound key is entered
// Lines that map to nothing are reported and re-read
func (r *LineReader) ReadCommand() (game.Command, error) {
	for {
		fmt.Fprint(r.out, constants.ManualPrompt)
		line, err := r.readLine()
		if err != nil {
			return game.CommandNone, err
		}
		if line == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(line)
		if cmd, ok := r.keys.LookupRune(first); ok {
			return cmd, nil
		}
		fmt.Fprintf(r.out, "Invalid input %q\n", line)
	}
}

// Acknowledge waits for Enter
func (r *LineReader) Acknowledge() error {
	fmt.Fprint(r.out, constants.ContinuePrompt)
	_, err := r.readLine()
	return err
}
