package communication

import (
	"bufio"
	"bytes"
	"io"
	"sync"

	"blokus/game"

	"github.com/pkg/errors"
)

const maxLineSize = 4 << 20

// StdioCommunicator exchanges one message per line: JSON updates in, move and
// DEBUG lines out.
type StdioCommunicator struct {
	scanner *bufio.Scanner
	mu      sync.Mutex
	out     *bufio.Writer
}

func NewStdioCommunicator(in io.Reader, out io.Writer) *StdioCommunicator {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), maxLineSize)
	return &StdioCommunicator{
		scanner: scanner,
		out:     bufio.NewWriter(out),
	}
}

// Receive skips blank lines. A malformed line yields an error wrapping
// ErrMalformed and the next call continues with the following line.
func (c *StdioCommunicator) Receive() (Update, error) {
	for c.scanner.Scan() {
		line := bytes.TrimSpace(c.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		return DecodeUpdate(line)
	}
	if err := c.scanner.Err(); err != nil {
		return Update{}, errors.Wrap(err, "failed to read update")
	}
	return Update{}, io.EOF
}

func (c *StdioCommunicator) SendMove(move game.Move) error {
	return c.writeLine(FormatMove(move))
}

func (c *StdioCommunicator) SendDebug(message string) error {
	return c.writeLine(FormatDebug(message))
}

func (c *StdioCommunicator) writeLine(line string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.out.WriteString(line + "\n"); err != nil {
		return errors.Wrap(err, "failed to write line")
	}
	return errors.Wrap(c.out.Flush(), "failed to flush line")
}
