// Package prompt reads validated numbers from an interactive console.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"unicode"
)

// InvalidInputMessage is written after every rejected attempt.
const InvalidInputMessage = "Oops, that input is invalid. Please try again.\n"

// ErrInputExhausted is returned when the input closes before a valid value
// was read.
var ErrInputExhausted = errors.New("input exhausted")

var errMalformed = errors.New("malformed number")

// Reader prompts on out and reads whitespace separated tokens from in.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewReader creates a Reader.
func NewReader(in io.Reader, out io.Writer) *Reader {
	br, ok := in.(*bufio.Reader)
	if !ok {
		br = bufio.NewReader(in)
	}
	return &Reader{in: br, out: out}
}

// ReadUint16 writes prompt and reads a number in [0, 65535]. Malformed or
// out of range tokens are rejected and the prompt repeats until a valid
// value arrives or the input ends. The rest of the line after the token is
// always discarded.
func (r *Reader) ReadUint16(prompt string) (uint16, error) {
	for attempt := 1; ; attempt++ {
		if _, err := io.WriteString(r.out, prompt); err != nil {
			return 0, fmt.Errorf("writing prompt: %w", err)
		}
		v, err := r.scan()
		if err == nil {
			slog.Debug("Accepted input", "prompt", prompt, "value", v, "attempt", attempt)
			return v, nil
		}
		if !errors.Is(err, errMalformed) {
			return 0, err
		}
		slog.Debug("Rejected input", "prompt", prompt, "attempt", attempt, "error", err)
		if _, err := io.WriteString(r.out, InvalidInputMessage); err != nil {
			return 0, fmt.Errorf("writing error message: %w", err)
		}
	}
}

// scan extracts one token the way stream extraction does: leading
// whitespace (blank lines included) is skipped, then the longest numeric
// prefix is parsed.
func (r *Reader) scan() (uint16, error) {
	if err := r.skipSpace(); err != nil {
		return 0, err
	}

	var digits []byte
	c, err := r.in.ReadByte()
	if err == nil && c != '+' {
		err = r.in.UnreadByte()
	}
	for err == nil {
		c, err = r.in.ReadByte()
		if err != nil {
			break
		}
		if c < '0' || c > '9' {
			err = r.in.UnreadByte()
			break
		}
		digits = append(digits, c)
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("reading input: %w", err)
	}

	if err := r.discardLine(); err != nil {
		return 0, err
	}
	if len(digits) == 0 {
		return 0, errMalformed
	}
	v, perr := strconv.ParseUint(string(digits), 10, 16)
	if perr != nil {
		return 0, fmt.Errorf("%w: %s", errMalformed, digits)
	}
	return uint16(v), nil
}

func (r *Reader) skipSpace() error {
	for {
		c, _, err := r.in.ReadRune()
		if errors.Is(err, io.EOF) {
			return ErrInputExhausted
		}
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
		if !unicode.IsSpace(c) {
			return r.in.UnreadRune()
		}
	}
}

func (r *Reader) discardLine() error {
	_, err := r.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
