package wire

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"
)

// DefaultMaxLineSize bounds a single message; ModeUpdate events with large
// keybinding tables are the biggest payloads.
const DefaultMaxLineSize = 1024 * 1024

// Encoder writes one message per line. It is safe for concurrent use.
type Encoder struct {
	mu sync.Mutex
	w  io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) Encode(m Message) error {
	b, err := Marshal(m)
	if err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, err := e.w.Write(append(b, '\n')); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

// Decoder reads messages written by Encoder. Blank lines are skipped.
type Decoder struct {
	scanner *bufio.Scanner
}

func NewDecoder(r io.Reader) *Decoder {
	return NewDecoderSize(r, DefaultMaxLineSize)
}

// NewDecoderSize returns a decoder that rejects lines longer than maxLine.
func NewDecoderSize(r io.Reader, maxLine int) *Decoder {
	scanner := bufio.NewScanner(r)
	initial := 64 * 1024
	if maxLine < initial {
		initial = maxLine
	}
	scanner.Buffer(make([]byte, 0, initial), maxLine)
	return &Decoder{scanner: scanner}
}

// Decode returns the next message, or io.EOF once the input is exhausted.
// A malformed line yields an error but leaves the decoder usable.
func (d *Decoder) Decode() (Message, error) {
	for d.scanner.Scan() {
		line := bytes.TrimSpace(d.scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var m Message
		if err := json.Unmarshal(line, &m); err != nil {
			return Message{}, fmt.Errorf("decode message: %w", err)
		}
		if err := m.Validate(); err != nil {
			return Message{}, err
		}
		return m, nil
	}
	if err := d.scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Message{}, ErrLineTooLong
		}
		return Message{}, fmt.Errorf("read message: %w", err)
	}
	return Message{}, io.EOF
}
