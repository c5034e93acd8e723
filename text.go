package labelcell

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// AppendText appends the text form "<N> <w0> ... <wN-1>" to b.
// The hidden counter is not part of the text form.
func (c Cell[W, H]) AppendText(b []byte) ([]byte, error) {
	b = strconv.AppendInt(b, int64(len(c.histogram)), 10)
	for i := 0; i < len(c.histogram); i++ {
		b = append(b, ' ')
		b = appendWeight(b, c.histogram[i])
	}
	return b, nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Cell[W, H]) MarshalText() ([]byte, error) {
	return c.AppendText(nil)
}

// String returns the text form of the cell.
func (c Cell[W, H]) String() string {
	b, _ := c.AppendText(nil)
	return string(b)
}

// WriteTo writes the text form of the cell to w. It implements io.WriterTo.
//
// No separator is written after the last weight; callers concatenating cells
// add their own whitespace.
func (c Cell[W, H]) WriteTo(w io.Writer) (int64, error) {
	b, _ := c.AppendText(make([]byte, 0, 8+24*len(c.histogram)))
	n, err := w.Write(b)
	return int64(n), err
}

// ReadText reads one text cell from r into c.
//
// The leading count token is consumed but, unless WithStrictLabelCount is
// given, not compared against the cell's label count. Exactly Len() weights
// are then read. The hidden counter is left untouched.
//
// io.EOF is returned only if r ends before the count token. A stream that
// ends later yields an error wrapping io.ErrUnexpectedEOF; weights read up to
// that point stay in c and the rest keep their previous values.
func (c *Cell[W, H]) ReadText(r io.ByteScanner, optFns ...DecodeOption) error {
	opts := newDecodeOptions(optFns)

	tok, err := readToken(r)
	if err != nil {
		return err
	}
	count, err := strconv.Atoi(tok)
	if err != nil {
		return fmt.Errorf("label count: %w: %q", ErrMalformedToken, tok)
	}

	if n := len(c.histogram); count != n {
		if opts.logger != nil {
			opts.logger.LogLabelCountMismatch(opts.ctx, n, count, opts.strictCount)
		}
		if opts.strictCount {
			return &ErrLabelCountMismatch{Expected: n, Actual: count}
		}
	}

	for i := 0; i < len(c.histogram); i++ {
		tok, err := readToken(r)
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = io.ErrUnexpectedEOF
			}
			return fmt.Errorf("weight %d: %w", i, err)
		}
		w, err := parseWeight[W](tok)
		if err != nil {
			return fmt.Errorf("weight %d: %w", i, err)
		}
		c.histogram[i] = w
	}
	return nil
}

// UnmarshalText implements encoding.TextUnmarshaler using lenient count
// handling.
func (c *Cell[W, H]) UnmarshalText(text []byte) error {
	return c.ReadText(bytes.NewReader(text))
}

// readToken returns the next whitespace-delimited token of r. The delimiter
// following the token is left unread.
func readToken(r io.ByteScanner) (string, error) {
	var b byte
	var err error
	for {
		b, err = r.ReadByte()
		if err != nil {
			return "", err
		}
		if !isSpace(b) {
			break
		}
	}

	tok := []byte{b}
	for {
		b, err = r.ReadByte()
		if err == io.EOF {
			return string(tok), nil
		}
		if err != nil {
			return "", err
		}
		if isSpace(b) {
			return string(tok), r.UnreadByte()
		}
		tok = append(tok, b)
	}
}

func isSpace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}
