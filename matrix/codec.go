// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Decode and encode the line-oriented text format:
//
//     rows=<int>
//     cols=<int>
//     (<row>, <col>, <value>)
//     ...
//
//   - Provide file helpers (LoadFile, SaveFile) on top of the io forms.
//
// Decoding:
//   - Lines 1 and 2 are split on '='; the field after the first '=' is
//     trimmed and parsed as a base-10 integer. The key text is not checked.
//   - Every later non-blank line is trimmed, stripped of leading '(' and
//     trailing ')' characters and split on ','. Exactly three integer
//     tokens are required; surrounding whitespace is allowed.
//   - Entries go through Set, so explicit zeros are accepted and not stored.
//   - Indices are not checked against the shape unless WithStrictBounds.
//
// Encoding:
//   - Header lines, then one "(r, c, v)" line per entry in storage order.

package matrix

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	opDecode   = "Decode"
	opLoadFile = "LoadFile"
	opSaveFile = "SaveFile"

	// maxLineBytes bounds a single encoded line.
	maxLineBytes = 1 << 20
)

// Decode parses text into a new matrix.
// Errors: *FormatError wrapping ErrFormat (or ErrOutOfRange under
// WithStrictBounds); match with errors.Is / errors.As.
// Complexity: O(len(text)).
func Decode(text string, opts ...Option) (*Sparse, error) {
	return Read(strings.NewReader(text), opts...)
}

// Read decodes a matrix from r. See Decode for the accepted grammar.
func Read(r io.Reader, opts ...Option) (*Sparse, error) {
	o := gatherOptions(opts...)
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	// Stage 1: header.
	rows, err := readHeader(sc, 1)
	if err != nil {
		return nil, matrixErrorf(opDecode, err)
	}
	cols, err := readHeader(sc, 2)
	if err != nil {
		return nil, matrixErrorf(opDecode, err)
	}
	if o.strictBounds {
		if err := ValidateShape(rows, cols); err != nil {
			return nil, matrixErrorf(opDecode, &FormatError{Line: 2, Err: fmt.Errorf("%w: shape %dx%d", ErrOutOfRange, rows, cols)})
		}
	}

	// Stage 2: entries.
	m := New(rows, cols)
	line := 3
	for ; sc.Scan(); line++ {
		raw := sc.Text()
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" {
			continue
		}
		e, err := parseEntry(line, raw, trimmed)
		if err != nil {
			return nil, matrixErrorf(opDecode, err)
		}
		if o.strictBounds && !inBounds(e.Row, e.Col, rows, cols) {
			return nil, matrixErrorf(opDecode, &FormatError{
				Line: line,
				Text: raw,
				Err:  fmt.Errorf("%w: entry %s outside %dx%d", ErrOutOfRange, e, rows, cols),
			})
		}
		m.Set(e.Row, e.Col, e.Value)
	}
	if err := sc.Err(); err != nil {
		return nil, matrixErrorf(opDecode, scanError(line, err))
	}

	return m, nil
}

// scanError tags a line longer than maxLineBytes as a format error on that
// line; other read errors pass through.
func scanError(line int, err error) error {
	if errors.Is(err, bufio.ErrTooLong) {
		return formatErrorf(line, "", "line exceeds %d bytes", maxLineBytes)
	}

	return err
}

// readHeader consumes one "<key>=<int>" line.
func readHeader(sc *bufio.Scanner, line int) (int, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, scanError(line, err)
		}
		return 0, formatErrorf(line, "", "missing header line")
	}
	raw := sc.Text()
	fields := strings.Split(raw, "=")
	if len(fields) < 2 {
		return 0, formatErrorf(line, raw, "header without '='")
	}
	n, err := strconv.Atoi(strings.TrimSpace(fields[1]))
	if err != nil {
		return 0, formatErrorf(line, raw, "dimension %q is not an integer", strings.TrimSpace(fields[1]))
	}

	return n, nil
}

// parseEntry parses a trimmed, non-blank "(r, c, v)" line.
func parseEntry(line int, raw, trimmed string) (Entry, error) {
	tokens := strings.Split(strings.Trim(trimmed, "()"), ",")
	if len(tokens) != 3 {
		return Entry{}, formatErrorf(line, raw, "want 3 comma-separated fields, got %d", len(tokens))
	}
	var nums [3]int64
	for i, tok := range tokens {
		v, err := strconv.ParseInt(strings.TrimSpace(tok), 10, 64)
		if err != nil {
			return Entry{}, formatErrorf(line, raw, "field %d %q is not an integer", i+1, strings.TrimSpace(tok))
		}
		nums[i] = v
	}
	row, col := int(nums[0]), int(nums[1])
	if int64(row) != nums[0] || int64(col) != nums[1] {
		return Entry{}, formatErrorf(line, raw, "index overflows int")
	}

	return Entry{Row: row, Col: col, Value: nums[2]}, nil
}

// LoadFile decodes the matrix stored at path.
func LoadFile(path string, opts ...Option) (*Sparse, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opLoadFile, path, err)
	}
	defer f.Close()

	m, err := Read(f, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", opLoadFile, path, err)
	}

	return m, nil
}

// WriteTo writes the encoding of m to w and reports the bytes written.
// It implements io.WriterTo.
func (m *Sparse) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	write := func(s string) bool {
		k, err := bw.WriteString(s)
		n += int64(k)
		return err == nil
	}

	if !write("rows="+strconv.Itoa(m.rows)+"\n") || !write("cols="+strconv.Itoa(m.cols)+"\n") {
		return n, bw.Flush()
	}
	m.Range(func(e Entry) bool {
		return write(e.String() + "\n")
	})

	return n, bw.Flush()
}

// Encode returns the textual encoding of m. Never fails.
// Complexity: O(nnz).
func (m *Sparse) Encode() string {
	var sb strings.Builder
	_, _ = m.WriteTo(&sb) // strings.Builder never returns an error

	return sb.String()
}

// SaveFile writes the encoding of m to path, creating or truncating it.
func (m *Sparse) SaveFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", opSaveFile, path, err)
	}
	defer func() {
		err = errors.Join(err, f.Close())
	}()

	if _, err = m.WriteTo(f); err != nil {
		return fmt.Errorf("%s %s: %w", opSaveFile, path, err)
	}

	return nil
}
