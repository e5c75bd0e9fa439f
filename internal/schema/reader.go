package schema

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"strings"
)

const maxLineSize = 1024 * 1024

// Reader yields the parameter records of a schema one at a time.
// It is not restartable; once Next returns an error every further call
// returns the same error.
type Reader struct {
	name    string
	scanner *bufio.Scanner
	line    int
	err     error
}

// NewReader creates a reader over r. The name is only used in diagnostics.
func NewReader(r io.Reader, name string) *Reader {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	return &Reader{
		name:    name,
		scanner: scanner,
	}
}

// Name returns the name the reader reports in diagnostics
func (r *Reader) Name() string {
	return r.name
}

// Next returns the next record, skipping blank and comment lines.
// It returns io.EOF once the input is exhausted.
func (r *Reader) Next() (ParameterRecord, error) {
	if r.err != nil {
		return ParameterRecord{}, r.err
	}

	for r.scanner.Scan() {
		r.line++
		raw := r.scanner.Text()
		stripped := strings.TrimSpace(raw)
		if stripped == "" || stripped[0] == '#' {
			continue
		}

		rec, err := r.parseRow(stripped)
		if err != nil {
			r.err = &SchemaError{File: r.name, Line: r.line, Text: raw, Err: err}
			return ParameterRecord{}, r.err
		}
		return rec, nil
	}

	if err := r.scanner.Err(); err != nil {
		r.err = fmt.Errorf("failed to read %s: %w", r.name, err)
		return ParameterRecord{}, r.err
	}
	r.err = io.EOF
	return ParameterRecord{}, r.err
}

func (r *Reader) parseRow(row string) (ParameterRecord, error) {
	fields, err := SplitFields(row)
	if err != nil {
		return ParameterRecord{}, err
	}
	if len(fields) != FieldCount {
		return ParameterRecord{}, fmt.Errorf("%w: expected %d, got %d", ErrFieldCount, FieldCount, len(fields))
	}
	return newRecord(fields, r.line)
}

// All returns an iterator over the remaining records. Iteration stops after
// the first error, which is yielded with a zero record.
func (r *Reader) All() iter.Seq2[ParameterRecord, error] {
	return func(yield func(ParameterRecord, error) bool) {
		for {
			rec, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// ReadFile reads every record of the schema file at path
func ReadFile(path string) ([]ParameterRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open schema file: %w", err)
	}
	defer f.Close()

	var records []ParameterRecord
	for rec, err := range NewReader(f, path).All() {
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}
