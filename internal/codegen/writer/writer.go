package writer

import (
	"fmt"
	"strings"
)

// Writer accumulates generated text line by line with optional indentation
type Writer struct {
	sb           strings.Builder
	indentLevel  int
	indentString string
	linePrefix   string
	needsIndent  bool
	newlines     int
}

// NewWriter creates a new writer with the given indentation string.
// An empty indentation string keeps every line flush left.
func NewWriter(indentString string) *Writer {
	return &Writer{
		indentString: indentString,
		needsIndent:  true,
	}
}

// Indent increases the indentation level
func (w *Writer) Indent() {
	w.indentLevel++
	w.updatePrefix()
}

// Dedent decreases the indentation level
func (w *Writer) Dedent() {
	if w.indentLevel > 0 {
		w.indentLevel--
		w.updatePrefix()
	}
}

// Write writes a string without adding a newline
func (w *Writer) Write(s string) {
	if s == "" {
		return
	}
	if w.needsIndent {
		w.sb.WriteString(w.linePrefix)
		w.needsIndent = false
	}
	w.sb.WriteString(s)
	w.newlines = 0
}

// Writef writes a formatted string without adding a newline
func (w *Writer) Writef(format string, args ...any) {
	w.Write(fmt.Sprintf(format, args...))
}

// WriteLine writes a string and adds a newline
func (w *Writer) WriteLine(s string) {
	w.Write(s)
	w.Newline()
}

// WriteLinef writes a formatted string and adds a newline
func (w *Writer) WriteLinef(format string, args ...any) {
	w.Writef(format, args...)
	w.Newline()
}

// Newline adds a newline character
func (w *Writer) Newline() {
	w.sb.WriteString("\n")
	w.needsIndent = true
	w.newlines++
}

// BlankLine ends the current line and leaves exactly one empty line after it.
// It is a no-op at the start of the output and after an existing blank line.
func (w *Writer) BlankLine() {
	if w.sb.Len() == 0 {
		return
	}
	for w.newlines < 2 {
		w.Newline()
	}
}

// WriteBlock writes content between an opener and closer line, indented one level
func (w *Writer) WriteBlock(opener, closer string, content func()) {
	w.WriteLine(opener)
	w.Indent()
	content()
	w.Dedent()
	w.WriteLine(closer)
}

// IndentLevel returns the current indentation level
func (w *Writer) IndentLevel() int {
	return w.indentLevel
}

// Len returns the number of bytes written so far
func (w *Writer) Len() int {
	return w.sb.Len()
}

// String returns the generated text
func (w *Writer) String() string {
	return w.sb.String()
}

// Bytes returns the generated text as a byte slice
func (w *Writer) Bytes() []byte {
	return []byte(w.sb.String())
}

// Reset clears the content and indentation
func (w *Writer) Reset() {
	w.sb.Reset()
	w.indentLevel = 0
	w.linePrefix = ""
	w.needsIndent = true
	w.newlines = 0
}

func (w *Writer) updatePrefix() {
	w.linePrefix = strings.Repeat(w.indentString, w.indentLevel)
}
