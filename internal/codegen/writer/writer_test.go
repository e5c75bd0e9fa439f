package writer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_BasicWriting(t *testing.T) {
	// Test: Basic write operations
	w := NewWriter("")

	w.Write("record(ao, ")
	w.Write(`"$(P)$(R)CURR")`)

	assert.Equal(t, `record(ao, "$(P)$(R)CURR")`, w.String())
	assert.Equal(t, len(w.String()), w.Len())
}

func TestWriter_WriteLine(t *testing.T) {
	// Test: WriteLine adds newline
	w := NewWriter("")

	w.WriteLine("int a_;")
	w.WriteLine("int b_;")

	assert.Equal(t, "int a_;\nint b_;\n", w.String())
}

func TestWriter_EmptyIndentKeepsLinesFlush(t *testing.T) {
	// Test: With an empty indent string blocks are not indented
	w := NewWriter("")

	w.WriteBlock("{", "}", func() {
		w.WriteLine(`field(DTYP, "asynFloat64")`)
	})

	assert.Equal(t, "{\nfield(DTYP, \"asynFloat64\")\n}\n", w.String())
}

func TestWriter_WriteBlockIndented(t *testing.T) {
	// Test: WriteBlock indents its content one level
	w := NewWriter("    ")

	w.WriteBlock("{", "}", func() {
		w.WriteLine("field(SCAN, \"I/O Intr\")")
	})

	assert.Equal(t, "{\n    field(SCAN, \"I/O Intr\")\n}\n", w.String())
}

func TestWriter_NestedIndentation(t *testing.T) {
	// Test: Multiple levels of indentation
	w := NewWriter("  ")

	w.WriteLine("if (a) {")
	w.Indent()
	w.WriteLine("if (b) {")
	w.Indent()
	w.WriteLine("return;")
	w.Dedent()
	w.WriteLine("}")
	w.Dedent()
	w.WriteLine("}")

	assert.Equal(t, "if (a) {\n  if (b) {\n    return;\n  }\n}\n", w.String())
}

func TestWriter_BlankLine(t *testing.T) {
	// Test: BlankLine never produces more than one empty line
	w := NewWriter("")

	w.WriteLine("line1")
	w.BlankLine()
	w.WriteLine("line2")
	w.BlankLine()
	w.BlankLine()
	w.WriteLine("line3")

	lines := strings.Split(w.String(), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, []string{"line1", "", "line2", "", "line3", ""}, lines)
}

func TestWriter_BlankLineAtStart(t *testing.T) {
	// Test: BlankLine on an empty writer writes nothing
	w := NewWriter("")

	w.BlankLine()

	assert.Equal(t, "", w.String())
}

func TestWriter_BlankLineMidLine(t *testing.T) {
	// Test: BlankLine terminates an unfinished line first
	w := NewWriter("")

	w.Write("}")
	w.BlankLine()

	assert.Equal(t, "}\n\n", w.String())
}

func TestWriter_WriteFormatted(t *testing.T) {
	// Test: Formatted write operations
	w := NewWriter("\t")

	w.WriteLinef("#define %s \"%s\"", "PARAM_CURR1", "Curr1")
	w.Indent()
	w.Writef("%s.%s = %s;", "curr_reg", "reg_num", "3")
	w.Newline()

	assert.Equal(t, "#define PARAM_CURR1 \"Curr1\"\n\tcurr_reg.reg_num = 3;\n", w.String())
}

func TestWriter_Reset(t *testing.T) {
	// Test: Reset clears writer state
	w := NewWriter("\t")

	w.WriteLine("some content")
	w.Indent()
	w.Indent()
	assert.Equal(t, 2, w.IndentLevel())

	w.Reset()

	assert.Equal(t, "", w.String())
	assert.Equal(t, 0, w.IndentLevel())

	w.BlankLine()
	w.WriteLine("new content")
	assert.Equal(t, "new content\n", w.String())
}

func TestWriter_Bytes(t *testing.T) {
	w := NewWriter("")

	w.Write("hello")

	assert.Equal(t, []byte("hello"), w.Bytes())
}

func TestWriter_IndentDedentBounds(t *testing.T) {
	// Test: Dedent doesn't go below zero
	w := NewWriter("\t")

	assert.Equal(t, 0, w.IndentLevel())
	w.Dedent()
	assert.Equal(t, 0, w.IndentLevel())

	w.Indent()
	assert.Equal(t, 1, w.IndentLevel())
	w.Dedent()
	assert.Equal(t, 0, w.IndentLevel())
}
