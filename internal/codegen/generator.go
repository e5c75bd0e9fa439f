package codegen

import (
	"github.com/quadem/paramgen/internal/codegen/writer"
	"github.com/quadem/paramgen/internal/schema"
)

// Generator is the interface every generated artifact must implement.
// A generator is called once per parameter record, in schema order, and
// appends that record's fragment to its own writer.
type Generator interface {
	// Name is the short identifier of the artifact (e.g. "database")
	Name() string

	// Filename returns the output file name for the given prefix
	Filename(prefix string) string

	// Indent returns the indentation string used for nested lines
	Indent() string

	// Emit appends the fragment for one record
	Emit(w *writer.Writer, rec schema.ParameterRecord) error
}

// Artifact is the complete generated content of one output file
type Artifact struct {
	Name     string
	Filename string
	Content  []byte
}
