package codegen

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/quadem/paramgen/internal/codegen/writer"
	"github.com/quadem/paramgen/internal/schema"
)

// Compiler turns a stream of parameter records into the generated artifacts.
// Every record is emitted into every artifact before the next one is read, so
// the artifacts stay correlated record by record. Nothing is written to disk
// here; a failed compile leaves no output behind.
type Compiler struct {
	generators []Generator
	writers    []*writer.Writer
	prefix     string
	logger     zerolog.Logger
	count      int
}

// NewCompiler creates a compiler over the given generators.
// The prefix is used to name the artifacts.
func NewCompiler(generators []Generator, prefix string, logger zerolog.Logger) *Compiler {
	writers := make([]*writer.Writer, len(generators))
	for i, g := range generators {
		writers[i] = writer.NewWriter(g.Indent())
	}
	return &Compiler{
		generators: generators,
		writers:    writers,
		prefix:     prefix,
		logger:     logger,
	}
}

// Emit appends one record's fragment to every artifact in generator order
func (c *Compiler) Emit(rec schema.ParameterRecord) error {
	for i, g := range c.generators {
		if err := g.Emit(c.writers[i], rec); err != nil {
			return fmt.Errorf("line %d: %s: %w", rec.Line, g.Name(), err)
		}
	}
	c.count++

	c.logger.Debug().
		Int("line", rec.Line).
		Str("pv", rec.PVSuffix).
		Str("type", string(rec.DataType)).
		Msg("emitted parameter")

	return nil
}

// Compile reads every record from r and returns the finished artifacts.
// It stops at the first error without producing any artifact.
func (c *Compiler) Compile(ctx context.Context, r *schema.Reader) ([]Artifact, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		if err := c.Emit(rec); err != nil {
			return nil, err
		}
	}

	c.logger.Debug().
		Str("schema", r.Name()).
		Int("parameters", c.count).
		Msg("compiled schema")

	return c.Artifacts(), nil
}

// Count returns the number of records emitted so far
func (c *Compiler) Count() int {
	return c.count
}

// Artifacts returns the current content of every artifact in generator order
func (c *Compiler) Artifacts() []Artifact {
	artifacts := make([]Artifact, len(c.generators))
	for i, g := range c.generators {
		artifacts[i] = Artifact{
			Name:     g.Name(),
			Filename: g.Filename(c.prefix),
			Content:  c.writers[i].Bytes(),
		}
	}
	return artifacts
}
