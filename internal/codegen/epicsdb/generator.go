// Package epicsdb generates the EPICS device-database records for each
// parameter: a writable ao record and an ai readback record that is
// processed on I/O interrupt.
package epicsdb

import (
	"fmt"

	"github.com/quadem/paramgen/internal/codegen/writer"
	"github.com/quadem/paramgen/internal/config"
	"github.com/quadem/paramgen/internal/schema"
)

// Name identifies the database artifact
const Name = "database"

// Generator writes ao/ai record pairs
type Generator struct {
	dtyp   string
	port   string
	addr   int
	indent string
}

// NewGenerator creates a database generator
func NewGenerator(cfg config.DatabaseConfig) *Generator {
	return &Generator{
		dtyp:   cfg.DTYP,
		port:   cfg.Port,
		addr:   cfg.Addr,
		indent: cfg.Indent,
	}
}

func (g *Generator) Name() string {
	return Name
}

func (g *Generator) Filename(prefix string) string {
	return prefix + ".db"
}

func (g *Generator) Indent() string {
	return g.indent
}

// Emit writes the setpoint record followed by its _RBV readback
func (g *Generator) Emit(w *writer.Writer, rec schema.ParameterRecord) error {
	link := g.link(rec.ParamString)

	w.WriteLinef(`record(ao, "$(P)$(R)%s")`, rec.PVSuffix)
	w.WriteBlock("{", "}", func() {
		w.WriteLinef(`field(DTYP, "%s")`, g.dtyp)
		w.WriteLinef(`field(OUT, "%s")`, link)
	})
	w.BlankLine()

	w.WriteLinef(`record(ai, "$(P)$(R)%s_RBV")`, rec.PVSuffix)
	w.WriteBlock("{", "}", func() {
		w.WriteLinef(`field(DTYP, "%s")`, g.dtyp)
		w.WriteLinef(`field(INP, "%s")`, link)
		w.WriteLine(`field(SCAN, "I/O Intr")`)
	})
	w.BlankLine()

	return nil
}

// link builds the asyn device address, e.g. @asyn($(PORT) 0)Curr1
func (g *Generator) link(param string) string {
	return fmt.Sprintf("@asyn(%s %d)%s", g.port, g.addr, param)
}
