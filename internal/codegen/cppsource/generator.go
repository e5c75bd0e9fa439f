// Package cppsource generates the statements spliced into the driver
// constructor: one createParam call per parameter and the population of the
// register-mapping list.
package cppsource

import (
	"fmt"

	"github.com/quadem/paramgen/internal/codegen/writer"
	"github.com/quadem/paramgen/internal/config"
	"github.com/quadem/paramgen/internal/schema"
)

// Name identifies the registration source artifact
const Name = "params"

// asyn parameter kinds
const (
	ParamInt32   = "asynParamInt32"
	ParamFloat64 = "asynParamFloat64"
)

// ParamType maps a schema data type onto the asyn parameter kind
func ParamType(dt schema.DataType) (string, error) {
	switch dt {
	case schema.DataTypeInt32:
		return ParamInt32, nil
	case schema.DataTypeFloat64:
		return ParamFloat64, nil
	default:
		return "", fmt.Errorf("%w: %q", schema.ErrUnknownDataType, string(dt))
	}
}

// Generator writes parameter registration statements
type Generator struct {
	registerVar  string
	registerList string
	pushMethod   string
}

// NewGenerator creates a registration source generator.
// With the front insertion end the runtime list ends up in reverse schema order.
func NewGenerator(cfg config.RegistrationConfig) *Generator {
	push := "push_front"
	if cfg.Insert == config.InsertBack {
		push = "push_back"
	}
	return &Generator{
		registerVar:  cfg.RegisterVar,
		registerList: cfg.RegisterList,
		pushMethod:   push,
	}
}

func (g *Generator) Name() string {
	return Name
}

func (g *Generator) Filename(prefix string) string {
	return prefix + "_cpp_params.cpp"
}

func (g *Generator) Indent() string {
	return ""
}

// Emit writes the createParam call, the register assignments and the list insertion
func (g *Generator) Emit(w *writer.Writer, rec schema.ParameterRecord) error {
	kind, err := ParamType(rec.DataType)
	if err != nil {
		return err
	}

	w.WriteLinef("createParam(%s, %s, &%s);", rec.ParamStringName, kind, rec.ParamVar)

	for _, f := range []struct{ name, value string }{
		{"reg_num", rec.RegNum},
		{"asyn_num", rec.ParamVar},
		{"pv_min", rec.PVMin},
		{"pv_max", rec.PVMax},
		{"reg_min", rec.RegMin},
		{"reg_max", rec.RegMax},
	} {
		w.WriteLinef("%s.%s = %s;", g.registerVar, f.name, f.value)
	}

	w.WriteLinef("%s.%s(%s);", g.registerList, g.pushMethod, g.registerVar)
	w.BlankLine()

	return nil
}
