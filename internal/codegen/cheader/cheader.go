// Package cheader generates the two C++ header fragments included by the
// driver: the parameter name strings and the parameter index members.
// Neither fragment carries include guards; the member header is included
// inside the driver class body.
package cheader

import (
	"github.com/quadem/paramgen/internal/codegen/writer"
	"github.com/quadem/paramgen/internal/schema"
)

// Artifact names
const (
	StringsName = "strings"
	MembersName = "members"
)

// StringGenerator writes one #define per parameter
type StringGenerator struct{}

// NewStringGenerator creates the string-constant header generator
func NewStringGenerator() *StringGenerator {
	return &StringGenerator{}
}

func (g *StringGenerator) Name() string {
	return StringsName
}

func (g *StringGenerator) Filename(prefix string) string {
	return prefix + "_hdr_string.h"
}

func (g *StringGenerator) Indent() string {
	return ""
}

func (g *StringGenerator) Emit(w *writer.Writer, rec schema.ParameterRecord) error {
	w.WriteLinef(`#define %s "%s"`, rec.ParamStringName, rec.ParamString)
	return nil
}

// MemberGenerator writes one int member per parameter
type MemberGenerator struct{}

// NewMemberGenerator creates the member-declaration header generator
func NewMemberGenerator() *MemberGenerator {
	return &MemberGenerator{}
}

func (g *MemberGenerator) Name() string {
	return MembersName
}

func (g *MemberGenerator) Filename(prefix string) string {
	return prefix + "_hdr_member.h"
}

func (g *MemberGenerator) Indent() string {
	return ""
}

func (g *MemberGenerator) Emit(w *writer.Writer, rec schema.ParameterRecord) error {
	w.WriteLinef("int %s;", rec.ParamVar)
	return nil
}
