package schema

import (
	"fmt"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// RowLexer splits a single schema row into separators and field text.
// Field values cannot contain a comma; there is no escaping.
var RowLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Sep", Pattern: `,`},
	{Name: "Text", Pattern: `[^,]+`},
})

var (
	sepToken  = RowLexer.Symbols()["Sep"]
	textToken = RowLexer.Symbols()["Text"]
)

// SplitFields tokenizes a row and returns its fields, each trimmed of
// surrounding whitespace. Empty fields are kept, so "a,,b" yields three fields.
func SplitFields(row string) ([]string, error) {
	lex, err := RowLexer.LexString("", row)
	if err != nil {
		return nil, fmt.Errorf("failed to lex row: %w", err)
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, fmt.Errorf("failed to lex row: %w", err)
	}

	fields := []string{""}
	for _, tok := range tokens {
		switch tok.Type {
		case sepToken:
			fields = append(fields, "")
		case textToken:
			fields[len(fields)-1] += tok.Value
		}
	}

	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	return fields, nil
}
