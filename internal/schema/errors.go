package schema

import (
	"errors"
	"fmt"
)

var (
	// Row validation errors
	ErrFieldCount      = errors.New("wrong number of fields")
	ErrUnknownDataType = errors.New("invalid data type")
)

// SchemaError reports a schema row that could not be turned into a record
type SchemaError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *SchemaError) Error() string {
	file := e.File
	if file == "" {
		file = "<input>"
	}
	return fmt.Sprintf("%s:%d: %v\nin line %s", file, e.Line, e.Err, e.Text)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}
