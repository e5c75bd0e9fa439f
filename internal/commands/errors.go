package commands

import "fmt"

// UsageText is printed after a usage error
const UsageText = "Usage: paramgen [flags] <schema-file>"

// UsageError reports a command line that does not match the expected usage
type UsageError struct {
	Args int
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("expected exactly one schema file argument, got %d", e.Args)
}
