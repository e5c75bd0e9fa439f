// Package commands contains the CLI commands for the application
package commands

import (
	"github.com/rs/zerolog"
)

// Flags holds the global command-line settings
type Flags struct {
	LogLevel   string
	ConfigPath string
	OutDir     string
	Prefix     string
}

// Controller runs commands with the parsed flags and a configured logger
type Controller struct {
	Flags  *Flags
	Logger zerolog.Logger
}

// NewController creates a controller that logs nothing until the CLI
// configures a logger
func NewController() *Controller {
	return &Controller{
		Flags:  &Flags{},
		Logger: zerolog.Nop(),
	}
}
