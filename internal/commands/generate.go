package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/quadem/paramgen/internal/codegen"
	"github.com/quadem/paramgen/internal/config"
	"github.com/quadem/paramgen/internal/schema"
)

// Generate compiles the schema at schemaPath and regenerates every artifact.
// Artifacts are written only when the whole schema is valid.
func (c *Controller) Generate(ctx context.Context, schemaPath string) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	f, err := os.Open(schemaPath)
	if err != nil {
		return fmt.Errorf("failed to open schema file: %w", err)
	}
	defer f.Close()

	c.Logger.Debug().
		Str("path", schemaPath).
		Str("out_dir", cfg.Output.Dir).
		Str("prefix", cfg.Output.Prefix).
		Msg("reading schema")

	compiler := codegen.NewCompiler(codegen.DefaultRegistry.Generators(cfg), cfg.Output.Prefix, c.Logger)
	artifacts, err := compiler.Compile(ctx, schema.NewReader(f, schemaPath))
	if err != nil {
		return err
	}

	paths, err := codegen.WriteArtifacts(cfg.Output.Dir, artifacts, c.Logger)
	if err != nil {
		return err
	}

	c.Logger.Info().
		Int("parameters", compiler.Count()).
		Strs("files", paths).
		Msg("generated parameter artifacts")

	return nil
}

// loadConfig reads the optional config file and applies flag overrides
func (c *Controller) loadConfig() (*config.Config, error) {
	cfg := config.Default()
	if c.Flags.ConfigPath != "" {
		loaded, err := config.LoadConfigFromPath(c.Flags.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if c.Flags.OutDir != "" {
		cfg.Output.Dir = c.Flags.OutDir
	}
	if c.Flags.Prefix != "" {
		cfg.Output.Prefix = c.Flags.Prefix
	}
	return cfg, nil
}
