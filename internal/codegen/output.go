package codegen

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// WriteArtifacts writes every artifact into dir, replacing existing files.
// All artifacts are first staged as temporary files in dir and only then
// renamed into place, so a failure while staging leaves existing files intact.
// It returns the final paths in artifact order.
func WriteArtifacts(dir string, artifacts []Artifact, logger zerolog.Logger) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	staged := make([]string, 0, len(artifacts))
	cleanup := func() {
		for _, tmp := range staged {
			os.Remove(tmp)
		}
	}

	for _, a := range artifacts {
		tmp, err := stage(dir, a)
		if err != nil {
			cleanup()
			return nil, err
		}
		staged = append(staged, tmp)
	}

	paths := make([]string, len(artifacts))
	for i, a := range artifacts {
		paths[i] = filepath.Join(dir, a.Filename)
		if err := os.Rename(staged[i], paths[i]); err != nil {
			staged = staged[i:]
			cleanup()
			return nil, fmt.Errorf("failed to write %s: %w", paths[i], err)
		}

		logger.Debug().
			Str("artifact", a.Name).
			Str("path", paths[i]).
			Int("bytes", len(a.Content)).
			Msg("wrote artifact")
	}

	return paths, nil
}

func stage(dir string, a Artifact) (string, error) {
	f, err := os.CreateTemp(dir, "."+a.Filename+".*")
	if err != nil {
		return "", fmt.Errorf("failed to create %s: %w", a.Filename, err)
	}
	name := f.Name()

	if _, err := f.Write(a.Content); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("failed to write %s: %w", a.Filename, err)
	}
	if err := f.Chmod(0644); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("failed to set mode on %s: %w", a.Filename, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("failed to close %s: %w", a.Filename, err)
	}
	return name, nil
}
