package orthosnap

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
)

// DefaultExecutable is the tool looked up on PATH when no override is given.
const DefaultExecutable = "orthosnap"

// BinEnvVar overrides the executable path, for containers and tests.
const BinEnvVar = "ORTHOSNAP_BIN"

// Executable returns the orthosnap binary to invoke, honoring BinEnvVar.
func Executable() string {
	if bin := os.Getenv(BinEnvVar); bin != "" {
		return bin
	}
	return DefaultExecutable
}

// Run invokes orthosnap once, synchronously, with the argument vector built
// from p. The adapter does no validation of the input files; rejecting a
// malformed tree or fasta is the tool's job. Single attempt, no retries; a
// non-zero exit status is returned as an error rather than silently leaving
// an empty output directory behind.
func Run(ctx context.Context, p Params) error {
	p.Normalize()
	if err := os.MkdirAll(p.OutDir, 0755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	cmd := exec.CommandContext(ctx, Executable(), p.Args()...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("run orthosnap: %w", err)
	}
	return nil
}

// ResultGlob lists the result files the tool wrote under outDir, in sorted
// order. Orthosnap names everything it emits after the input file with an
// ".orthosnap." infix, so the glob doubles as a cheap success check: an
// empty slice means the tool found no subgroups or did not run.
func ResultGlob(outDir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(outDir, "*.orthosnap.*"))
	if err != nil {
		return nil, fmt.Errorf("glob results in %s: %w", outDir, err)
	}
	sort.Strings(matches)
	return matches, nil
}
