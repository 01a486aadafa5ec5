// Package chdman builds command lines for the external chdman
// executable and parses its textual output. It never spawns processes
// itself; execution is the caller's concern.
package chdman

import (
	"path/filepath"
	"strings"

	"github.com/Cyclone1070/chdbatch/internal/disc"
)

// Invocation is a fully assembled chdman command line.
type Invocation struct {
	Tool string
	Args []string
}

// Argv returns the full argument vector, tool path first.
func (inv Invocation) Argv() []string {
	return append([]string{inv.Tool}, inv.Args...)
}

// String renders the invocation as a human-readable command line. It
// is echoed before every execution and is the only output in dry-run.
func (inv Invocation) String() string {
	return strings.Join(inv.Argv(), " ")
}

// Create builds a compress invocation. format must be concrete; the
// "auto" placeholder is resolved before this point.
func Create(tool string, format disc.Format, input, output string) Invocation {
	return Invocation{
		Tool: tool,
		Args: []string{"create" + string(format), "--input", input, "--output", output},
	}
}

// Extract builds a decompress invocation. CD extraction always splits
// a binary track sidecar next to the track-list file, so the cd form
// carries an extra --outputbin argument.
func Extract(tool string, format disc.Format, input, output string) Invocation {
	args := []string{"extract" + string(format), "--input", input, "--output", output}
	if format == disc.FormatCD {
		bin := filepath.Join(filepath.Dir(output), disc.Stem(output)+".bin")
		args = append(args, "--outputbin", bin)
	}
	return Invocation{Tool: tool, Args: args}
}

// Info builds an info invocation.
func Info(tool, input string, verbose bool) Invocation {
	args := []string{"info", "--input", input}
	if verbose {
		args = append(args, "--verbose")
	}
	return Invocation{Tool: tool, Args: args}
}
