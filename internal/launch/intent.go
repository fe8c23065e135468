// Package launch turns entities and file paths into launch intents. The
// engine never spawns processes itself; an intent is handed to the spawning
// collaborator (or printed) by the command layer.
package launch

import (
	"fmt"

	"github.com/lumecli/lume/internal/prefs"
	"github.com/lumecli/lume/internal/scan"
	"mvdan.cc/sh/v3/shell"
)

// Intent is a fully resolved request to start a program. Terminal marks
// programs that need a terminal-emulator wrapper to be visible.
type Intent struct {
	Program  string
	Args     []string
	Terminal bool
}

// ForApp builds the intent for an enumerated entity. Field codes were
// already stripped at enumeration time, so Exec is shell-splittable as-is.
// The terminal flag comes from the stored preference when a row exists,
// otherwise from the entity's CLI-only origin.
func ForApp(e scan.Entry, rec prefs.Record, hasRec bool) (Intent, error) {
	fields, err := shell.Fields(e.Exec, nil)
	if err != nil {
		return Intent{}, fmt.Errorf("cannot parse launch command %q: %w", e.Exec, err)
	}
	if len(fields) == 0 {
		return Intent{}, fmt.Errorf("empty launch command for %q", e.Name)
	}

	terminal := e.CLIOnly
	if hasRec {
		terminal = rec.IsTUI
	}
	return Intent{Program: fields[0], Args: fields[1:], Terminal: terminal}, nil
}

// ForFile opens a file result in the configured editor. The editor is a
// terminal program, so the intent always asks for the wrapper.
func ForFile(path, editor string) Intent {
	return Intent{Program: editor, Args: []string{path}, Terminal: true}
}

// Argv materializes the final command line, prepending the terminal wrapper
// (e.g. ["kitty", "-e"]) when the intent requires one.
func (i Intent) Argv(wrapper []string) []string {
	if !i.Terminal || len(wrapper) == 0 {
		return append([]string{i.Program}, i.Args...)
	}
	argv := make([]string, 0, len(wrapper)+1+len(i.Args))
	argv = append(argv, wrapper...)
	argv = append(argv, i.Program)
	argv = append(argv, i.Args...)
	return argv
}
