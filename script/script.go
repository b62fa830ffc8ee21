// Package script runs Starlark programs against a board and its viewport.
//
// Coordinates passed to the shape builtins are world coordinates; zoom takes
// a screen point, as the mouse wheel does.
package script

import (
	"errors"
	"fmt"
	"log/slog"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"infinite-canvas/board"
	"infinite-canvas/canvas"
)

// Scripts may use top-level loops and reassign globals.
var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
}

// Host is what a script can see and change.
type Host struct {
	Board    *board.Board
	Viewport *canvas.Viewport

	// HandleTolerance is in screen pixels.
	HandleTolerance float64
	Logger          *slog.Logger
}

// Run executes src (or the contents of filename when src is nil) with vars
// predeclared next to the builtins. It returns the script's globals converted
// to Go values.
func Run(filename string, src any, host Host, vars map[string]any) (map[string]any, error) {
	if host.Board == nil || host.Viewport == nil {
		return nil, errors.New("script: host needs a board and a viewport")
	}
	logger := host.Logger
	if logger == nil {
		logger = slog.Default()
	}

	thread := &starlark.Thread{
		Name: filename,
		Print: func(t *starlark.Thread, msg string) {
			logger.Info(msg, "script", t.Name)
		},
	}

	globals := builtins(host)
	for k, v := range vars {
		if _, taken := globals[k]; taken {
			return nil, fmt.Errorf("script: variable %q shadows a builtin", k)
		}
		val, err := toStarlarkValue(v)
		if err != nil {
			return nil, fmt.Errorf("script: variable %q: %w", k, err)
		}
		globals[k] = val
	}

	resultGlobals, err := starlark.ExecFileOptions(fileOptions, thread, filename, src, globals)
	if err != nil {
		var evalErr *starlark.EvalError
		if errors.As(err, &evalErr) {
			logger.Debug("script failed", "backtrace", evalErr.Backtrace())
		}
		return nil, fmt.Errorf("run %s: %w", filename, err)
	}

	out := make(map[string]any, len(resultGlobals))
	for k, v := range resultGlobals {
		if g := FromStarlarkValue(v); g != nil {
			out[k] = g
		}
	}
	return out, nil
}
