package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"golang.org/x/term"

	"flipper/internal/backend/desktop"
	"flipper/internal/backend/headless"
	"flipper/internal/backend/terminal"
	"flipper/internal/game"
)

const (
	backendAuto     = "auto"
	backendGLFW     = "glfw"
	backendTerm     = "term"
	backendHeadless = "headless"
)

// resolveBackend turns the --backend flag into a concrete backend name.
func resolveBackend(name string) (string, error) {
	switch name {
	case backendGLFW, backendTerm, backendHeadless:
		return name, nil
	case backendAuto, "":
		return detectBackend(hasDisplay(), term.IsTerminal(int(os.Stdout.Fd()))), nil
	}
	return "", fmt.Errorf("unknown backend %q (want auto, glfw, term or headless)", name)
}

func detectBackend(display, tty bool) string {
	switch {
	case display:
		return backendGLFW
	case tty:
		return backendTerm
	default:
		return backendHeadless
	}
}

func hasDisplay() bool {
	switch runtime.GOOS {
	case "darwin", "windows":
		return true
	}
	return os.Getenv("DISPLAY") != "" || os.Getenv("WAYLAND_DISPLAY") != ""
}

var errUnknownBackend = errors.New("unknown backend")

// openFn is swapped out in tests.
var openFn = openBackend

func openBackend(kind string, frames, scale int) (game.Backend, error) {
	var (
		b   game.Backend
		err error
	)
	switch kind {
	case backendGLFW:
		b, err = desktop.New(scale)
	case backendTerm:
		b, err = terminal.New()
	case backendHeadless:
		b = headless.New(frames, headless.Demo())
	default:
		err = errUnknownBackend
	}
	if err != nil {
		return nil, fmt.Errorf("open %s backend: %w", kind, err)
	}
	return b, nil
}
