package pkgmgr

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Supported package manager identifiers.
const (
	ManagerNPM  = "npm"
	ManagerPNPM = "pnpm"
)

// Manager defines the operations the scaffolder needs from a package manager.
type Manager interface {
	// Name returns the manager identifier ("npm", "pnpm").
	Name() string
	// Init creates a fresh manifest in cwd.
	Init(ctx context.Context, cwd string) error
	// InstallProd installs production dependencies into cwd.
	InstallProd(ctx context.Context, cwd string, pkgs []string) error
	// InstallDev installs development dependencies into cwd.
	InstallDev(ctx context.Context, cwd string, pkgs []string) error
}

// Supported returns true if name identifies a known package manager.
func Supported(name string) bool {
	return name == ManagerNPM || name == ManagerPNPM
}

// Dispatch returns the Manager implementation for the given identifier.
// Returns an error-producing manager for unknown values.
func Dispatch(name string) Manager {
	switch name {
	case ManagerNPM:
		return &NPM{}
	case ManagerPNPM:
		return &PNPM{}
	default:
		return &unknownManager{name: name}
	}
}

// unknownManager is returned when the manager identifier is not recognized.
type unknownManager struct {
	name string
}

func (u *unknownManager) Name() string { return u.name }

func (u *unknownManager) err() error {
	return fmt.Errorf("unknown package manager %q: supported managers are %q and %q", u.name, ManagerNPM, ManagerPNPM)
}

func (u *unknownManager) Init(context.Context, string) error { return u.err() }

func (u *unknownManager) InstallProd(context.Context, string, []string) error { return u.err() }

func (u *unknownManager) InstallDev(context.Context, string, []string) error { return u.err() }

// run resolves bin on PATH and executes it in cwd with the given arguments.
// Output streams pass straight through to the operator's terminal unless the
// caller overrides the writers.
func run(ctx context.Context, bin, cwd string, stdout, stderr io.Writer, args ...string) error {
	path, err := exec.LookPath(bin)
	if err != nil {
		return fmt.Errorf("%s not found on PATH: %w", bin, err)
	}

	cmd := exec.CommandContext(ctx, path, args...)
	cmd.Dir = cwd
	cmd.Stdin = os.Stdin
	if stdout == nil {
		stdout = os.Stdout
	}
	if stderr == nil {
		stderr = os.Stderr
	}
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return fmt.Errorf("%s %s exited with code %d", bin, args[0], exitErr.ExitCode())
		}
		return fmt.Errorf("running %s %s: %w", bin, args[0], err)
	}
	return nil
}
