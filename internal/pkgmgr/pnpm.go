package pkgmgr

import (
	"context"
	"io"
)

// PNPM runs the pnpm binary.
type PNPM struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (p *PNPM) Name() string { return ManagerPNPM }

func (p *PNPM) Init(ctx context.Context, cwd string) error {
	return run(ctx, "pnpm", cwd, p.Stdout, p.Stderr, initArgsPNPM()...)
}

func (p *PNPM) InstallProd(ctx context.Context, cwd string, pkgs []string) error {
	return run(ctx, "pnpm", cwd, p.Stdout, p.Stderr, installArgsPNPM(false, pkgs)...)
}

func (p *PNPM) InstallDev(ctx context.Context, cwd string, pkgs []string) error {
	return run(ctx, "pnpm", cwd, p.Stdout, p.Stderr, installArgsPNPM(true, pkgs)...)
}

func initArgsPNPM() []string {
	return []string{"init"}
}

func installArgsPNPM(dev bool, pkgs []string) []string {
	args := []string{"add"}
	if dev {
		args = append(args, "-D")
	}
	return append(args, pkgs...)
}
