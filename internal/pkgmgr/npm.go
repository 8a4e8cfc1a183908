package pkgmgr

import (
	"context"
	"io"
)

// NPM runs the npm binary.
type NPM struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

func (n *NPM) Name() string { return ManagerNPM }

func (n *NPM) Init(ctx context.Context, cwd string) error {
	return run(ctx, "npm", cwd, n.Stdout, n.Stderr, initArgsNPM()...)
}

func (n *NPM) InstallProd(ctx context.Context, cwd string, pkgs []string) error {
	return run(ctx, "npm", cwd, n.Stdout, n.Stderr, installArgsNPM(false, pkgs)...)
}

func (n *NPM) InstallDev(ctx context.Context, cwd string, pkgs []string) error {
	return run(ctx, "npm", cwd, n.Stdout, n.Stderr, installArgsNPM(true, pkgs)...)
}

func initArgsNPM() []string {
	return []string{"init", "-y"}
}

func installArgsNPM(dev bool, pkgs []string) []string {
	args := []string{"install"}
	if dev {
		args = append(args, "-D")
	}
	return append(args, pkgs...)
}
