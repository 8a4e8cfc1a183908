package scaffold

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/forgex-labs/forgex/internal/manifest"
	"github.com/forgex-labs/forgex/internal/pkgmgr"
	"github.com/forgex-labs/forgex/internal/registry"
)

// Validation errors returned before any filesystem action.
var (
	ErrEmptyProjectName          = errors.New("project name must not be empty")
	ErrUnsupportedPackageManager = errors.New("unsupported package manager")
)

// Request describes a single scaffold operation. It is consumed by Init and
// not retained afterward.
type Request struct {
	ProjectName    string
	PackageManager string
}

// Validate rejects requests that must not reach the filesystem.
func (r Request) Validate() error {
	if strings.TrimSpace(r.ProjectName) == "" {
		return ErrEmptyProjectName
	}
	if !pkgmgr.Supported(r.PackageManager) {
		return fmt.Errorf("%w %q: choose %q or %q", ErrUnsupportedPackageManager, r.PackageManager, pkgmgr.ManagerNPM, pkgmgr.ManagerPNPM)
	}
	return nil
}

// Result holds the outcome of a scaffold operation.
type Result struct {
	Root     string
	Files    []string
	Warnings []string
}

// skeletonDirs is the fixed directory skeleton created under the project
// root before any file is written.
var skeletonDirs = []string{
	"src",
	"src/controllers",
	"src/models",
	"src/routes",
	"src/config",
	"src/middleware",
	"src/util",
	"src/__tests__",
}

// Fixed dependency sets installed into every generated project.
var (
	ProdPackages = []string{"express", "dotenv", "pg", "sequelize"}
	DevPackages  = []string{
		"typescript",
		"ts-node",
		"nodemon",
		"jest",
		"ts-jest",
		"@types/express",
		"@types/node",
		"@types/jest",
	}
)

// Init materializes a project at root. Progress messages go to w; the
// package manager's own output streams to the terminal via mgr. On success
// every registry entry exists under root with its registry content and the
// manifest carries the injected scripts. A failure partway leaves the
// partially populated directory in place for the operator to inspect.
func Init(ctx context.Context, root string, req Request, mgr pkgmgr.Manager, w io.Writer) (*Result, error) {
	if w == nil {
		w = io.Discard
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	if err := createSkeleton(root); err != nil {
		return nil, fmt.Errorf("creating project skeleton: %w", err)
	}

	result := &Result{Root: root}

	fmt.Fprintf(w, "Writing project files to %s\n", root)
	for _, entry := range registry.Entries() {
		if err := writeEntry(root, entry); err != nil {
			return nil, fmt.Errorf("writing template files: %w", err)
		}
		fmt.Fprintf(w, "  %s\n", entry.RelPath)
		result.Files = append(result.Files, entry.RelPath)
	}

	fmt.Fprintf(w, "Initializing manifest with %s\n", mgr.Name())
	if err := mgr.Init(ctx, root); err != nil {
		return nil, fmt.Errorf("initializing manifest with %s: %w", mgr.Name(), err)
	}

	fmt.Fprintf(w, "Installing dependencies with %s\n", mgr.Name())
	if err := mgr.InstallProd(ctx, root, ProdPackages); err != nil {
		return nil, fmt.Errorf("installing dependencies with %s: %w", mgr.Name(), err)
	}
	if err := mgr.InstallDev(ctx, root, DevPackages); err != nil {
		return nil, fmt.Errorf("installing dev dependencies with %s: %w", mgr.Name(), err)
	}

	if err := injectScripts(root); err != nil {
		return nil, fmt.Errorf("updating manifest scripts: %w", err)
	}
	fmt.Fprintln(w, "Added build, start, and dev scripts")

	// The persisted manifest should satisfy the schema; a mismatch is
	// reported but does not fail the scaffold.
	manifestPath := filepath.Join(root, manifest.FileName)
	if valResult, err := manifest.ValidateFile(manifestPath); err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("could not validate manifest: %v", err))
	} else if !valResult.Valid {
		for _, issue := range valResult.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			result.Warnings = append(result.Warnings, msg)
		}
	}

	return result, nil
}

// createSkeleton creates the project root and the fixed subdirectory list.
// Pre-existing directories are not an error.
func createSkeleton(root string) error {
	if err := ensureDir(root); err != nil {
		return err
	}
	for _, dir := range skeletonDirs {
		if err := ensureDir(filepath.Join(root, dir)); err != nil {
			return err
		}
	}
	return nil
}

// writeEntry writes one registry entry under root, creating intermediate
// directories as needed and overwriting any existing file at that path.
func writeEntry(root string, entry registry.Entry) error {
	target := filepath.Join(root, filepath.FromSlash(entry.RelPath))
	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("creating directory for %s: %w", entry.RelPath, err)
	}
	if err := os.WriteFile(target, []byte(entry.Content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", entry.RelPath, err)
	}
	return nil
}

// injectScripts merges the fixed script entries into the manifest the
// package manager created and persists it.
func injectScripts(root string) error {
	path := filepath.Join(root, manifest.FileName)
	m, err := manifest.Load(path)
	if err != nil {
		return err
	}
	m.InjectScripts()
	return m.Save(path)
}

// ensureDir creates a directory if it doesn't exist. A pre-existing
// directory is fine; a pre-existing non-directory is an error.
func ensureDir(path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}
