package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/forgex-labs/forgex/internal/config"
	"github.com/forgex-labs/forgex/internal/pkgmgr"
	"github.com/forgex-labs/forgex/internal/scaffold"
)

var namePattern = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

var (
	initPackageManager string
	initOutputDir      string
)

func init() {
	initCmd.Flags().StringVarP(&initPackageManager, "package-manager", "p", "", "Package manager: npm or pnpm (default from user config, then npm)")
	initCmd.Flags().StringVar(&initOutputDir, "output-dir", "", "Output directory (default: ./<name>)")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [name]",
	Short: "Generate a new Express + TypeScript project",
	Long: `Generate a new Express + TypeScript project.

With a name argument the command runs non-interactively. Without one, and
when attached to a terminal, it prompts for the project name and package
manager.

Examples:
  forgex init my-api
  forgex init my-api --package-manager pnpm
  forgex init`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	config.Load()

	name := ""
	if len(args) == 1 {
		name = args[0]
	}

	manager := initPackageManager
	if manager == "" {
		manager = config.Get(config.KeyDefaultPackageManager)
	}
	if manager == "" {
		manager = pkgmgr.ManagerNPM
	}

	if name == "" {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("project name is required: pass it as an argument or run on a terminal")
		}
		if err := promptRequest(&name, &manager); err != nil {
			return fmt.Errorf("reading project details: %w", err)
		}
	}

	if err := validateProjectName(name); err != nil {
		return err
	}
	// Reject a bad manager before the scaffolder ever runs.
	if !pkgmgr.Supported(manager) {
		return fmt.Errorf("unsupported package manager %q: choose %q or %q", manager, pkgmgr.ManagerNPM, pkgmgr.ManagerPNPM)
	}

	outDir := initOutputDir
	if outDir == "" {
		outDir = filepath.Join(".", name)
	}

	req := scaffold.Request{ProjectName: name, PackageManager: manager}
	result, err := scaffold.Init(cmd.Context(), outDir, req, pkgmgr.Dispatch(manager), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	printInitResult(cmd, name, result)
	return nil
}

// promptRequest fills in the project name and package manager interactively.
func promptRequest(name, manager *string) error {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Lowercase letters, digits, and dashes").
				Value(name).
				Validate(validateProjectName),
			huh.NewSelect[string]().
				Title("Package manager").
				Options(
					huh.NewOption("npm", pkgmgr.ManagerNPM),
					huh.NewOption("pnpm", pkgmgr.ManagerPNPM),
				).
				Value(manager),
		),
	)
	return form.Run()
}

func validateProjectName(name string) error {
	if name == "" {
		return fmt.Errorf("project name must not be empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid name %q: must match pattern [a-z0-9][a-z0-9-]*", name)
	}
	return nil
}

func printInitResult(cmd *cobra.Command, name string, result *scaffold.Result) {
	out := cmd.OutOrStdout()

	if len(result.Warnings) > 0 {
		fmt.Fprintln(out, "\nWarnings:")
		for _, w := range result.Warnings {
			fmt.Fprintf(out, "  - %s\n", w)
		}
	}

	fmt.Fprintf(out, "\nCreated %s at %s/\n", name, result.Root)
	fmt.Fprintln(out, "\nNext steps:")
	fmt.Fprintf(out, "  1. cd %s\n", result.Root)
	fmt.Fprintln(out, "  2. Adjust .env for your database")
	fmt.Fprintln(out, "  3. Run the dev server with the 'dev' script")
}
