package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/forgex-labs/forgex/internal/manifest"
	"github.com/forgex-labs/forgex/internal/toolver"
)

var checkManifest string

func init() {
	doctorCmd.Flags().StringVar(&checkManifest, "check-manifest", "", "Validate a package.json at the given path")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the tools generated projects need are available",
	Long:  `Verify node, npm, and pnpm are installed and recent enough for generated projects.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if checkManifest != "" {
			return runManifestCheck(cmd.OutOrStdout(), checkManifest)
		}
		return runToolChecks(cmd.Context(), cmd.OutOrStdout())
	},
}

// toolCheck pairs a binary with its minimum version. Node is required;
// the package managers are useful but only one of them is needed.
type toolCheck struct {
	bin      string
	minimum  string
	required bool
}

var toolChecks = []toolCheck{
	{bin: "node", minimum: toolver.MinNode, required: true},
	{bin: "npm", minimum: toolver.MinNPM},
	{bin: "pnpm", minimum: toolver.MinPNPM},
}

func runToolChecks(ctx context.Context, out io.Writer) error {
	problems := 0
	managers := 0

	for _, check := range toolChecks {
		current, err := toolver.Current(ctx, check.bin)
		if err != nil {
			fmt.Fprintf(out, "  [MISSING] %s (need >= %s)\n", check.bin, check.minimum)
			if check.required {
				problems++
			}
			continue
		}

		ok, err := toolver.MeetsMinimum(current, check.minimum)
		if err != nil {
			fmt.Fprintf(out, "  [?] %s reported unparsable version %q\n", check.bin, current)
			continue
		}
		if !ok {
			fmt.Fprintf(out, "  [OLD] %s %s (need >= %s)\n", check.bin, current, check.minimum)
			if check.required {
				problems++
			}
			continue
		}

		fmt.Fprintf(out, "  [OK] %s %s\n", check.bin, current)
		if check.bin != "node" {
			managers++
		}
	}

	if managers == 0 {
		fmt.Fprintln(out, "  no usable package manager: install npm or pnpm")
		problems++
	}

	if problems > 0 {
		return fmt.Errorf("doctor found %d problem(s)", problems)
	}
	fmt.Fprintln(out, "All checks passed.")
	return nil
}

func runManifestCheck(out io.Writer, path string) error {
	result, err := manifest.ValidateFile(path)
	if err != nil {
		return err
	}
	if result.Valid {
		fmt.Fprintf(out, "%s is valid\n", path)
		return nil
	}

	fmt.Fprintf(out, "%s has %d issue(s):\n", path, len(result.Issues))
	for _, issue := range result.Issues {
		if issue.Path != "" {
			fmt.Fprintf(out, "  %s: %s\n", issue.Path, issue.Message)
		} else {
			fmt.Fprintf(out, "  %s\n", issue.Message)
		}
	}
	return fmt.Errorf("manifest validation failed")
}
