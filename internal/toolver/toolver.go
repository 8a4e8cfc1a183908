// Package toolver inspects the versions of external tools (node, npm, pnpm)
// the generated project will need, and compares them against minimums using
// semantic versioning.
package toolver

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Minimum versions doctor checks against. Node 18 is the oldest LTS the
// generated tsconfig targets cleanly.
const (
	MinNode = "18.0.0"
	MinNPM  = "9.0.0"
	MinPNPM = "8.0.0"
)

// Current runs `<bin> --version` and returns the normalized version string.
func Current(ctx context.Context, bin string) (string, error) {
	path, err := exec.LookPath(bin)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", bin, err)
	}

	out, err := exec.CommandContext(ctx, path, "--version").Output()
	if err != nil {
		return "", fmt.Errorf("running %s --version: %w", bin, err)
	}

	return Normalize(string(out)), nil
}

// Normalize trims whitespace and a leading "v" from a reported version
// (node prints "v22.3.0", npm prints "10.5.0").
func Normalize(raw string) string {
	return strings.TrimPrefix(strings.TrimSpace(raw), "v")
}

// CompareVersions compares two version strings using semver.
// Returns -1 if current < other, 0 if equal, 1 if current > other.
func CompareVersions(current, other string) (int, error) {
	cv, err := parseSemver(current)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", current, err)
	}
	ov, err := parseSemver(other)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", other, err)
	}
	return cv.Compare(ov), nil
}

// MeetsMinimum returns true if current satisfies the minimum version.
func MeetsMinimum(current, minimum string) (bool, error) {
	cmp, err := CompareVersions(current, minimum)
	if err != nil {
		return false, err
	}
	return cmp >= 0, nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
