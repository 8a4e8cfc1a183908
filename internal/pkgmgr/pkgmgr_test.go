package pkgmgr

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"runtime"
	"strconv"
	"testing"
)

func TestDispatchNPM(t *testing.T) {
	m := Dispatch("npm")
	if _, ok := m.(*NPM); !ok {
		t.Errorf("Dispatch(\"npm\") returned %T, want *NPM", m)
	}
}

func TestDispatchPNPM(t *testing.T) {
	m := Dispatch("pnpm")
	if _, ok := m.(*PNPM); !ok {
		t.Errorf("Dispatch(\"pnpm\") returned %T, want *PNPM", m)
	}
}

func TestDispatchUnknown(t *testing.T) {
	m := Dispatch("yarn")
	if _, ok := m.(*unknownManager); !ok {
		t.Errorf("Dispatch(\"yarn\") returned %T, want *unknownManager", m)
	}

	// Every operation surfaces the same error.
	if err := m.Init(context.Background(), ""); err == nil {
		t.Error("expected error from unknown manager Init, got nil")
	}
	if err := m.InstallProd(context.Background(), "", nil); err == nil {
		t.Error("expected error from unknown manager InstallProd, got nil")
	}
	if err := m.InstallDev(context.Background(), "", nil); err == nil {
		t.Error("expected error from unknown manager InstallDev, got nil")
	}
}

func TestSupported(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"npm", true},
		{"pnpm", true},
		{"yarn", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := Supported(tt.name); got != tt.want {
			t.Errorf("Supported(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestInstallArgs(t *testing.T) {
	pkgs := []string{"express", "dotenv"}

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"npm init", initArgsNPM(), []string{"init", "-y"}},
		{"npm prod", installArgsNPM(false, pkgs), []string{"install", "express", "dotenv"}},
		{"npm dev", installArgsNPM(true, pkgs), []string{"install", "-D", "express", "dotenv"}},
		{"pnpm init", initArgsPNPM(), []string{"init"}},
		{"pnpm prod", installArgsPNPM(false, pkgs), []string{"add", "express", "dotenv"}},
		{"pnpm dev", installArgsPNPM(true, pkgs), []string{"add", "-D", "express", "dotenv"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.got, tt.want) {
				t.Errorf("args = %v, want %v", tt.got, tt.want)
			}
		})
	}
}

// installStub puts a fake executable named bin on PATH that logs its argv to
// logFile and exits with the given code.
func installStub(t *testing.T, bin, logFile string, exitCode int) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub executables use /bin/sh")
	}

	dir := t.TempDir()
	script := "#!/bin/sh\necho \"$@\" >> \"" + logFile + "\"\nexit " + strconv.Itoa(exitCode) + "\n"
	if err := os.WriteFile(filepath.Join(dir, bin), []byte(script), 0755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", dir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

func TestNPMRunsBinary(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "calls.log")
	installStub(t, "npm", logFile, 0)

	cwd := t.TempDir()
	var stdout, stderr bytes.Buffer
	n := &NPM{Stdout: &stdout, Stderr: &stderr}

	if err := n.Init(context.Background(), cwd); err != nil {
		t.Fatalf("Init() error: %v", err)
	}
	if err := n.InstallProd(context.Background(), cwd, []string{"express"}); err != nil {
		t.Fatalf("InstallProd() error: %v", err)
	}

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading call log: %v", err)
	}
	got := string(data)
	want := "init -y\ninstall express\n"
	if got != want {
		t.Errorf("stub call log = %q, want %q", got, want)
	}
}

func TestNonZeroExitIsError(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "calls.log")
	installStub(t, "pnpm", logFile, 3)

	p := &PNPM{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	err := p.Init(context.Background(), t.TempDir())
	if err == nil {
		t.Fatal("expected error for non-zero exit, got nil")
	}
}

func TestMissingBinaryIsError(t *testing.T) {
	// A PATH with only an empty directory cannot resolve npm.
	t.Setenv("PATH", t.TempDir())

	n := &NPM{Stdout: &bytes.Buffer{}, Stderr: &bytes.Buffer{}}
	if err := n.Init(context.Background(), t.TempDir()); err == nil {
		t.Fatal("expected error for missing binary, got nil")
	}
}
