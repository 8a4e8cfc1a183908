//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
)

// stubManifest is what the stub package manager writes on `init`, standing in
// for the manifest npm/pnpm would create.
const stubManifest = `{
  "name": "stub-project",
  "version": "1.0.0",
  "scripts": {
    "test": "jest"
  }
}
`

// installStubManager places a fake package-manager executable named bin on
// PATH. The stub appends its argv to logFile, writes a manifest on `init`,
// and exits with exitCode. Returns the log file path.
func installStubManager(t *testing.T, bin string, exitCode int) string {
	t.Helper()

	logFile := filepath.Join(t.TempDir(), bin+".log")
	binDir := t.TempDir()

	script := "#!/bin/sh\n" +
		"echo \"$@\" >> \"" + logFile + "\"\n" +
		"if [ \"$1\" = \"init\" ]; then\n" +
		"  cat > package.json <<'EOF'\n" + stubManifest + "EOF\n" +
		"fi\n" +
		"exit " + strconv.Itoa(exitCode) + "\n"

	if err := os.WriteFile(filepath.Join(binDir, bin), []byte(script), 0755); err != nil {
		t.Fatalf("writing stub %s: %v", bin, err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return logFile
}

// readLog returns the recorded stub invocations, one line per call.
func readLog(t *testing.T, logFile string) string {
	t.Helper()
	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("reading stub log: %v", err)
	}
	return string(data)
}
