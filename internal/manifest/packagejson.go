package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// FileName is the manifest file name at the project root.
const FileName = "package.json"

// The scripts injected into every generated project. Same-named scripts
// written by `npm init` are overwritten; all other scripts are preserved.
const (
	ScriptBuild = "tsc"
	ScriptStart = "node dist/server.js"
	ScriptDev   = "nodemon src/server.ts"
)

// PackageJSON is a package manifest held as a generic document.
type PackageJSON struct {
	doc map[string]interface{}
}

// Load reads and parses a package.json file.
func Load(path string) (*PackageJSON, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}

	return &PackageJSON{doc: doc}, nil
}

// Name returns the manifest's name field, or empty string if absent.
func (m *PackageJSON) Name() string {
	name, _ := m.doc["name"].(string)
	return name
}

// Scripts returns the scripts map, creating it if absent.
func (m *PackageJSON) Scripts() map[string]interface{} {
	scripts, ok := m.doc["scripts"].(map[string]interface{})
	if !ok {
		scripts = make(map[string]interface{})
		m.doc["scripts"] = scripts
	}
	return scripts
}

// InjectScripts merges the fixed build/start/dev script entries into the
// manifest, overwriting same-named entries and leaving the rest alone.
func (m *PackageJSON) InjectScripts() {
	scripts := m.Scripts()
	scripts["build"] = ScriptBuild
	scripts["start"] = ScriptStart
	scripts["dev"] = ScriptDev
}

// Save writes the manifest back to disk with two-space indentation and a
// trailing newline, matching what package managers emit.
func (m *PackageJSON) Save(path string) error {
	data, err := json.MarshalIndent(m.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}
	data = append(data, '\n')

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
