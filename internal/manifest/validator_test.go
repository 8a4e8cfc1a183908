package manifest

import (
	"strings"
	"testing"
)

const validManifest = `{
  "name": "demo",
  "version": "1.0.0",
  "scripts": {
    "build": "tsc",
    "start": "node dist/server.js",
    "dev": "nodemon src/server.ts",
    "test": "jest"
  },
  "dependencies": {
    "express": "^4.19.0"
  }
}`

func TestValidateValidManifest(t *testing.T) {
	result, err := Validate([]byte(validManifest))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if !result.Valid {
		t.Errorf("expected valid manifest, got issues: %v", result.Issues)
	}
}

func TestValidateMissingScripts(t *testing.T) {
	result, err := Validate([]byte(`{"name": "demo", "scripts": {"build": "tsc"}}`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected validation failure for missing start/dev scripts")
	}

	found := false
	for _, issue := range result.Issues {
		if strings.Contains(issue.Path, "/scripts") || strings.Contains(issue.Message, "start") {
			found = true
		}
	}
	if !found {
		t.Errorf("no issue points at the scripts section: %v", result.Issues)
	}
}

func TestValidateMissingName(t *testing.T) {
	result, err := Validate([]byte(`{"scripts": {"build": "tsc", "start": "s", "dev": "d"}}`))
	if err != nil {
		t.Fatalf("Validate() error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected validation failure for missing name")
	}
}

func TestValidateMalformedJSON(t *testing.T) {
	if _, err := Validate([]byte("{broken")); err == nil {
		t.Fatal("expected error for malformed JSON, got nil")
	}
}
