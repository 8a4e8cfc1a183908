package registry

import (
	"embed"
	"fmt"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed assets
var assetFS embed.FS

//go:embed assets/files.yaml
var rawList []byte

// Entry is a single generated file: its path relative to the project root
// and its full content. Entries are constant for the process lifetime.
type Entry struct {
	RelPath string
	Content string
}

type assetList struct {
	Files []struct {
		Path  string `yaml:"path"`
		Asset string `yaml:"asset"`
	} `yaml:"files"`
}

var (
	once    sync.Once
	entries []Entry
)

// load parses the embedded asset list and materializes every entry. The
// assets are compiled into the binary, so a missing or malformed entry is a
// packaging bug, not a runtime condition — load panics rather than
// propagating an error no caller could act on.
func load() {
	once.Do(func() {
		var list assetList
		if err := yaml.Unmarshal(rawList, &list); err != nil {
			panic(fmt.Sprintf("registry: parsing embedded asset list: %v", err))
		}

		entries = make([]Entry, 0, len(list.Files))
		for _, f := range list.Files {
			content, err := assetFS.ReadFile("assets/" + f.Asset)
			if err != nil {
				panic(fmt.Sprintf("registry: embedded asset %q for %q: %v", f.Asset, f.Path, err))
			}
			entries = append(entries, Entry{
				RelPath: f.Path,
				Content: string(content),
			})
		}
	})
}

// Entries returns the full set of template entries in asset-list order.
// The result is the same on every call; callers receive a copy of the slice
// so they cannot disturb the registry.
func Entries() []Entry {
	load()
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// Lookup returns the entry for a relative path, if it exists.
func Lookup(relPath string) (Entry, bool) {
	load()
	for _, e := range entries {
		if e.RelPath == relPath {
			return e, true
		}
	}
	return Entry{}, false
}
