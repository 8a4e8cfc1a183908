// Package registry is the template registry: a fixed, ordered table of
// (relative path, content) pairs that constitute a freshly generated project.
// Content lives as real files under an embedded asset tree; assets/files.yaml
// is the structured list mapping each output path to its asset. Content is
// opaque payload — it is never templated, and in particular the project name
// chosen by the user is never substituted into it.
package registry
