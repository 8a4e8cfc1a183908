// Package scaffold materializes a new project on disk: it creates the
// directory skeleton, writes every template registry entry under the target
// root, runs the chosen package manager to initialize the manifest and
// install dependencies, and injects the build/start/dev scripts. Steps run
// strictly in sequence; the first failure aborts the rest and there is no
// rollback of work already done.
package scaffold
