// Package pkgmgr wraps invocation of JavaScript package managers. Each
// Manager runs the real binary synchronously with inherited stdio; a non-zero
// exit or an unspawnable binary is returned as an error. The scaffolder only
// sees the Manager interface, so tests substitute fakes freely.
package pkgmgr
