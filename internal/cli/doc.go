// Package cli defines the cobra command tree for the forgex binary.
package cli
