// Package bundle assembles the build configurations for the Argus browser
// SDK's distributable bundles. Each configuration is an immutable description
// of one output artifact: its shape, its output path, and an ordered list of
// build stages. Configurations are never mutated in place; every derivation
// produces a new value by structural merge.
package bundle

import (
	"github.com/imatwawana/sdkbundler/internal/stage"
)

// Format is the module format of a bundle's output.
type Format string

const (
	// FormatIIFE wraps the bundle in a self-executing function exposing a
	// global name. Used for standalone bundles.
	FormatIIFE Format = "iife"
	// FormatWrapper wraps the bundle in the hand-crafted add-on wrapper that
	// injects its exports into the standalone bundle's namespace.
	FormatWrapper Format = "wrapper"
)

// TreeShakingSmallest drops everything not reachable from the entry point.
const TreeShakingSmallest = "smallest"

// Config describes how to build one output artifact. The stage list is
// ordered; the license-banner stage, if present, must be last so the banner
// observes the final textual output.
type Config struct {
	Input      string
	OutputFile string

	Format     Format
	GlobalName string
	Context    string

	// Wrapper text, only set for FormatWrapper. Outro is computed lazily so
	// it can be regenerated per invocation.
	Banner string
	Intro  string
	Outro  func() string
	Footer string

	Sourcemap   bool
	Strict      bool
	ESModule    bool
	TreeShaking string

	Plugins []stage.Stage
}
