package bundle

import "github.com/evanw/esbuild/pkg/api"

// JSVersion selects which of the two compilation-target presets a bundle is
// built with.
type JSVersion string

const (
	ES5 JSVersion = "es5"
	ES6 JSVersion = "es6"
)

// Target maps the version to the engine's language-level setting. ES6 is the
// default for anything that is not explicitly ES5.
func (v JSVersion) Target() api.Target {
	if v == ES5 {
		return api.ES5
	}
	return api.ES2015
}

// BuildOptions describes one distributable artifact. Values are caller
// supplied and never modified; input paths are trusted as-is.
type BuildOptions struct {
	// Entry input path (e.g. "packages/browser/src/index.ts")
	Input string `yaml:"input"`
	// Whether this is an add-on injected into the standalone bundle's
	// namespace rather than a standalone bundle
	IsAddOn bool `yaml:"addOn"`
	// Compilation target preset
	JSVersion JSVersion `yaml:"jsVersion"`
	// Title used verbatim in the license banner
	LicenseTitle string `yaml:"licenseTitle"`
	// Output file path without extension; variant suffixes are appended later
	OutputFileBase string `yaml:"outputFileBase"`
}
