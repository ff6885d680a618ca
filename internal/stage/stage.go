// Package stage defines the named transformation stages that make up a bundle
// configuration's pipeline. Stage order is significant: later stages see the
// output of earlier ones, and the license-banner stage must observe the final
// textual output.
package stage

import (
	"github.com/evanw/esbuild/pkg/api"
)

// Name is a strongly-typed identifier for a build stage.
type Name string

// Canonical stage names.
const (
	Compile       Name = "compile"
	BrowserMarker Name = "browser-marker"
	Resolve       Name = "resolve"
	LicenseBanner Name = "license-banner"
	Minify        Name = "minify"
)

// Stage is a single named transformation step. Concrete stages carry the
// parameters the build engine needs to execute them.
type Stage interface {
	Name() Name
}

// CompileStage compiles SDK sources down to the configured language level.
// Declaration output is disabled and the internal workspace aliases are fixed
// for every bundle.
type CompileStage struct {
	Target       api.Target
	Declarations bool
	Aliases      map[string]string
	Extensions   []string
}

func (CompileStage) Name() Name { return Compile }

// NewCompile returns the compile stage for the given language target. All
// bundles share the same base preset; only the target differs.
func NewCompile(target api.Target) CompileStage {
	return CompileStage{
		Target:       target,
		Declarations: false,
		Aliases: map[string]string{
			"@argus/core":  "../core/src",
			"@argus/types": "../types/src",
			"@argus/utils": "../utils/src",
		},
		Extensions: []string{".ts", ".tsx", ".js"},
	}
}

// BrowserMarkerStage substitutes the compile-time flag that marks the output
// as a browser build, so the SDK can skip Node-only code paths.
type BrowserMarkerStage struct {
	Define map[string]string
}

func (BrowserMarkerStage) Name() Name { return BrowserMarker }

func NewBrowserMarker() BrowserMarkerStage {
	return BrowserMarkerStage{
		Define: map[string]string{
			"__ARGUS_BROWSER_BUNDLE__": "true",
		},
	}
}

// ResolveStage pulls workspace and node_modules dependencies into the bundle.
type ResolveStage struct {
	MainFields []string
}

func (ResolveStage) Name() Name { return Resolve }

func NewResolve() ResolveStage {
	return ResolveStage{MainFields: []string{"module", "main"}}
}

// LicenseBannerStage prepends the license banner to the finished artifact. It
// must run after any minifying stage or the banner would be stripped.
type LicenseBannerStage struct {
	Text string
}

func (LicenseBannerStage) Name() Name { return LicenseBanner }

func NewLicenseBanner(text string) LicenseBannerStage {
	return LicenseBannerStage{Text: text}
}

// MinifyStage compresses and mangles the bundle. Its parameters are fixed:
// the debug flag is defined false to select production code paths, the SDK's
// internal method names are reserved because its stack-frame detection matches
// them verbatim at runtime, properties following the single-leading-underscore
// internal convention are mangled, and comments are stripped.
type MinifyStage struct {
	GlobalDefs      map[string]string
	Reserved        []string
	PropertyPattern string
	StripComments   bool
}

func (MinifyStage) Name() Name { return Minify }

func NewMinify() MinifyStage {
	return MinifyStage{
		GlobalDefs: map[string]string{
			"__ARGUS_DEBUG__": "false",
		},
		Reserved: []string{
			"captureException",
			"captureMessage",
			"argusWrapped",
		},
		PropertyPattern: `^_[^_]`,
		StripComments:   true,
	}
}
