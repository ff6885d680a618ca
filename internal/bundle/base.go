package bundle

import (
	"fmt"
	"time"

	"github.com/imatwawana/sdkbundler/internal/merge"
	"github.com/imatwawana/sdkbundler/internal/stage"
)

// GlobalName is the browser global the standalone bundle installs itself as.
const GlobalName = "Argus"

const repoURL = "https://github.com/imatwawana/argus-javascript"

// RevisionReader supplies the short commit hash stamped into license banners.
type RevisionReader interface {
	Short() (string, error)
}

// Builder derives bundle configurations from build options.
type Builder struct {
	rev RevisionReader
}

// NewBuilder creates a Builder that stamps banners with revisions from rev.
func NewBuilder(rev RevisionReader) *Builder {
	return &Builder{rev: rev}
}

// Base derives the configuration for one artifact. The stage list is fixed:
// compile, browser-marker define, dependency resolution, license banner, in
// that order. The shape preset selected by IsAddOn is merged onto the shared
// shape with overlay-wins semantics.
func (b *Builder) Base(opts BuildOptions) (*Config, error) {
	hash, err := b.rev.Short()
	if err != nil {
		return nil, fmt.Errorf("failed to read commit hash: %w", err)
	}

	shared := Config{
		Input:       opts.Input,
		OutputFile:  opts.OutputFileBase,
		Sourcemap:   true,
		Strict:      false,
		ESModule:    false,
		TreeShaking: TreeShakingSmallest,
		Plugins: []stage.Stage{
			stage.NewCompile(opts.JSVersion.Target()),
			stage.NewBrowserMarker(),
			stage.NewResolve(),
			stage.NewLicenseBanner(licenseBanner(opts.LicenseTitle, hash)),
		},
	}

	merged, err := merge.Records(shared, shapePreset(opts.IsAddOn), merge.Concat)
	if err != nil {
		return nil, fmt.Errorf("failed to merge shape preset: %w", err)
	}
	return &merged, nil
}

func shapePreset(isAddOn bool) Config {
	if !isAddOn {
		return Config{
			Format:     FormatIIFE,
			GlobalName: GlobalName,
			Context:    "window",
		}
	}
	return addOnWrapper(GlobalName, "Integrations")
}

func licenseBanner(title, hash string) string {
	return fmt.Sprintf("/*! %s %d (%s) | %s */", title, time.Now().Year(), hash, repoURL)
}
