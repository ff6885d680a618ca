package commands

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/imatwawana/sdkbundler/internal/bundle"
)

type Globals struct {
	Debug   bool
	Version string
}

// Manifest lists the bundles to build. Each entry maps 1:1 onto the options
// the config builder consumes.
type Manifest struct {
	Bundles []bundle.BuildOptions `yaml:"bundles"`
}

func loadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}

	if len(m.Bundles) == 0 {
		return nil, fmt.Errorf("manifest %s defines no bundles", path)
	}
	for i, b := range m.Bundles {
		if b.Input == "" {
			return nil, fmt.Errorf("bundle %d: input is required", i)
		}
		if b.OutputFileBase == "" {
			return nil, fmt.Errorf("bundle %d: outputFileBase is required", i)
		}
	}

	return &m, nil
}

// resolveMatrix loads the manifest, derives a base configuration per entry,
// and expands each into its unminified and minified variants.
func resolveMatrix(path string, rev bundle.RevisionReader) ([]*bundle.Config, error) {
	m, err := loadManifest(path)
	if err != nil {
		return nil, err
	}

	builder := bundle.NewBuilder(rev)

	bases := make([]*bundle.Config, 0, len(m.Bundles))
	for _, opts := range m.Bundles {
		cfg, err := builder.Base(opts)
		if err != nil {
			return nil, fmt.Errorf("failed to build config for %s: %w", opts.Input, err)
		}
		bases = append(bases, cfg)
	}

	return bundle.ExpandVariants(bases...)
}
