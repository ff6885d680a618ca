package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"

	"github.com/imatwawana/sdkbundler/internal/bundle"
	"github.com/imatwawana/sdkbundler/internal/gitrev"
	"github.com/imatwawana/sdkbundler/internal/stage"
)

type PlanCmd struct {
	Manifest string `help:"Bundle manifest path" default:"bundles.yaml"`
}

func (p *PlanCmd) Run(ctx context.Context, globals *Globals) error {
	configs, err := resolveMatrix(p.Manifest, gitrev.NewReader())
	if err != nil {
		return fmt.Errorf("failed to resolve build matrix: %w", err)
	}

	fmt.Printf("%-36s %-9s %-8s %s\n", "Output", "Format", "Target", "Stages")
	fmt.Println(strings.Repeat("─", 100))
	for _, c := range configs {
		fmt.Printf("%-36s %-9s %-8s %s\n",
			c.OutputFile,
			c.Format,
			compileTarget(c),
			strings.Join(stageList(c), " → "))
	}

	fmt.Printf("\nTotal bundles: %d\n", len(configs))
	return nil
}

func compileTarget(c *bundle.Config) string {
	for _, s := range c.Plugins {
		if cs, ok := s.(stage.CompileStage); ok {
			if cs.Target == api.ES5 {
				return string(bundle.ES5)
			}
			return string(bundle.ES6)
		}
	}
	return "-"
}

func stageList(c *bundle.Config) []string {
	names := make([]string, 0, len(c.Plugins))
	for _, s := range c.Plugins {
		names = append(names, string(s.Name()))
	}
	return names
}
