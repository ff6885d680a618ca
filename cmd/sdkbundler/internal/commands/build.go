package commands

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/imatwawana/sdkbundler/internal/engine"
	"github.com/imatwawana/sdkbundler/internal/gitrev"
)

type BuildCmd struct {
	Manifest string `help:"Bundle manifest path" default:"bundles.yaml"`
}

func (b *BuildCmd) Run(ctx context.Context, globals *Globals) error {
	configs, err := resolveMatrix(b.Manifest, gitrev.NewReader())
	if err != nil {
		return fmt.Errorf("failed to resolve build matrix: %w", err)
	}

	runID := uuid.New().String()
	log.Info().
		Str("run_id", runID).
		Int("bundles", len(configs)).
		Msg("Building bundles")

	if err := engine.BuildAll(configs); err != nil {
		return fmt.Errorf("build run %s failed: %w", runID, err)
	}

	log.Info().Str("run_id", runID).Msg("Build complete")
	return nil
}
