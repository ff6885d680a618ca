package main

import (
	"context"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog/log"

	"github.com/imatwawana/sdkbundler/cmd/sdkbundler/internal/commands"
	"github.com/imatwawana/sdkbundler/internal/logger"
)

var (
	version = "dev"
	cli     struct {
		Plan    commands.PlanCmd  `cmd:"" help:"Resolve the bundle build matrix and print it"`
		Build   commands.BuildCmd `cmd:"" help:"Build every bundle in the manifest"`
		Debug   bool              `help:"Enable debug mode."`
		Version kong.VersionFlag
	}
)

func main() {
	ctx := context.Background()
	cmd := kong.Parse(&cli,
		kong.Vars{
			"version": version,
		},
		kong.BindTo(ctx, (*context.Context)(nil)))

	log.Logger = logger.Setup(cli.Debug)

	err := cmd.Run(&commands.Globals{Debug: cli.Debug, Version: version})
	cmd.FatalIfErrorf(err)
}
