// Package engine executes resolved bundle configurations with esbuild. It
// translates a configuration's shape and stage list onto esbuild's build
// options, writes the output files, and reports raw and gzip sizes.
package engine

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/klauspost/compress/gzip"
	"github.com/rs/zerolog/log"

	"github.com/imatwawana/sdkbundler/internal/bundle"
	"github.com/imatwawana/sdkbundler/internal/stage"
)

// Build runs esbuild for a single resolved configuration and writes its
// output files.
func Build(c *bundle.Config) error {
	opts := buildOptions(c)

	result := api.Build(opts)
	if len(result.Errors) > 0 {
		for _, msg := range result.Errors {
			log.Error().Str("error", msg.Text).Str("output", c.OutputFile).Msg("Build error")
		}
		return fmt.Errorf("%w: %s", ErrBuildFailed, c.OutputFile)
	}

	for _, file := range result.OutputFiles {
		if err := writeOutput(file.Path, file.Contents); err != nil {
			return err
		}

		gzipped, err := gzipSize(file.Contents)
		if err != nil {
			return fmt.Errorf("failed to measure gzip size: %w", err)
		}
		log.Info().
			Str("file", file.Path).
			Int("bytes", len(file.Contents)).
			Int("gzip_bytes", gzipped).
			Msg("Built file")
	}

	return nil
}

// BuildAll builds every configuration in order, stopping at the first failure.
func BuildAll(configs []*bundle.Config) error {
	for _, c := range configs {
		if err := Build(c); err != nil {
			return err
		}
	}
	return nil
}

// buildOptions maps a configuration onto esbuild options. Stage ordering
// semantics are already validated upstream; here each stage contributes its
// parameters to the single options record esbuild consumes.
func buildOptions(c *bundle.Config) api.BuildOptions {
	opts := api.BuildOptions{
		EntryPoints: []string{c.Input},
		Outfile:     c.OutputFile,
		Write:       false,
		Platform:    api.PlatformBrowser,
		Sourcemap:   cond(c.Sourcemap, api.SourceMapLinked, api.SourceMapNone),
		TreeShaking: api.TreeShakingTrue,
		Define:      map[string]string{},
		LogLevel:    api.LogLevelSilent,
	}

	banner := ""
	footer := ""
	switch c.Format {
	case bundle.FormatIIFE:
		opts.Format = api.FormatIIFE
		opts.GlobalName = c.GlobalName
	case bundle.FormatWrapper:
		banner = c.Banner + "\n" + c.Intro
		if c.Outro != nil {
			footer = c.Outro() + "\n"
		}
		footer += c.Footer
	}

	for _, s := range c.Plugins {
		switch st := s.(type) {
		case stage.CompileStage:
			opts.Target = st.Target
			opts.Alias = st.Aliases
			opts.ResolveExtensions = st.Extensions
		case stage.BrowserMarkerStage:
			for k, v := range st.Define {
				opts.Define[k] = v
			}
		case stage.ResolveStage:
			opts.Bundle = true
			opts.MainFields = st.MainFields
		case stage.MinifyStage:
			opts.MinifyWhitespace = true
			opts.MinifySyntax = true
			opts.MinifyIdentifiers = true
			opts.MangleProps = st.PropertyPattern
			opts.ReserveProps = reservePattern(st.Reserved)
			opts.KeepNames = true
			if st.StripComments {
				opts.LegalComments = api.LegalCommentsNone
			}
			for k, v := range st.GlobalDefs {
				opts.Define[k] = v
			}
		case stage.LicenseBannerStage:
			// the license banner sits above everything, wrapper included
			banner = st.Text + "\n" + banner
		}
	}

	opts.Banner = map[string]string{"js": strings.TrimSuffix(banner, "\n")}
	opts.Footer = map[string]string{"js": footer}
	return opts
}

func reservePattern(names []string) string {
	if len(names) == 0 {
		return ""
	}
	return "^(" + strings.Join(names, "|") + ")$"
}

func writeOutput(path string, contents []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(path, contents, 0600); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func gzipSize(data []byte) (int, error) {
	var buf bytes.Buffer

	zw, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return 0, err
	}
	if _, err := zw.Write(data); err != nil {
		return 0, errors.Join(err, zw.Close())
	}
	if err := zw.Close(); err != nil {
		return 0, err
	}
	return buf.Len(), nil
}

func cond[T any](condition bool, trueVal, falseVal T) T {
	if condition {
		return trueVal
	}
	return falseVal
}
