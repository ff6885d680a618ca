package engine

import (
	"strings"
	"testing"

	"github.com/evanw/esbuild/pkg/api"
	"github.com/stretchr/testify/require"

	"github.com/imatwawana/sdkbundler/internal/bundle"
)

type fixedRev string

func (r fixedRev) Short() (string, error) { return string(r), nil }

func resolvedVariants(t *testing.T, isAddOn bool) (unminified, minified *bundle.Config) {
	t.Helper()

	b := bundle.NewBuilder(fixedRev("abc1234"))
	cfg, err := b.Base(bundle.BuildOptions{
		Input:          "src/index.ts",
		IsAddOn:        isAddOn,
		JSVersion:      bundle.ES6,
		LicenseTitle:   "Argus Browser SDK",
		OutputFileBase: "build/bundle",
	})
	require.NoError(t, err)

	variants, err := bundle.ExpandVariants(cfg)
	require.NoError(t, err)
	return variants[0], variants[1]
}

func TestBuildOptionsStandalone(t *testing.T) {
	unminified, _ := resolvedVariants(t, false)
	opts := buildOptions(unminified)

	require.Equal(t, []string{"src/index.ts"}, opts.EntryPoints)
	require.Equal(t, "build/bundle.js", opts.Outfile)
	require.Equal(t, api.FormatIIFE, opts.Format)
	require.Equal(t, bundle.GlobalName, opts.GlobalName)
	require.Equal(t, api.ES2015, opts.Target)
	require.True(t, opts.Bundle)
	require.Equal(t, api.SourceMapLinked, opts.Sourcemap)
	require.Equal(t, "true", opts.Define["__ARGUS_BROWSER_BUNDLE__"])
	require.False(t, opts.MinifyWhitespace)
}

func TestBuildOptionsMinifiedVariant(t *testing.T) {
	_, minified := resolvedVariants(t, false)
	opts := buildOptions(minified)

	require.True(t, opts.MinifyWhitespace)
	require.True(t, opts.MinifySyntax)
	require.True(t, opts.MinifyIdentifiers)
	require.Equal(t, `^_[^_]`, opts.MangleProps)
	require.Contains(t, opts.ReserveProps, "captureException")
	require.Equal(t, "false", opts.Define["__ARGUS_DEBUG__"])
	require.Equal(t, api.LegalCommentsNone, opts.LegalComments)
}

func TestBuildOptionsBannerAboveWrapper(t *testing.T) {
	unminified, _ := resolvedVariants(t, true)
	opts := buildOptions(unminified)

	banner := opts.Banner["js"]
	require.True(t, strings.HasPrefix(banner, "/*!"))
	require.Contains(t, banner, "(function (__window) {")
	require.Less(t, strings.Index(banner, "/*!"), strings.Index(banner, "(function"))
	require.Contains(t, banner, "var exports = {};")

	footer := opts.Footer["js"]
	require.Contains(t, footer, "exports[key]")
	require.True(t, strings.HasSuffix(footer, "}(window));"))
}

func TestBuildOptionsLicenseBannerAlwaysPresent(t *testing.T) {
	unminified, minified := resolvedVariants(t, false)

	for _, c := range []*bundle.Config{unminified, minified} {
		opts := buildOptions(c)
		require.Contains(t, opts.Banner["js"], "Argus Browser SDK")
		require.Contains(t, opts.Banner["js"], "(abc1234)")
	}
}

func TestReservePattern(t *testing.T) {
	require.Equal(t, "", reservePattern(nil))
	require.Equal(t, "^(a)$", reservePattern([]string{"a"}))
	require.Equal(t, "^(a|b)$", reservePattern([]string{"a", "b"}))
}

func TestGzipSize(t *testing.T) {
	data := []byte(strings.Repeat("argus ", 512))

	size, err := gzipSize(data)
	require.NoError(t, err)
	require.Greater(t, size, 0)
	require.Less(t, size, len(data))
}
