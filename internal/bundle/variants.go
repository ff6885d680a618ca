package bundle

import (
	"fmt"

	"github.com/imatwawana/sdkbundler/internal/merge"
	"github.com/imatwawana/sdkbundler/internal/stage"
)

const (
	unminifiedSuffix = ".js"
	minifiedSuffix   = ".min.js"
)

// ExpandVariants expands each configuration into an unminified and a minified
// sibling, in that order, preserving input order. The minified variant gains
// a minify stage inserted immediately before the license-banner stage so the
// banner is attached after minification.
//
// Every input must end with the license-banner stage; any other last stage is
// an upstream misconfiguration and aborts the whole expansion. Inputs are
// never mutated.
func ExpandVariants(configs ...*Config) ([]*Config, error) {
	out := make([]*Config, 0, len(configs)*2)

	for _, c := range configs {
		if err := assertBannerLast(c); err != nil {
			return nil, err
		}

		unminified, err := variant(c, Config{
			OutputFile: c.OutputFile + unminifiedSuffix,
			Plugins:    c.Plugins,
		})
		if err != nil {
			return nil, err
		}

		minified, err := variant(c, Config{
			OutputFile: c.OutputFile + minifiedSuffix,
			Plugins:    insertFromEnd(c.Plugins, -2, stage.NewMinify()),
		})
		if err != nil {
			return nil, err
		}

		out = append(out, unminified, minified)
	}

	return out, nil
}

// variant merges overlay onto a structural copy of base. The stage list is
// replaced wholesale rather than concatenated: the overlay's list is already
// the fully-correct replacement, computed from the original.
func variant(base *Config, overlay Config) (*Config, error) {
	merged, err := merge.Records(*base, overlay, merge.Replace)
	if err != nil {
		return nil, fmt.Errorf("failed to merge variant: %w", err)
	}
	// variants never change the wrapper text; the outro is carried over as-is
	merged.Outro = base.Outro
	return &merged, nil
}

func assertBannerLast(c *Config) error {
	if len(c.Plugins) == 0 {
		return fmt.Errorf("%w: stage list is empty", ErrBannerNotLast)
	}
	if last := c.Plugins[len(c.Plugins)-1]; last.Name() != stage.LicenseBanner {
		return fmt.Errorf("%w: last stage is %q", ErrBannerNotLast, last.Name())
	}
	return nil
}

// insertFromEnd inserts s at the position addressed by a negative offset from
// the end of the list: offset -1 appends, offset -2 inserts immediately
// before the current last element. The index is len + 1 + offset, computed
// against the list's length before insertion. The input slice is untouched.
func insertFromEnd(stages []stage.Stage, offset int, s stage.Stage) []stage.Stage {
	idx := len(stages) + 1 + offset

	out := make([]stage.Stage, 0, len(stages)+1)
	out = append(out, stages[:idx]...)
	out = append(out, s)
	out = append(out, stages[idx:]...)
	return out
}
