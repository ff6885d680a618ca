package bundle

import "errors"

var (
	// ErrBannerNotLast indicates a configuration's stage list does not end
	// with the license-banner stage. Variant expansion refuses to proceed
	// because the minifier would otherwise run after the banner is attached
	// and strip it.
	ErrBannerNotLast = errors.New("license-banner stage must be last")
)
