package engine

import "errors"

var (
	// ErrBuildFailed indicates esbuild reported errors for a bundle
	ErrBuildFailed = errors.New("bundle build failed")
)
