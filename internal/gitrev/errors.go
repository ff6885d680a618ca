package gitrev

import "errors"

var (
	// ErrRevParse indicates the commit hash could not be read from git
	ErrRevParse = errors.New("git rev-parse failed")
)
