// Package gitrev reads the repository's short commit hash for stamping into
// license banners. The hash is read once per Reader via git and memoized;
// every bundle built in a run carries the same revision.
package gitrev

import (
	"fmt"
	"os/exec"
	"strings"
	"sync"
)

// Reader supplies the short commit hash of the working tree. The first call
// to Short shells out to git; subsequent calls return the cached result,
// including a cached failure.
type Reader struct {
	once sync.Once
	run  func() ([]byte, error)
	hash string
	err  error
}

// NewReader returns a Reader backed by the git binary.
func NewReader() *Reader {
	return &Reader{run: gitShortHead}
}

// Short returns the short commit hash, reading it on first use.
func (r *Reader) Short() (string, error) {
	r.once.Do(func() {
		out, err := r.run()
		if err != nil {
			r.err = fmt.Errorf("%w: %v", ErrRevParse, err)
			return
		}
		r.hash = strings.TrimSpace(string(out))
		if r.hash == "" {
			r.err = fmt.Errorf("%w: empty output", ErrRevParse)
		}
	})
	return r.hash, r.err
}

func gitShortHead() ([]byte, error) {
	return exec.Command("git", "rev-parse", "--short", "HEAD").Output()
}
