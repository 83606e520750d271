//go:build !ebiten

package desktop

import "errors"

// ErrNoDesktop is returned by Run in builds without the 'ebiten' tag.
var ErrNoDesktop = errors.New("desktop: build with -tags ebiten to open a window")

// Run reports that the window frontend is not compiled in.
func Run(opts Options) error {
	return ErrNoDesktop
}
