//go:build !precise

package clock

import "github.com/aretw0/slideshow/pkg/ports"

// Default returns the sleeper selected at build time.
func Default() ports.Sleeper {
	return Standard{}
}
