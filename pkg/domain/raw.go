package domain

import (
	"errors"
	"fmt"

	"github.com/aretw0/slideshow/pkg/ports"
)

// withRaw runs fn with raw mode enabled and disables it again on every exit
// path. A release failure is reported even when fn succeeded.
func withRaw(t ports.Terminal, fn func() error) (err error) {
	release, err := acquireRaw(t)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := release(); rerr != nil {
			if err == nil {
				err = rerr
			} else {
				err = errors.Join(err, rerr)
			}
		}
	}()
	return fn()
}

// acquireRaw enables raw mode if it is not already on. The returned release
// disables it if it is on at release time.
func acquireRaw(t ports.Terminal) (func() error, error) {
	on, err := t.IsRaw()
	if err != nil {
		return nil, fmt.Errorf("query raw mode: %w", err)
	}
	if !on {
		if err := t.EnableRaw(); err != nil {
			return nil, fmt.Errorf("enable raw mode: %w", err)
		}
	}

	return func() error {
		on, err := t.IsRaw()
		if err != nil {
			return fmt.Errorf("query raw mode: %w", err)
		}
		if on {
			if err := t.DisableRaw(); err != nil {
				return fmt.Errorf("disable raw mode: %w", err)
			}
		}
		return nil
	}, nil
}
