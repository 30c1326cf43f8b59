package ports

import "time"

// Terminal is the terminal control service the engine renders into.
// All methods are synchronous. Implementations are not expected to be safe
// for concurrent use; callers serialize access.
type Terminal interface {
	// Clear erases the entire screen and homes the cursor.
	Clear() error

	// Write queues s for output. It may be buffered until Flush.
	Write(s string) error

	// Flush pushes any buffered output to the device.
	Flush() error

	// IsRaw reports whether raw mode is currently enabled.
	IsRaw() (bool, error)

	// EnableRaw switches the input device into raw mode.
	EnableRaw() error

	// DisableRaw restores the input device to its previous mode.
	DisableRaw() error

	// ReadEvent blocks until the next input event is available.
	ReadEvent() (Event, error)
}

// Sleeper blocks the calling goroutine for at least d.
type Sleeper interface {
	Sleep(d time.Duration)
}

// SleeperFunc adapts a plain function to the Sleeper interface.
type SleeperFunc func(time.Duration)

func (f SleeperFunc) Sleep(d time.Duration) { f(d) }

// Command is a terminal operation that the engine does not define itself,
// such as an immediate print or a cursor move.
type Command interface {
	Apply(t Terminal) error
}

// CommandFunc adapts a plain function to the Command interface.
type CommandFunc func(Terminal) error

func (f CommandFunc) Apply(t Terminal) error { return f(t) }
