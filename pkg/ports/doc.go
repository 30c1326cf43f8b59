/*
Package ports defines the driven ports (interfaces) for the slideshow engine.

These interfaces decouple slide rendering from the concrete terminal and timer,
so actions and the slide runner can be exercised against fakes in tests and
against a real TTY in production.

# Key Interfaces

  - Terminal: screen clearing, buffered writes, raw mode toggling and blocking event reads.
  - Sleeper: blocks the calling goroutine for a duration.
  - Command: a terminal operation defined outside the engine, applied verbatim.
*/
package ports
