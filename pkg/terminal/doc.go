/*
Package terminal implements ports.Terminal on a real TTY.

Raw mode is switched with golang.org/x/term. Control sequences, color profile
detection and styles come from termenv. Input bytes are decoded into
ports.Event values by a small stream decoder that understands the keys a
slideshow cares about: Enter, Space, arrows, Ctrl+C and printable runes.

When the input is not a terminal (a pipe, a file, a test buffer) raw mode is
tracked as a flag only, so slides still render and read keys from the stream.
*/
package terminal
