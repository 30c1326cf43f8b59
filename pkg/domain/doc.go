/*
Package domain contains the slide actions rendered by the slideshow engine.

An Action is one unit of terminal work: typewriter-paced text, styled paced
text, a fixed wait, a wait for a qualifying keypress, or a passthrough command
defined outside the engine. The set of variants is closed; the Raw variant is
the extension point for anything else.

Actions only talk to the outside world through the ports package, so the same
values render to a real TTY or to a recording fake.

# Raw Mode

Every sleep and every blocking read runs inside a raw mode scope: raw mode is
enabled first if it is off and disabled again on every exit path, including
errors and panics.
*/
package domain
