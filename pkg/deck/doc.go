/*
Package deck loads presentations from YAML files.

A deck is plain data: a list of slides, each a list of actions. There are no
variables, conditions or templates. Each action is a map decoded with
mapstructure, so durations are written the way time.ParseDuration reads them.

	title: Hello
	slides:
	  - actions:
	      - {type: text, text: "Welcome to ", interval: 25ms}
	      - {type: styled, text: "slideshow", interval: 50ms, style: {bold: true, foreground: "#818cf8"}}
	      - {type: print, text: "."}

# Action Types

  - text: paced text (text, interval)
  - styled: paced styled text (text, interval, style)
  - print, println: immediate output (text, style)
  - wait: fixed pause (duration)
  - interact: wait for Enter, Right or Space
  - markdown: markdown rendered by the configured renderer (text, interval)
  - clear: clear the screen
  - cursor: move the cursor (row, col)
*/
package deck
