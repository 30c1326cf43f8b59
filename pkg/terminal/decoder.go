package terminal

import (
	"unicode/utf8"

	"github.com/aretw0/slideshow/pkg/ports"
)

const esc = 0x1b

// csiFinal maps the final byte of a CSI or SS3 sequence to a key.
var csiFinal = map[byte]ports.Key{
	'A': ports.KeyUp,
	'B': ports.KeyDown,
	'C': ports.KeyRight,
	'D': ports.KeyLeft,
	'H': ports.KeyHome,
	'F': ports.KeyEnd,
}

// csiTilde maps the numeric parameter of "ESC [ n ~" sequences to a key.
var csiTilde = map[string]ports.Key{
	"1": ports.KeyHome,
	"7": ports.KeyHome,
	"4": ports.KeyEnd,
	"8": ports.KeyEnd,
	"3": ports.KeyDelete,
	"5": ports.KeyPageUp,
	"6": ports.KeyPageDown,
}

// Decoder turns a terminal input byte stream into events.
// Incomplete CSI, SS3 and UTF-8 sequences at the end of a chunk are kept
// until the next Feed. A trailing ESC is kept too, since the rest of an arrow
// key may arrive in the next read; Flush reports it as Escape.
type Decoder struct {
	pending []byte
}

// Feed decodes data appended to any bytes left over from the previous call.
func (d *Decoder) Feed(data []byte) []ports.Event {
	buf := append(d.pending, data...)
	events, consumed := decode(buf)
	d.pending = append(d.pending[:0], buf[consumed:]...)
	return events
}

// Pending reports how many undecoded bytes are buffered.
func (d *Decoder) Pending() int { return len(d.pending) }

// Flush decodes whatever is still buffered once no more input will arrive.
// A held ESC becomes the Escape key; any other partial sequence is dropped.
func (d *Decoder) Flush() []ports.Event {
	var events []ports.Event
	if len(d.pending) == 1 && d.pending[0] == esc {
		events = append(events, ports.KeyEvent(ports.KeyEscape))
	}
	d.pending = d.pending[:0]
	return events
}

// decode parses as many events as possible from data and reports how many
// bytes it consumed.
func decode(data []byte) ([]ports.Event, int) {
	var events []ports.Event
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == esc:
			n, ev, ok := decodeEscape(data[i:])
			if n == 0 {
				return events, i
			}
			if ok {
				events = append(events, ev)
			}
			i += n
		case b == ' ':
			events = append(events, ports.KeyEvent(ports.KeySpace))
			i++
		case b < 0x20:
			events = append(events, ports.KeyEvent(control(b)))
			i++
		case b == 0x7f:
			events = append(events, ports.KeyEvent(ports.KeyBackspace))
			i++
		case b < utf8.RuneSelf:
			events = append(events, ports.RuneEvent(rune(b)))
			i++
		default:
			if !utf8.FullRune(data[i:]) {
				return events, i
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				events = append(events, ports.RuneEvent(r))
			}
			i += size
		}
	}
	return events, i
}

func control(b byte) ports.Key {
	switch b {
	case '\r', '\n':
		return ports.KeyEnter
	case '\t':
		return ports.KeyTab
	case 0x08:
		return ports.KeyBackspace
	case 0x03:
		return ports.KeyCtrlC
	case 0x04:
		return ports.KeyCtrlD
	default:
		return ports.KeyNone
	}
}

// decodeEscape parses a sequence starting with ESC. It returns the bytes
// consumed (0 when more input is needed) and whether ev should be emitted.
func decodeEscape(data []byte) (int, ports.Event, bool) {
	if len(data) == 1 {
		return 0, ports.Event{}, false
	}

	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		if len(data) < 3 {
			return 0, ports.Event{}, false
		}
		if k, ok := csiFinal[data[2]]; ok {
			return 3, ports.KeyEvent(k), true
		}
		return 3, ports.Event{}, false
	default:
		// ESC ESC or Alt+key: report the Escape and let the next byte decode on its own.
		return 1, ports.KeyEvent(ports.KeyEscape), true
	}
}

func decodeCSI(data []byte) (int, ports.Event, bool) {
	for end := 2; end < len(data); end++ {
		b := data[end]
		if b < 0x20 || b > 0x7e {
			// Not a CSI sequence after all; drop the introducer.
			return 2, ports.Event{}, false
		}
		if (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') || b == '~' {
			params := string(data[2:end])
			if b == '~' {
				if k, ok := csiTilde[firstParam(params)]; ok {
					return end + 1, ports.KeyEvent(k), true
				}
				return end + 1, ports.Event{}, false
			}
			if k, ok := csiFinal[b]; ok {
				return end + 1, ports.KeyEvent(k), true
			}
			return end + 1, ports.Event{}, false
		}
	}
	return 0, ports.Event{}, false
}

// firstParam returns the parameter before any ";modifier" suffix.
func firstParam(params string) string {
	for i := 0; i < len(params); i++ {
		if params[i] == ';' {
			return params[:i]
		}
	}
	return params
}
