package ports

import "fmt"

// EventType distinguishes input event categories.
type EventType uint8

const (
	EventKey EventType = iota
	EventResize
	EventUnknown
)

// Key identifies a decoded key.
type Key uint16

const (
	KeyNone Key = iota
	KeyRune
	KeyEnter
	KeySpace
	KeyTab
	KeyBackspace
	KeyEscape
	KeyUp
	KeyDown
	KeyRight
	KeyLeft
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyDelete
	KeyCtrlC
	KeyCtrlD
)

var keyNames = map[Key]string{
	KeyNone:      "None",
	KeyRune:      "Rune",
	KeyEnter:     "Enter",
	KeySpace:     "Space",
	KeyTab:       "Tab",
	KeyBackspace: "Backspace",
	KeyEscape:    "Escape",
	KeyUp:        "Up",
	KeyDown:      "Down",
	KeyRight:     "Right",
	KeyLeft:      "Left",
	KeyHome:      "Home",
	KeyEnd:       "End",
	KeyPageUp:    "PageUp",
	KeyPageDown:  "PageDown",
	KeyDelete:    "Delete",
	KeyCtrlC:     "Ctrl+C",
	KeyCtrlD:     "Ctrl+D",
}

func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// Event is a single terminal input event.
type Event struct {
	Type EventType
	Key  Key
	Rune rune // set when Key == KeyRune

	Width  int // EventResize
	Height int // EventResize
}

// KeyEvent builds a key event for k.
func KeyEvent(k Key) Event {
	return Event{Type: EventKey, Key: k}
}

// RuneEvent builds a key event for a printable rune.
func RuneEvent(r rune) Event {
	return Event{Type: EventKey, Key: KeyRune, Rune: r}
}

// IsKey reports whether e is a key event for one of keys.
func (e Event) IsKey(keys ...Key) bool {
	if e.Type != EventKey {
		return false
	}
	for _, k := range keys {
		if e.Key == k {
			return true
		}
	}
	return false
}
