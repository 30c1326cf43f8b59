package deck

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/aretw0/slideshow/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Action types understood by the loader.
const (
	TypeText     = "text"
	TypeStyled   = "styled"
	TypePrint    = "print"
	TypePrintln  = "println"
	TypeWait     = "wait"
	TypeInteract = "interact"
	TypeMarkdown = "markdown"
	TypeClear    = "clear"
	TypeCursor   = "cursor"
)

// Deck is a parsed deck file.
type Deck struct {
	Title  string      `yaml:"title"`
	Slides []SlideSpec `yaml:"slides"`
}

// SlideSpec is one slide as written in the file.
type SlideSpec struct {
	Name    string           `yaml:"name"`
	Actions []map[string]any `yaml:"actions"`
}

// ActionSpec is the decoded form of one action map.
type ActionSpec struct {
	Type     string        `mapstructure:"type"`
	Text     string        `mapstructure:"text"`
	Interval time.Duration `mapstructure:"interval"`
	Duration time.Duration `mapstructure:"duration"`
	Style    StyleSpec     `mapstructure:"style"`
	Row      int           `mapstructure:"row"`
	Col      int           `mapstructure:"col"`
}

// StyleSpec lists the attributes a styled action may carry.
type StyleSpec struct {
	Bold       bool   `mapstructure:"bold"`
	Faint      bool   `mapstructure:"faint"`
	Italic     bool   `mapstructure:"italic"`
	Underline  bool   `mapstructure:"underline"`
	Blink      bool   `mapstructure:"blink"`
	Reverse    bool   `mapstructure:"reverse"`
	CrossOut   bool   `mapstructure:"cross_out"`
	Foreground string `mapstructure:"foreground"`
	Background string `mapstructure:"background"`
}

// IsZero reports whether no attribute is set.
func (s StyleSpec) IsZero() bool {
	return s == StyleSpec{}
}

// Load reads and parses a deck file.
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read deck: %w", err)
	}
	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Parse parses deck YAML and checks that every action decodes.
func Parse(data []byte) (*Deck, error) {
	var d Deck
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("failed to parse deck: %w", err)
	}
	if len(d.Slides) == 0 {
		return nil, ErrEmptyDeck
	}
	for i, s := range d.Slides {
		for j, raw := range s.Actions {
			if _, err := DecodeAction(raw); err != nil {
				return nil, &ActionSpecError{Slide: i, Action: j, Err: err}
			}
		}
	}
	return &d, nil
}

// DecodeAction decodes one action map into an ActionSpec and validates it.
func DecodeAction(raw map[string]any) (ActionSpec, error) {
	var spec ActionSpec
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:  mapstructure.StringToTimeDurationHookFunc(),
		ErrorUnused: true,
		Result:      &spec,
	})
	if err != nil {
		return spec, err
	}
	if err := dec.Decode(raw); err != nil {
		return spec, err
	}
	return spec, spec.validate()
}

func (s ActionSpec) validate() error {
	switch s.Type {
	case TypeText, TypeStyled, TypePrint, TypePrintln, TypeWait, TypeInteract, TypeMarkdown, TypeClear, TypeCursor:
	case "":
		return fmt.Errorf("missing type: %w", ErrUnknownAction)
	default:
		return fmt.Errorf("%q: %w", s.Type, ErrUnknownAction)
	}
	if s.Interval < 0 || s.Duration < 0 {
		return fmt.Errorf("%s: %w", s.Type, domain.ErrNegativeDuration)
	}
	for _, c := range []string{s.Style.Foreground, s.Style.Background} {
		if !validColor(c) {
			return fmt.Errorf("%q: %w", c, ErrInvalidColor)
		}
	}
	if s.Type == TypeCursor && (s.Row < 1 || s.Col < 1) {
		return fmt.Errorf("cursor position %d,%d must be 1-based", s.Row, s.Col)
	}
	return nil
}

// validColor accepts the forms a termenv profile can render: "#rgb",
// "#rrggbb" or an ANSI index from 0 to 255. Empty means no color.
func validColor(c string) bool {
	if c == "" {
		return true
	}
	if hex, ok := strings.CutPrefix(c, "#"); ok {
		if len(hex) != 3 && len(hex) != 6 {
			return false
		}
		_, err := strconv.ParseUint(hex, 16, 32)
		return err == nil
	}
	n, err := strconv.Atoi(c)
	return err == nil && n >= 0 && n <= 255
}
