package style

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownColorMode is returned by ParseColorMode.
var ErrUnknownColorMode = errors.New("unknown color mode")

// ColorMode selects when escape sequences are emitted.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode accepts auto, always and never. Empty means auto.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ColorAuto, nil
	case "always", "force":
		return ColorAlways, nil
	case "never", "none", "off":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
}
