// Package cascade implements the color matching rules and the session state
// machine for Color Cascade. It has no dependencies on timing, rendering or
// audio: the host drives it through taps, resolutions and misses, and listens
// through an Observer.
package cascade

import (
	"fmt"
	"slices"
	"strings"
)

// Color is one of the six shape colors. The numeric value is only used for
// stable display order.
type Color uint8

const (
	ColorRed Color = iota + 1
	ColorYellow
	ColorBlue
	ColorPurple
	ColorOrange
	ColorGreen
)

var colorNames = map[Color]string{
	ColorRed:    "red",
	ColorYellow: "yellow",
	ColorBlue:   "blue",
	ColorPurple: "purple",
	ColorOrange: "orange",
	ColorGreen:  "green",
}

// String returns the lowercase color name.
func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

// IsPrimary reports whether c is red, yellow or blue.
func (c Color) IsPrimary() bool {
	return c == ColorRed || c == ColorYellow || c == ColorBlue
}

// IsComposite reports whether c is purple, orange or green.
func (c Color) IsComposite() bool {
	return c == ColorPurple || c == ColorOrange || c == ColorGreen
}

// ParseColor parses a color name (case-insensitive).
func ParseColor(s string) (Color, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("cascade: unknown color %q", s)
}

// Primaries returns the three primary colors.
func Primaries() []Color {
	return []Color{ColorRed, ColorYellow, ColorBlue}
}

// Composites returns the three composite colors.
func Composites() []Color {
	return []Color{ColorPurple, ColorOrange, ColorGreen}
}

// ColorSet is a set of colors.
type ColorSet map[Color]struct{}

// NewColorSet builds a set from the given colors.
func NewColorSet(colors ...Color) ColorSet {
	s := make(ColorSet, len(colors))
	for _, c := range colors {
		s[c] = struct{}{}
	}
	return s
}

// Add inserts c. Adding a color twice has no effect.
func (s ColorSet) Add(c Color) {
	s[c] = struct{}{}
}

// Has reports whether c is in the set.
func (s ColorSet) Has(c Color) bool {
	_, ok := s[c]
	return ok
}

// Contains reports whether every color of other is in s.
func (s ColorSet) Contains(other ColorSet) bool {
	for c := range other {
		if !s.Has(c) {
			return false
		}
	}
	return true
}

// Sorted returns the colors in display order.
func (s ColorSet) Sorted() []Color {
	out := make([]Color, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// requirements is the fixed shape color to tap colors table.
var requirements = map[Color][]Color{
	ColorRed:    {ColorRed},
	ColorYellow: {ColorYellow},
	ColorBlue:   {ColorBlue},
	ColorPurple: {ColorRed, ColorBlue},
	ColorOrange: {ColorRed, ColorYellow},
	ColorGreen:  {ColorYellow, ColorBlue},
}

// RequiredColors returns the base colors that must all be tapped to clear a
// shape of the given color. Colors outside the table yield an empty set.
func RequiredColors(shape Color) ColorSet {
	return NewColorSet(requirements[shape]...)
}

// Satisfied reports whether selected clears required. Extra taps are
// tolerated; an empty requirement can never be satisfied.
func Satisfied(selected, required ColorSet) bool {
	if len(required) == 0 {
		return false
	}
	return selected.Contains(required)
}
