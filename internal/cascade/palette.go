package cascade

// Palette is the ordered list of colors a falling shape may be drawn from.
// It is also the set of tap targets offered to the player.
type Palette []Color

// BasePalette returns the starting palette of the three primaries.
func BasePalette() Palette {
	return Palette(Primaries())
}

// FullPalette returns all six colors.
func FullPalette() Palette {
	return append(BasePalette(), Composites()...)
}

// Expanded reports whether the palette holds more than the primaries.
func (p Palette) Expanded() bool {
	return len(p) > len(Primaries())
}

// Has reports whether c is offered by the palette.
func (p Palette) Has(c Color) bool {
	for _, pc := range p {
		if pc == c {
			return true
		}
	}
	return false
}

// Pick draws a color uniformly from the palette.
func (p Palette) Pick(rng RandomSource) Color {
	return p[rng.Intn(len(p))]
}

// RandomSource supplies uniform integers in [0, n). *math/rand.Rand
// satisfies it.
type RandomSource interface {
	Intn(n int) int
}
