package templates

import "fmt"

// Family groups related templates so callers can react to a whole class of symbols
type Family int

const (
	// FamilyGlyph holds the plain geometric sigils.
	FamilyGlyph Family = iota
	// FamilyBrimstone holds the alchemical triangle variants.
	FamilyBrimstone
)

func (f Family) String() string {
	switch f {
	case FamilyGlyph:
		return "glyph"
	case FamilyBrimstone:
		return "brimstone"
	default:
		return "unknown"
	}
}

// ParseFamily returns the family with the given name
func ParseFamily(name string) (Family, error) {
	switch name {
	case "glyph":
		return FamilyGlyph, nil
	case "brimstone":
		return FamilyBrimstone, nil
	default:
		return 0, fmt.Errorf("unknown template family %q (expected glyph or brimstone)", name)
	}
}
