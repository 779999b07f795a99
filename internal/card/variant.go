package card

import "fmt"

// ImageVariant controls the display variant used for an Image.
type ImageVariant int

const (
	// VariantDefault is the plain card image. Nothing special.
	VariantDefault ImageVariant = iota
	// VariantTop styles the image for the top of a card.
	VariantTop
	// VariantBottom styles the image for the bottom of a card.
	VariantBottom
)

// ClassName resolves the variant to its base style class token. The mapping
// is total over the enumeration; unknown values resolve to the default token.
func (v ImageVariant) ClassName() string {
	switch v {
	case VariantTop:
		return "card-img-top"
	case VariantBottom:
		return "card-img-bottom"
	default:
		return "card-img"
	}
}

// String returns the variant's configuration name.
func (v ImageVariant) String() string {
	switch v {
	case VariantTop:
		return "top"
	case VariantBottom:
		return "bottom"
	default:
		return "default"
	}
}

// ParseImageVariant converts a configuration string into an ImageVariant.
func ParseImageVariant(s string) (ImageVariant, error) {
	switch s {
	case "", "default":
		return VariantDefault, nil
	case "top":
		return VariantTop, nil
	case "bottom":
		return VariantBottom, nil
	default:
		return VariantDefault, fmt.Errorf("unknown image variant %q", s)
	}
}
