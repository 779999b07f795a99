package card

import "github.com/cardkit/cardkit/internal/markup"

// imageStyle fixes the inline sizing of card images.
const imageStyle = "height: 180px; width: 100%; display: block;"

// ImageProps defines the configuration options for an Image.
type ImageProps struct {
	// Variant selects the base style class. See ImageVariant.
	Variant ImageVariant
	// Class holds extra style classes appended after the variant class.
	Class markup.ClassList
	// Src is the image source. It is emitted verbatim as the data-src
	// attribute; the real src is populated by an external lazy-loading
	// script after insertion.
	Src string
	// Alt is descriptive text for screen reader users.
	Alt string
}

// Image renders an image contained within a Card. It can be styled to match
// being at the top or bottom of the card via ImageProps.Variant.
func Image(props ImageProps) *markup.Element {
	classes := markup.Merge(markup.Classes(props.Variant.ClassName()), props.Class)

	return markup.NewElement("img").
		SetClasses(classes).
		SetAttr("data-src", props.Src).
		SetAttr("style", imageStyle).
		SetAttr("alt", props.Alt)
}
