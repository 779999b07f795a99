package card

import "github.com/cardkit/cardkit/internal/markup"

// ImageOverlayProps defines the configuration options for an ImageOverlay.
type ImageOverlayProps struct {
	// Children is the content displayed on top of the image.
	Children []markup.Node
	// Class holds extra style classes. They precede the fixed overlay class.
	Class markup.ClassList
}

// ImageOverlay renders content overlayed on an Image. Children are opaque and
// passed through unmodified.
func ImageOverlay(props ImageOverlayProps) *markup.Element {
	classes := markup.Merge(props.Class, markup.Classes("card-img-overlay"))

	return markup.NewElement("div", props.Children...).SetClasses(classes)
}
