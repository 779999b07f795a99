package deck

// Deck represents a full deck document: a named collection of declarative
// card definitions rendered together.
type Deck struct {
	Version     string   `yaml:"version" validate:"required,semver"`
	Name        string   `yaml:"name" validate:"required,min=1,max=100"`
	Description string   `yaml:"description,omitempty"`
	Settings    Settings `yaml:"settings,omitempty"`
	Cards       []Card   `yaml:"cards" validate:"required,min=1,dive"`
}

// Settings holds deck-wide rendering parameters.
type Settings struct {
	// Group wraps the rendered cards in a single card-group container.
	Group bool `yaml:"group,omitempty"`
	// Stylesheet overrides the stylesheet linked by full-page output.
	Stylesheet string `yaml:"stylesheet,omitempty" validate:"omitempty,url"`
}

// Card describes a single card and its optional sections.
type Card struct {
	ID       string   `yaml:"id" validate:"required,card_id"`
	Class    []string `yaml:"class,omitempty" validate:"omitempty,dive,css_class"`
	Header   string   `yaml:"header,omitempty"`
	Title    string   `yaml:"title,omitempty"`
	Subtitle string   `yaml:"subtitle,omitempty"`
	Text     string   `yaml:"text,omitempty"`
	Image    *Image   `yaml:"image,omitempty"`
	Overlay  *Overlay `yaml:"overlay,omitempty"`
	Links    []Link   `yaml:"links,omitempty" validate:"omitempty,dive"`
	Footer   string   `yaml:"footer,omitempty"`
}

// Image describes a card image. Src is passed through verbatim; an empty
// source is permitted and rendered as-is.
type Image struct {
	Src     string   `yaml:"src"`
	Alt     string   `yaml:"alt,omitempty"`
	Variant string   `yaml:"variant,omitempty" validate:"omitempty,oneof=default top bottom"`
	Class   []string `yaml:"class,omitempty" validate:"omitempty,dive,css_class"`
}

// Overlay describes content overlayed on the card image. Text is escaped;
// HTML is trusted markup emitted verbatim.
type Overlay struct {
	Text  string   `yaml:"text,omitempty"`
	HTML  string   `yaml:"html,omitempty"`
	Class []string `yaml:"class,omitempty" validate:"omitempty,dive,css_class"`
}

// Link describes a card link entry.
type Link struct {
	Text string `yaml:"text" validate:"required"`
	Href string `yaml:"href" validate:"required"`
}
