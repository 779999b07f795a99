package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	kiterrors "github.com/cardkit/cardkit/pkg/errors"
)

func validDeck() *Deck {
	return &Deck{
		Version: "1.0.0",
		Name:    "landing",
		Cards: []Card{
			{ID: "hero", Title: "Welcome", Image: &Image{Src: "imgsrc.jpg", Variant: "top"}},
			{ID: "details", Text: "Body copy."},
		},
	}
}

func TestValidateDeckAcceptsValidDocument(t *testing.T) {
	require.NoError(t, ValidateDeck(validDeck()))
}

func TestValidateDeckRejectsNil(t *testing.T) {
	err := ValidateDeck(nil)

	var validationErr *kiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestValidateDeckFieldRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Deck)
	}{
		{
			name:   "missing version",
			mutate: func(d *Deck) { d.Version = "" },
		},
		{
			name:   "version not semver",
			mutate: func(d *Deck) { d.Version = "one" },
		},
		{
			name:   "missing name",
			mutate: func(d *Deck) { d.Name = "" },
		},
		{
			name:   "no cards",
			mutate: func(d *Deck) { d.Cards = nil },
		},
		{
			name:   "card id with uppercase",
			mutate: func(d *Deck) { d.Cards[0].ID = "Hero" },
		},
		{
			name:   "unknown image variant",
			mutate: func(d *Deck) { d.Cards[0].Image.Variant = "middle" },
		},
		{
			name:   "class token with whitespace",
			mutate: func(d *Deck) { d.Cards[0].Class = []string{"text center"} },
		},
		{
			name:   "link without href",
			mutate: func(d *Deck) { d.Cards[1].Links = []Link{{Text: "Go"}} },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDeck()
			tt.mutate(d)

			err := ValidateDeck(d)

			var validationErr *kiterrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
		})
	}
}

func TestValidateDeckRejectsDuplicateIDs(t *testing.T) {
	d := validDeck()
	d.Cards[1].ID = d.Cards[0].ID

	err := ValidateDeck(d)

	var validationErr *kiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "duplicate card id")
	assert.Equal(t, "cards[1].id", validationErr.Field)
}

func TestValidateDeckRejectsOverlayWithoutImage(t *testing.T) {
	d := validDeck()
	d.Cards[1].Overlay = &Overlay{Text: "floating"}

	err := ValidateDeck(d)

	var validationErr *kiterrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, err.Error(), "overlay requires an image")
}

func TestValidateDeckAllowsEmptyImageSrc(t *testing.T) {
	d := validDeck()
	d.Cards[0].Image.Src = ""

	require.NoError(t, ValidateDeck(d))
}

func TestValidateDeckAllowsDuplicateClassTokens(t *testing.T) {
	d := validDeck()
	d.Cards[0].Class = []string{"border", "border"}

	require.NoError(t, ValidateDeck(d))
}
