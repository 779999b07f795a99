package card

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cardkit/cardkit/internal/markup"
)

func TestImageTopVariantWithExtras(t *testing.T) {
	node := Image(ImageProps{
		Variant: VariantTop,
		Class:   markup.Classes("foo"),
		Src:     "imgsrc.jpg",
		Alt:     "desc",
	})

	class, ok := node.Attr("class")
	require.True(t, ok)
	assert.Equal(t, "card-img-top foo", class)

	src, ok := node.Attr("data-src")
	require.True(t, ok)
	assert.Equal(t, "imgsrc.jpg", src)

	alt, ok := node.Attr("alt")
	require.True(t, ok)
	assert.Equal(t, "desc", alt)
}

func TestImageDefaults(t *testing.T) {
	node := Image(ImageProps{Src: "imgsrc.jpg"})

	class, ok := node.Attr("class")
	require.True(t, ok)
	assert.Equal(t, "card-img", class)

	alt, ok := node.Attr("alt")
	require.True(t, ok)
	assert.Equal(t, "", alt)
}

func TestImageFixedInlineStyle(t *testing.T) {
	node := Image(ImageProps{Src: "imgsrc.jpg"})

	style, ok := node.Attr("style")
	require.True(t, ok)
	assert.Equal(t, "height: 180px; width: 100%; display: block;", style)
}

func TestImageUsesDataSrcNotSrc(t *testing.T) {
	node := Image(ImageProps{Src: "imgsrc.jpg"})

	_, hasSrc := node.Attr("src")
	assert.False(t, hasSrc, "the real src is populated later by the lazy-loading script")

	src, ok := node.Attr("data-src")
	require.True(t, ok)
	assert.Equal(t, "imgsrc.jpg", src)
}

func TestImageEmptySrcPassesThrough(t *testing.T) {
	node := Image(ImageProps{})

	src, ok := node.Attr("data-src")
	require.True(t, ok)
	assert.Equal(t, "", src)
}

func TestImageSerialization(t *testing.T) {
	node := Image(ImageProps{
		Variant: VariantBottom,
		Src:     "photo.png",
		Alt:     "a photo",
	})

	expected := `<img class="card-img-bottom" data-src="photo.png" ` +
		`style="height: 180px; width: 100%; display: block;" alt="a photo">`
	assert.Equal(t, expected, markup.Render(node))
}
