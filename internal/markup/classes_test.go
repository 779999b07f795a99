package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name     string
		base     ClassList
		extra    ClassList
		expected ClassList
	}{
		{
			name:     "base followed by extra",
			base:     Classes("card-img-top"),
			extra:    Classes("foo", "bar"),
			expected: Classes("card-img-top", "foo", "bar"),
		},
		{
			name:     "empty base",
			base:     nil,
			extra:    Classes("custom"),
			expected: Classes("custom"),
		},
		{
			name:     "empty extra",
			base:     Classes("card-img"),
			extra:    nil,
			expected: Classes("card-img"),
		},
		{
			name:     "both empty",
			base:     nil,
			extra:    nil,
			expected: nil,
		},
		{
			name:     "duplicates preserved",
			base:     Classes("border", "border"),
			extra:    Classes("border"),
			expected: Classes("border", "border", "border"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			merged := Merge(tt.base, tt.extra)

			assert.Equal(t, tt.expected, merged)
			assert.Len(t, merged, len(tt.base)+len(tt.extra))
		})
	}
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	base := Classes("a", "b")
	extra := Classes("c")

	_ = Merge(base, extra)

	assert.Equal(t, Classes("a", "b"), base)
	assert.Equal(t, Classes("c"), extra)
}

func TestExtend(t *testing.T) {
	list := Classes("card").Extend(Classes("shadow", "card"))

	assert.Equal(t, Classes("card", "shadow", "card"), list)
}

func TestClassListString(t *testing.T) {
	assert.Equal(t, "card-img-top foo", Classes("card-img-top", "foo").String())
	assert.Equal(t, "", ClassList(nil).String())
}
