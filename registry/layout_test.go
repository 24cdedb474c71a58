package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAnchor(t *testing.T) {
	tests := []struct {
		in      string
		want    Anchor
		wantErr bool
	}{
		{"", AnchorLastCreated, false},
		{"last-created", AnchorLastCreated, false},
		{"last-visible", AnchorLastVisible, false},
		{"first", "", true},
	}
	for _, tt := range tests {
		got, err := ParseAnchor(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestLayout_Clamp(t *testing.T) {
	l := DefaultLayout()

	assert.Equal(t, Size{Width: 200, Height: 100}, l.Clamp(Size{Width: 10, Height: 10}))
	assert.Equal(t, Size{Width: 800, Height: 600}, l.Clamp(Size{Width: 9000, Height: 9000}))
	assert.Equal(t, Size{Width: 321, Height: 222}, l.Clamp(Size{Width: 321, Height: 222}))
}

func TestLayout_Snap(t *testing.T) {
	l := DefaultLayout()

	assert.Equal(t, Size{Width: 325, Height: 225}, l.Snap(Size{Width: 321, Height: 237}))
	assert.Equal(t, Size{Width: 350, Height: 250}, l.Snap(Size{Width: 338, Height: 238}))
	assert.Equal(t, Size{Width: 200, Height: 100}, l.Snap(Size{Width: 12, Height: 3}))
}

func TestLayout_SnapWithoutGrid(t *testing.T) {
	l := DefaultLayout()
	l.GridSize = 0

	assert.Equal(t, Size{Width: 321, Height: 237}, l.Snap(Size{Width: 321, Height: 237}))
}

func TestLayout_Validate(t *testing.T) {
	require.NoError(t, DefaultLayout().Validate())

	l := DefaultLayout()
	l.Gap = -1
	l.MinSize = Size{Width: 900, Height: 100}
	l.Anchor = "sideways"
	err := l.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gap must not be negative")
	assert.Contains(t, err.Error(), "exceeds max size")
	assert.Contains(t, err.Error(), "unknown anchor")

	l = DefaultLayout()
	l.DefaultSize = Size{}
	assert.ErrorContains(t, l.Validate(), "default size must be positive")
}
