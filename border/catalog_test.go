package border

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsPortraitOrdered(t *testing.T) {
	for _, p := range StandardPapers {
		assert.LessOrEqual(t, p.Width, p.Height, p.Label)
		assert.Greater(t, p.Width, 0.0, p.Label)
	}
	for _, r := range NamedRatios {
		assert.LessOrEqual(t, r.Width, r.Height, r.Label)
		assert.Greater(t, r.Width, 0.0, r.Label)
	}
}

func TestFindPaper(t *testing.T) {
	p, ok := FindPaper("11x14")
	require.True(t, ok)
	assert.Equal(t, 11.0, p.Width)
	assert.Equal(t, 14.0, p.Height)

	_, ok = FindPaper("13x19")
	assert.False(t, ok)
}

func TestIsStandardPaper(t *testing.T) {
	assert.True(t, IsStandardPaper(8, 10))
	assert.True(t, IsStandardPaper(10, 8)) // orientation-insensitive
	assert.False(t, IsStandardPaper(8.1, 10.1))
}

func TestSmallestEaselFor(t *testing.T) {
	e, ok := SmallestEaselFor(4.1, 5.1)
	require.True(t, ok)
	assert.Equal(t, "5x7", e.Label)

	e, ok = SmallestEaselFor(14, 11) // landscape custom sheet
	require.True(t, ok)
	assert.Equal(t, "11x14", e.Label)

	_, ok = SmallestEaselFor(21, 25)
	assert.False(t, ok)
}
