package share

import (
	"testing"

	"github.com/darkroomtools/easeld/border"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	in := border.Input{
		Paper:        border.Paper{Mode: border.PaperCustom, Width: 9.5, Height: 12},
		Orientation:  border.Orientation{Manual: true, Landscape: true},
		Ratio:        border.Ratio{Mode: border.RatioCustom, Width: 6, Height: 17},
		RatioFlipped: true,
		MinBorder:    0.625,
		EnableOffset: true,

		IgnoreMinBorder:  true,
		HorizontalOffset: -0.75,
		VerticalOffset:   1.125,

		LastValidMinBorder: 0.5,
	}

	token, err := Encode(in)
	require.NoError(t, err)
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")

	got, err := Decode(token)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestDecodeRejectsGarbage(t *testing.T) {
	cases := []string{
		"",
		"v1",
		"v1.",
		"v2.abcd",
		"v1.!!!not-base64!!!",
		"v1.bm90LWpzb24", // valid base64, not json
	}
	for _, token := range cases {
		_, err := Decode(token)
		assert.ErrorIs(t, err, ErrBadToken, token)
	}
}

func TestURL(t *testing.T) {
	assert.Equal(t, "tok", URL("", "tok"))
	assert.Equal(t, "https://easel.example/api/v1/share/tok", URL("https://easel.example/", "tok"))
}
