package dbo

import (
	"bytes"
	"testing"
	"time"

	"github.com/darkroomtools/easeld/logging"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func sampleRecipe() Recipe {
	notes := "grade 3"
	return Recipe{
		ID:    "r-1",
		Name:  "window light",
		Notes: &notes,

		PaperMode: "named",
		RatioMode: "even-borders",
		MinBorder: 0.5,

		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		UpdatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

func TestRecipeMarshalAtDebugLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r := sampleRecipe()

	logger.Debug().
		Object("Recipe", logging.WithLevel(zerolog.DebugLevel, &r)).
		Msg("Create recipe")

	out := buf.String()
	assert.Contains(t, out, `"id":"r-1"`)
	assert.Contains(t, out, `"name":"window light"`)
	assert.Contains(t, out, `"paper_mode":"named"`)
	assert.Contains(t, out, `"notes":"grade 3"`)
	// trace-only fields stay out at debug
	assert.NotContains(t, out, "created_at")
}

func TestRecipeMarshalAtInfoLevelStaysTerse(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)
	r := sampleRecipe()

	logger.Info().
		Object("Recipe", logging.WithLevel(zerolog.InfoLevel, &r)).
		Msg("Create recipe")

	out := buf.String()
	assert.Contains(t, out, `"id":"r-1"`)
	assert.NotContains(t, out, "paper_mode")
	assert.NotContains(t, out, "notes")
}

func TestRecipeMarshalAtTraceLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.TraceLevel)
	r := sampleRecipe()

	logger.Trace().
		Object("Recipe", logging.WithLevel(zerolog.TraceLevel, &r)).
		Msg("Create recipe")

	out := buf.String()
	assert.Contains(t, out, "created_at")
	assert.Contains(t, out, "updated_at")
}
