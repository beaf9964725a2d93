package dbo

import (
	"time"

	"github.com/darkroomtools/easeld/logging"
	"github.com/rs/zerolog"
)

// Recipe is one stored border recipe row, the calculator settings laid out
// as wide columns.
type Recipe struct {
	ID    string
	Name  string
	Notes *string

	PaperMode   string
	PaperLabel  string
	PaperWidth  float64
	PaperHeight float64

	OrientationManual    bool
	OrientationLandscape bool

	RatioMode    string
	RatioLabel   string
	RatioWidth   float64
	RatioHeight  float64
	RatioFlipped bool

	MinBorder        float64
	EnableOffset     bool
	IgnoreMinBorder  bool
	HorizontalOffset float64
	VerticalOffset   float64

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Recipe) MarshalZerologObjectWithLevel(e *zerolog.Event, level zerolog.Level) {
	e.Str("id", r.ID).Str("name", r.Name)
	if level <= zerolog.DebugLevel {
		e.Str("paper_mode", r.PaperMode).
			Str("ratio_mode", r.RatioMode).
			Float64("min_border", r.MinBorder)
		logging.StrIf(e, "notes", r.Notes)
	}
	if level == zerolog.TraceLevel {
		e.Time("created_at", r.CreatedAt).
			Time("updated_at", r.UpdatedAt)
	}
}
