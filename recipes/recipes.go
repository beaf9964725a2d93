// Package recipes manages named border recipes: a calculator input with a
// name and optional darkroom notes, persisted in the local store.
package recipes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/darkroomtools/easeld/border"
	"github.com/darkroomtools/easeld/db/dao"
	"github.com/darkroomtools/easeld/db/dbo"
	"github.com/google/uuid"
)

var ErrNotFound = dao.ErrDataNotFound
var ErrInvalidName = errors.New("recipe name is required")

type Recipe struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Notes     string       `json:"notes,omitempty"`
	Input     border.Input `json:"input"`
	CreatedAt time.Time    `json:"createdAt"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

type Store struct {
	db *sql.DB
}

func NewStore(db *sql.DB) (*Store, error) {
	if err := dao.NewQueries(db).CreateDatabase(context.Background()); err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (s *Store) List(ctx context.Context) ([]Recipe, error) {
	rows, err := dao.ListRecipes(s.db, ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Recipe, 0, len(rows))
	for _, r := range rows {
		out = append(out, fromRow(r))
	}
	return out, nil
}

func (s *Store) Get(ctx context.Context, id string) (Recipe, error) {
	row, err := dao.GetRecipeByID(s.db, ctx, id)
	if err != nil {
		return Recipe{}, err
	}
	return fromRow(row), nil
}

func (s *Store) Create(ctx context.Context, name, notes string, in border.Input) (Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Recipe{}, ErrInvalidName
	}

	now := time.Now().UTC()
	rec := Recipe{
		ID:        uuid.NewString(),
		Name:      name,
		Notes:     notes,
		Input:     in,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := dao.CreateRecipe(s.db, ctx, toRow(rec)); err != nil {
		return Recipe{}, err
	}
	return rec, nil
}

// Update is a read-modify-write: the server and the CLI may touch the same
// store file, so both steps run inside one serializable transaction.
func (s *Store) Update(ctx context.Context, id, name, notes string, in border.Input) (Recipe, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Recipe{}, ErrInvalidName
	}

	tx, err := dao.GetTx(s.db, ctx)
	if err != nil {
		return Recipe{}, err
	}
	defer tx.Rollback()

	q := dao.NewQueries(s.db).WithTx(tx)

	row, err := q.GetRecipeByID(ctx, id)
	if err != nil {
		return Recipe{}, notFound(err)
	}

	current := fromRow(row)
	current.Name = name
	current.Notes = notes
	current.Input = in
	current.UpdatedAt = time.Now().UTC()

	if err := q.UpdateRecipe(ctx, toRow(current)); err != nil {
		return Recipe{}, notFound(err)
	}
	if err := tx.Commit(); err != nil {
		return Recipe{}, err
	}
	return current, nil
}

func notFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("recipe: %w", ErrNotFound)
	}
	return err
}

func (s *Store) Delete(ctx context.Context, id string) error {
	return dao.DeleteRecipe(s.db, ctx, id)
}

func toRow(r Recipe) dbo.Recipe {
	var notes *string
	if r.Notes != "" {
		notes = &r.Notes
	}
	in := r.Input
	return dbo.Recipe{
		ID:    r.ID,
		Name:  r.Name,
		Notes: notes,

		PaperMode:   string(in.Paper.Mode),
		PaperLabel:  in.Paper.Label,
		PaperWidth:  in.Paper.Width,
		PaperHeight: in.Paper.Height,

		OrientationManual:    in.Orientation.Manual,
		OrientationLandscape: in.Orientation.Landscape,

		RatioMode:    string(in.Ratio.Mode),
		RatioLabel:   in.Ratio.Label,
		RatioWidth:   in.Ratio.Width,
		RatioHeight:  in.Ratio.Height,
		RatioFlipped: in.RatioFlipped,

		MinBorder:        in.MinBorder,
		EnableOffset:     in.EnableOffset,
		IgnoreMinBorder:  in.IgnoreMinBorder,
		HorizontalOffset: in.HorizontalOffset,
		VerticalOffset:   in.VerticalOffset,

		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func fromRow(row dbo.Recipe) Recipe {
	notes := ""
	if row.Notes != nil {
		notes = *row.Notes
	}
	return Recipe{
		ID:    row.ID,
		Name:  row.Name,
		Notes: notes,
		Input: border.Input{
			Paper: border.Paper{
				Mode:   border.PaperMode(row.PaperMode),
				Label:  row.PaperLabel,
				Width:  row.PaperWidth,
				Height: row.PaperHeight,
			},
			Orientation: border.Orientation{
				Manual:    row.OrientationManual,
				Landscape: row.OrientationLandscape,
			},
			Ratio: border.Ratio{
				Mode:   border.RatioMode(row.RatioMode),
				Label:  row.RatioLabel,
				Width:  row.RatioWidth,
				Height: row.RatioHeight,
			},
			RatioFlipped: row.RatioFlipped,

			MinBorder:        row.MinBorder,
			EnableOffset:     row.EnableOffset,
			IgnoreMinBorder:  row.IgnoreMinBorder,
			HorizontalOffset: row.HorizontalOffset,
			VerticalOffset:   row.VerticalOffset,
		},
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
