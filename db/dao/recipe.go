package dao

import (
	"context"
	"database/sql"

	"github.com/darkroomtools/easeld/db/dbo"
	"github.com/darkroomtools/easeld/logging"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const recipeFields = `
r.id, r.name, r.notes,
r.paper_mode, r.paper_label, r.paper_width, r.paper_height,
r.orientation_manual, r.orientation_landscape,
r.ratio_mode, r.ratio_label, r.ratio_width, r.ratio_height, r.ratio_flipped,
r.min_border, r.enable_offset, r.ignore_min_border,
r.horizontal_offset, r.vertical_offset,
r.created_at, r.updated_at
`

const getRecipeByID = `SELECT ` + recipeFields + ` FROM recipes r WHERE r.id=?`

const listRecipes = `SELECT ` + recipeFields + ` FROM recipes r ORDER BY r.name ASC, r.id ASC`

const createRecipe = `
INSERT INTO recipes (
  id, name, notes,
  paper_mode, paper_label, paper_width, paper_height,
  orientation_manual, orientation_landscape,
  ratio_mode, ratio_label, ratio_width, ratio_height, ratio_flipped,
  min_border, enable_offset, ignore_min_border,
  horizontal_offset, vertical_offset,
  created_at, updated_at
) VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`

const updateRecipe = `
UPDATE recipes SET
  name=?, notes=?,
  paper_mode=?, paper_label=?, paper_width=?, paper_height=?,
  orientation_manual=?, orientation_landscape=?,
  ratio_mode=?, ratio_label=?, ratio_width=?, ratio_height=?, ratio_flipped=?,
  min_border=?, enable_offset=?, ignore_min_border=?,
  horizontal_offset=?, vertical_offset=?,
  updated_at=?
WHERE id=?`

const deleteRecipe = `DELETE FROM recipes WHERE id=?`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (dbo.Recipe, error) {
	var r dbo.Recipe
	err := row.Scan(
		&r.ID, &r.Name, &r.Notes,
		&r.PaperMode, &r.PaperLabel, &r.PaperWidth, &r.PaperHeight,
		&r.OrientationManual, &r.OrientationLandscape,
		&r.RatioMode, &r.RatioLabel, &r.RatioWidth, &r.RatioHeight, &r.RatioFlipped,
		&r.MinBorder, &r.EnableOffset, &r.IgnoreMinBorder,
		&r.HorizontalOffset, &r.VerticalOffset,
		&r.CreatedAt, &r.UpdatedAt,
	)
	return r, err
}

func scanRecipes(rows *sql.Rows) ([]dbo.Recipe, error) {
	var out []dbo.Recipe
	for rows.Next() {
		r, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

/* ===========================
   Queries methods
   =========================== */

func (q *Queries) GetRecipeByID(ctx context.Context, id string) (dbo.Recipe, error) {
	row := q.db.QueryRowContext(ctx, getRecipeByID, id)
	return scanRecipe(row)
}

func (q *Queries) ListRecipes(ctx context.Context) ([]dbo.Recipe, error) {
	rows, err := q.db.QueryContext(ctx, listRecipes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRecipes(rows)
}

func (q *Queries) CreateRecipe(ctx context.Context, r dbo.Recipe) error {
	_, err := q.db.ExecContext(ctx, createRecipe,
		r.ID, r.Name, r.Notes,
		r.PaperMode, r.PaperLabel, r.PaperWidth, r.PaperHeight,
		r.OrientationManual, r.OrientationLandscape,
		r.RatioMode, r.RatioLabel, r.RatioWidth, r.RatioHeight, r.RatioFlipped,
		r.MinBorder, r.EnableOffset, r.IgnoreMinBorder,
		r.HorizontalOffset, r.VerticalOffset,
		r.CreatedAt, r.UpdatedAt,
	)
	return err
}

func (q *Queries) UpdateRecipe(ctx context.Context, r dbo.Recipe) error {
	res, err := q.db.ExecContext(ctx, updateRecipe,
		r.Name, r.Notes,
		r.PaperMode, r.PaperLabel, r.PaperWidth, r.PaperHeight,
		r.OrientationManual, r.OrientationLandscape,
		r.RatioMode, r.RatioLabel, r.RatioWidth, r.RatioHeight, r.RatioFlipped,
		r.MinBorder, r.EnableOffset, r.IgnoreMinBorder,
		r.HorizontalOffset, r.VerticalOffset,
		r.UpdatedAt,
		r.ID,
	)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (q *Queries) DeleteRecipe(ctx context.Context, id string) error {
	res, err := q.db.ExecContext(ctx, deleteRecipe, id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

/* ===========================
   Convenience wrappers
   =========================== */

func GetRecipeByID(db *sql.DB, ctx context.Context, id string) (dbo.Recipe, error) {
	log.Logger.Debug().Str("recipe_id", id).Msg("Get recipe by ID")

	q := NewQueries(db)
	r, err := q.GetRecipeByID(ctx, id)
	return r, wrapNotFound(err, "recipe")
}

func ListRecipes(db *sql.DB, ctx context.Context) ([]dbo.Recipe, error) {
	log.Logger.Debug().Msg("List recipes")

	q := NewQueries(db)
	return q.ListRecipes(ctx)
}

func CreateRecipe(db *sql.DB, ctx context.Context, r dbo.Recipe) error {
	log.Logger.Debug().
		Object("Recipe", logging.WithLevel(zerolog.DebugLevel, &r)).
		Msg("Create recipe")

	q := NewQueries(db)
	return q.CreateRecipe(ctx, r)
}

func UpdateRecipe(db *sql.DB, ctx context.Context, r dbo.Recipe) error {
	log.Logger.Debug().
		Object("Recipe", logging.WithLevel(zerolog.DebugLevel, &r)).
		Msg("Update recipe")

	q := NewQueries(db)
	return wrapNotFound(q.UpdateRecipe(ctx, r), "recipe")
}

func DeleteRecipe(db *sql.DB, ctx context.Context, id string) error {
	log.Logger.Debug().Str("recipe_id", id).Msg("Delete recipe")

	q := NewQueries(db)
	return wrapNotFound(q.DeleteRecipe(ctx, id), "recipe")
}
