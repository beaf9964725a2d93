package server

import (
	"errors"
	"net/http"

	"github.com/darkroomtools/easeld/border"
	"github.com/darkroomtools/easeld/recipes"
	"github.com/gin-gonic/gin"
)

// recipeBody is the write payload for creating or replacing a recipe.
type recipeBody struct {
	Name  string       `json:"name"`
	Notes string       `json:"notes"`
	Input border.Input `json:"input"`
}

func ListRecipesHandler(store *recipes.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := store.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

func GetRecipeHandler(store *recipes.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := store.Get(c.Request.Context(), c.Param("id"))
		if err != nil {
			recipeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func CreateRecipeHandler(store *recipes.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body recipeBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rec, err := store.Create(c.Request.Context(), body.Name, body.Notes, body.Input)
		if err != nil {
			recipeError(c, err)
			return
		}
		c.JSON(http.StatusCreated, rec)
	}
}

func UpdateRecipeHandler(store *recipes.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body recipeBody
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		rec, err := store.Update(c.Request.Context(), c.Param("id"), body.Name, body.Notes, body.Input)
		if err != nil {
			recipeError(c, err)
			return
		}
		c.JSON(http.StatusOK, rec)
	}
}

func DeleteRecipeHandler(store *recipes.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := store.Delete(c.Request.Context(), c.Param("id")); err != nil {
			recipeError(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func recipeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, recipes.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "recipe not found"})
	case errors.Is(err, recipes.ErrInvalidName):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
