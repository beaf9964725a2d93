// Package routes centralizes the API paths so handlers, clients and tests
// agree on them.
package routes

const APIBase = "/api/v1"

const (
	Papers    = "/papers"
	Ratios    = "/ratios"
	Calculate = "/calculate"
	Snap      = "/snap"

	Recipes  = "/recipes"
	RecipeID = "/recipes/:id"

	Share      = "/share"
	ShareToken = "/share/:token"
)

func GetRecipePath(id string) string {
	return APIBase + Recipes + "/" + id
}

func GetSharePath(token string) string {
	return APIBase + Share + "/" + token
}
