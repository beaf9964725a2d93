package server

import (
	"errors"
	"net/http"

	"github.com/darkroomtools/easeld/border"
	"github.com/darkroomtools/easeld/config"
	"github.com/darkroomtools/easeld/db"
	"github.com/darkroomtools/easeld/recipes"
	"github.com/darkroomtools/easeld/server/routes"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Server runs the HTTP API until the listener fails. The calculator engine
// is shared across requests; it is stateless so no locking is needed.
func Server(cfg config.Config) error {
	gin.SetMode(gin.ReleaseMode)
	if cfg.Env == config.EnvDevelopment {
		gin.SetMode(gin.DebugMode)
	}

	store, err := recipes.NewStore(db.GetDatabase())
	if err != nil {
		return err
	}

	r := newRouter(cfg, border.New(cfg.Calculator), store)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,

		ReadTimeout:       cfg.Server.Timeouts.Read,
		ReadHeaderTimeout: cfg.Server.Timeouts.Header,
		WriteTimeout:      cfg.Server.Timeouts.Write,
		IdleTimeout:       cfg.Server.Timeouts.Idle,
	}

	log.Logger.Info().Str("addr", cfg.Server.Addr).Msg("Server listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func newRouter(cfg config.Config, engine *border.Engine, store *recipes.Store) *gin.Engine {
	r := gin.New()

	r.Use(
		RequestID(),
		Logger(),
		gin.Recovery(),
	)

	api := r.Group(routes.APIBase)
	{
		api.GET(routes.Papers, PapersHandler())
		api.GET(routes.Ratios, RatiosHandler())

		api.POST(routes.Calculate, CalculateHandler(engine))
		api.POST(routes.Snap, SnapHandler(engine))

		api.GET(routes.Recipes, ListRecipesHandler(store))
		api.POST(routes.Recipes, CreateRecipeHandler(store))
		api.GET(routes.RecipeID, GetRecipeHandler(store))
		api.PUT(routes.RecipeID, UpdateRecipeHandler(store))
		api.DELETE(routes.RecipeID, DeleteRecipeHandler(store))

		api.POST(routes.Share, CreateShareHandler(cfg.Share))
		api.GET(routes.ShareToken, ResolveShareHandler())
	}

	return r
}
