package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"squadhub/clients/gcp"
	"squadhub/envvars"
	"squadhub/seeder"
	"squadhub/services/auth"
	"squadhub/services/lineup"
	"squadhub/services/player"
	"squadhub/services/user"
	"squadhub/validator"

	"github.com/algolia/algoliasearch-client-go/v4/algolia/search"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-resty/resty/v2"
)

func main() {
	env := envvars.GetEnv()
	ctx := context.Background()

	db := gcp.CreateFirestore(ctx, env.ProjectID)
	defer db.Close()

	if len(os.Args) > 1 && os.Args[1] == "seed" {
		if err := seeder.Run(ctx, db, env.SeedBucket); err != nil {
			log.Fatal(err)
		}
		return
	}

	var searchClient *search.APIClient
	if env.AlgoliaAppID != "" {
		sc, err := search.NewClient(env.AlgoliaAppID, env.AlgoliaAPIKey)
		if err != nil {
			slog.With("error", err.Error()).Error("failed to create search client")
		} else {
			searchClient = sc
		}
	}

	playerService := player.NewService(db, searchClient)
	lineupService := lineup.NewService(db, lineup.Policy(env.LineupOwnership))
	userService := user.NewService(db)
	authService := auth.NewService(resty.New(), env.GoogleClientID, env.GoogleClientSecret, env.GoogleCallbackURL)

	server := NewServer(env, playerService, lineupService, userService, authService)

	if envvars.IsProd(env) {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()
	r.Use(cors.Default())
	r.Use(validator.Sessions([]byte(env.SessionSecret)))
	r.LoadHTMLGlob("templates/*.html")

	r.GET("/openapi", func(c *gin.Context) {
		c.Header("Content-Type", "application/x-yaml")
		c.File("./api/openapi.yaml")
	})

	registerRoutes(r, server)

	s := &http.Server{
		Handler: r,
		Addr:    "0.0.0.0:" + env.Port,
	}

	slog.Info("Starting HTTP server", "port", env.Port, "ownership", env.LineupOwnership)
	log.Fatal(s.ListenAndServe())
}
