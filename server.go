package main

import (
	"squadhub/envvars"
	"squadhub/services/auth"
	"squadhub/services/lineup"
	"squadhub/services/player"
	"squadhub/services/user"
	"squadhub/validator"
	"strings"

	"github.com/gin-gonic/gin"
)

type Server struct {
	Env         envvars.Env
	Players     player.Service
	Lineups     lineup.Service
	Users       user.Service
	AuthService auth.Service
}

func NewServer(env envvars.Env, players player.Service, lineups lineup.Service, users user.Service, authService auth.Service) Server {
	return Server{
		Env:         env,
		Players:     players,
		Lineups:     lineups,
		Users:       users,
		AuthService: authService,
	}
}

func registerRoutes(r *gin.Engine, s Server) {
	r.GET("/login", s.LoginPage)
	r.GET("/auth/google", s.GoogleLogin)
	r.GET("/auth/google/callback", s.GoogleCallback)
	r.GET("/logout", s.Logout)

	pages := r.Group("/", validator.RequireLogin())
	pages.GET("/", s.HomePage)
	pages.GET("/players", s.PlayersPage)
	pages.GET("/squad", s.SquadPage)
	pages.GET("/find", s.FindPage)
	pages.GET("/create", s.CreateForm)
	pages.POST("/create", s.CreateSubmit)
	pages.GET("/details", s.DetailsPage)
	pages.GET("/edit", s.EditForm)
	pages.POST("/update", s.UpdateSubmit)
	pages.POST("/delete", s.DeleteSubmit)

	api := r.Group("/api")

	players := api.Group("/players")
	// Player reads are public; mutations need an authenticated session.
	players.Use(mutationsRequireSession())
	players.GET("", s.ListPlayersAPI)
	players.GET("/:id", s.GetPlayerAPI)
	players.POST("", s.CreatePlayerAPI)
	players.PUT("/:id", s.UpdatePlayerAPI)
	players.DELETE("/:id", s.DeletePlayerAPI)

	lineups := api.Group("/lineups")
	if s.Lineups.Policy() == lineup.PolicyOwned {
		// Owned lineups need an identity to stamp and to match against.
		lineups.Use(mutationsRequireSession())
	}
	lineups.GET("", s.ListLineupsAPI)
	lineups.GET("/:id", s.GetLineupAPI)
	lineups.POST("", s.CreateLineupAPI)
	lineups.PUT("/:id", s.UpdateLineupAPI)
	lineups.DELETE("/:id", s.DeleteLineupAPI)

	api.GET("/search/players", s.SearchPlayersAPI)
	api.POST("/search/reindex", validator.RequireSession(), s.ReindexAPI)

	r.NoRoute(s.NotFoundPage)
}

func mutationsRequireSession() gin.HandlerFunc {
	requireSession := validator.RequireSession()
	return func(c *gin.Context) {
		switch c.Request.Method {
		case "POST", "PUT", "DELETE":
			requireSession(c)
		default:
			c.Next()
		}
	}
}

// isValidID checks document-identifier syntax: the store accepts any
// non-empty segment without a path separator.
func isValidID(id string) bool {
	if id == "" || len(id) > 1500 {
		return false
	}
	if id == "." || id == ".." {
		return false
	}
	return !strings.Contains(id, "/")
}

// requester maps the session identity, if any, to the lineup-facing shape.
func requester(c *gin.Context) lineup.Identity {
	if id, ok := validator.FromContext(c); ok {
		return lineup.Identity{ID: id.ID, DisplayName: id.DisplayName, Email: id.Email}
	}
	return lineup.Identity{}
}

// viewer exposes the session identity to templates; nil when anonymous.
func viewer(c *gin.Context) *validator.Identity {
	id, ok := validator.FromContext(c)
	if !ok {
		return nil
	}
	return id
}
