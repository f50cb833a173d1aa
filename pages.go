package main

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"squadhub/generator"
	"squadhub/ptr"
	"squadhub/services/player"

	"github.com/gin-gonic/gin"
)

func (s Server) HomePage(c *gin.Context) {
	players, err := s.Players.List(c.Request.Context())
	if err != nil {
		slog.With("error", err.Error()).Error("Error loading home")
		c.String(http.StatusInternalServerError, "Error loading home page")
		return
	}
	c.HTML(http.StatusOK, "home.html", gin.H{"user": viewer(c), "players": players})
}

func (s Server) PlayersPage(c *gin.Context) {
	players, err := s.Players.List(c.Request.Context())
	if err != nil {
		slog.With("error", err.Error()).Error("Error loading players")
		c.String(http.StatusInternalServerError, "Error loading players page")
		return
	}
	c.HTML(http.StatusOK, "players.html", gin.H{"user": viewer(c), "players": players})
}

func (s Server) SquadPage(c *gin.Context) {
	players, err := s.Players.Search(c.Request.Context(), player.Query{})
	if err != nil {
		s.infoPage(c, "Error loading players")
		return
	}
	c.HTML(http.StatusOK, "squad.html", gin.H{
		"user":          viewer(c),
		"players":       players,
		"suggestedName": generator.TeamName(),
	})
}

func (s Server) FindPage(c *gin.Context) {
	q := c.Query("q")
	players, err := s.Players.Search(c.Request.Context(), player.Query{Search: q})
	if err != nil {
		slog.With("error", err.Error()).Error("Error searching players")
		s.infoPage(c, "Error loading players")
		return
	}
	c.HTML(http.StatusOK, "list.html", gin.H{"user": viewer(c), "players": players, "searchQuery": q})
}

func (s Server) CreateForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create.html", gin.H{"user": viewer(c), "error": nil})
}

func (s Server) CreateSubmit(c *gin.Context) {
	_, err := s.Players.Create(c.Request.Context(), playerInputFromForm(c))
	if err != nil {
		var ve player.ValidationError
		if errors.As(err, &ve) {
			c.HTML(http.StatusOK, "create.html", gin.H{"user": viewer(c), "error": ve.Message})
			return
		}
		slog.With("error", err.Error()).Error("Error creating player")
		c.HTML(http.StatusOK, "create.html", gin.H{"user": viewer(c), "error": "Failed to create player"})
		return
	}
	c.Redirect(http.StatusFound, "/find")
}

func (s Server) DetailsPage(c *gin.Context) {
	id := c.Query("_id")
	if !isValidID(id) {
		s.infoPage(c, "Invalid player ID")
		return
	}
	p, err := s.Players.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, player.NotFound) {
			s.infoPage(c, "Player not found")
			return
		}
		slog.With("error", err.Error()).Error("Error loading player details")
		s.infoPage(c, "Error loading player details")
		return
	}
	c.HTML(http.StatusOK, "details.html", gin.H{"user": viewer(c), "player": p})
}

func (s Server) EditForm(c *gin.Context) {
	id := c.Query("_id")
	if !isValidID(id) {
		s.infoPage(c, "Invalid player ID")
		return
	}
	p, err := s.Players.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, player.NotFound) {
			s.infoPage(c, "Player not found")
			return
		}
		slog.With("error", err.Error()).Error("Error loading player for editing")
		s.infoPage(c, "Error loading player for editing")
		return
	}
	c.HTML(http.StatusOK, "edit.html", gin.H{"user": viewer(c), "player": p, "error": nil})
}

func (s Server) UpdateSubmit(c *gin.Context) {
	id := c.Query("_id")
	if !isValidID(id) {
		s.infoPage(c, "Invalid player ID")
		return
	}
	_, err := s.Players.Replace(c.Request.Context(), id, playerInputFromForm(c))
	if err != nil {
		if errors.Is(err, player.NotFound) {
			s.infoPage(c, "Player not found")
			return
		}
		var ve player.ValidationError
		if errors.As(err, &ve) {
			// Reload the record so the form can be re-rendered with the error.
			p, getErr := s.Players.Get(c.Request.Context(), id)
			if getErr != nil {
				s.infoPage(c, "Error updating player")
				return
			}
			c.HTML(http.StatusOK, "edit.html", gin.H{"user": viewer(c), "player": p, "error": ve.Message})
			return
		}
		slog.With("error", err.Error()).Error("Error updating player")
		s.infoPage(c, "Error updating player")
		return
	}
	c.Redirect(http.StatusFound, "/details?_id="+url.QueryEscape(id))
}

func (s Server) DeleteSubmit(c *gin.Context) {
	id := c.Query("_id")
	if !isValidID(id) {
		s.infoPage(c, "Invalid player ID")
		return
	}
	if err := s.Players.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, player.NotFound) {
			s.infoPage(c, "Player not found")
			return
		}
		slog.With("error", err.Error()).Error("Error deleting player")
		s.infoPage(c, "Error deleting player")
		return
	}
	c.Redirect(http.StatusFound, "/players")
}

func (s Server) NotFoundPage(c *gin.Context) {
	c.HTML(http.StatusNotFound, "info.html", gin.H{"user": viewer(c), "message": "404 - Page not found"})
}

func (s Server) infoPage(c *gin.Context, message string) {
	c.HTML(http.StatusOK, "info.html", gin.H{"user": viewer(c), "message": message})
}

// playerInputFromForm collects the flat form fields into the shared input
// shape so the form surface and the JSON API normalize identically.
func playerInputFromForm(c *gin.Context) player.Input {
	tags := player.SplitTags(c.PostForm("tags"))
	return player.Input{
		Name:        ptr.Of(c.PostForm("name")),
		Position:    ptr.Of(c.PostForm("position")),
		Nationality: ptr.Of(c.PostForm("nationality")),
		SquadNumber: player.Opt(c.PostForm("squadNumber")),
		HeightCm:    player.Opt(c.PostForm("heightCm")),
		DateOfBirth: ptr.Of(c.PostForm("dateOfBirth")),
		Tags:        &tags,
		Stats: &player.StatsInput{
			Appearances: player.CountOf(c.PostForm("appearances")),
			Goals:       player.CountOf(c.PostForm("goals")),
			Assists:     player.CountOf(c.PostForm("assists")),
			Minutes:     player.CountOf(c.PostForm("minutes")),
		},
	}
}
