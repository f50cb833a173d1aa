package main

import (
	"errors"
	"log/slog"
	"net/http"
	"squadhub/services/lineup"
	"squadhub/services/player"
	"strconv"

	"github.com/gin-gonic/gin"
)

func (s Server) ListPlayersAPI(c *gin.Context) {
	q := player.Query{
		Search:   c.Query("search"),
		Position: c.Query("position"),
	}
	var (
		players []player.Player
		err     error
	)
	if q.IsEmpty() {
		players, err = s.Players.List(c.Request.Context())
	} else {
		players, err = s.Players.Search(c.Request.Context(), q)
	}
	if err != nil {
		s.playerAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, players)
}

func (s Server) GetPlayerAPI(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}
	p, err := s.Players.Get(c.Request.Context(), id)
	if err != nil {
		s.playerAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s Server) CreatePlayerAPI(c *gin.Context) {
	var in player.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	p, err := s.Players.Create(c.Request.Context(), in)
	if err != nil {
		s.playerAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s Server) UpdatePlayerAPI(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}
	var in player.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	p, err := s.Players.Update(c.Request.Context(), id, in)
	if err != nil {
		s.playerAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, p)
}

func (s Server) DeletePlayerAPI(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid player ID"})
		return
	}
	if err := s.Players.Delete(c.Request.Context(), id); err != nil {
		s.playerAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Player deleted successfully"})
}

func (s Server) ListLineupsAPI(c *gin.Context) {
	q := lineup.Query{
		Title:     c.Query("title"),
		Formation: c.Query("formation"),
	}
	lineups, err := s.Lineups.List(c.Request.Context(), q, requester(c))
	if err != nil {
		s.lineupAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, lineups)
}

func (s Server) GetLineupAPI(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lineup ID"})
		return
	}
	l, err := s.Lineups.Get(c.Request.Context(), id, requester(c))
	if err != nil {
		s.lineupAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (s Server) CreateLineupAPI(c *gin.Context) {
	var in lineup.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	l, err := s.Lineups.Create(c.Request.Context(), in, requester(c))
	if err != nil {
		s.lineupAPIError(c, err)
		return
	}
	c.JSON(http.StatusCreated, l)
}

func (s Server) UpdateLineupAPI(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lineup ID"})
		return
	}
	var in lineup.Input
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	l, err := s.Lineups.Update(c.Request.Context(), id, in, requester(c))
	if err != nil {
		s.lineupAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (s Server) DeleteLineupAPI(c *gin.Context) {
	id := c.Param("id")
	if !isValidID(id) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid lineup ID"})
		return
	}
	if err := s.Lineups.Delete(c.Request.Context(), id, requester(c)); err != nil {
		s.lineupAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Lineup deleted successfully"})
}

func (s Server) SearchPlayersAPI(c *gin.Context) {
	query := c.Query("query")
	page, err := strconv.Atoi(c.DefaultQuery("page", "0"))
	if err != nil || page < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
		return
	}
	results, err := s.Players.SearchIndex(c.Request.Context(), query, page)
	if err != nil {
		s.playerAPIError(c, err)
		return
	}
	c.JSON(http.StatusOK, results)
}

func (s Server) ReindexAPI(c *gin.Context) {
	if err := s.Players.SyncSearchIndex(c.Request.Context()); err != nil {
		slog.With("error", err.Error()).Error("Failed to rebuild player search index")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to rebuild search index"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Search index updated"})
}

func (s Server) playerAPIError(c *gin.Context, err error) {
	var ve player.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, player.NotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Player not found"})
	default:
		slog.With("error", err.Error()).Error("player API error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func (s Server) lineupAPIError(c *gin.Context, err error) {
	var ve lineup.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message})
	case errors.Is(err, lineup.NotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Lineup not found"})
	default:
		slog.With("error", err.Error()).Error("lineup API error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
