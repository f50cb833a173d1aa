package main

import (
	"log/slog"
	"net/http"
	"squadhub/envvars"
	"squadhub/validator"
	"strings"

	"github.com/gin-gonic/gin"
)

func (s Server) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"message": nil,
		"next":    safeReturnPath(c.Query("next")),
	})
}

// GoogleLogin sends the browser to the consent screen. The return path rides
// along in the OAuth state parameter.
func (s Server) GoogleLogin(c *gin.Context) {
	next := safeReturnPath(c.Query("next"))
	c.Redirect(http.StatusFound, s.AuthService.AuthCodeURL(next))
}

// GoogleCallback finishes the handshake: exchange the code, fetch the
// profile, resolve it to a user record, and mint the session cookie. Any
// failure sends the browser back to the login page.
func (s Server) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	ctx := c.Request.Context()
	token, err := s.AuthService.GetAccessToken(ctx, code)
	if err != nil {
		slog.With("error", err.Error()).Error("Failed to exchange authorization code")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	profile, err := s.AuthService.GetProfile(ctx, token.AccessToken)
	if err != nil {
		slog.With("error", err.Error()).Error("Failed to fetch profile")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	u, err := s.Users.Resolve(ctx, *profile)
	if err != nil {
		slog.With("error", err.Error()).Error("Failed to resolve user")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	identity := validator.Identity{
		ID:          u.ID,
		DisplayName: u.DisplayName,
		AvatarURL:   u.AvatarURL,
	}
	if u.Email != nil {
		identity.Email = *u.Email
	}
	session, err := validator.Mint(identity, []byte(s.Env.SessionSecret), validator.SessionTTL)
	if err != nil {
		slog.With("error", err.Error()).Error("Failed to mint session")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(validator.CookieName, session, int(validator.SessionTTL.Seconds()), "/", "", envvars.IsProd(s.Env), true)

	c.Redirect(http.StatusFound, safeReturnPath(c.Query("state")))
}

func (s Server) Logout(c *gin.Context) {
	c.SetCookie(validator.CookieName, "", -1, "/", "", envvars.IsProd(s.Env), true)
	c.Redirect(http.StatusFound, "/login")
}

// safeReturnPath keeps post-login redirects on this site.
func safeReturnPath(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
