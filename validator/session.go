package validator

import (
	"errors"
	"net/url"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lestrrat-go/jwx/jwa"
	"github.com/lestrrat-go/jwx/jwt"
)

// CookieName carries the signed session token.
const CookieName = "squadhub_session"

const identityKey = "session_identity"

// SessionTTL matches the original seven-day cookie lifetime.
const SessionTTL = 7 * 24 * time.Hour

// Identity is the minimized user carried in the session token. Provider and
// other internal fields are deliberately not retained here.
type Identity struct {
	ID          string
	DisplayName string
	Email       string
	AvatarURL   string
}

var ErrInvalidSession = errors.New("session token is malformed or expired")

// Mint signs the identity into a session token.
func Mint(id Identity, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	tok := jwt.New()
	if err := tok.Set(jwt.SubjectKey, id.ID); err != nil {
		return "", err
	}
	if err := tok.Set(jwt.IssuedAtKey, now); err != nil {
		return "", err
	}
	if err := tok.Set(jwt.ExpirationKey, now.Add(ttl)); err != nil {
		return "", err
	}
	if err := tok.Set("displayName", id.DisplayName); err != nil {
		return "", err
	}
	if err := tok.Set("email", id.Email); err != nil {
		return "", err
	}
	if err := tok.Set("avatarUrl", id.AvatarURL); err != nil {
		return "", err
	}
	signed, err := jwt.Sign(tok, jwa.HS256, secret)
	if err != nil {
		return "", err
	}
	return string(signed), nil
}

// Parse verifies a session token and recovers the identity.
func Parse(raw string, secret []byte) (*Identity, error) {
	tok, err := jwt.Parse([]byte(raw), jwt.WithVerify(jwa.HS256, secret), jwt.WithValidate(true))
	if err != nil {
		return nil, ErrInvalidSession
	}
	id := Identity{ID: tok.Subject()}
	if v, ok := tok.Get("displayName"); ok {
		id.DisplayName, _ = v.(string)
	}
	if v, ok := tok.Get("email"); ok {
		id.Email, _ = v.(string)
	}
	if v, ok := tok.Get("avatarUrl"); ok {
		id.AvatarURL, _ = v.(string)
	}
	if id.ID == "" {
		return nil, ErrInvalidSession
	}
	return &id, nil
}

// Sessions resolves the session cookie, when present, into the request
// context. Requests without a valid session pass through anonymously.
func Sessions(secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, err := c.Cookie(CookieName)
		if err == nil && raw != "" {
			if id, err := Parse(raw, secret); err == nil {
				c.Set(identityKey, id)
			}
		}
		c.Next()
	}
}

// RequireLogin redirects anonymous requests to the login page, preserving the
// original URL so the callback can return there.
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := FromContext(c); !ok {
			next := url.QueryEscape(c.Request.URL.RequestURI())
			c.Redirect(302, "/login?next="+next)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireSession is the API flavor: anonymous requests get a 401 instead of a
// redirect.
func RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := FromContext(c); !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "Authentication required"})
			return
		}
		c.Next()
	}
}

// FromContext returns the session identity resolved for this request.
func FromContext(c *gin.Context) (*Identity, bool) {
	v, ok := c.Get(identityKey)
	if !ok {
		return nil, false
	}
	id, ok := v.(*Identity)
	return id, ok
}
