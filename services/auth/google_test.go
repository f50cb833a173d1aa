package auth

import (
	"net/url"
	"strings"
	"testing"

	"github.com/go-resty/resty/v2"
)

func TestAuthCodeURL(t *testing.T) {
	svc := NewService(resty.New(), "client-id", "client-secret", "http://localhost:8080/auth/google/callback")

	raw := svc.AuthCodeURL("/find?q=salah")
	if !strings.HasPrefix(raw, authorizeURL+"?") {
		t.Fatalf("AuthCodeURL() = %q, want prefix %q", raw, authorizeURL)
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("AuthCodeURL() produced unparseable URL: %v", err)
	}
	q := parsed.Query()

	tests := []struct {
		param string
		want  string
	}{
		{"client_id", "client-id"},
		{"redirect_uri", "http://localhost:8080/auth/google/callback"},
		{"response_type", "code"},
		{"scope", "openid profile email"},
		{"state", "/find?q=salah"},
	}
	for _, tt := range tests {
		if got := q.Get(tt.param); got != tt.want {
			t.Errorf("%s = %q, want %q", tt.param, got, tt.want)
		}
	}

	if strings.Contains(raw, "client-secret") {
		t.Error("consent URL must not carry the client secret")
	}
}
