package validator

import (
	"errors"
	"testing"
	"time"
)

var testSecret = []byte("test-session-secret")

func TestMintAndParse(t *testing.T) {
	id := Identity{
		ID:          "user-1",
		DisplayName: "Jurgen Klopp",
		Email:       "jurgen@example.com",
		AvatarURL:   "https://example.com/a.png",
	}

	raw, err := Mint(id, testSecret, SessionTTL)
	if err != nil {
		t.Fatalf("Mint() error = %v", err)
	}

	got, err := Parse(raw, testSecret)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if *got != id {
		t.Errorf("Parse() = %+v, want %+v", *got, id)
	}
}

func TestParseRejectsBadTokens(t *testing.T) {
	id := Identity{ID: "user-1", DisplayName: "Jurgen"}

	t.Run("wrong secret", func(t *testing.T) {
		raw, err := Mint(id, testSecret, SessionTTL)
		if err != nil {
			t.Fatalf("Mint() error = %v", err)
		}
		if _, err := Parse(raw, []byte("other-secret")); !errors.Is(err, ErrInvalidSession) {
			t.Errorf("Parse() error = %v, want ErrInvalidSession", err)
		}
	})

	t.Run("expired token", func(t *testing.T) {
		raw, err := Mint(id, testSecret, -time.Minute)
		if err != nil {
			t.Fatalf("Mint() error = %v", err)
		}
		if _, err := Parse(raw, testSecret); !errors.Is(err, ErrInvalidSession) {
			t.Errorf("Parse() error = %v, want ErrInvalidSession", err)
		}
	})

	t.Run("garbage token", func(t *testing.T) {
		if _, err := Parse("not.a.token", testSecret); !errors.Is(err, ErrInvalidSession) {
			t.Errorf("Parse() error = %v, want ErrInvalidSession", err)
		}
	})

	t.Run("missing subject", func(t *testing.T) {
		raw, err := Mint(Identity{DisplayName: "No ID"}, testSecret, SessionTTL)
		if err != nil {
			t.Fatalf("Mint() error = %v", err)
		}
		if _, err := Parse(raw, testSecret); !errors.Is(err, ErrInvalidSession) {
			t.Errorf("Parse() error = %v, want ErrInvalidSession", err)
		}
	})
}
