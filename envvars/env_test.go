package envvars

import (
	"os"
	"reflect"
	"testing"
)

func TestGetEnv(t *testing.T) {
	// Backup and defer restore of environment variables
	backup := os.Environ()
	defer func() {
		os.Clearenv()
		for _, env := range backup {
			pair := splitEnv(env)
			os.Setenv(pair[0], pair[1])
		}
	}()

	t.Run("all env vars set", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(GoogleClientID, "test_client_id")
		os.Setenv(GoogleClientSecret, "test_client_secret")
		os.Setenv(GoogleCallbackURL, "http://localhost:8080/auth/google/callback")
		os.Setenv(SessionSecret, "test_session_secret")
		os.Setenv(ProjectID, "test_project")
		os.Setenv(Environment, "production")
		os.Setenv(LineupOwnership, "owned")
		os.Setenv(AlgoliaAppID, "test_app_id")
		os.Setenv(AlgoliaAPIKey, "test_algolia_key")
		os.Setenv(Port, "9090")

		expected := Env{
			GoogleClientID:     "test_client_id",
			GoogleClientSecret: "test_client_secret",
			GoogleCallbackURL:  "http://localhost:8080/auth/google/callback",
			SessionSecret:      "test_session_secret",
			ProjectID:          "test_project",
			Environment:        ProductionEnv,
			LineupOwnership:    OwnershipOwned,
			AlgoliaAppID:       "test_app_id",
			AlgoliaAPIKey:      "test_algolia_key",
			Port:               "9090",
		}

		if got := GetEnv(); !reflect.DeepEqual(got, expected) {
			t.Errorf("GetEnv() = %v, want %v", got, expected)
		}
	})

	t.Run("environment defaults to dev", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(GoogleClientID, "test_client_id")
		os.Setenv(GoogleClientSecret, "test_client_secret")
		os.Setenv(GoogleCallbackURL, "http://localhost:8080/auth/google/callback")
		os.Setenv(SessionSecret, "test_session_secret")
		os.Setenv(ProjectID, "test_project")

		got := GetEnv()
		if got.Environment != DevEnv {
			t.Errorf("Expected environment to default to dev, got %s", got.Environment)
		}
	})

	t.Run("ownership defaults to public", func(t *testing.T) {
		os.Clearenv()
		os.Setenv(GoogleClientID, "test_client_id")
		os.Setenv(GoogleClientSecret, "test_client_secret")
		os.Setenv(GoogleCallbackURL, "http://localhost:8080/auth/google/callback")
		os.Setenv(SessionSecret, "test_session_secret")
		os.Setenv(ProjectID, "test_project")

		got := GetEnv()
		if got.LineupOwnership != OwnershipPublic {
			t.Errorf("Expected ownership to default to public, got %s", got.LineupOwnership)
		}
		if got.Port != "8080" {
			t.Errorf("Expected port to default to 8080, got %s", got.Port)
		}
	})
}

func TestIsProd(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, true},
		{"dev env", Env{Environment: DevEnv}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsProd(tt.env); got != tt.want {
				t.Errorf("IsProd() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsDev(t *testing.T) {
	tests := []struct {
		name string
		env  Env
		want bool
	}{
		{"production env", Env{Environment: ProductionEnv}, false},
		{"dev env", Env{Environment: DevEnv}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsDev(tt.env); got != tt.want {
				t.Errorf("IsDev() = %v, want %v", got, tt.want)
			}
		})
	}
}

func splitEnv(env string) []string {
	var s []string
	for i := 0; i < len(env); i++ {
		if env[i] == '=' {
			s = append(s, env[:i])
			s = append(s, env[i+1:])
			return s
		}
	}
	// Return slice with empty strings if no '=' is found
	return []string{"", ""}
}
