package envvars

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	GoogleClientID     = "GOOGLE_CLIENT_ID"
	GoogleClientSecret = "GOOGLE_CLIENT_SECRET"
	GoogleCallbackURL  = "GOOGLE_CALLBACK_URL"
	SessionSecret      = "SESSION_SECRET"
	ProjectID          = "GCP_PROJECT_ID"
	Environment        = "ENVIRONMENT"
	LineupOwnership    = "LINEUP_OWNERSHIP"
	AlgoliaAppID       = "ALGOLIA_APP_ID"
	AlgoliaAPIKey      = "ALGOLIA_API_KEY"
	SeedBucket         = "SEED_BUCKET"
	Port               = "PORT"
)

const (
	ProductionEnv = "production"
	DevEnv        = "dev"
)

const (
	OwnershipPublic = "public"
	OwnershipOwned  = "owned"
)

type Env struct {
	GoogleClientID     string
	GoogleClientSecret string
	GoogleCallbackURL  string
	SessionSecret      string
	ProjectID          string
	Environment        string
	LineupOwnership    string
	AlgoliaAppID       string
	AlgoliaAPIKey      string
	SeedBucket         string
	Port               string
}

// GetEnv reads configuration from the environment. A .env file is loaded first
// when present. Required variables are fatal when missing.
func GetEnv() Env {
	_ = godotenv.Load()

	clientID, ok := os.LookupEnv(GoogleClientID)
	if !ok {
		log.Fatalf("%s required", GoogleClientID)
	}
	clientSecret, ok := os.LookupEnv(GoogleClientSecret)
	if !ok {
		log.Fatalf("%s required", GoogleClientSecret)
	}
	callbackURL, ok := os.LookupEnv(GoogleCallbackURL)
	if !ok {
		log.Fatalf("%s required", GoogleCallbackURL)
	}
	sessionSecret, ok := os.LookupEnv(SessionSecret)
	if !ok {
		log.Fatalf("%s required", SessionSecret)
	}
	projectID, ok := os.LookupEnv(ProjectID)
	if !ok {
		log.Fatalf("%s required", ProjectID)
	}
	environment, ok := os.LookupEnv(Environment)
	if !ok {
		environment = DevEnv
	}
	ownership, ok := os.LookupEnv(LineupOwnership)
	if !ok {
		ownership = OwnershipPublic
	}
	port, ok := os.LookupEnv(Port)
	if !ok {
		port = "8080"
	}
	return Env{
		GoogleClientID:     clientID,
		GoogleClientSecret: clientSecret,
		GoogleCallbackURL:  callbackURL,
		SessionSecret:      sessionSecret,
		ProjectID:          projectID,
		Environment:        environment,
		LineupOwnership:    ownership,
		AlgoliaAppID:       os.Getenv(AlgoliaAppID),
		AlgoliaAPIKey:      os.Getenv(AlgoliaAPIKey),
		SeedBucket:         os.Getenv(SeedBucket),
		Port:               port,
	}
}

func IsProd(e Env) bool {
	return e.Environment == ProductionEnv
}

func IsDev(e Env) bool {
	return e.Environment == DevEnv
}
