package player

import (
	"errors"
	"fmt"
	"time"
)

var NotFound = errors.New("player not found")

// ValidationError marks user-correctable input problems. Handlers surface it as
// a 400 or a re-rendered form instead of a server error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

type Player struct {
	ID          string     `json:"id" firestore:"id"`
	Name        string     `json:"name" firestore:"name"`
	Position    string     `json:"position" firestore:"position"`
	SquadNumber *int64     `json:"squadNumber" firestore:"squadNumber"`
	Nationality string     `json:"nationality" firestore:"nationality"`
	HeightCm    *int64     `json:"heightCm" firestore:"heightCm"`
	DateOfBirth *time.Time `json:"dateOfBirth" firestore:"dateOfBirth"`
	Stats       Stats      `json:"stats" firestore:"stats"`
	Tags        []string   `json:"tags" firestore:"tags"`
	CreatedAt   time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

// Stats is always persisted with all four counters populated.
type Stats struct {
	Appearances int64 `json:"appearances" firestore:"appearances"`
	Goals       int64 `json:"goals" firestore:"goals"`
	Assists     int64 `json:"assists" firestore:"assists"`
	Minutes     int64 `json:"minutes" firestore:"minutes"`
}

// SearchResult is the minimal record served from the hosted search index.
type SearchResult struct {
	ID          string   `json:"objectID"`
	Name        string   `json:"name"`
	Position    string   `json:"position"`
	Nationality string   `json:"nationality"`
	Tags        []string `json:"tags"`
}

const DefaultPosition = "Midfielder"
