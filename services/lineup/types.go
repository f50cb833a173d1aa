package lineup

import (
	"errors"
	"fmt"
	"time"
)

var NotFound = errors.New("lineup not found")

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// SquadSize is the number of position slots every lineup must fill.
const SquadSize = 11

type Lineup struct {
	ID        string     `json:"id" firestore:"id"`
	Formation string     `json:"formation" firestore:"formation"`
	Positions []Position `json:"positions" firestore:"positions"`
	Title     string     `json:"title" firestore:"title"`
	UserName  string     `json:"userName" firestore:"userName"`
	UserID    string     `json:"userId,omitempty" firestore:"userId,omitempty"`
	UserEmail string     `json:"userEmail,omitempty" firestore:"userEmail,omitempty"`
	CreatedAt time.Time  `json:"createdAt" firestore:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt" firestore:"updatedAt"`
}

// Position is one pitch slot. Players are referenced loosely by name or id;
// no referential integrity is enforced against the players collection.
type Position struct {
	Slot       string  `json:"slot" firestore:"slot"`
	PlayerID   string  `json:"playerId,omitempty" firestore:"playerId,omitempty"`
	PlayerName string  `json:"playerName,omitempty" firestore:"playerName,omitempty"`
	X          float64 `json:"x" firestore:"x"`
	Y          float64 `json:"y" firestore:"y"`
}

// Policy selects how lineup records are scoped.
type Policy string

const (
	// PolicyPublic leaves every lineup readable and writable by id.
	PolicyPublic Policy = "public"
	// PolicyOwned scopes reads and mutations to the creating identity. A
	// mismatch is reported as not-found so record existence never leaks.
	PolicyOwned Policy = "owned"
)

// Identity is the requester carried in from the session. Zero value means
// anonymous.
type Identity struct {
	ID          string
	DisplayName string
	Email       string
}
