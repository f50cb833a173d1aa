package lineup

import (
	"squadhub/generator"
	"strings"
	"time"
)

// Input carries the raw request fields for a lineup.
type Input struct {
	Formation *string     `json:"formation"`
	Positions *[]Position `json:"positions"`
	Title     *string     `json:"title"`
	UserName  *string     `json:"userName"`
}

// Lineup normalizes the input into a complete record, applying the create
// rules: formation and exactly eleven positions are required, the title
// defaults to a dated label, the creator falls back to "Anonymous".
func (in Input) Lineup(now time.Time, who Identity) (Lineup, error) {
	l := Lineup{}

	if in.Formation == nil || strings.TrimSpace(*in.Formation) == "" {
		return l, ValidationError{Field: "formation", Message: "Formation and positions are required"}
	}
	if in.Positions == nil {
		return l, ValidationError{Field: "positions", Message: "Formation and positions are required"}
	}
	if len(*in.Positions) != SquadSize {
		return l, ValidationError{Field: "positions", Message: "Lineup must have exactly 11 players"}
	}
	l.Formation = *in.Formation
	l.Positions = *in.Positions

	l.Title = generator.LineupTitle(now)
	if in.Title != nil && *in.Title != "" {
		l.Title = *in.Title
	}

	l.UserName = "Anonymous"
	if in.UserName != nil && *in.UserName != "" {
		l.UserName = *in.UserName
	}
	if who.DisplayName != "" {
		l.UserName = who.DisplayName
	}
	l.UserID = who.ID
	l.UserEmail = who.Email
	return l, nil
}

// Changes normalizes the input into a partial-update map. A positions field,
// when present, must still hold exactly eleven entries.
func (in Input) Changes(now time.Time) (map[string]any, error) {
	changes := map[string]any{"updatedAt": now}

	if in.Formation != nil {
		changes["formation"] = *in.Formation
	}
	if in.Title != nil {
		changes["title"] = *in.Title
	}
	if in.UserName != nil {
		changes["userName"] = *in.UserName
	}
	if in.Positions != nil {
		if len(*in.Positions) != SquadSize {
			return nil, ValidationError{Field: "positions", Message: "Lineup must have exactly 11 players"}
		}
		changes["positions"] = *in.Positions
	}
	return changes, nil
}
