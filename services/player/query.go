package player

import (
	"sort"
	"strings"
)

// Query holds the optional list filters. The position filter is exact and is
// pushed down to the store; free text is matched in memory since the store has
// no substring operator.
type Query struct {
	Search   string
	Position string
}

func (q Query) IsEmpty() bool {
	return q.Search == "" && q.Position == ""
}

// Matches reports whether the free-text term case-insensitively matches the
// player's name, position, nationality, or any tag entry.
func (q Query) Matches(p Player) bool {
	if q.Search == "" {
		return true
	}
	term := strings.ToLower(q.Search)
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Position), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Nationality), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// SortBySquadNumber orders players ascending by squad number. Players without
// one sort first, matching the store's null-first ascending order.
func SortBySquadNumber(players []Player) {
	sort.SliceStable(players, func(i, j int) bool {
		a, b := players[i].SquadNumber, players[j].SquadNumber
		if a == nil {
			return b != nil
		}
		if b == nil {
			return false
		}
		return *a < *b
	})
}
