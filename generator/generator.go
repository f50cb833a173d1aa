package generator

import (
	"fmt"
	"math/rand"
	"time"
)

// LineupTitle generates the default title for a lineup saved without one.
func LineupTitle(now time.Time) string {
	return fmt.Sprintf("Lineup %s", now.Format("1/2/2006"))
}

// TeamName generates a light-hearted squad name for untitled teams.
func TeamName() string {
	adjectives := []string{
		"Flying", "Mighty", "Silky", "Rapid", "Golden",
		"Roaring", "Sturdy", "Electric", "Fearless", "Clinical",
		"Tireless", "Gritty", "Dazzling", "Relentless", "Composed",
	}
	nouns := []string{
		"Reds", "Rovers", "Wanderers", "Athletic", "United",
		"Strikers", "Wolves", "Lions", "Hornets", "Rangers",
		"Dynamos", "Corinthians", "Casuals", "Invincibles", "Olympians",
	}

	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	adj := adjectives[r.Intn(len(adjectives))]
	noun := nouns[r.Intn(len(nouns))]
	return fmt.Sprintf("%s %s", adj, noun)
}
