package player

import (
	"squadhub/ptr"
	"testing"
)

func TestQueryMatches(t *testing.T) {
	salah := Player{
		Name:        "Mohamed Salah",
		Position:    "Forward",
		Nationality: "Egypt",
		Tags:        []string{"captain", "left-footed"},
	}

	tests := []struct {
		name   string
		search string
		want   bool
	}{
		{"empty search matches", "", true},
		{"name substring", "salah", true},
		{"name mixed case", "SALAH", true},
		{"position", "forward", true},
		{"nationality", "egypt", true},
		{"tag", "captain", true},
		{"tag substring", "foot", true},
		{"no match", "defender", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Query{Search: tt.search}
			if got := q.Matches(salah); got != tt.want {
				t.Errorf("Matches(%q) = %v, want %v", tt.search, got, tt.want)
			}
		})
	}
}

func TestQueryIsEmpty(t *testing.T) {
	if !(Query{}).IsEmpty() {
		t.Error("empty query should report IsEmpty")
	}
	if (Query{Search: "x"}).IsEmpty() {
		t.Error("search query should not report IsEmpty")
	}
	if (Query{Position: "Forward"}).IsEmpty() {
		t.Error("position query should not report IsEmpty")
	}
}

func TestSortBySquadNumber(t *testing.T) {
	players := []Player{
		{Name: "Salah", SquadNumber: ptr.Of(int64(11))},
		{Name: "Trialist"},
		{Name: "Alisson", SquadNumber: ptr.Of(int64(1))},
		{Name: "Academy"},
	}
	SortBySquadNumber(players)

	wantOrder := []string{"Trialist", "Academy", "Alisson", "Salah"}
	for i, want := range wantOrder {
		if players[i].Name != want {
			t.Errorf("players[%d] = %q, want %q", i, players[i].Name, want)
		}
	}
}
