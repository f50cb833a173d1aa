package seeder

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"squadhub/clients/gcp"
	"squadhub/ptr"
	"squadhub/services/player"
	"squadhub/set"
	"squadhub/utils"
	"time"

	"cloud.google.com/go/firestore"
)

const (
	collection = "players"
	objectName = "players.json"
)

// Run loads sample players into the store. When a bucket is configured the
// roster comes from a players.json object there; otherwise the built-in
// sample roster is used. Players whose name already exists are skipped.
func Run(ctx context.Context, db *firestore.Client, bucket string) error {
	players := SamplePlayers()
	if bucket != "" {
		data, err := gcp.ReadObject(bucket, objectName)
		if err != nil {
			slog.With("error", err.Error()).Warn("failed to download seed roster, using built-in samples")
		} else {
			var remote []player.Player
			if err := json.Unmarshal(data, &remote); err != nil {
				return fmt.Errorf("failed to parse %s: %w", objectName, err)
			}
			players = remote
		}
	}

	docs, err := db.Collection(collection).Documents(ctx).GetAll()
	if err != nil {
		return fmt.Errorf("failed to fetch existing players: %w", err)
	}
	existing, err := utils.GetAllToStructs[player.Player](docs)
	if err != nil {
		return err
	}
	taken := make([]string, 0, len(existing))
	for _, p := range existing {
		taken = append(taken, p.Name)
	}
	names := set.FromSlice(taken)

	now := time.Now()
	inserted := make([]string, 0, len(players))
	for _, p := range players {
		if names.Contains(p.Name) {
			continue
		}
		ref := db.Collection(collection).NewDoc()
		p.ID = ref.ID
		p.CreatedAt = now
		p.UpdatedAt = now
		if p.Tags == nil {
			p.Tags = []string{}
		}
		if _, err := ref.Set(ctx, p); err != nil {
			return fmt.Errorf("failed to insert %s: %w", p.Name, err)
		}
		inserted = append(inserted, p.Name)
	}

	slog.Info("seeding complete", "inserted", len(inserted), "skipped", len(players)-len(inserted))
	utils.PrettyPrint(inserted)
	return nil
}

// SamplePlayers is the built-in roster used when no seed bucket is set.
func SamplePlayers() []player.Player {
	return []player.Player{
		{
			Name:        "Alisson Becker",
			Position:    "Goalkeeper",
			SquadNumber: ptr.Of(int64(1)),
			Nationality: "Brazil",
			HeightCm:    ptr.Of(int64(193)),
			DateOfBirth: ptr.Of(time.Date(1992, 10, 2, 0, 0, 0, 0, time.UTC)),
			Stats:       player.Stats{Appearances: 180, Goals: 0, Assists: 2, Minutes: 16200},
			Tags:        []string{"World Class", "Golden Glove"},
		},
		{
			Name:        "Trent Alexander-Arnold",
			Position:    "Defender",
			SquadNumber: ptr.Of(int64(66)),
			Nationality: "England",
			HeightCm:    ptr.Of(int64(180)),
			DateOfBirth: ptr.Of(time.Date(1998, 10, 7, 0, 0, 0, 0, time.UTC)),
			Stats:       player.Stats{Appearances: 250, Goals: 15, Assists: 70, Minutes: 21000},
			Tags:        []string{"Local Lad", "Playmaker", "Young Star"},
		},
		{
			Name:        "Virgil van Dijk",
			Position:    "Defender",
			SquadNumber: ptr.Of(int64(4)),
			Nationality: "Netherlands",
			HeightCm:    ptr.Of(int64(195)),
			DateOfBirth: ptr.Of(time.Date(1991, 7, 8, 0, 0, 0, 0, time.UTC)),
			Stats:       player.Stats{Appearances: 200, Goals: 18, Assists: 8, Minutes: 17800},
			Tags:        []string{"Captain", "World Class", "Rock"},
		},
		{
			Name:        "Andy Robertson",
			Position:    "Defender",
			SquadNumber: ptr.Of(int64(26)),
			Nationality: "Scotland",
			HeightCm:    ptr.Of(int64(178)),
			DateOfBirth: ptr.Of(time.Date(1994, 3, 11, 0, 0, 0, 0, time.UTC)),
			Stats:       player.Stats{Appearances: 220, Goals: 7, Assists: 50, Minutes: 19500},
			Tags:        []string{"Captain Material", "Consistent"},
		},
		{
			Name:        "Mohamed Salah",
			Position:    "Forward",
			SquadNumber: ptr.Of(int64(11)),
			Nationality: "Egypt",
			HeightCm:    ptr.Of(int64(175)),
			DateOfBirth: ptr.Of(time.Date(1992, 6, 15, 0, 0, 0, 0, time.UTC)),
			Stats:       player.Stats{Appearances: 270, Goals: 160, Assists: 70, Minutes: 23000},
			Tags:        []string{"Egyptian King", "World Class", "Golden Boot"},
		},
		{
			Name:        "Dominik Szoboszlai",
			Position:    "Midfielder",
			SquadNumber: ptr.Of(int64(8)),
			Nationality: "Hungary",
			HeightCm:    ptr.Of(int64(186)),
			DateOfBirth: ptr.Of(time.Date(2000, 10, 25, 0, 0, 0, 0, time.UTC)),
			Stats:       player.Stats{Appearances: 60, Goals: 8, Assists: 10, Minutes: 4800},
			Tags:        []string{"Engine", "Set Piece"},
		},
		{
			Name:        "Cody Gakpo",
			Position:    "Forward",
			SquadNumber: ptr.Of(int64(18)),
			Nationality: "Netherlands",
			HeightCm:    ptr.Of(int64(193)),
			DateOfBirth: ptr.Of(time.Date(1999, 5, 7, 0, 0, 0, 0, time.UTC)),
			Stats:       player.Stats{Appearances: 90, Goals: 25, Assists: 12, Minutes: 6500},
			Tags:        []string{"Versatile"},
		},
		{
			Name:        "Ibrahima Konate",
			Position:    "Defender",
			SquadNumber: ptr.Of(int64(5)),
			Nationality: "France",
			HeightCm:    ptr.Of(int64(194)),
			DateOfBirth: ptr.Of(time.Date(1999, 5, 25, 0, 0, 0, 0, time.UTC)),
			Stats:       player.Stats{Appearances: 95, Goals: 3, Assists: 1, Minutes: 8200},
			Tags:        []string{"Rock", "Young Star"},
		},
	}
}
