package player

import (
	"encoding/json"
	"errors"
	"reflect"
	"squadhub/ptr"
	"testing"
	"time"
)

func TestInputPlayer(t *testing.T) {
	t.Run("defaults applied on minimal input", func(t *testing.T) {
		in := Input{Name: ptr.Of("Mohamed Salah")}
		got, err := in.Player()
		if err != nil {
			t.Fatalf("Player() error = %v", err)
		}
		if got.Name != "Mohamed Salah" {
			t.Errorf("Name = %q, want %q", got.Name, "Mohamed Salah")
		}
		if got.Position != DefaultPosition {
			t.Errorf("Position = %q, want default %q", got.Position, DefaultPosition)
		}
		if got.SquadNumber != nil {
			t.Errorf("SquadNumber = %v, want nil", *got.SquadNumber)
		}
		if got.Stats != (Stats{}) {
			t.Errorf("Stats = %+v, want zero counters", got.Stats)
		}
		if got.Tags == nil || len(got.Tags) != 0 {
			t.Errorf("Tags = %v, want empty slice", got.Tags)
		}
	})

	t.Run("name is required", func(t *testing.T) {
		for _, in := range []Input{{}, {Name: ptr.Of("")}, {Name: ptr.Of("   ")}} {
			_, err := in.Player()
			var ve ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("Player() error = %v, want ValidationError", err)
			}
			if ve.Message != "Player name is required" {
				t.Errorf("message = %q, want %q", ve.Message, "Player name is required")
			}
		}
	})

	t.Run("numeric string accepted", func(t *testing.T) {
		in := Input{Name: ptr.Of("Alisson"), SquadNumber: Opt("1"), HeightCm: Opt(" 193 ")}
		got, err := in.Player()
		if err != nil {
			t.Fatalf("Player() error = %v", err)
		}
		if got.SquadNumber == nil || *got.SquadNumber != 1 {
			t.Errorf("SquadNumber = %v, want 1", got.SquadNumber)
		}
		if got.HeightCm == nil || *got.HeightCm != 193 {
			t.Errorf("HeightCm = %v, want 193", got.HeightCm)
		}
	})

	t.Run("non-numeric squad number rejected", func(t *testing.T) {
		in := Input{Name: ptr.Of("Alisson"), SquadNumber: Opt("one")}
		_, err := in.Player()
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Player() error = %v, want ValidationError", err)
		}
		if ve.Field != "squadNumber" {
			t.Errorf("field = %q, want squadNumber", ve.Field)
		}
	})

	t.Run("empty numeric field means no value", func(t *testing.T) {
		in := Input{Name: ptr.Of("Alisson"), SquadNumber: Opt(""), HeightCm: Opt("  ")}
		got, err := in.Player()
		if err != nil {
			t.Fatalf("Player() error = %v", err)
		}
		if got.SquadNumber != nil || got.HeightCm != nil {
			t.Errorf("SquadNumber = %v, HeightCm = %v, want both nil", got.SquadNumber, got.HeightCm)
		}
	})

	t.Run("date of birth parsed", func(t *testing.T) {
		in := Input{Name: ptr.Of("Alisson"), DateOfBirth: ptr.Of("1992-10-02")}
		got, err := in.Player()
		if err != nil {
			t.Fatalf("Player() error = %v", err)
		}
		want := time.Date(1992, 10, 2, 0, 0, 0, 0, time.UTC)
		if got.DateOfBirth == nil || !got.DateOfBirth.Equal(want) {
			t.Errorf("DateOfBirth = %v, want %v", got.DateOfBirth, want)
		}
	})

	t.Run("invalid date rejected", func(t *testing.T) {
		in := Input{Name: ptr.Of("Alisson"), DateOfBirth: ptr.Of("next tuesday")}
		_, err := in.Player()
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Player() error = %v, want ValidationError", err)
		}
		if ve.Field != "dateOfBirth" {
			t.Errorf("field = %q, want dateOfBirth", ve.Field)
		}
	})

	t.Run("stat counters carried over", func(t *testing.T) {
		in := Input{
			Name: ptr.Of("Mohamed Salah"),
			Stats: &StatsInput{
				Appearances: CountOf("38"),
				Goals:       CountOf("25"),
			},
		}
		got, err := in.Player()
		if err != nil {
			t.Fatalf("Player() error = %v", err)
		}
		want := Stats{Appearances: 38, Goals: 25}
		if got.Stats != want {
			t.Errorf("Stats = %+v, want %+v", got.Stats, want)
		}
	})
}

func TestInputChanges(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("only present fields included", func(t *testing.T) {
		in := Input{Position: ptr.Of("Goalkeeper")}
		got, err := in.Changes(now)
		if err != nil {
			t.Fatalf("Changes() error = %v", err)
		}
		want := map[string]any{"updatedAt": now, "position": "Goalkeeper"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Changes() = %v, want %v", got, want)
		}
	})

	t.Run("blank name rejected", func(t *testing.T) {
		in := Input{Name: ptr.Of("  ")}
		_, err := in.Changes(now)
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Changes() error = %v, want ValidationError", err)
		}
	})

	t.Run("non-numeric height rejected", func(t *testing.T) {
		in := Input{HeightCm: Opt("tall")}
		_, err := in.Changes(now)
		var ve ValidationError
		if !errors.As(err, &ve) {
			t.Fatalf("Changes() error = %v, want ValidationError", err)
		}
		if ve.Field != "heightCm" {
			t.Errorf("field = %q, want heightCm", ve.Field)
		}
	})

	t.Run("nested stats map", func(t *testing.T) {
		in := Input{Stats: &StatsInput{Goals: CountOf("3")}}
		got, err := in.Changes(now)
		if err != nil {
			t.Fatalf("Changes() error = %v", err)
		}
		stats, ok := got["stats"].(map[string]any)
		if !ok {
			t.Fatalf("stats = %v, want nested map", got["stats"])
		}
		if !reflect.DeepEqual(stats, map[string]any{"goals": int64(3)}) {
			t.Errorf("stats = %v, want goals only", stats)
		}
	})
}

func TestOptionalIntJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    *int64
		wantErr bool
	}{
		{"number", `{"squadNumber": 11}`, ptr.Of(int64(11)), false},
		{"integral float", `{"squadNumber": 7.0}`, ptr.Of(int64(7)), false},
		{"fractional number", `{"squadNumber": 7.5}`, nil, true},
		{"numeric string", `{"squadNumber": "11"}`, ptr.Of(int64(11)), false},
		{"padded string", `{"squadNumber": " 7 "}`, ptr.Of(int64(7)), false},
		{"null", `{"squadNumber": null}`, nil, false},
		{"empty string", `{"squadNumber": ""}`, nil, false},
		{"garbage", `{"squadNumber": "eleven"}`, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Input
			if err := json.Unmarshal([]byte(tt.body), &in); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			got, err := in.SquadNumber.value("squadNumber")
			if tt.wantErr {
				var ve ValidationError
				if !errors.As(err, &ve) {
					t.Fatalf("value() error = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("value() error = %v", err)
			}
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("value() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCountJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int64
	}{
		{"number", `{"stats": {"goals": 9}}`, 9},
		{"numeric string", `{"stats": {"goals": "9"}}`, 9},
		{"garbage defaults to zero", `{"stats": {"goals": "many"}}`, 0},
		{"null defaults to zero", `{"stats": {"goals": null}}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Input
			if err := json.Unmarshal([]byte(tt.body), &in); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			if got := counter(in.Stats.Goals); got != tt.want {
				t.Errorf("goals = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTagListJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want TagList
	}{
		{"array", `{"tags": ["wing", "captain"]}`, TagList{"wing", "captain"}},
		{"comma string", `{"tags": "wing, captain ,pace"}`, TagList{"wing", "captain", "pace"}},
		{"empty segments dropped", `{"tags": " , ,wing,"}`, TagList{"wing"}},
		{"empty string", `{"tags": ""}`, TagList{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in Input
			if err := json.Unmarshal([]byte(tt.body), &in); err != nil {
				t.Fatalf("Unmarshal error = %v", err)
			}
			if !reflect.DeepEqual(*in.Tags, tt.want) {
				t.Errorf("tags = %v, want %v", *in.Tags, tt.want)
			}
		})
	}
}

func TestSplitTags(t *testing.T) {
	got := SplitTags("a, b ,c")
	want := TagList{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("SplitTags() = %v, want %v", got, want)
	}
}
