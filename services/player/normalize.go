package player

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Input carries the raw request fields for a player, before any typing or
// defaulting. Both the form surface and the JSON API decode into it, so the
// coercion rules below apply uniformly to every create and update path.
type Input struct {
	Name        *string      `json:"name"`
	Position    *string      `json:"position"`
	Nationality *string      `json:"nationality"`
	SquadNumber *OptionalInt `json:"squadNumber"`
	HeightCm    *OptionalInt `json:"heightCm"`
	DateOfBirth *string      `json:"dateOfBirth"`
	Stats       *StatsInput  `json:"stats"`
	Tags        *TagList     `json:"tags"`
}

// StatsInput holds the four stat counters. Each one is optional so partial
// updates can tell "absent" apart from zero.
type StatsInput struct {
	Appearances *Count `json:"appearances"`
	Goals       *Count `json:"goals"`
	Assists     *Count `json:"assists"`
	Minutes     *Count `json:"minutes"`
}

// OptionalInt is an optional integer field that accepts a JSON number or a
// numeric string. Empty input means "no value"; non-numeric input is a
// validation error when the value is read.
type OptionalInt struct {
	raw string
}

// Opt wraps a raw form value as an optional integer.
func Opt(raw string) *OptionalInt {
	return &OptionalInt{raw: strings.TrimSpace(raw)}
}

func (o *OptionalInt) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	switch t := v.(type) {
	case nil:
		o.raw = ""
	case float64:
		// Keep the fractional part so a value like 7.5 fails the integer
		// parse instead of being truncated.
		o.raw = strconv.FormatFloat(t, 'f', -1, 64)
	case string:
		o.raw = strings.TrimSpace(t)
	default:
		o.raw = fmt.Sprint(t)
	}
	return nil
}

func (o *OptionalInt) value(field string) (*int64, error) {
	if o == nil || o.raw == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(o.raw, 10, 64)
	if err != nil {
		return nil, ValidationError{Field: field, Message: "must be an integer"}
	}
	return &n, nil
}

// Count is a stat counter. Malformed or absent input defaults to zero rather
// than erroring, to keep roster entry permissive.
type Count int64

func (c *Count) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		*c = 0
		return nil
	}
	switch t := v.(type) {
	case float64:
		*c = Count(t)
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(t), 10, 64)
		if err != nil {
			*c = 0
		} else {
			*c = Count(n)
		}
	default:
		*c = 0
	}
	return nil
}

// CountOf parses a raw form value into a counter, defaulting to zero.
func CountOf(raw string) *Count {
	var c Count
	n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err == nil {
		c = Count(n)
	}
	return &c
}

// TagList accepts either a JSON array of strings or a single comma-separated
// string. Once normalized it is always a slice.
type TagList []string

func (t *TagList) UnmarshalJSON(b []byte) error {
	var arr []string
	if err := json.Unmarshal(b, &arr); err == nil {
		*t = arr
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*t = SplitTags(s)
		return nil
	}
	return fmt.Errorf("tags must be an array or a comma-separated string")
}

// SplitTags splits a comma-separated tag string, trimming each segment and
// dropping empty ones. Order is preserved.
func SplitTags(s string) TagList {
	tags := TagList{}
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			tags = append(tags, part)
		}
	}
	return tags
}

func parseDate(raw, field string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if d, err := time.Parse("2006-01-02", raw); err == nil {
		return &d, nil
	}
	if d, err := time.Parse(time.RFC3339, raw); err == nil {
		return &d, nil
	}
	return nil, ValidationError{Field: field, Message: "must be a valid date (YYYY-MM-DD)"}
}

// Player normalizes the input into a fully-defaulted record, applying the
// create-path rules: required name, position defaulting, null optional
// numerics, zeroed stat counters.
func (in Input) Player() (Player, error) {
	p := Player{Tags: []string{}}

	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return p, ValidationError{Field: "name", Message: "Player name is required"}
	}
	p.Name = *in.Name

	p.Position = DefaultPosition
	if in.Position != nil && *in.Position != "" {
		p.Position = *in.Position
	}
	if in.Nationality != nil {
		p.Nationality = *in.Nationality
	}

	squad, err := in.SquadNumber.value("squadNumber")
	if err != nil {
		return p, err
	}
	p.SquadNumber = squad

	height, err := in.HeightCm.value("heightCm")
	if err != nil {
		return p, err
	}
	p.HeightCm = height

	if in.DateOfBirth != nil {
		dob, err := parseDate(*in.DateOfBirth, "dateOfBirth")
		if err != nil {
			return p, err
		}
		p.DateOfBirth = dob
	}

	if in.Stats != nil {
		p.Stats = Stats{
			Appearances: counter(in.Stats.Appearances),
			Goals:       counter(in.Stats.Goals),
			Assists:     counter(in.Stats.Assists),
			Minutes:     counter(in.Stats.Minutes),
		}
	}

	if in.Tags != nil {
		p.Tags = []string(*in.Tags)
	}
	return p, nil
}

// Changes normalizes the input into a partial-update map: only fields present
// in the input appear, and updatedAt is always stamped. Empty optional
// numerics are left untouched rather than cleared.
func (in Input) Changes(now time.Time) (map[string]any, error) {
	changes := map[string]any{"updatedAt": now}

	if in.Name != nil {
		if strings.TrimSpace(*in.Name) == "" {
			return nil, ValidationError{Field: "name", Message: "Player name is required"}
		}
		changes["name"] = *in.Name
	}
	if in.Position != nil {
		changes["position"] = *in.Position
	}
	if in.Nationality != nil {
		changes["nationality"] = *in.Nationality
	}
	if in.SquadNumber != nil {
		n, err := in.SquadNumber.value("squadNumber")
		if err != nil {
			return nil, err
		}
		if n != nil {
			changes["squadNumber"] = *n
		}
	}
	if in.HeightCm != nil {
		n, err := in.HeightCm.value("heightCm")
		if err != nil {
			return nil, err
		}
		if n != nil {
			changes["heightCm"] = *n
		}
	}
	if in.DateOfBirth != nil {
		dob, err := parseDate(*in.DateOfBirth, "dateOfBirth")
		if err != nil {
			return nil, err
		}
		if dob != nil {
			changes["dateOfBirth"] = *dob
		}
	}
	if in.Tags != nil {
		changes["tags"] = []string(*in.Tags)
	}
	if in.Stats != nil {
		stats := map[string]any{}
		if in.Stats.Appearances != nil {
			stats["appearances"] = int64(*in.Stats.Appearances)
		}
		if in.Stats.Goals != nil {
			stats["goals"] = int64(*in.Stats.Goals)
		}
		if in.Stats.Assists != nil {
			stats["assists"] = int64(*in.Stats.Assists)
		}
		if in.Stats.Minutes != nil {
			stats["minutes"] = int64(*in.Stats.Minutes)
		}
		if len(stats) > 0 {
			changes["stats"] = stats
		}
	}
	return changes, nil
}

func counter(c *Count) int64 {
	if c == nil {
		return 0
	}
	return int64(*c)
}
