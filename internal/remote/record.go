package remote

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/abhisek/miguel/internal/profile"
	"github.com/abhisek/miguel/internal/progress"
)

const dateLayout = "2006-01-02"

func progressRecord(p progress.DailyProgress) map[string]any {
	return map[string]any{
		"profile_id":         p.ProfileID,
		"date":               p.Date,
		"schema_version":     p.SchemaVersion,
		"math_count":         p.MathCount,
		"word_level":         p.WordLevel,
		"faith_done":         p.FaithDone,
		"mazes_solved":       p.MazesSolved,
		"puzzles_solved":     p.PuzzlesSolved,
		"word_search_solved": p.WordSearchSolved,
		"shadow_solved":      p.ShadowSolved,
		"arcade_unlocked":    p.ArcadeUnlocked,
	}
}

// progressFromRow decodes a remote row. Backends disagree on value types
// (JSON numbers, int64, tinyint booleans, DATE as time.Time), so every
// column is coerced.
func progressFromRow(row map[string]any) (*progress.DailyProgress, error) {
	p := &progress.DailyProgress{}
	var err error
	if p.ProfileID, err = asString(row["profile_id"]); err != nil {
		return nil, fmt.Errorf("profile_id: %w", err)
	}
	if p.Date, err = asString(row["date"]); err != nil {
		return nil, fmt.Errorf("date: %w", err)
	}

	ints := []struct {
		col string
		dst *int
	}{
		{"schema_version", &p.SchemaVersion},
		{"math_count", &p.MathCount},
		{"word_level", &p.WordLevel},
		{"mazes_solved", &p.MazesSolved},
		{"puzzles_solved", &p.PuzzlesSolved},
		{"word_search_solved", &p.WordSearchSolved},
		{"shadow_solved", &p.ShadowSolved},
	}
	for _, f := range ints {
		if *f.dst, err = asInt(row[f.col]); err != nil {
			return nil, fmt.Errorf("%s: %w", f.col, err)
		}
	}
	if p.FaithDone, err = asBool(row["faith_done"]); err != nil {
		return nil, fmt.Errorf("faith_done: %w", err)
	}
	if p.ArcadeUnlocked, err = asBool(row["arcade_unlocked"]); err != nil {
		return nil, fmt.Errorf("arcade_unlocked: %w", err)
	}
	p.Normalize()
	return p, nil
}

func profileRecord(ownerID string, c profile.ChildProfile) map[string]any {
	return map[string]any{
		"owner_id":   ownerID,
		"id":         c.ID,
		"name":       c.Name,
		"age":        c.Age,
		"gender":     c.Gender,
		"hair_color": c.HairColor,
		"hair_style": c.HairStyle,
		"eye_color":  c.EyeColor,
		"skin_tone":  c.SkinTone,
		"created_at": c.CreatedAt.UTC(),
	}
}

func asString(v any) (string, error) {
	switch x := v.(type) {
	case nil:
		return "", nil
	case string:
		if len(x) > len(dateLayout) {
			// DATE columns served as timestamps over REST.
			if t, err := time.Parse(time.RFC3339, x); err == nil {
				return t.Format(dateLayout), nil
			}
		}
		return x, nil
	case []byte:
		return string(x), nil
	case time.Time:
		return x.Format(dateLayout), nil
	default:
		return "", fmt.Errorf("unexpected type %T", v)
	}
}

func asInt(v any) (int, error) {
	switch x := v.(type) {
	case nil:
		return 0, nil
	case int:
		return x, nil
	case int16:
		return int(x), nil
	case int32:
		return int(x), nil
	case int64:
		return int(x), nil
	case float64:
		if x != math.Trunc(x) {
			return 0, fmt.Errorf("non-integer %v", x)
		}
		return int(x), nil
	case string:
		return strconv.Atoi(x)
	case []byte:
		return strconv.Atoi(string(x))
	default:
		return 0, fmt.Errorf("unexpected type %T", v)
	}
}

func asBool(v any) (bool, error) {
	switch x := v.(type) {
	case nil:
		return false, nil
	case bool:
		return x, nil
	case string, []byte:
		s, _ := asString(x)
		return strconv.ParseBool(s)
	default:
		n, err := asInt(v)
		if err != nil {
			return false, err
		}
		return n != 0, nil
	}
}
