// Package paint holds fixture types for generator tests.
package paint

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/dekarrin/jelcol"
)

type Color int64

const (
	Red   Color = 1
	Green Color = 2
	Blue  Color = 3
)

func (c Color) ToColumn() int64 {
	return int64(c)
}

func ColorFromColumn(v int64) (Color, error) {
	switch v {
	case 1, 2, 3:
		return Color(v), nil
	default:
		return Red, fmt.Errorf("unknown value %d for Color", v)
	}
}

// Value and Scan are what jelcolgen emits for Color, written out by hand so
// the queryable fixtures below can depend on Color already being
// registered.

func (c Color) Value() (driver.Value, error) {
	return jelcol.RawValue(c.ToColumn()), nil
}

func (c *Color) Scan(value interface{}) error {
	raw, err := jelcol.CoerceRaw[int64](value)
	if err != nil {
		return err
	}

	dec, err := ColorFromColumn(raw)
	if err != nil {
		return err
	}

	*c = dec
	return nil
}

// AppliedAt declares time.Time as its raw type.
type AppliedAt time.Time

func (a AppliedAt) ToColumn() time.Time {
	return time.Time(a)
}

func AppliedAtFromColumn(v time.Time) (AppliedAt, error) {
	return AppliedAt(v), nil
}

// Mood has no MoodFromColumn counterpart, so it does not satisfy the
// conversion contract.
type Mood int64

func (m Mood) ToColumn() int64 {
	return int64(m)
}

// Tag declares a raw type outside the allowed set.
type Tag int64

func (t Tag) ToColumn() int32 {
	return int32(t)
}

func TagFromColumn(v int32) (Tag, error) {
	return Tag(v), nil
}

// Swatch is a queryable fixture; every field is a column type.
type Swatch struct {
	Name  string
	Color Color
}

// Bucket has a field that is not a column type.
type Bucket struct {
	Name  string
	Moods []Mood
}

// Empty has nothing to scan.
type Empty struct{}
