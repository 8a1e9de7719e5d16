// Package jelcol lets custom Go types be used as database columns with
// database/sql.
//
// A custom type is tied to one of the primitive column types (the ones a
// driver.Value may hold) by a Converter, which holds a total function for
// the write direction and a fallible one for the read direction:
//
//	type Color int64
//
//	const (
//		Red   Color = 1
//		Green Color = 2
//		Blue  Color = 3
//	)
//
//	var ColorCol = jelcol.Converter[Color, int64]{
//		ToRaw: func(c Color) int64 { return int64(c) },
//		FromRaw: func(v int64) (Color, error) {
//			switch v {
//			case 1, 2, 3:
//				return Color(v), nil
//			default:
//				return Red, fmt.Errorf("unknown value %d for Color", v)
//			}
//		},
//	}
//
// Values of the type can then be bound into queries and scanned out of rows
// by wrapping them with Field:
//
//	db.Exec(`UPDATE users SET hair_color=? WHERE id=?`, ColorCol.Field(&c), id)
//	row.Scan(&name, ColorCol.Field(&c))
//
// Alternatively, the jelcolgen command generates Value and Scan methods
// directly onto a type that implements the conversion contract as methods,
// as well as positional ScanRow methods for whole structs. See
// cmd/jelcolgen.
package jelcol

import (
	"database/sql/driver"
)

// Converter holds functions to convert a value to and from its database
// representation. The type param N is the native type and R is the raw type
// actually stored in the column.
//
// ToRaw must be total; the raw representation is assumed to always exist.
// FromRaw returns an error when a raw value read from the database cannot
// be interpreted as an N. It must return the error rather than panic; a
// malformed row is a decoding failure, not a programming error.
//
// Whether R can losslessly represent every N is up to the functions
// provided; jelcol does not check it.
type Converter[N any, R Raw] struct {
	ToRaw   func(N) R
	FromRaw func(R) (N, error)
}

// Field binds the Converter to a value so it can be handed directly to
// query methods. The returned Field reads and writes *v using the
// Converter's functions. It implements both driver.Valuer and sql.Scanner,
// so it can be passed as a bind parameter in Exec-style calls and as a
// target in Row.Scan calls.
func (c Converter[N, R]) Field(v *N) Field[N, R] {
	return Field[N, R]{conv: c, v: v}
}

// Field is a single value bound to its Converter. Create one with
// Converter.Field.
type Field[N any, R Raw] struct {
	conv Converter[N, R]
	v    *N
}

// Value implements driver.Valuer by converting the bound value to its raw
// representation.
func (f Field[N, R]) Value() (driver.Value, error) {
	if f.v == nil {
		return nil, NewError("Field is not bound to a value", ErrBadArgument)
	}
	if f.conv.ToRaw == nil {
		return nil, NewError("Converter has no ToRaw function set", ErrBadArgument)
	}

	return RawValue(f.conv.ToRaw(*f.v)), nil
}

// Scan implements sql.Scanner. The value decoded by the driver is first
// coerced to the raw type R, then handed to the Converter's FromRaw. Any
// failure on this path matches ErrDecodingFailure when checked with
// errors.Is.
func (f Field[N, R]) Scan(value interface{}) error {
	if f.v == nil {
		return NewError("Field is not bound to a value", ErrBadArgument)
	}
	if f.conv.FromRaw == nil {
		return NewError("Converter has no FromRaw function set", ErrBadArgument)
	}

	raw, err := CoerceRaw[R](value)
	if err != nil {
		return err
	}

	dec, err := f.conv.FromRaw(raw)
	if err != nil {
		return NewError("", err, ErrDecodingFailure)
	}

	*f.v = dec
	return nil
}
