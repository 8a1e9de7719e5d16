// Package colconv contains ready-made Converters for changing between
// common native types and their database column representations.
//
// Every Converter here follows the same read-path rule as hand-written
// ones: a raw value that cannot be interpreted produces an error matching
// jelcol.ErrDecodingFailure, never a panic.
package colconv

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/dekarrin/jelcol"
	"github.com/dekarrin/rezi/v2"
	"github.com/google/uuid"
)

// Timestamp converts times into 64-bit unix timestamps. Sub-second
// precision is not preserved.
var Timestamp = jelcol.Converter[time.Time, int64]{
	ToRaw: time.Time.Unix,
	FromRaw: func(i int64) (time.Time, error) {
		return time.Unix(i, 0), nil
	},
}

// Email converts email addresses to strings. When reading a string from the
// DB, an empty string decodes to a nil *mail.Address with no error.
var Email = jelcol.Converter[*mail.Address, string]{
	ToRaw: func(email *mail.Address) string {
		if email == nil {
			return ""
		}
		return email.Address
	},
	FromRaw: func(s string) (*mail.Address, error) {
		if s == "" {
			return nil, nil
		}

		email, err := mail.ParseAddress(s)
		if err != nil {
			return nil, jelcol.NewError("", err, jelcol.ErrDecodingFailure)
		}

		return email, nil
	},
}

// UUID converts UUIDs to their canonical 36-character string form.
var UUID = jelcol.Converter[uuid.UUID, string]{
	ToRaw: uuid.UUID.String,
	FromRaw: func(s string) (uuid.UUID, error) {
		id, err := uuid.Parse(s)
		if err != nil {
			return uuid.UUID{}, jelcol.NewError("", err, jelcol.ErrDecodingFailure)
		}

		return id, nil
	},
}

// Bool converts bools to 0/1 integers, for engines that have no native
// boolean column type.
var Bool = jelcol.Converter[bool, int64]{
	ToRaw: func(b bool) int64 {
		if b {
			return 1
		}
		return 0
	},
	FromRaw: func(i int64) (bool, error) {
		switch i {
		case 0:
			return false, nil
		case 1:
			return true, nil
		default:
			return false, jelcol.NewError(fmt.Sprintf("not a bool value: %d", i), jelcol.ErrDecodingFailure)
		}
	},
}

// Rezi returns a Converter that stores values of T in a binary column as
// rezi-encoded bytes. T must be a type that rezi can encode; handing an
// unencodable T to the write direction is a programming error and panics,
// same as calling rezi.MustEnc directly.
func Rezi[T any]() jelcol.Converter[T, []byte] {
	return jelcol.Converter[T, []byte]{
		ToRaw: func(v T) []byte {
			return rezi.MustEnc(v)
		},
		FromRaw: func(data []byte) (T, error) {
			var v T
			_, err := rezi.Dec(data, &v)
			if err != nil {
				return v, jelcol.NewError("", err, jelcol.ErrDecodingFailure)
			}

			return v, nil
		},
	}
}
