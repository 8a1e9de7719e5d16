package jelcol

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Raw is the set of primitive types that can be stored directly in a
// database column. It matches the types that a database/sql driver.Value is
// permitted to hold. The raw type declared by a Converter must be one of
// these.
type Raw interface {
	int64 | float64 | bool | string | []byte | time.Time
}

// Row is the part of sql.Row and sql.Rows used by generated ScanRow
// methods: positional assignment of the current row's columns into scan
// targets.
type Row interface {
	Scan(dest ...interface{}) error
}

// RawValue converts a raw value to a driver.Value. Every type allowed by
// Raw is directly storable by drivers, so no conversion actually occurs;
// this exists so generated code and Field have a single hand-off point for
// the write direction.
func RawValue[R Raw](r R) driver.Value {
	return driver.Value(r)
}

// CoerceRaw converts a value as provided by a database driver to the raw
// type R. Drivers are permitted to present integer columns using any of the
// Go integer widths, and text columns as either string or []byte, so more
// input types are accepted than strictly match R. A value that cannot be
// coerced produces an error matching ErrDecodingFailure.
func CoerceRaw[R Raw](value interface{}) (R, error) {
	var raw R

	switch p := interface{}(&raw).(type) {
	case *int64:
		switch v := value.(type) {
		case int64:
			*p = v
		case int:
			*p = int64(v)
		case int8:
			*p = int64(v)
		case int16:
			*p = int64(v)
		case int32:
			*p = int64(v)
		default:
			return raw, NewError(fmt.Sprintf("not an integer value: %v", value), ErrDecodingFailure)
		}
	case *float64:
		switch v := value.(type) {
		case float64:
			*p = v
		case float32:
			*p = float64(v)
		default:
			return raw, NewError(fmt.Sprintf("not a float value: %v", value), ErrDecodingFailure)
		}
	case *bool:
		switch v := value.(type) {
		case bool:
			*p = v
		case int64:
			// some engines store bools as 0/1 integer columns
			if v != 0 && v != 1 {
				return raw, NewError(fmt.Sprintf("not a bool value: %v", value), ErrDecodingFailure)
			}
			*p = v == 1
		default:
			return raw, NewError(fmt.Sprintf("not a bool value: %v", value), ErrDecodingFailure)
		}
	case *string:
		switch v := value.(type) {
		case string:
			*p = v
		case []byte:
			*p = string(v)
		default:
			return raw, NewError(fmt.Sprintf("not a string value: %v", value), ErrDecodingFailure)
		}
	case *[]byte:
		switch v := value.(type) {
		case []byte:
			// the driver is free to reuse the buffer after Scan returns
			b := make([]byte, len(v))
			copy(b, v)
			*p = b
		case string:
			*p = []byte(v)
		default:
			return raw, NewError(fmt.Sprintf("not a bytes value: %v", value), ErrDecodingFailure)
		}
	case *time.Time:
		v, ok := value.(time.Time)
		if !ok {
			return raw, NewError(fmt.Sprintf("not a time value: %v", value), ErrDecodingFailure)
		}
		*p = v
	}

	return raw, nil
}
