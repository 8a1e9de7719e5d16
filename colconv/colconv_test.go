package colconv_test

import (
	"net/mail"
	"testing"
	"time"

	"github.com/dekarrin/jelcol"
	"github.com/dekarrin/jelcol/colconv"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func Test_Timestamp_roundTrip(t *testing.T) {
	testCases := []struct {
		name  string
		input time.Time
	}{
		{
			name:  "normal",
			input: time.Date(2009, 4, 13, 16, 13, 1, 0, time.UTC),
		},
		{
			name:  "before the epoch",
			input: time.Date(1969, 12, 25, 4, 13, 0, 0, time.UTC),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			raw := colconv.Timestamp.ToRaw(tc.input)
			actual, err := colconv.Timestamp.FromRaw(raw)

			if !assert.NoError(err) {
				return
			}
			assert.True(tc.input.Equal(actual))
		})
	}
}

func Test_Email_FromRaw(t *testing.T) {
	testCases := []struct {
		name             string
		value            string
		expect           *mail.Address
		expectErrToMatch []error
	}{
		{
			name:   "an email",
			value:  "bob@example.com",
			expect: &mail.Address{Address: "bob@example.com"},
		},
		{
			name:   "empty",
			value:  "",
			expect: nil,
		},
		{
			name:             "invalid email",
			value:            "88888888",
			expectErrToMatch: []error{jelcol.ErrDecodingFailure},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := colconv.Email.FromRaw(tc.value)

			if tc.expectErrToMatch == nil {
				if !assert.NoError(err) {
					return
				}
				assert.Equal(tc.expect, actual)
			} else {
				if !assert.Error(err) {
					return
				}

				for _, expectMatch := range tc.expectErrToMatch {
					assert.ErrorIs(err, expectMatch)
				}
			}
		})
	}
}

func Test_Email_ToRaw(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("jude@iwantobelieve.com", colconv.Email.ToRaw(&mail.Address{Address: "jude@iwantobelieve.com"}))
	assert.Equal("", colconv.Email.ToRaw(nil))
}

func Test_UUID_roundTrip(t *testing.T) {
	assert := assert.New(t)

	id := uuid.MustParse("f1b4c02f-17cb-4b51-a4e5-0a37d3d0b00c")

	raw := colconv.UUID.ToRaw(id)
	assert.Equal("f1b4c02f-17cb-4b51-a4e5-0a37d3d0b00c", raw)

	actual, err := colconv.UUID.FromRaw(raw)
	if !assert.NoError(err) {
		return
	}
	assert.Equal(id, actual)
}

func Test_UUID_FromRaw_invalid(t *testing.T) {
	assert := assert.New(t)

	_, err := colconv.UUID.FromRaw("not-a-uuid")

	assert.ErrorIs(err, jelcol.ErrDecodingFailure)
}

func Test_Bool(t *testing.T) {
	testCases := []struct {
		name             string
		value            int64
		expect           bool
		expectErrToMatch []error
	}{
		{
			name:   "zero is false",
			value:  0,
			expect: false,
		},
		{
			name:   "one is true",
			value:  1,
			expect: true,
		},
		{
			name:             "other numbers are errors",
			value:            2,
			expectErrToMatch: []error{jelcol.ErrDecodingFailure},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual, err := colconv.Bool.FromRaw(tc.value)

			if tc.expectErrToMatch == nil {
				if !assert.NoError(err) {
					return
				}
				assert.Equal(tc.expect, actual)
				assert.Equal(tc.value, colconv.Bool.ToRaw(actual))
			} else {
				if !assert.Error(err) {
					return
				}

				for _, expectMatch := range tc.expectErrToMatch {
					assert.ErrorIs(err, expectMatch)
				}
			}
		})
	}
}

func Test_Rezi_roundTrip(t *testing.T) {
	assert := assert.New(t)

	conv := colconv.Rezi[[]string]()

	input := []string{"vriska", "terezi", "nepeta"}

	raw := conv.ToRaw(input)
	actual, err := conv.FromRaw(raw)

	if !assert.NoError(err) {
		return
	}
	assert.Equal(input, actual)
}

func Test_Rezi_FromRaw_garbage(t *testing.T) {
	assert := assert.New(t)

	conv := colconv.Rezi[map[string]int]()

	_, err := conv.FromRaw([]byte{0xde, 0xad, 0xbe, 0xef})

	assert.ErrorIs(err, jelcol.ErrDecodingFailure)
}
