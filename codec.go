package servant

import (
	"strconv"
	"time"
)

// Codec converts a value of type T to and from its query-string text form.
//
// Decode reports failure through its second return value; there is no error
// payload, and a failed decode is treated by the optional combinators as if
// the parameter were absent. Encode must be total: it never fails and must
// produce text for every value of T.
type Codec[T any] interface {
	Decode(text string) (T, bool)
	Encode(v T) string
}

type codecFunc[T any] struct {
	decode func(string) (T, bool)
	encode func(T) string
}

func (c codecFunc[T]) Decode(text string) (T, bool) { return c.decode(text) }
func (c codecFunc[T]) Encode(v T) string            { return c.encode(v) }

// NewCodec builds a Codec from a decode and an encode function.
func NewCodec[T any](decode func(string) (T, bool), encode func(T) string) Codec[T] {
	return codecFunc[T]{decode: decode, encode: encode}
}

// String is the identity codec: every text decodes to itself.
func String() Codec[string] {
	return NewCodec(
		func(text string) (string, bool) { return text, true },
		func(v string) string { return v },
	)
}

// Int decodes and encodes base-10 int values.
func Int() Codec[int] {
	return NewCodec(
		func(text string) (int, bool) {
			v, err := strconv.Atoi(text)
			return v, err == nil
		},
		strconv.Itoa,
	)
}

// Int64 decodes and encodes base-10 int64 values.
func Int64() Codec[int64] {
	return NewCodec(
		func(text string) (int64, bool) {
			v, err := strconv.ParseInt(text, 10, 64)
			return v, err == nil
		},
		func(v int64) string { return strconv.FormatInt(v, 10) },
	)
}

// Uint64 decodes and encodes base-10 uint64 values.
func Uint64() Codec[uint64] {
	return NewCodec(
		func(text string) (uint64, bool) {
			v, err := strconv.ParseUint(text, 10, 64)
			return v, err == nil
		},
		func(v uint64) string { return strconv.FormatUint(v, 10) },
	)
}

// Float64 decodes and encodes float64 values.
func Float64() Codec[float64] {
	return NewCodec(
		func(text string) (float64, bool) {
			v, err := strconv.ParseFloat(text, 64)
			return v, err == nil
		},
		func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) },
	)
}

// Bool decodes the forms accepted by strconv.ParseBool ("true", "1", "t",
// "false", "0", "f", ...) and encodes as "true"/"false".
//
// Note that a boolean parameter decoded through a Param combinator is a
// different thing from a Flag combinator: Flag has its own fixed truthy set
// and treats bare presence as true.
func Bool() Codec[bool] {
	return NewCodec(
		func(text string) (bool, bool) {
			v, err := strconv.ParseBool(text)
			return v, err == nil
		},
		strconv.FormatBool,
	)
}

// Time decodes and encodes time.Time values using the given layout.
func Time(layout string) Codec[time.Time] {
	return NewCodec(
		func(text string) (time.Time, bool) {
			v, err := time.Parse(layout, text)
			return v, err == nil
		},
		func(v time.Time) string { return v.Format(layout) },
	)
}
