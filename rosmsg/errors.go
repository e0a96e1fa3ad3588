package rosmsg

import (
	"fmt"
)

// InvalidConstantError indicates a constant field with no value text.
type InvalidConstantError struct {
	name string
}

func (e InvalidConstantError) Error() string {
	return "constant field " + e.name + " has no value"
}

func (e InvalidConstantError) Is(err error) bool {
	_, ok := err.(InvalidConstantError)
	return ok
}

// EnumRangeError indicates an enum value that is not an integer in [0, 255].
type EnumRangeError struct {
	enum  string
	name  string
	value float64
}

func (e EnumRangeError) Error() string {
	return fmt.Sprintf("enum %s value %s=%v is not an integer in [0, 255]", e.enum, e.name, e.value)
}

func (e EnumRangeError) Is(err error) bool {
	_, ok := err.(EnumRangeError)
	return ok
}

// EnumCollisionError indicates an enum value name reused across the enums
// referenced by a single schema.
type EnumCollisionError struct {
	name string
}

func (e EnumCollisionError) Error() string {
	return "enum value name reused across enums: " + e.name
}

func (e EnumCollisionError) Is(err error) bool {
	_, ok := err.(EnumCollisionError)
	return ok
}

// ByteArrayError indicates a bytes field that was declared as an array.
// Bytes fields become uint8 arrays themselves, so arrays of them have no msg
// representation.
type ByteArrayError struct {
	field string
}

func (e ByteArrayError) Error() string {
	return "arrays of bytes are not supported: " + e.field
}

func (e ByteArrayError) Is(err error) bool {
	_, ok := err.(ByteArrayError)
	return ok
}

// UnknownTypeError indicates a ros equivalent name with no catalog entry.
type UnknownTypeError struct {
	name string
}

func (e UnknownTypeError) Error() string {
	return "unknown ros type: " + e.name
}

func (e UnknownTypeError) Is(err error) bool {
	_, ok := err.(UnknownTypeError)
	return ok
}
