package schema

import (
	"fmt"
)

/*
schema is the in-memory model of foxglove message schemas. A schema is an
association of a name and a list of fields. Field types are a closed variant:
a primitive from the fixed set below, a reference to another schema, or a
reference to an enum. Schemas that mirror a middleware-defined message declare
the equivalent type's name, and consumers reference that type instead of the
foxglove-origin one.

Schemas and enums are read-only once constructed. The generation pipeline in
the rosmsg package never mutates them.
*/

////////////////////////////////////////////////////////////////////////////////

// PrimitiveType is an enumeration of the primitive field types.
type PrimitiveType int

const (
	STRING PrimitiveType = iota + 1
	BOOLEAN
	FLOAT64
	UINT32
	BYTES
	TIME
	DURATION
)

func (p PrimitiveType) String() string {
	switch p {
	case STRING:
		return "string"
	case BOOLEAN:
		return "boolean"
	case FLOAT64:
		return "float64"
	case UINT32:
		return "uint32"
	case BYTES:
		return "bytes"
	case TIME:
		return "time"
	case DURATION:
		return "duration"
	default:
		return "unknown"
	}
}

// MarshalJSON returns the JSON representation of the primitive type.
func (p PrimitiveType) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf(`"%s"`, p.String())), nil
}

func (p *PrimitiveType) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"string"`:
		*p = STRING
	case `"boolean"`:
		*p = BOOLEAN
	case `"float64"`:
		*p = FLOAT64
	case `"uint32"`:
		*p = UINT32
	case `"bytes"`:
		*p = BYTES
	case `"time"`:
		*p = TIME
	case `"duration"`:
		*p = DURATION
	default:
		return fmt.Errorf("unknown primitive type: %s", data)
	}
	return nil
}

// Type is a field type. Exactly one of the three variants is set.
type Type struct {
	Primitive PrimitiveType

	// If it references another schema...
	Nested *Schema

	// If it references an enum...
	Enum *Enum
}

// IsPrimitive returns true if the type is a primitive type.
func (t Type) IsPrimitive() bool {
	return t.Primitive > 0
}

// IsNested returns true if the type references another schema.
func (t Type) IsNested() bool {
	return t.Nested != nil
}

// IsEnum returns true if the type references an enum.
func (t Type) IsEnum() bool {
	return t.Enum != nil
}

// Field is one field of a schema.
type Field struct {
	Name        string
	Description string
	Type        Type

	// If it's an array...
	Array       bool
	FixedLength int
}

// EnumValue is one named value of an enum. Value is held as a float so that
// out-of-range and non-integral inputs survive to the range check in the
// definition builder instead of being truncated at load time.
type EnumValue struct {
	Name        string
	Value       float64
	Description string
}

// Enum is an ordered list of named values.
type Enum struct {
	Name        string
	Description string
	Values      []EnumValue
}

// Schema is a foxglove message schema.
type Schema struct {
	Name          string
	Description   string
	RosEquivalent string
	Fields        []Field
}
