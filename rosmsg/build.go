package rosmsg

import (
	"math"
	"strconv"
	"strings"

	"github.com/wkalt/rosgen/schema"
)

/*
Definition building. Build converts one schema into its dialect-resolved
definition: enum fields expand into uint8 constants ahead of the value field,
bytes fields become uint8 arrays, nested fields resolve to their ros
equivalent or to a namespaced foxglove type, and ros2 lower-cases field
names. Time and duration fields keep their raw tags here; the renderer
substitutes the dialect-specific names.
*/

////////////////////////////////////////////////////////////////////////////////

// primitiveName returns the msg type name for a primitive. Only the tags the
// builder and renderer route here are supported; anything else is a
// programming error, unreachable given the closed primitive set.
func primitiveName(p schema.PrimitiveType, dialect Dialect) string {
	switch p {
	case schema.STRING:
		return "string"
	case schema.BOOLEAN:
		return "bool"
	case schema.FLOAT64:
		return "float64"
	case schema.TIME:
		if dialect == Ros2 {
			return "builtin_interfaces/Time"
		}
		return "time"
	case schema.DURATION:
		if dialect == Ros2 {
			return "builtin_interfaces/Duration"
		}
		return "duration"
	default:
		panic("unsupported primitive type: " + p.String())
	}
}

// Build converts a schema into its dialect-resolved definition. The seen-enum
// and seen-constant-name sets are scoped to this call, so Build is reentrant.
func Build(sc *schema.Schema, dialect Dialect) (*Definition, error) {
	def := &Definition{
		OriginalName:      sc.Name,
		MsgInterfaceName:  Namespace + "/" + sc.Name,
		FullInterfaceName: Namespace + "/" + sc.Name,
		Description:       sc.Description,
	}
	if dialect == Ros2 {
		def.FullInterfaceName = Namespace + "/msg/" + sc.Name
	}
	seenValues := map[string]bool{}
	expanded := map[string]bool{}
	for _, field := range sc.Fields {
		name := field.Name
		if dialect == Ros2 {
			name = strings.ToLower(name)
		}
		out := Field{
			Name:        name,
			Array:       field.Array,
			FixedLength: field.FixedLength,
			Description: field.Description,
		}
		switch {
		case field.Type.IsEnum():
			enum := field.Type.Enum
			if !expanded[enum.Name] {
				expanded[enum.Name] = true
				for _, value := range enum.Values {
					if seenValues[value.Name] {
						return nil, EnumCollisionError{name: value.Name}
					}
					seenValues[value.Name] = true
					if value.Value < 0 || value.Value > 255 || value.Value != math.Trunc(value.Value) {
						return nil, EnumRangeError{enum: enum.Name, name: value.Name, value: value.Value}
					}
					def.Fields = append(def.Fields, Field{
						Type:        "uint8",
						Name:        value.Name,
						Constant:    true,
						Value:       strconv.FormatInt(int64(value.Value), 10),
						Description: value.Description,
					})
				}
			}
			out.Type = "uint8"
		case field.Type.IsNested():
			nested := field.Type.Nested
			if nested.RosEquivalent != "" {
				out.Type = nested.RosEquivalent
			} else {
				out.Type = Namespace + "/" + nested.Name
			}
		default:
			switch field.Type.Primitive {
			case schema.BYTES:
				if field.Array {
					return nil, ByteArrayError{field: field.Name}
				}
				out.Type = "uint8"
				out.Array = true
			case schema.UINT32:
				out.Type = "uint32"
			case schema.TIME:
				out.Type = "time"
			case schema.DURATION:
				out.Type = "duration"
			default:
				out.Type = primitiveName(field.Type.Primitive, dialect)
			}
		}
		def.Fields = append(def.Fields, out)
	}
	return def, nil
}
