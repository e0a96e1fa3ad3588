package rosmsg

import (
	"strconv"
	"strings"

	"github.com/wkalt/rosgen/schema"
)

/*
Text rendering. A definition renders as a header comment naming the full
interface name, optional description comments, a blank line, a fixed
attribution comment, and then one line per field. A field gets a leading
blank line when it carries a description or when the preceding lines ended in
a comment, which groups commented fields into visually separate blocks while
packing bare fields together.
*/

////////////////////////////////////////////////////////////////////////////////

const attribution = "# Generated by https://github.com/wkalt/rosgen"

// Delimiter separates definitions in merged output, matching the convention
// used in ROS connection headers.
var Delimiter = strings.Repeat("=", 80)

// Render serializes one definition into msg text. Time and duration tags are
// substituted with their dialect-specific names at this point.
func Render(def *Definition, dialect Dialect) (string, error) {
	lines := []string{"# " + def.FullInterfaceName}
	if def.Description != "" {
		for _, line := range strings.Split(def.Description, "\n") {
			lines = append(lines, "# "+line)
		}
	}
	lines = append(lines, "", attribution)

	// The attribution comment counts as a trailing comment for the first
	// field's blank-line placement.
	prevCommented := true
	for _, field := range def.Fields {
		if field.Constant && field.Value == "" {
			return "", InvalidConstantError{name: field.Name}
		}
		if prevCommented || field.Description != "" {
			lines = append(lines, "")
		}
		prevCommented = field.Description != ""
		if field.Description != "" {
			for _, line := range strings.Split(strings.TrimSpace(field.Description), "\n") {
				lines = append(lines, "# "+line)
			}
		}
		lines = append(lines, fieldLine(field, dialect))
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func fieldLine(field Field, dialect Dialect) string {
	typename := field.Type
	switch typename {
	case "time":
		typename = primitiveName(schema.TIME, dialect)
	case "duration":
		typename = primitiveName(schema.DURATION, dialect)
	}
	sb := strings.Builder{}
	sb.WriteString(typename)
	if field.Array {
		sb.WriteString("[")
		if field.FixedLength > 0 {
			sb.WriteString(strconv.Itoa(field.FixedLength))
		}
		sb.WriteString("]")
	}
	sb.WriteString(" ")
	sb.WriteString(field.Name)
	if field.Constant {
		sb.WriteString("=")
		sb.WriteString(field.Value)
	}
	return sb.String()
}
