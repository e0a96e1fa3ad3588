package rosmsg

import (
	"github.com/wkalt/rosgen/schema"
)

/*
rosmsg translates foxglove schemas into ROS message definitions, in both the
ros1msg and ros2msg flavors. The two flavors differ in field name casing and
in the names of the time and duration builtins.

Besides single definitions, the package produces merged definitions: the
target definition concatenated with every type it transitively depends on,
separated by the 80-character delimiter and "MSG:" headers used in ROS
connection headers. Tooling that understands multi-definition msg bundles can
consume merged output unmodified.

All inputs are read-only and all working state is allocated per call, so the
package is safe for concurrent use.
*/

////////////////////////////////////////////////////////////////////////////////

// Dialect selects the target msg flavor.
type Dialect int

const (
	Ros1 Dialect = iota + 1
	Ros2
)

func (d Dialect) String() string {
	switch d {
	case Ros1:
		return "ros1"
	case Ros2:
		return "ros2"
	default:
		return "unknown"
	}
}

// Encoding returns the MCAP schema encoding name for the dialect.
func (d Dialect) Encoding() string {
	if d == Ros2 {
		return "ros2msg"
	}
	return "ros1msg"
}

// Namespace is the package under which foxglove-origin types are qualified.
const Namespace = "foxglove_msgs"

// Definition is the dialect-resolved form of one schema, ready to render.
type Definition struct {
	OriginalName      string
	MsgInterfaceName  string
	FullInterfaceName string
	Description       string
	Fields            []Field
}

// Field is one resolved field or constant of a definition. For time and
// duration primitives Type holds the raw tag; the renderer substitutes the
// dialect-specific name.
type Field struct {
	Type        string
	Name        string
	Array       bool
	FixedLength int
	Constant    bool
	Value       string
	Description string
}

// DependencyKind discriminates the two dependency variants.
type DependencyKind int

const (
	// RosDependency references a middleware-defined type by catalog name.
	RosDependency DependencyKind = iota + 1

	// FoxgloveDependency references another foxglove-origin schema.
	FoxgloveDependency
)

// Dependency identifies one type a schema requires. Exactly one of Name and
// Schema is set, according to Kind.
type Dependency struct {
	Kind   DependencyKind
	Name   string
	Schema *schema.Schema
}

// QualifiedName returns the name used in MSG: headers for the dependency.
func (d Dependency) QualifiedName() string {
	if d.Kind == RosDependency {
		return d.Name
	}
	return Namespace + "/" + d.Schema.Name
}

// key is the dedup identity of the dependency.
func (d Dependency) key() string {
	if d.Kind == RosDependency {
		return "ros:" + d.Name
	}
	return "foxglove:" + d.Schema.Name
}

// Catalog is a read-only table of middleware-defined message types, keyed by
// qualified name. The msgdefs package supplies one per dialect; tests may
// substitute fakes.
type Catalog interface {
	Lookup(name string) (CatalogDefinition, bool)
}

// CatalogDefinition is one middleware-defined message type. Catalog entries
// are already in final msg form and receive no enum or byte special-casing.
type CatalogDefinition struct {
	Fields []CatalogField
}

// CatalogField is one field of a catalog definition. Complex marks fields
// whose type is itself a catalog entry.
type CatalogField struct {
	Type        string
	Name        string
	Array       bool
	FixedLength int
	Complex     bool
}
