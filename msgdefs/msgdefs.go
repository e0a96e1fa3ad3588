package msgdefs

import (
	"slices"

	"github.com/wkalt/rosgen/rosmsg"
	"golang.org/x/exp/maps"
)

/*
msgdefs ships per-dialect tables of middleware-defined message types, covering
the types foxglove schemas reference through ros equivalents. Entries mirror
the definitions distributed with the middleware: they are final-form msg
fields and receive no enum or byte special-casing from the pipeline. The ros2
table differs where the upstream packages do, most visibly in std_msgs/Header
losing its seq field and gaining a complex builtin_interfaces/Time stamp.
*/

////////////////////////////////////////////////////////////////////////////////

type table map[string]rosmsg.CatalogDefinition

func (t table) Lookup(name string) (rosmsg.CatalogDefinition, bool) {
	def, ok := t[name]
	return def, ok
}

// For returns the catalog for the given dialect.
func For(dialect rosmsg.Dialect) rosmsg.Catalog {
	if dialect == rosmsg.Ros2 {
		return ros2
	}
	return ros1
}

// Names returns the known type names for the dialect, sorted.
func Names(dialect rosmsg.Dialect) []string {
	t := ros1
	if dialect == rosmsg.Ros2 {
		t = ros2
	}
	names := maps.Keys(t)
	slices.Sort(names)
	return names
}

// nolint:gochecknoglobals
var ros1 = table{
	"std_msgs/Header": {Fields: []rosmsg.CatalogField{
		{Type: "uint32", Name: "seq"},
		{Type: "time", Name: "stamp"},
		{Type: "string", Name: "frame_id"},
	}},
	"geometry_msgs/Point": {Fields: []rosmsg.CatalogField{
		{Type: "float64", Name: "x"},
		{Type: "float64", Name: "y"},
		{Type: "float64", Name: "z"},
	}},
	"geometry_msgs/Vector3": {Fields: []rosmsg.CatalogField{
		{Type: "float64", Name: "x"},
		{Type: "float64", Name: "y"},
		{Type: "float64", Name: "z"},
	}},
	"geometry_msgs/Quaternion": {Fields: []rosmsg.CatalogField{
		{Type: "float64", Name: "x"},
		{Type: "float64", Name: "y"},
		{Type: "float64", Name: "z"},
		{Type: "float64", Name: "w"},
	}},
	"geometry_msgs/Pose": {Fields: []rosmsg.CatalogField{
		{Type: "geometry_msgs/Point", Name: "position", Complex: true},
		{Type: "geometry_msgs/Quaternion", Name: "orientation", Complex: true},
	}},
}

// nolint:gochecknoglobals
var ros2 = table{
	"std_msgs/Header": {Fields: []rosmsg.CatalogField{
		{Type: "builtin_interfaces/Time", Name: "stamp", Complex: true},
		{Type: "string", Name: "frame_id"},
	}},
	"builtin_interfaces/Time": {Fields: []rosmsg.CatalogField{
		{Type: "int32", Name: "sec"},
		{Type: "uint32", Name: "nanosec"},
	}},
	"builtin_interfaces/Duration": {Fields: []rosmsg.CatalogField{
		{Type: "int32", Name: "sec"},
		{Type: "uint32", Name: "nanosec"},
	}},
	"geometry_msgs/Point": {Fields: []rosmsg.CatalogField{
		{Type: "float64", Name: "x"},
		{Type: "float64", Name: "y"},
		{Type: "float64", Name: "z"},
	}},
	"geometry_msgs/Vector3": {Fields: []rosmsg.CatalogField{
		{Type: "float64", Name: "x"},
		{Type: "float64", Name: "y"},
		{Type: "float64", Name: "z"},
	}},
	"geometry_msgs/Quaternion": {Fields: []rosmsg.CatalogField{
		{Type: "float64", Name: "x"},
		{Type: "float64", Name: "y"},
		{Type: "float64", Name: "z"},
		{Type: "float64", Name: "w"},
	}},
	"geometry_msgs/Pose": {Fields: []rosmsg.CatalogField{
		{Type: "geometry_msgs/Point", Name: "position", Complex: true},
		{Type: "geometry_msgs/Quaternion", Name: "orientation", Complex: true},
	}},
}
