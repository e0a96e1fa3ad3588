package rosmsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/rosgen/rosmsg"
	"github.com/wkalt/rosgen/schema"
)

type fakeCatalog map[string]rosmsg.CatalogDefinition

func (c fakeCatalog) Lookup(name string) (rosmsg.CatalogDefinition, bool) {
	def, ok := c[name]
	return def, ok
}

func depNames(deps []rosmsg.Dependency) []string {
	names := make([]string, 0, len(deps))
	for _, dep := range deps {
		names = append(names, dep.QualifiedName())
	}
	return names
}

func TestDependenciesNested(t *testing.T) {
	c := newSchema("C", primitiveField("x", schema.FLOAT64))
	b := newSchema("B", nestedField("c", c))
	a := newSchema("A", nestedField("b", b))

	deps, err := rosmsg.Dependencies(a, fakeCatalog{})
	require.NoError(t, err)
	require.Equal(t, []string{"foxglove_msgs/B", "foxglove_msgs/C"}, depNames(deps))
}

func TestDependenciesNotDeduped(t *testing.T) {
	c := newSchema("C")
	b := newSchema("B", nestedField("c", c))
	a := newSchema("A", nestedField("b1", b), nestedField("b2", b))

	// The raw walk repeats shared subtrees; dedup is the assembler's job.
	deps, err := rosmsg.Dependencies(a, fakeCatalog{})
	require.NoError(t, err)
	require.Equal(t, []string{
		"foxglove_msgs/B", "foxglove_msgs/C",
		"foxglove_msgs/B", "foxglove_msgs/C",
	}, depNames(deps))
}

func TestDependenciesRosEquivalent(t *testing.T) {
	catalog := fakeCatalog{
		"std_msgs/Header": {Fields: []rosmsg.CatalogField{
			{Type: "builtin_interfaces/Time", Name: "stamp", Complex: true},
			{Type: "string", Name: "frame_id"},
		}},
		"builtin_interfaces/Time": {Fields: []rosmsg.CatalogField{
			{Type: "int32", Name: "sec"},
			{Type: "uint32", Name: "nanosec"},
		}},
	}
	header := &schema.Schema{Name: "Header", RosEquivalent: "std_msgs/Header"}
	a := newSchema("A", nestedField("header", header))

	deps, err := rosmsg.Dependencies(a, catalog)
	require.NoError(t, err)
	require.Equal(t, []string{"std_msgs/Header", "builtin_interfaces/Time"}, depNames(deps))
	require.Equal(t, rosmsg.RosDependency, deps[0].Kind)
}

func TestDependenciesPreOrder(t *testing.T) {
	d := newSchema("D")
	c := newSchema("C", nestedField("d", d))
	b := newSchema("B")
	a := newSchema("A", nestedField("c", c), nestedField("b", b))

	// Each field's subtree is exhausted before the next field at the same
	// level is visited.
	deps, err := rosmsg.Dependencies(a, fakeCatalog{})
	require.NoError(t, err)
	require.Equal(t, []string{"foxglove_msgs/C", "foxglove_msgs/D", "foxglove_msgs/B"}, depNames(deps))
}

func TestDependenciesUnknownRosType(t *testing.T) {
	header := &schema.Schema{Name: "Header", RosEquivalent: "std_msgs/Header"}
	a := newSchema("A", nestedField("header", header))

	_, err := rosmsg.Dependencies(a, fakeCatalog{})
	require.ErrorIs(t, err, rosmsg.UnknownTypeError{})
}
