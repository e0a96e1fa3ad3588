package rosmsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/rosgen/rosmsg"
	"github.com/wkalt/rosgen/schema"
)

func newSchema(name string, fields ...schema.Field) *schema.Schema {
	return &schema.Schema{Name: name, Fields: fields}
}

func primitiveField(name string, p schema.PrimitiveType) schema.Field {
	return schema.Field{Name: name, Type: schema.Type{Primitive: p}}
}

func nestedField(name string, sc *schema.Schema) schema.Field {
	return schema.Field{Name: name, Type: schema.Type{Nested: sc}}
}

func enumField(name string, e *schema.Enum) schema.Field {
	return schema.Field{Name: name, Type: schema.Type{Enum: e}}
}

func newEnum(name string, values ...schema.EnumValue) *schema.Enum {
	return &schema.Enum{Name: name, Values: values}
}

func TestBuildPrimitives(t *testing.T) {
	cases := []struct {
		assertion string
		dialect   rosmsg.Dialect
		primitive schema.PrimitiveType
		expected  string
	}{
		{"string", rosmsg.Ros1, schema.STRING, "string"},
		{"boolean", rosmsg.Ros1, schema.BOOLEAN, "bool"},
		{"float64", rosmsg.Ros1, schema.FLOAT64, "float64"},
		{"uint32", rosmsg.Ros1, schema.UINT32, "uint32"},
		{"string is dialect invariant", rosmsg.Ros2, schema.STRING, "string"},
		{"time keeps its raw tag", rosmsg.Ros1, schema.TIME, "time"},
		{"time keeps its raw tag under ros2", rosmsg.Ros2, schema.TIME, "time"},
		{"duration keeps its raw tag", rosmsg.Ros2, schema.DURATION, "duration"},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			def, err := rosmsg.Build(newSchema("Test", primitiveField("foo", c.primitive)), c.dialect)
			require.NoError(t, err)
			require.Len(t, def.Fields, 1)
			require.Equal(t, c.expected, def.Fields[0].Type)
		})
	}
}

func TestBuildFieldNameCasing(t *testing.T) {
	sc := newSchema("Test", primitiveField("FrameID", schema.STRING))

	def, err := rosmsg.Build(sc, rosmsg.Ros1)
	require.NoError(t, err)
	require.Equal(t, "FrameID", def.Fields[0].Name)

	def, err = rosmsg.Build(sc, rosmsg.Ros2)
	require.NoError(t, err)
	require.Equal(t, "frameid", def.Fields[0].Name)
}

func TestBuildInterfaceNames(t *testing.T) {
	cases := []struct {
		assertion    string
		dialect      rosmsg.Dialect
		expectedMsg  string
		expectedFull string
	}{
		{"ros1 names coincide", rosmsg.Ros1, "foxglove_msgs/Pose", "foxglove_msgs/Pose"},
		{"ros2 inserts msg segment", rosmsg.Ros2, "foxglove_msgs/Pose", "foxglove_msgs/msg/Pose"},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			def, err := rosmsg.Build(newSchema("Pose"), c.dialect)
			require.NoError(t, err)
			require.Equal(t, "Pose", def.OriginalName)
			require.Equal(t, c.expectedMsg, def.MsgInterfaceName)
			require.Equal(t, c.expectedFull, def.FullInterfaceName)
		})
	}
}

func TestBuildNested(t *testing.T) {
	t.Run("foxglove-origin schema gets namespaced", func(t *testing.T) {
		pose := newSchema("Pose")
		def, err := rosmsg.Build(newSchema("Scene", nestedField("pose", pose)), rosmsg.Ros1)
		require.NoError(t, err)
		require.Equal(t, "foxglove_msgs/Pose", def.Fields[0].Type)
	})
	t.Run("ros equivalent wins", func(t *testing.T) {
		header := &schema.Schema{Name: "Header", RosEquivalent: "std_msgs/Header"}
		def, err := rosmsg.Build(newSchema("Scene", nestedField("header", header)), rosmsg.Ros1)
		require.NoError(t, err)
		require.Equal(t, "std_msgs/Header", def.Fields[0].Type)
	})
}

func TestBuildEnumExpansion(t *testing.T) {
	enum := newEnum("LineType",
		schema.EnumValue{Name: "SOLID", Value: 0},
		schema.EnumValue{Name: "DASHED", Value: 1},
	)
	t.Run("constants precede the value field in declaration order", func(t *testing.T) {
		def, err := rosmsg.Build(newSchema("Line", enumField("type", enum)), rosmsg.Ros1)
		require.NoError(t, err)
		require.Len(t, def.Fields, 3)
		require.Equal(t, rosmsg.Field{Type: "uint8", Name: "SOLID", Constant: true, Value: "0"}, def.Fields[0])
		require.Equal(t, rosmsg.Field{Type: "uint8", Name: "DASHED", Constant: true, Value: "1"}, def.Fields[1])
		require.Equal(t, rosmsg.Field{Type: "uint8", Name: "type"}, def.Fields[2])
	})
	t.Run("expansion is idempotent per build", func(t *testing.T) {
		def, err := rosmsg.Build(newSchema("Line",
			enumField("start_type", enum),
			enumField("end_type", enum),
		), rosmsg.Ros1)
		require.NoError(t, err)
		// Two constants, then both value fields; no second expansion.
		require.Len(t, def.Fields, 4)
		require.Equal(t, "SOLID", def.Fields[0].Name)
		require.Equal(t, "DASHED", def.Fields[1].Name)
		require.Equal(t, "start_type", def.Fields[2].Name)
		require.Equal(t, "end_type", def.Fields[3].Name)
	})
	t.Run("names colliding across enums are rejected", func(t *testing.T) {
		other := newEnum("OtherType", schema.EnumValue{Name: "SOLID", Value: 5})
		_, err := rosmsg.Build(newSchema("Line",
			enumField("a", enum),
			enumField("b", other),
		), rosmsg.Ros1)
		require.ErrorIs(t, err, rosmsg.EnumCollisionError{})
	})
}

func TestBuildEnumRange(t *testing.T) {
	cases := []struct {
		assertion string
		value     float64
	}{
		{"value above 255", 256},
		{"negative value", -1},
		{"non-integral value", 1.5},
	}
	for _, c := range cases {
		t.Run(c.assertion, func(t *testing.T) {
			enum := newEnum("E", schema.EnumValue{Name: "A", Value: c.value})
			_, err := rosmsg.Build(newSchema("Test", enumField("e", enum)), rosmsg.Ros1)
			require.ErrorIs(t, err, rosmsg.EnumRangeError{})
		})
	}
}

func TestBuildBytes(t *testing.T) {
	t.Run("bytes becomes a uint8 array", func(t *testing.T) {
		def, err := rosmsg.Build(newSchema("Blob", primitiveField("data", schema.BYTES)), rosmsg.Ros1)
		require.NoError(t, err)
		require.Equal(t, "uint8", def.Fields[0].Type)
		require.True(t, def.Fields[0].Array)
	})
	t.Run("arrays of bytes are rejected", func(t *testing.T) {
		field := primitiveField("data", schema.BYTES)
		field.Array = true
		_, err := rosmsg.Build(newSchema("Blob", field), rosmsg.Ros1)
		require.ErrorIs(t, err, rosmsg.ByteArrayError{})
	})
}
