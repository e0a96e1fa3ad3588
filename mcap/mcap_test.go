package mcap_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/rosgen/mcap"
)

func TestWriteSchemaFile(t *testing.T) {
	definition := []byte("# foxglove_msgs/Test\n\nstring foo\n")
	buf := &bytes.Buffer{}
	err := mcap.WriteSchemaFile(buf, "foxglove_msgs/Test", "ros1msg", definition)
	require.NoError(t, err)

	reader, err := mcap.NewReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	info, err := reader.Info()
	require.NoError(t, err)

	require.Len(t, info.Schemas, 1)
	schema := info.Schemas[1]
	require.Equal(t, "foxglove_msgs/Test", schema.Name)
	require.Equal(t, "ros1msg", schema.Encoding)
	require.Equal(t, definition, schema.Data)
}
