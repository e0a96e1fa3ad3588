package rosmsg_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/wkalt/rosgen/rosmsg"
)

func TestVerifyBundle(t *testing.T) {
	t.Run("single definition", func(t *testing.T) {
		names, err := rosmsg.VerifyBundle(`# foxglove_msgs/Test

# Generated by https://github.com/wkalt/rosgen

uint8 A=0
uint8 e
float64[3] xs
string name
`)
		require.NoError(t, err)
		require.Empty(t, names)
	})
	t.Run("bundle with dependencies", func(t *testing.T) {
		names, err := rosmsg.VerifyBundle(`# foxglove_msgs/Scene

std_msgs/Header header
` + rosmsg.Delimiter + `
MSG: std_msgs/Header
uint32 seq
time stamp
string frame_id
` + rosmsg.Delimiter + `
MSG: foxglove_msgs/Marker
float64[] xs
`)
		require.NoError(t, err)
		require.Equal(t, []string{"std_msgs/Header", "foxglove_msgs/Marker"}, names)
	})
	t.Run("malformed input", func(t *testing.T) {
		_, err := rosmsg.VerifyBundle("!!! not a definition")
		require.Error(t, err)
	})
}
