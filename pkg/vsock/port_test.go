package vsock

import (
	"testing"

	"github.com/stretchr/testify/require"

	"vsockpong/pkg/types"
)

func TestParsePort(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want uint32
		ok   bool
	}{
		{"1", 1, true},
		{"9000", 9000, true},
		{"65535", 65535, true},
		{"0", 0, false},
		{"65536", 0, false},
		{"-1", 0, false},
		{"port", 0, false},
		{"", 0, false},
		{"9000x", 0, false},
	} {
		got, err := ParsePort(tc.in)
		if !tc.ok {
			var failure *types.Failure
			require.ErrorAs(t, err, &failure, "input %q", tc.in)
			require.Equal(t, types.InvalidArgument, failure.Kind, "input %q", tc.in)
			continue
		}
		require.NoError(t, err, "input %q", tc.in)
		require.Equal(t, tc.want, got, "input %q", tc.in)
	}
}

func TestWellKnownCIDs(t *testing.T) {
	require.Equal(t, uint32(2), CIDHost)
	require.Equal(t, uint32(0xffffffff), CIDAny)
}
