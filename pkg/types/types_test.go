package types

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFailureError(t *testing.T) {
	cause := errors.New("connection refused")
	f := &Failure{Kind: Connect, Err: cause}
	require.Equal(t, "connect failed: connection refused", f.Error())
	require.ErrorIs(t, f, cause)
}

func TestFailureErrorWithoutCause(t *testing.T) {
	f := &Failure{Kind: Read}
	require.Equal(t, "read failed", f.Error())
}

func TestKindStrings(t *testing.T) {
	for kind, want := range map[FailureKind]string{
		InvalidArgument: "invalid argument",
		SocketCreation:  "socket creation failed",
		Connect:         "connect failed",
		Read:            "read failed",
		Write:           "write failed",
		FailureKind(99): "unknown failure",
	} {
		require.Equal(t, want, kind.String())
	}
}
