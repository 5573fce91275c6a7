// Package vsock provides the guest-side bindings this harness needs to
// talk to its host over VM sockets, based on the low level support in
// golang.org/x/sys/unix.
package vsock

import (
	"os"

	"golang.org/x/sys/unix"

	"vsockpong/pkg/types"
)

const (
	// CIDHost is the well-known context ID of the host.
	CIDHost uint32 = unix.VMADDR_CID_HOST
	// CIDAny is the wildcard context ID used when listening.
	CIDAny uint32 = unix.VMADDR_CID_ANY
)

// DialHost opens a stream socket to the host CID on the given port. The
// returned file owns the socket descriptor; closing it closes the
// connection. Socket creation and connect failures are reported as
// distinct kinds.
func DialHost(port uint32) (*os.File, error) {
	fd, err := unix.Socket(unix.AF_VSOCK, unix.SOCK_STREAM, 0)
	if err != nil {
		return nil, &types.Failure{Kind: types.SocketCreation, Err: err}
	}

	sa := &unix.SockaddrVM{
		CID:  CIDHost,
		Port: port,
	}

	if err := unix.Connect(fd, sa); err != nil {
		unix.Close(fd)
		return nil, &types.Failure{Kind: types.Connect, Err: err}
	}

	return os.NewFile(uintptr(fd), "vsock"), nil
}
