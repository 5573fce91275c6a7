// listener is the peer-side harness: it binds a VM-socket port on the
// wildcard CID, accepts a single connection, and runs the same
// ping/pong loop as the connecting binary. Use it to exercise the
// connect side of the channel.
package main

import (
	"fmt"
	"os"

	mvsock "github.com/mdlayher/vsock"
	"github.com/rs/zerolog"

	"vsockpong/pkg/responder"
	"vsockpong/pkg/vsock"
)

func main() {
	log := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "15:04:05",
	}).With().Timestamp().Logger()

	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <port>\n", os.Args[0])
		os.Exit(1)
	}

	port, err := vsock.ParsePort(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid port: %s\n", os.Args[1])
		os.Exit(1)
	}

	l, err := mvsock.ListenContextID(vsock.CIDAny, port, nil)
	if err != nil {
		log.Error().Err(err).Msg("listen failed")
		os.Exit(1)
	}
	defer l.Close()

	log.Info().Uint32("port", port).Msg("waiting for connection")

	conn, err := l.Accept()
	if err != nil {
		log.Error().Err(err).Msg("accept failed")
		os.Exit(1)
	}

	log.Info().Msg("accepted connection")

	if err := responder.New(log).Run(conn); err != nil {
		log.Error().Err(err).Msg("connection error")
	}

	conn.Close()
	log.Info().Msg("connection closed")
}
