// vsockpong connects out to the host side of a VM-socket channel and
// answers pings until told to quit. It exists to exercise the other end
// of a guest/host channel during testing and is not meant to outlive a
// test run.
package main

import (
	"fmt"
	"os"

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

	log.Info().Uint32("cid", vsock.CIDHost).Uint32("port", port).Msg("connecting to host")

	conn, err := vsock.DialHost(port)
	if err != nil {
		log.Error().Err(err).Msg("connection setup failed")
		os.Exit(1)
	}

	log.Info().Msg("connected")

	// Loop errors are logged but deliberately do not affect the exit
	// status; once the connection is up the run counts as complete.
	if err := responder.New(log).Run(conn); err != nil {
		log.Error().Err(err).Msg("connection error")
	}

	conn.Close()
	log.Info().Msg("connection closed")
}
