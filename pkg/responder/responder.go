// Package responder implements the harness message loop: read a chunk,
// strip trailing line endings, answer "ping" with "pong", stop on
// "quit", echo everything else.
package responder

import (
	"errors"
	"io"

	"github.com/rs/zerolog"

	"vsockpong/pkg/types"
)

const bufsize = 256

// Control words recognized by the loop. Comparison is case-sensitive
// and happens after trimming.
const (
	wordPing = "ping"
	wordQuit = "quit"
)

var pong = []byte("pong")

// Responder runs the blocking message loop over a single connection.
type Responder struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Responder {
	return &Responder{log: log}
}

// Run reads from conn until the peer closes the connection, a "quit"
// message arrives, or an I/O error occurs. EOF and "quit" are normal
// terminations and return nil; I/O errors are returned as
// types.Failure with kind Read or Write. Run does not close conn.
func (r *Responder) Run(conn io.ReadWriter) error {
	buf := make([]byte, bufsize)

	for {
		n, err := conn.Read(buf[:bufsize-1])
		if n > 0 {
			done, werr := r.handle(conn, trimCRLF(buf[:n]))
			if werr != nil {
				return werr
			}
			if done {
				return nil
			}
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return &types.Failure{Kind: types.Read, Err: err}
		}
	}
}

// handle classifies one trimmed message and writes the reply. done is
// true when the peer asked the loop to stop.
func (r *Responder) handle(conn io.Writer, msg []byte) (done bool, err error) {
	r.log.Info().Str("message", string(msg)).Msg("received")

	switch string(msg) {
	case wordPing:
		if _, err := conn.Write(pong); err != nil {
			return false, &types.Failure{Kind: types.Write, Err: err}
		}
		r.log.Info().Msg("sent pong")
	case wordQuit:
		r.log.Info().Msg("received quit, exiting")
		return true, nil
	default:
		// An empty message (input was all CR/LF) gets no reply.
		if len(msg) == 0 {
			break
		}
		if _, err := conn.Write(msg); err != nil {
			return false, &types.Failure{Kind: types.Write, Err: err}
		}
	}
	return false, nil
}

// trimCRLF strips any run of trailing '\n' and '\r' bytes.
func trimCRLF(b []byte) []byte {
	end := len(b)
	for end > 0 && (b[end-1] == '\n' || b[end-1] == '\r') {
		end--
	}
	return b[:end]
}
