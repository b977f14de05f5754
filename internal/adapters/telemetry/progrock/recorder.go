// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"
	"strconv"
	"sync"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/buildbot/internal/core/ports"
)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// Every vertex is written to an in-memory tape that Report reads back.
type Recorder struct {
	tape *progrock.Tape
	rec  *progrock.Recorder

	mu    sync.Mutex
	count int
}

// New creates a new Recorder with a fresh tape.
func New() ports.Telemetry {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a new Recorder that writes to tape.
func NewRecorder(tape *progrock.Tape) *Recorder {
	return &Recorder{
		tape: tape,
		rec:  progrock.NewRecorder(tape),
	}
}

// Record starts recording a new vertex.
// Steps may repeat within one run, so the digest also covers the vertex position.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	r.mu.Lock()
	d := digest.FromString(name + "#" + strconv.Itoa(r.count))
	r.count++
	r.mu.Unlock()

	vertex := &Vertex{vertex: r.rec.Vertex(d, name)}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	return r.tape.Close()
}
