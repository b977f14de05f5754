package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks

// Telemetry records the progress of dispatched steps.
type Telemetry interface {
	// Record starts a vertex for a unit of work and returns a context carrying it.
	Record(ctx context.Context, name string) (context.Context, Vertex)
	// Report writes a per-step summary of the recorded vertices to w.
	Report(w io.Writer) error
	// Close flushes the recording session.
	Close() error
}

// Vertex is a single recorded unit of work.
type Vertex interface {
	// Stdout returns a writer for the standard output of the work.
	Stdout() io.Writer
	// Stderr returns a writer for the error output of the work.
	Stderr() io.Writer
	// Complete marks the vertex as finished, failed when err is non-nil.
	Complete(err error)
}

type vertexKey struct{}

// ContextWithVertex returns a copy of ctx carrying v.
func ContextWithVertex(ctx context.Context, v Vertex) context.Context {
	return context.WithValue(ctx, vertexKey{}, v)
}

// VertexFromContext returns the vertex carried by ctx, if any.
func VertexFromContext(ctx context.Context) (Vertex, bool) {
	v, ok := ctx.Value(vertexKey{}).(Vertex)
	return v, ok
}
