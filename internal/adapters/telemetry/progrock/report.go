package progrock

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/vito/progrock"
	"github.com/vito/progrock/ui"
	"go.trai.ch/buildbot/internal/core/domain"
)

// Report writes one line per recorded vertex in start order: name, status and duration.
// Failed vertices also carry the last line of output they captured.
// Nothing is written when no vertex was recorded.
func (r *Recorder) Report(w io.Writer) error {
	vertices := r.tape.Vertices()
	if len(vertices) == 0 {
		return nil
	}

	tails := make(map[string]string)
	err := r.tape.EachVertex(func(v *progrock.Vertex, term *ui.Vterm) error {
		if v.Error == nil {
			return nil
		}
		tail, err := lastLine(term)
		if err != nil {
			return err
		}
		tails[v.Id] = tail
		return nil
	})
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, v := range vertices {
		status := statusOf(v)
		line := v.Name + "\t" + string(status) + "\t" + duration(v)
		if tail := tails[v.Id]; tail != "" {
			line += "\t" + tail
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return err
		}
	}
	return tw.Flush()
}

func statusOf(v *progrock.Vertex) domain.VertexStatus {
	switch {
	case v.GetCompleted() == nil:
		return domain.VertexStatusRunning
	case v.Error != nil:
		return domain.VertexStatusFailed
	default:
		return domain.VertexStatusCompleted
	}
}

func duration(v *progrock.Vertex) string {
	if v.GetStarted() == nil || v.GetCompleted() == nil {
		return "-"
	}
	d := v.GetCompleted().AsTime().Sub(v.GetStarted().AsTime())
	return d.Round(time.Millisecond).String()
}

func lastLine(term *ui.Vterm) (string, error) {
	var buf bytes.Buffer
	if err := term.Print(&buf); err != nil {
		return "", err
	}
	lines := strings.Split(buf.String(), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line, nil
		}
	}
	return "", nil
}
