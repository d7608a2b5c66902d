package runner

import (
	"context"
	"fmt"
)

// Batch runs the specs one after another, reporting each result to the
// sink before starting the next. A failing command does not stop the
// queue; its output is logged like any other.
func Batch(ctx context.Context, r Runner, sink Sink, specs []Spec) {
	for i, spec := range specs {
		label := spec.Shell
		if label == "" {
			label = spec.Name
		}
		sink.Append(fmt.Sprintf("[%d/%d] %s", i+1, len(specs), label))
		Report(sink, r.Run(ctx, spec))
	}
}
