// Package source turns file name arguments into an ordered set of readable
// byte streams. It is all-or-nothing: either every name opens, or nothing is
// handed out for counting.
package source

import (
	"fmt"
	"io"
	"os"

	"github.com/vyskocilm/tally/internal/model"
)

// Source is a single input to be counted. Name is empty for the anonymous
// standard input. The stream is owned exclusively by its consumer, which
// drains it once and closes it.
type Source struct {
	Name string
	io.ReadCloser
}

// Stdin returns the anonymous standard input source. The process stdin is
// not ours to close, so Close is a no-op.
func Stdin() Source {
	return Source{ReadCloser: io.NopCloser(os.Stdin)}
}

// Open opens every named file in the given order. Zero names means counting
// the standard input, so a single anonymous source is returned. The first
// failure closes everything opened so far and aborts: no counting may start
// with a partially opened set.
func Open(names []string, st model.Stats) ([]Source, error) {
	if len(names) == 0 {
		st.IncSources()
		return []Source{Stdin()}, nil
	}

	sources := make([]Source, 0, len(names))
	for _, name := range names {
		st.IncSources()
		f, err := os.Open(name)
		if err != nil {
			st.IncErrSources()
			Close(sources)
			return nil, fmt.Errorf("opening %s: %w", name, err)
		}
		sources = append(sources, Source{Name: name, ReadCloser: f})
	}
	return sources, nil
}

// Close releases all not yet consumed sources, keeping the first error.
func Close(sources []Source) {
	for _, src := range sources {
		_ = src.Close()
	}
}
