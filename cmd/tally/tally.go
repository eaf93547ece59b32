package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vyskocilm/tally/internal/count"
	"github.com/vyskocilm/tally/internal/log"
	"github.com/vyskocilm/tally/internal/model"
	"github.com/vyskocilm/tally/internal/source"
	"github.com/vyskocilm/tally/internal/stats"
	"github.com/vyskocilm/tally/internal/summary"

	"github.com/spf13/cobra"
)

// Tally is a component, which encapsulates one counting run: the requested
// metrics and the opened sources.
type Tally struct {
	metrics []model.Metric
	sources []source.Source
	stats   model.Stats
}

func doCount(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	attrs := slog.Group("tally",
		slog.String("cmd", "count"),
		slog.Int("pid", os.Getpid()),
	)
	ctx = log.ContextAttrs(ctx, attrs)

	tally, err := NewTally(args, stats.New("tally"))
	if err != nil {
		return err
	}
	return tally.Do(ctx, os.Stdout)
}

// NewTally classifies raw command line tokens into metric flags and file
// names and opens every source up front. A token which is not a recognized
// metric flag is a file name, even when it starts with a dash, so a
// mistyped flag surfaces as an open failure rather than a usage error.
// Without any metric flag the default set is lines, words and bytes.
// Without file names the standard input is the only source.
func NewTally(args []string, st model.Stats) (Tally, error) {
	var metrics []model.Metric
	var names []string
	for _, arg := range args {
		if m, ok := model.ParseMetric(arg); ok {
			metrics = append(metrics, m)
		} else {
			names = append(names, arg)
		}
	}
	if len(metrics) == 0 {
		metrics = model.DefaultMetrics()
	}

	sources, err := source.Open(names, st)
	if err != nil {
		return Tally{}, err
	}

	return Tally{
		metrics: metrics,
		sources: sources,
		stats:   st,
	}, nil
}

// Do drains every source sequentially in argument order, each one closed as
// soon as it is counted, and writes the whole report to out followed by a
// single newline. On any failure the remaining sources are closed and
// nothing is written.
func (t Tally) Do(ctx context.Context, out io.Writer) error {
	results := make([]model.Result, 0, len(t.sources))
	for i, src := range t.sources {
		res, err := count.Count(ctx, src.Name, src)
		if cerr := src.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", src.Name, cerr)
		}
		if err != nil {
			source.Close(t.sources[i+1:])
			return err
		}
		t.stats.Observe(res)
		results = append(results, res)
	}

	_, err := fmt.Fprintln(out, summary.Format(results, t.metrics))
	return err
}
