package stats

import (
	"expvar"
	"iter"
	"maps"
	"slices"

	"github.com/vyskocilm/tally/internal/model"
)

// Stats holds expvar-backed counters for a counting run and publishes them
// under a common key prefix. All counters are expvar.Map, so they are safe
// for concurrent updates. When the standard expvar HTTP handler is
// registered by an embedder, the values are available at /debug/vars.
//
//   - tally_sources_total — count of all input sources (files plus stdin)
//   - tally_sources_errors — sources that could not be opened
//   - tally_counts_{lines,words,chars,bytes} — accumulated totals across
//     all fully counted sources
type Stats struct {
	prefix  string
	root    *expvar.Map
	sources *expvar.Map
	counts  *expvar.Map
}

// New publishes a new set of metrics. Registering the same metrics twice
// causes panic, so for tests, the prefix should be unique.
func New(prefix string) *Stats {
	root := expvar.NewMap(prefix)
	sources := new(expvar.Map).Init()
	counts := new(expvar.Map).Init()

	sources.Add("total", 0)
	sources.Add("errors", 0)

	counts.Add("lines", 0)
	counts.Add("words", 0)
	counts.Add("chars", 0)
	counts.Add("bytes", 0)

	root.Set("sources", sources)
	root.Set("counts", counts)

	return &Stats{
		prefix:  prefix,
		root:    root,
		sources: sources,
		counts:  counts,
	}
}

func (s *Stats) IncSources() {
	s.sources.Add("total", 1)
}
func (s *Stats) IncErrSources() {
	s.sources.Add("errors", 1)
}

// Observe accumulates the counters of one fully counted source.
func (s *Stats) Observe(res model.Result) {
	s.counts.Add("lines", int64(res.Lines))
	s.counts.Add("words", int64(res.Words))
	s.counts.Add("chars", int64(res.Chars))
	s.counts.Add("bytes", int64(res.Bytes))
}

// Stats returns a name, value iterator across registered metrics. This uses
// expvar.Do under the hood, so is safe to be called concurrently. Stats are
// returned in an alphabetic order.
func (s Stats) Stats() iter.Seq2[string, string] {
	stats := make(map[string]string, 6)
	s.sources.Do(func(kv expvar.KeyValue) {
		stats["_sources_"+kv.Key] = kv.Value.String()
	})
	s.counts.Do(func(kv expvar.KeyValue) {
		stats["_counts_"+kv.Key] = kv.Value.String()
	})

	keys := slices.Sorted(maps.Keys(stats))
	return func(yield func(string, string) bool) {
		for _, key := range keys {
			if !yield(s.prefix+key, stats[key]) {
				return
			}
		}
	}
}
