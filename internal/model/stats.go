package model

import "iter"

const (
	StatsSourcesTotal  = "_sources_total"
	StatsSourcesErrors = "_sources_errors"
	StatsCountsLines   = "_counts_lines"
	StatsCountsWords   = "_counts_words"
	StatsCountsChars   = "_counts_chars"
	StatsCountsBytes   = "_counts_bytes"
)

// Stats abstracts the process-wide counters published by internal/stats.
type Stats interface {
	IncSources()
	IncErrSources()
	Observe(Result)
	Stats() iter.Seq2[string, string]
}
