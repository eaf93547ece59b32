package model

import "errors"

// ErrNotUTF8 is returned when a source contains a segment which is not a
// valid UTF-8 text. The whole run is aborted, there is no best-effort
// counting of a broken source.
var ErrNotUTF8 = errors.New("input is not valid UTF-8")

// TotalSummary labels the synthetic result summing all real ones.
const TotalSummary = "Total"

// Result holds the accumulated counters for a single input source, or for
// the synthetic total across all of them. Summary is the display label,
// empty for the anonymous standard input.
type Result struct {
	Summary string
	Lines   uint64
	Words   uint64
	Chars   uint64
	Bytes   uint64
}

// Value projects the counter for the given metric.
func (r Result) Value(m Metric) uint64 {
	switch m {
	case Lines:
		return r.Lines
	case Words:
		return r.Words
	case Chars:
		return r.Chars
	default:
		return r.Bytes
	}
}

// Add accumulates other into r field-wise. The Summary label is kept.
func (r *Result) Add(other Result) {
	r.Lines += other.Lines
	r.Words += other.Words
	r.Chars += other.Chars
	r.Bytes += other.Bytes
}
