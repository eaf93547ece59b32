package model

// Metric is one of the four countable quantities. The declaration order is
// the canonical display order of the report columns: lines come first,
// bytes last, no matter in which order the flags were given.
type Metric int

const (
	Lines Metric = iota
	Words
	Chars
	Bytes
)

// ParseMetric maps a command line token to a Metric. Tokens follow the
// classic wc flags: -l, -w, -m, -c. Anything else is not a metric and the
// caller treats it as a file name.
func ParseMetric(token string) (Metric, bool) {
	switch token {
	case "-l":
		return Lines, true
	case "-w":
		return Words, true
	case "-m":
		return Chars, true
	case "-c":
		return Bytes, true
	default:
		return 0, false
	}
}

// DefaultMetrics is the metric set used when no flag was given. Chars is
// deliberately not part of it.
func DefaultMetrics() []Metric {
	return []Metric{Lines, Words, Bytes}
}

func (m Metric) String() string {
	switch m {
	case Lines:
		return "lines"
	case Words:
		return "words"
	case Chars:
		return "chars"
	case Bytes:
		return "bytes"
	default:
		return "unknown"
	}
}
