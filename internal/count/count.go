// Package count implements the streaming counter. It reads the input in
// line-feed delimited segments, so the peak memory is bounded by the longest
// line and not by the size of the whole input.
package count

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"unicode/utf8"

	"github.com/vyskocilm/tally/internal/model"
)

// Count drains r and returns the accumulated counters. name becomes the
// Summary label of the result, empty for the anonymous standard input.
//
// Each segment is read up to and including the '\n' byte. A final segment
// without the terminator still counts as one line. Words are maximal
// Unicode-whitespace delimited tokens, chars are decoded code points. A
// segment which is not valid UTF-8 aborts the whole source with
// model.ErrNotUTF8 wrapped in the returned error.
func Count(ctx context.Context, name string, r io.Reader) (model.Result, error) {
	res := model.Result{Summary: name}
	br := bufio.NewReader(r)

	for {
		if err := ctx.Err(); err != nil {
			return model.Result{}, err
		}

		segment, err := br.ReadBytes('\n')
		if len(segment) > 0 {
			res.Lines++
			res.Bytes += uint64(len(segment))
			if !utf8.Valid(segment) {
				return model.Result{}, fmt.Errorf("counting %s, line %d: %w", label(name), res.Lines, model.ErrNotUTF8)
			}
			res.Words += uint64(len(bytes.Fields(segment)))
			res.Chars += uint64(utf8.RuneCount(segment))
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return model.Result{}, fmt.Errorf("reading %s: %w", label(name), err)
		}
	}

	slog.DebugContext(ctx, "source counted",
		"source", label(name),
		"lines", res.Lines,
		"words", res.Words,
		"chars", res.Chars,
		"bytes", res.Bytes,
	)
	return res, nil
}

func label(name string) string {
	if name == "" {
		return "standard input"
	}
	return name
}
