package log_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/vyskocilm/tally/internal/log"
	"github.com/stretchr/testify/require"
)

func TestContextAttrs(t *testing.T) {
	t.Parallel()
	tests := []struct {
		scenario string // description of this test case
		given    []slog.Attr
		then     string
	}{
		{
			scenario: "nil attrs",
			given:    nil,
			then:     `{"level":"INFO","msg":"source counted","source":"a.txt"}`,
		},
		{
			scenario: "empty attrs",
			given:    []slog.Attr{},
			then:     `{"level":"INFO","msg":"source counted","source":"a.txt"}`,
		},
		{
			scenario: "cmd attr",
			given: []slog.Attr{
				slog.String("cmd", "count"),
			},
			then: `{"level":"INFO","msg":"source counted","source":"a.txt","cmd":"count"}`,
		},
		{
			scenario: "slog.Group",
			given: []slog.Attr{
				slog.Group("tally", slog.Int("pid", 42)),
			},
			then: `{"level":"INFO","msg":"source counted","source":"a.txt","tally":{"pid":42}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.scenario, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
				AddSource: false,
				Level:     slog.LevelDebug,
				ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			})
			logger := slog.New(log.NewContextHandler(base))

			ctx := log.ContextAttrs(t.Context(), tt.given...)
			logger.InfoContext(ctx, "source counted", slog.String("source", "a.txt"))

			t.Logf("log output: %s", buf.String())
			require.JSONEq(t, tt.then, buf.String())
		})
	}
}

func TestContextAttrsAccumulate(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	base := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	})
	logger := slog.New(log.NewContextHandler(base))

	ctx := log.ContextAttrs(t.Context(), slog.String("cmd", "count"))
	ctx = log.ContextAttrs(ctx, slog.Int("pid", 42))
	logger.InfoContext(ctx, "msg")

	require.JSONEq(t, `{"level":"INFO","msg":"msg","cmd":"count","pid":42}`, buf.String())
}

func TestNew(t *testing.T) {
	t.Parallel()
	require.NotNil(t, log.New(true))
	require.NotNil(t, log.New(false))
}
