package source_test

import (
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"testing"

	"github.com/vyskocilm/tally/internal/model"
	"github.com/vyskocilm/tally/internal/source"
	"github.com/vyskocilm/tally/internal/stats"

	"github.com/stretchr/testify/require"
)

func TestOpen(t *testing.T) {
	st := stats.New(t.Name())
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	b := filepath.Join(dir, "b.txt")
	require.NoError(t, os.WriteFile(a, []byte("hi\n"), 0644))
	require.NoError(t, os.WriteFile(b, []byte("there\n"), 0644))

	sources, err := source.Open([]string{a, b}, st)
	require.NoError(t, err)
	defer source.Close(sources)

	require.Len(t, sources, 2)
	// argument order is preserved
	require.Equal(t, a, sources[0].Name)
	require.Equal(t, b, sources[1].Name)

	content, err := io.ReadAll(sources[0])
	require.NoError(t, err)
	require.Equal(t, "hi\n", string(content))

	collected := maps.Collect(st.Stats())
	require.Equal(t, "2", collected[t.Name()+model.StatsSourcesTotal])
	require.Equal(t, "0", collected[t.Name()+model.StatsSourcesErrors])
}

func TestOpenMissingFile(t *testing.T) {
	st := stats.New(t.Name())
	dir := t.TempDir()
	a := filepath.Join(dir, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("hi\n"), 0644))

	sources, err := source.Open([]string{a, filepath.Join(dir, "no-such-file")}, st)
	require.ErrorIs(t, err, fs.ErrNotExist)
	require.Nil(t, sources)

	collected := maps.Collect(st.Stats())
	require.Equal(t, "2", collected[t.Name()+model.StatsSourcesTotal])
	require.Equal(t, "1", collected[t.Name()+model.StatsSourcesErrors])
}

func TestOpenStdin(t *testing.T) {
	st := stats.New(t.Name())

	sources, err := source.Open(nil, st)
	require.NoError(t, err)
	require.Len(t, sources, 1)
	// anonymous source has no name and closing it must not touch os.Stdin
	require.Equal(t, "", sources[0].Name)
	require.NoError(t, sources[0].Close())

	collected := maps.Collect(st.Stats())
	require.Equal(t, "1", collected[t.Name()+model.StatsSourcesTotal])
}
