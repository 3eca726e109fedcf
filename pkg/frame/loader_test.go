package frame_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/frameinfo/pkg/frame"
	"github.com/ajitpratap0/frameinfo/pkg/infoerrors"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Run("typed columns with nulls", func(t *testing.T) {
		path := writeTempCSV(t, "id,name,score\n1,alpha,1.5\n2,beta,\n3,,3.25\n")

		tbl, err := frame.LoadCSV(path)
		require.NoError(t, err)
		defer tbl.Release()

		assert.Equal(t, int64(3), tbl.NumRows())
		assert.Equal(t, 3, tbl.NumCols())
		assert.Equal(t, []string{"id", "name", "score"}, tbl.ColumnNames())

		counts, ok := tbl.NullCounts()
		require.True(t, ok)
		assert.Equal(t, int64(1), counts["name"])
		assert.Equal(t, int64(1), counts["score"])
		assert.Equal(t, int64(0), counts["id"])
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := frame.LoadCSV(filepath.Join(t.TempDir(), "nope.csv"))
		require.Error(t, err)
		assert.True(t, infoerrors.IsType(err, infoerrors.ErrorTypeFile))
	})

	t.Run("header only", func(t *testing.T) {
		path := writeTempCSV(t, "id,name\n")
		_, err := frame.LoadCSV(path)
		require.Error(t, err)
		assert.True(t, infoerrors.IsType(err, infoerrors.ErrorTypeData))
	})
}

func TestLoadIPC(t *testing.T) {
	rec := buildTestRecord(t)
	defer rec.Release()

	path := filepath.Join(t.TempDir(), "data.arrow")
	f, err := os.Create(path)
	require.NoError(t, err)

	w, err := ipc.NewFileWriter(f, ipc.WithSchema(rec.Schema()))
	require.NoError(t, err)
	// Two batches to exercise batch combination on read.
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Write(rec))
	require.NoError(t, w.Close())
	require.NoError(t, f.Close())

	tbl, err := frame.LoadIPC(path)
	require.NoError(t, err)
	defer tbl.Release()

	assert.Equal(t, int64(6), tbl.NumRows())
	assert.Equal(t, 3, tbl.NumCols())
	assert.Equal(t, []string{"id", "name", "score"}, tbl.ColumnNames())

	counts, ok := tbl.NullCounts()
	require.True(t, ok)
	assert.Equal(t, int64(2), counts["name"])
}

func TestLoadFile(t *testing.T) {
	t.Run("dispatches by extension", func(t *testing.T) {
		path := writeTempCSV(t, "a,b\n1,2\n")
		tbl, err := frame.LoadFile(context.Background(), path)
		require.NoError(t, err)
		defer tbl.Release()
		assert.Equal(t, int64(1), tbl.NumRows())
	})

	t.Run("unrecognized extension", func(t *testing.T) {
		_, err := frame.LoadFile(context.Background(), "data.xlsx")
		require.Error(t, err)
		assert.True(t, infoerrors.IsType(err, infoerrors.ErrorTypeFile))
	})
}
