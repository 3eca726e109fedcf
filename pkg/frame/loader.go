package frame

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	arrowcsv "github.com/apache/arrow-go/v18/arrow/csv"
	"github.com/apache/arrow-go/v18/arrow/ipc"
	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/apache/arrow-go/v18/parquet/file"
	"github.com/apache/arrow-go/v18/parquet/pqarrow"

	"github.com/ajitpratap0/frameinfo/pkg/infoerrors"
)

// LoadFile loads a tabular file into an ArrowTable, dispatching on the file
// extension: .csv, .parquet, and .arrow/.ipc/.feather are recognized.
// The caller must Release the returned table.
func LoadFile(ctx context.Context, path string) (*ArrowTable, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(path)
	case ".parquet":
		return LoadParquet(ctx, path)
	case ".arrow", ".ipc", ".feather":
		return LoadIPC(path)
	default:
		return nil, infoerrors.Newf(infoerrors.ErrorTypeFile,
			"unrecognized table format %q", filepath.Ext(path)).
			WithDetail("path", path)
	}
}

// LoadCSV reads a headered CSV file into a single record batch, inferring
// column types from the data.
func LoadCSV(path string) (*ArrowTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, infoerrors.Wrap(err, infoerrors.ErrorTypeFile, "failed to open CSV file")
	}
	defer f.Close()

	// Chunk size -1 reads the whole file as one record batch.
	rdr := arrowcsv.NewInferringReader(f,
		arrowcsv.WithHeader(true),
		arrowcsv.WithChunk(-1),
		arrowcsv.WithNullReader(true, "", "NULL", "null"),
	)
	defer rdr.Release()

	if !rdr.Next() {
		if err := rdr.Err(); err != nil {
			return nil, infoerrors.Wrap(err, infoerrors.ErrorTypeData, "failed to parse CSV data").
				WithDetail("path", path)
		}
		return nil, infoerrors.New(infoerrors.ErrorTypeData, "CSV file contains no data rows").
			WithDetail("path", path)
	}

	return NewArrowTable(rdr.Record()), nil
}

// LoadParquet reads a Parquet file into a single record batch.
func LoadParquet(ctx context.Context, path string) (*ArrowTable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, infoerrors.Wrap(err, infoerrors.ErrorTypeFile, "failed to read Parquet file")
	}

	pf, err := file.NewParquetReader(bytes.NewReader(data))
	if err != nil {
		return nil, infoerrors.Wrap(err, infoerrors.ErrorTypeData, "failed to open Parquet data").
			WithDetail("path", path)
	}
	defer pf.Close()

	mem := memory.NewGoAllocator()
	arrowReader, err := pqarrow.NewFileReader(pf, pqarrow.ArrowReadProperties{}, mem)
	if err != nil {
		return nil, infoerrors.Wrap(err, infoerrors.ErrorTypeData, "failed to create Arrow reader").
			WithDetail("path", path)
	}

	tbl, err := arrowReader.ReadTable(ctx)
	if err != nil {
		return nil, infoerrors.Wrap(err, infoerrors.ErrorTypeData, "failed to read Parquet table").
			WithDetail("path", path)
	}
	defer tbl.Release()

	rec, err := tableToRecord(tbl, mem)
	if err != nil {
		return nil, err
	}
	defer rec.Release()

	return NewArrowTable(rec), nil
}

// LoadIPC reads an Arrow IPC file, combining all record batches into one.
func LoadIPC(path string) (*ArrowTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, infoerrors.Wrap(err, infoerrors.ErrorTypeFile, "failed to open Arrow IPC file")
	}
	defer f.Close()

	rdr, err := ipc.NewFileReader(f, ipc.WithAllocator(memory.NewGoAllocator()))
	if err != nil {
		return nil, infoerrors.Wrap(err, infoerrors.ErrorTypeData, "failed to open Arrow IPC data").
			WithDetail("path", path)
	}
	defer rdr.Close()

	var records []arrow.Record
	defer func() {
		for _, r := range records {
			r.Release()
		}
	}()

	for {
		rec, err := rdr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, infoerrors.Wrap(err, infoerrors.ErrorTypeData, "failed to read Arrow record batch").
				WithDetail("path", path)
		}
		rec.Retain()
		records = append(records, rec)
	}

	if len(records) == 1 {
		return NewArrowTable(records[0]), nil
	}

	combined, err := combineRecords(rdr.Schema(), records, memory.NewGoAllocator())
	if err != nil {
		return nil, err
	}
	defer combined.Release()

	return NewArrowTable(combined), nil
}

// tableToRecord flattens a chunked Arrow table into a single record batch.
func tableToRecord(tbl arrow.Table, mem memory.Allocator) (arrow.Record, error) {
	cols := make([]arrow.Array, tbl.NumCols())
	defer func() {
		for _, c := range cols {
			if c != nil {
				c.Release()
			}
		}
	}()

	for i := range cols {
		chunks := tbl.Column(i).Data().Chunks()
		col, err := concatChunks(tbl.Schema().Field(i).Type, chunks, mem)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	rec := array.NewRecord(tbl.Schema(), cols, tbl.NumRows())
	return rec, nil
}

// combineRecords concatenates record batches sharing a schema into one.
func combineRecords(schema *arrow.Schema, records []arrow.Record, mem memory.Allocator) (arrow.Record, error) {
	var totalRows int64
	for _, r := range records {
		totalRows += r.NumRows()
	}

	cols := make([]arrow.Array, len(schema.Fields()))
	defer func() {
		for _, c := range cols {
			if c != nil {
				c.Release()
			}
		}
	}()

	for i := range cols {
		chunks := make([]arrow.Array, len(records))
		for j, r := range records {
			chunks[j] = r.Column(i)
		}
		col, err := concatChunks(schema.Field(i).Type, chunks, mem)
		if err != nil {
			return nil, err
		}
		cols[i] = col
	}

	return array.NewRecord(schema, cols, totalRows), nil
}

// concatChunks merges array chunks into one array, handling the zero- and
// single-chunk cases without copying.
func concatChunks(dt arrow.DataType, chunks []arrow.Array, mem memory.Allocator) (arrow.Array, error) {
	switch len(chunks) {
	case 0:
		return array.MakeArrayOfNull(mem, dt, 0), nil
	case 1:
		chunks[0].Retain()
		return chunks[0], nil
	default:
		concatenated, err := array.Concatenate(chunks, mem)
		if err != nil {
			return nil, infoerrors.Wrap(err, infoerrors.ErrorTypeData, "failed to concatenate column chunks")
		}
		return concatenated, nil
	}
}
