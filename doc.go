// Package frameinfo provides info-style summaries for in-memory columnar
// tables: shape, estimated memory size, per-column dtypes and null
// statistics, and an optional row sample.
//
// All data storage, computation, and memory accounting are delegated to the
// backing dataframe library (Apache Arrow via arrow-go); frameinfo only
// decides which columns to display under a column limit, lays out the text
// table, and renders it in a fixed format.
//
// # Quick Start
//
// Summarize an Arrow record batch:
//
//	import (
//	    "github.com/ajitpratap0/frameinfo/pkg/frame"
//	    "github.com/ajitpratap0/frameinfo/pkg/info"
//	)
//
//	tbl := frame.NewArrowTable(rec)
//	defer tbl.Release()
//
//	summary, err := info.Summarize(tbl, info.DefaultOptions())
//
// Any type implementing frame.Table can be summarized; the optional
// capabilities (frame.SizedTable, frame.NullCountedTable,
// frame.PreviewableTable) enrich the output when present and degrade
// gracefully when absent.
//
// The frameinfo CLI under cmd/frameinfo loads CSV, Parquet, and Arrow IPC
// files and prints their summary.
package frameinfo
