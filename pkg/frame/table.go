// Package frame defines the table capability surface consumed by the summary
// printer, plus an adapter over Apache Arrow record batches.
//
// A Table supplies already-materialized metadata only: counts, names, and
// type labels. Everything beyond that is an optional capability discovered by
// interface assertion. Optional accessors report availability through a
// second return value rather than an error, so an unavailable statistic
// degrades the output instead of failing the call.
package frame

// Table is the minimal capability every summarizable table provides.
// Column names and type labels are ordered and parallel; names are expected
// to be unique within one table but uniqueness is not enforced.
type Table interface {
	// NumRows returns the row count.
	NumRows() int64
	// NumCols returns the column count.
	NumCols() int
	// ColumnNames returns the ordered column names.
	ColumnNames() []string
	// TypeLabels returns the ordered printable type label per column.
	TypeLabels() []string
}

// SizedTable is implemented by tables that can estimate their in-memory
// footprint. ok is false when the estimate is unavailable.
type SizedTable interface {
	EstimatedSize() (bytes int64, ok bool)
}

// NullCountedTable is implemented by tables that can report per-column null
// counts, keyed by column name. ok is false when the counts are unavailable.
type NullCountedTable interface {
	NullCounts() (counts map[string]int64, ok bool)
}

// PreviewableTable is implemented by tables that can render a bounded sample
// of their first n rows. ok is false when no preview can be produced.
type PreviewableTable interface {
	Preview(n int64) (text string, ok bool)
}

// ClassNamer is implemented by tables that know the name of their backing
// representation, used for the class line of the summary header.
type ClassNamer interface {
	ClassName() string
}
