package frame

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
)

// ArrowTable adapts an Arrow record batch to the Table capability surface.
// It retains the underlying record; call Release when done.
type ArrowTable struct {
	record arrow.Record
}

// NewArrowTable wraps an Arrow record batch. The record is retained.
func NewArrowTable(rec arrow.Record) *ArrowTable {
	rec.Retain()
	return &ArrowTable{record: rec}
}

// Release releases the underlying record.
func (t *ArrowTable) Release() {
	t.record.Release()
}

// Record returns the wrapped record batch.
func (t *ArrowTable) Record() arrow.Record {
	return t.record
}

// NumRows returns the row count.
func (t *ArrowTable) NumRows() int64 {
	return t.record.NumRows()
}

// NumCols returns the column count.
func (t *ArrowTable) NumCols() int {
	return int(t.record.NumCols())
}

// ColumnNames returns the ordered column names from the schema.
func (t *ArrowTable) ColumnNames() []string {
	fields := t.record.Schema().Fields()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}
	return names
}

// TypeLabels returns the Arrow type name per column, e.g. "int64" or
// "timestamp[ms]".
func (t *ArrowTable) TypeLabels() []string {
	fields := t.record.Schema().Fields()
	labels := make([]string, len(fields))
	for i, f := range fields {
		labels[i] = f.Type.String()
	}
	return labels
}

// ClassName reports the backing representation for the summary header.
func (t *ArrowTable) ClassName() string {
	return "arrow.Record"
}

// EstimatedSize sums the physical buffer sizes of all columns, including
// nested children. This mirrors what the allocator actually holds, not the
// logical data size.
func (t *ArrowTable) EstimatedSize() (int64, bool) {
	var total int64
	for _, col := range t.record.Columns() {
		total += dataSize(col.Data())
	}
	return total, true
}

func dataSize(data arrow.ArrayData) int64 {
	var size int64
	for _, buf := range data.Buffers() {
		if buf != nil {
			size += int64(buf.Len())
		}
	}
	for _, child := range data.Children() {
		size += dataSize(child)
	}
	return size
}

// NullCounts returns the per-column null counts keyed by column name.
func (t *ArrowTable) NullCounts() (map[string]int64, bool) {
	fields := t.record.Schema().Fields()
	counts := make(map[string]int64, len(fields))
	for i, f := range fields {
		counts[f.Name] = int64(t.record.Column(i).NullN())
	}
	return counts, true
}

// Preview renders the first n rows as a fixed-width text block.
func (t *ArrowTable) Preview(n int64) (string, bool) {
	if n <= 0 {
		return "", false
	}
	if n > t.record.NumRows() {
		n = t.record.NumRows()
	}

	names := t.ColumnNames()
	cells := make([][]string, len(names))
	widths := make([]int, len(names))
	for c := range names {
		widths[c] = len(names[c])
		col := t.record.Column(c)
		cells[c] = make([]string, n)
		for r := int64(0); r < n; r++ {
			v := formatValue(col, int(r))
			cells[c][r] = v
			if len(v) > widths[c] {
				widths[c] = len(v)
			}
		}
	}

	var b strings.Builder
	for c, name := range names {
		if c > 0 {
			b.WriteString("  ")
		}
		fmt.Fprintf(&b, "%-*s", widths[c], name)
	}
	for r := int64(0); r < n; r++ {
		b.WriteByte('\n')
		for c := range names {
			if c > 0 {
				b.WriteString("  ")
			}
			fmt.Fprintf(&b, "%-*s", widths[c], cells[c][r])
		}
	}
	return b.String(), true
}

// formatValue renders a single Arrow array element as display text.
func formatValue(arr arrow.Array, index int) string {
	if arr.IsNull(index) {
		return "null"
	}

	switch a := arr.(type) {
	case *array.Boolean:
		return strconv.FormatBool(a.Value(index))
	case *array.Int8:
		return strconv.FormatInt(int64(a.Value(index)), 10)
	case *array.Int16:
		return strconv.FormatInt(int64(a.Value(index)), 10)
	case *array.Int32:
		return strconv.FormatInt(int64(a.Value(index)), 10)
	case *array.Int64:
		return strconv.FormatInt(a.Value(index), 10)
	case *array.Uint32:
		return strconv.FormatUint(uint64(a.Value(index)), 10)
	case *array.Uint64:
		return strconv.FormatUint(a.Value(index), 10)
	case *array.Float32:
		return strconv.FormatFloat(float64(a.Value(index)), 'g', -1, 32)
	case *array.Float64:
		return strconv.FormatFloat(a.Value(index), 'g', -1, 64)
	case *array.String:
		return a.Value(index)
	case *array.LargeString:
		return a.Value(index)
	case *array.Binary:
		return fmt.Sprintf("%x", a.Value(index))
	case *array.Date32:
		days := a.Value(index)
		return time.Unix(int64(days)*86400, 0).UTC().Format("2006-01-02")
	case *array.Timestamp:
		ts := a.Value(index)
		tsType := a.DataType().(*arrow.TimestampType)
		var tm time.Time
		switch tsType.Unit {
		case arrow.Second:
			tm = time.Unix(int64(ts), 0).UTC()
		case arrow.Millisecond:
			tm = time.Unix(0, int64(ts)*1e6).UTC()
		case arrow.Microsecond:
			tm = time.Unix(0, int64(ts)*1e3).UTC()
		case arrow.Nanosecond:
			tm = time.Unix(0, int64(ts)).UTC()
		}
		return tm.Format(time.RFC3339)
	default:
		return arr.ValueStr(index)
	}
}
