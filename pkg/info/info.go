package info

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"go.uber.org/zap"

	"github.com/ajitpratap0/frameinfo/pkg/frame"
	"github.com/ajitpratap0/frameinfo/pkg/infoerrors"
	"github.com/ajitpratap0/frameinfo/pkg/logger"
)

// Summary is the result of one summarization call. Dtypes is always
// complete, independent of any display truncation.
type Summary struct {
	// Rows is the row count.
	Rows int64 `json:"rows"`
	// Cols is the column count.
	Cols int `json:"cols"`
	// EstimatedSizeBytes is the estimated memory footprint, nil when the
	// table cannot report one.
	EstimatedSizeBytes *int64 `json:"estimated_size_bytes"`
	// Dtypes maps every column name to its type label.
	Dtypes map[string]string `json:"dtypes"`
	// DisplayFallback is true when an explicitly requested full display was
	// reinterpreted as head_tail because the column count exceeded
	// MaxColumns. The printed output does not signal this.
	DisplayFallback bool `json:"display_fallback"`
}

// Summarize prints an info-style summary of t to the configured output sink
// and returns the Summary. Build opts from DefaultOptions; a zero Options
// value fails validation.
//
// Optional table capabilities degrade gracefully: a missing size estimate
// renders as "Unknown" and missing null counts omit the null-stat columns.
// Validation happens before any byte is written; either the full summary is
// produced or nothing is.
func Summarize(t frame.Table, opts Options) (*Summary, error) {
	if t == nil {
		return nil, infoerrors.New(infoerrors.ErrorTypeType, "table must not be nil")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rows := t.NumRows()
	cols := t.NumCols()
	names := t.ColumnNames()
	typeLabels := t.TypeLabels()
	if len(names) != cols || len(typeLabels) != cols {
		return nil, infoerrors.Newf(infoerrors.ErrorTypeType,
			"table reports %d columns but supplies %d names and %d type labels",
			cols, len(names), len(typeLabels))
	}

	indices, omitted, err := SelectIndices(cols, opts.Display, opts.Head, opts.Tail, opts.MaxColumns)
	if err != nil {
		return nil, err
	}

	estBytes := estimatedSize(t)
	nullCounts := fetchNullCounts(t, opts, cols)

	lines := make([]string, 0, len(indices)+8)
	lines = append(lines, fmt.Sprintf("<class '%s'>", className(t)))
	if opts.Name != "" {
		lines = append(lines, "Name: "+opts.Name)
	}
	lines = append(lines, fmt.Sprintf("Shape: (%s, %s)",
		humanize.Comma(rows), humanize.Comma(int64(cols))))
	lines = append(lines, "Estimated size: "+HumanizeBytes(estBytes))

	layout := computeLayout(names, typeLabels, indices, omitted, opts.ShowNullStats, nullCounts)
	lines = append(lines, renderColumnTable(names, typeLabels, indices, omitted, rows, layout, nullCounts)...)

	if opts.ShowSample > 0 {
		if p, ok := t.(frame.PreviewableTable); ok {
			if text, ok := p.Preview(int64(opts.ShowSample)); ok {
				lines = append(lines, fmt.Sprintf("Sample (head %d):", opts.ShowSample))
				lines = append(lines, text)
			}
		}
	}

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if _, err := fmt.Fprintln(out, strings.Join(lines, "\n")); err != nil {
		return nil, infoerrors.Wrap(err, infoerrors.ErrorTypeInternal, "failed to write summary")
	}

	dtypes := make(map[string]string, cols)
	for i := 0; i < cols; i++ {
		dtypes[names[i]] = typeLabels[i]
	}

	return &Summary{
		Rows:               rows,
		Cols:               cols,
		EstimatedSizeBytes: estBytes,
		Dtypes:             dtypes,
		DisplayFallback:    opts.Display == DisplayFull && cols > opts.MaxColumns,
	}, nil
}

// estimatedSize fetches the optional size estimate, nil when unavailable.
func estimatedSize(t frame.Table) *int64 {
	st, ok := t.(frame.SizedTable)
	if !ok {
		return nil
	}
	bytes, ok := st.EstimatedSize()
	if !ok {
		logger.Debug("table size estimate unavailable", zap.String("class", className(t)))
		return nil
	}
	return &bytes
}

// fetchNullCounts fetches the optional per-column null counts, empty when
// disabled or unavailable.
func fetchNullCounts(t frame.Table, opts Options, cols int) map[string]int64 {
	if !opts.ShowNullStats || cols == 0 {
		return nil
	}
	nc, ok := t.(frame.NullCountedTable)
	if !ok {
		return nil
	}
	counts, ok := nc.NullCounts()
	if !ok {
		logger.Debug("table null counts unavailable", zap.String("class", className(t)))
		return nil
	}
	return counts
}

// className resolves the label for the header class line.
func className(t frame.Table) string {
	if cn, ok := t.(frame.ClassNamer); ok {
		return cn.ClassName()
	}
	return fmt.Sprintf("%T", t)
}
