package info

import (
	"fmt"
	"strconv"

	"github.com/dustin/go-humanize"
)

// byteUnits are the IEC units used by HumanizeBytes, in ascending order.
var byteUnits = []string{"B", "KiB", "MiB", "GiB", "TiB", "PiB"}

// HumanizeBytes converts a byte count into a human-readable string using
// 1024-based units, e.g. "12.34 MiB". A nil count renders as "Unknown" and a
// negative count renders as its plain decimal form, keeping bad upstream
// values visible.
func HumanizeBytes(n *int64) string {
	if n == nil {
		return "Unknown"
	}
	if *n < 0 {
		return strconv.FormatInt(*n, 10)
	}

	size := float64(*n)
	i := 0
	for size >= 1024.0 && i < len(byteUnits)-1 {
		size /= 1024.0
		i++
	}
	if i == 0 {
		return fmt.Sprintf("%d %s", int64(size), byteUnits[i])
	}
	return fmt.Sprintf("%.2f %s", size, byteUnits[i])
}

// columnLayout holds the computed field widths for the column table.
// Widths reflect displayed columns only, never hidden ones.
type columnLayout struct {
	nameWidth    int
	dtypeWidth   int
	hasNullStats bool
}

const ellipsisMarker = "..."

// computeLayout derives field widths from the columns that will actually be
// shown, including the ellipsis marker when columns are omitted.
func computeLayout(names, typeLabels []string, indices []int, omitted bool, showNullStats bool, nullCounts map[string]int64) columnLayout {
	nameWidth := len("Column")
	dtypeWidth := len("Dtype")

	for _, i := range indices {
		if len(names[i]) > nameWidth {
			nameWidth = len(names[i])
		}
		if len(typeLabels[i]) > dtypeWidth {
			dtypeWidth = len(typeLabels[i])
		}
	}
	if omitted && len(ellipsisMarker) > nameWidth {
		nameWidth = len(ellipsisMarker)
	}

	return columnLayout{
		nameWidth:    nameWidth,
		dtypeWidth:   dtypeWidth,
		hasNullStats: showNullStats && len(nullCounts) > 0,
	}
}

// renderColumnTable produces the "Columns:" block: a header line, one row per
// displayed column, and a single ellipsis row at each omission gap. An empty
// selection renders the "(no columns)" placeholder instead.
func renderColumnTable(names, typeLabels []string, indices []int, omitted bool, rows int64, layout columnLayout, nullCounts map[string]int64) []string {
	lines := make([]string, 0, len(indices)+3)
	lines = append(lines, "Columns:")

	if len(indices) == 0 {
		lines = append(lines, "(no columns)")
		return lines
	}

	if layout.hasNullStats {
		lines = append(lines, fmt.Sprintf("%3s  %-*s  %-*s  %8s  %6s  %6s",
			"#", layout.nameWidth, "Column", layout.dtypeWidth, "Dtype",
			"Non-Null", "Null", "Null%"))
	} else {
		lines = append(lines, fmt.Sprintf("%3s  %-*s  %-*s",
			"#", layout.nameWidth, "Column", layout.dtypeWidth, "Dtype"))
	}

	prev := -1
	for _, i := range indices {
		if prev >= 0 && i != prev+1 {
			// Index field stays blank for visual clarity.
			lines = append(lines, fmt.Sprintf("%3s  %-*s  %-*s",
				"", layout.nameWidth, ellipsisMarker, layout.dtypeWidth, ""))
		}
		lines = append(lines, formatColumnRow(i, names[i], typeLabels[i], rows, layout, nullCounts))
		prev = i
	}

	return lines
}

// formatColumnRow renders a single column row, appending null statistics when
// the layout carries them. Absent null counts default to zero.
func formatColumnRow(idx int, name, typeLabel string, rows int64, layout columnLayout, nullCounts map[string]int64) string {
	if !layout.hasNullStats {
		return fmt.Sprintf("%3d  %-*s  %-*s",
			idx, layout.nameWidth, name, layout.dtypeWidth, typeLabel)
	}

	nulls := nullCounts[name]
	nonNulls := rows - nulls
	pct := 0.0
	if rows > 0 {
		pct = float64(nulls) / float64(rows) * 100.0
	}

	return fmt.Sprintf("%3d  %-*s  %-*s  %8s  %6s  %5.2f%%",
		idx, layout.nameWidth, name, layout.dtypeWidth, typeLabel,
		humanize.Comma(nonNulls), humanize.Comma(nulls), pct)
}
