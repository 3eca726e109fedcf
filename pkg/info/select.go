package info

import (
	"github.com/ajitpratap0/frameinfo/pkg/infoerrors"
)

// SelectIndices returns the column indices to display and whether any columns
// were omitted. Indices are strictly ascending with no duplicates.
//
// In full mode the MaxColumns cap still applies: exceeding it falls back to
// head_tail behavior. This is a policy override, not an error; callers that
// care can observe the fallback through Summary.DisplayFallback.
func SelectIndices(totalCols int, mode DisplayMode, head, tail, maxCols int) ([]int, bool, error) {
	if totalCols < 0 {
		return nil, false, infoerrors.Newf(infoerrors.ErrorTypeValidation,
			"total columns must be >= 0, got %d", totalCols).
			WithDetail("field", "total_columns").
			WithDetail("value", totalCols)
	}
	if head < 0 {
		return nil, false, infoerrors.Newf(infoerrors.ErrorTypeValidation,
			"head must be >= 0, got %d", head).
			WithDetail("field", "head").
			WithDetail("value", head)
	}
	if tail < 0 {
		return nil, false, infoerrors.Newf(infoerrors.ErrorTypeValidation,
			"tail must be >= 0, got %d", tail).
			WithDetail("field", "tail").
			WithDetail("value", tail)
	}
	if maxCols < 1 {
		return nil, false, infoerrors.Newf(infoerrors.ErrorTypeValidation,
			"max_columns must be >= 1, got %d", maxCols).
			WithDetail("field", "max_columns").
			WithDetail("value", maxCols)
	}
	if mode != DisplayFull && mode != DisplayHeadTail && mode != DisplayAuto {
		return nil, false, infoerrors.Newf(infoerrors.ErrorTypeValidation,
			"display must be one of full, head_tail, auto, got %q", string(mode)).
			WithDetail("field", "display").
			WithDetail("value", string(mode))
	}

	if totalCols == 0 {
		return []int{}, false, nil
	}

	if mode == DisplayAuto {
		if totalCols > maxCols {
			mode = DisplayHeadTail
		} else {
			mode = DisplayFull
		}
	}

	if mode == DisplayFull {
		if totalCols <= maxCols {
			indices := make([]int, totalCols)
			for i := range indices {
				indices[i] = i
			}
			return indices, false, nil
		}
		// Even full mode respects the cap.
		mode = DisplayHeadTail
	}

	showHead := head
	if showHead > totalCols {
		showHead = totalCols
	}
	showTail := tail
	if remaining := totalCols - showHead; showTail > remaining {
		showTail = remaining
	}

	indices := make([]int, 0, showHead+showTail)
	for i := 0; i < showHead; i++ {
		indices = append(indices, i)
	}
	for i := totalCols - showTail; i < totalCols; i++ {
		indices = append(indices, i)
	}

	omitted := showHead+showTail < totalCols
	return indices, omitted, nil
}
