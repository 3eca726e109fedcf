package info

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajitpratap0/frameinfo/pkg/infoerrors"
)

func TestSelectIndices(t *testing.T) {
	tests := []struct {
		name        string
		totalCols   int
		mode        DisplayMode
		head        int
		tail        int
		maxCols     int
		wantIndices []int
		wantOmitted bool
	}{
		{
			name:      "zero columns full",
			totalCols: 0, mode: DisplayFull, head: 5, tail: 5, maxCols: 60,
			wantIndices: []int{}, wantOmitted: false,
		},
		{
			name:      "zero columns head_tail",
			totalCols: 0, mode: DisplayHeadTail, head: 5, tail: 5, maxCols: 60,
			wantIndices: []int{}, wantOmitted: false,
		},
		{
			name:      "full within cap",
			totalCols: 4, mode: DisplayFull, head: 5, tail: 5, maxCols: 60,
			wantIndices: []int{0, 1, 2, 3}, wantOmitted: false,
		},
		{
			name:      "full beyond cap falls back to head_tail",
			totalCols: 10, mode: DisplayFull, head: 2, tail: 2, maxCols: 5,
			wantIndices: []int{0, 1, 8, 9}, wantOmitted: true,
		},
		{
			name:      "head_tail basic",
			totalCols: 30, mode: DisplayHeadTail, head: 3, tail: 3, maxCols: 60,
			wantIndices: []int{0, 1, 2, 27, 28, 29}, wantOmitted: true,
		},
		{
			name:      "head_tail covering whole table",
			totalCols: 6, mode: DisplayHeadTail, head: 3, tail: 3, maxCols: 60,
			wantIndices: []int{0, 1, 2, 3, 4, 5}, wantOmitted: false,
		},
		{
			name:      "head_tail overlapping request clamps tail",
			totalCols: 5, mode: DisplayHeadTail, head: 4, tail: 4, maxCols: 60,
			wantIndices: []int{0, 1, 2, 3, 4}, wantOmitted: false,
		},
		{
			name:      "head_tail head exceeds table",
			totalCols: 3, mode: DisplayHeadTail, head: 10, tail: 10, maxCols: 60,
			wantIndices: []int{0, 1, 2}, wantOmitted: false,
		},
		{
			name:      "head and tail zero selects nothing but flags omission",
			totalCols: 5, mode: DisplayHeadTail, head: 0, tail: 0, maxCols: 60,
			wantIndices: []int{}, wantOmitted: true,
		},
		{
			name:      "head only",
			totalCols: 10, mode: DisplayHeadTail, head: 3, tail: 0, maxCols: 60,
			wantIndices: []int{0, 1, 2}, wantOmitted: true,
		},
		{
			name:      "tail only",
			totalCols: 10, mode: DisplayHeadTail, head: 0, tail: 3, maxCols: 60,
			wantIndices: []int{7, 8, 9}, wantOmitted: true,
		},
		{
			name:      "auto resolves to full within cap",
			totalCols: 10, mode: DisplayAuto, head: 2, tail: 2, maxCols: 10,
			wantIndices: []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, wantOmitted: false,
		},
		{
			name:      "auto resolves to head_tail beyond cap",
			totalCols: 11, mode: DisplayAuto, head: 2, tail: 2, maxCols: 10,
			wantIndices: []int{0, 1, 9, 10}, wantOmitted: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices, omitted, err := SelectIndices(tt.totalCols, tt.mode, tt.head, tt.tail, tt.maxCols)
			require.NoError(t, err)
			assert.Equal(t, tt.wantIndices, indices)
			assert.Equal(t, tt.wantOmitted, omitted)
		})
	}
}

func TestSelectIndicesInvariants(t *testing.T) {
	modes := []DisplayMode{DisplayFull, DisplayHeadTail, DisplayAuto}
	for _, mode := range modes {
		for totalCols := 0; totalCols <= 20; totalCols++ {
			for _, head := range []int{0, 1, 3, 25} {
				for _, tail := range []int{0, 1, 3, 25} {
					indices, omitted, err := SelectIndices(totalCols, mode, head, tail, 8)
					require.NoError(t, err)

					for i, idx := range indices {
						assert.GreaterOrEqual(t, idx, 0)
						assert.Less(t, idx, totalCols)
						if i > 0 {
							assert.Greater(t, idx, indices[i-1],
								"indices must be strictly increasing")
						}
					}
					assert.Equal(t, len(indices) < totalCols, omitted,
						"omitted must hold exactly when columns are hidden")
				}
			}
		}
	}
}

func TestSelectIndicesAutoEquivalence(t *testing.T) {
	t.Run("within cap behaves like full", func(t *testing.T) {
		got, gotOmitted, err := SelectIndices(8, DisplayAuto, 2, 2, 10)
		require.NoError(t, err)
		want, wantOmitted, err := SelectIndices(8, DisplayFull, 2, 2, 10)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, wantOmitted, gotOmitted)
	})

	t.Run("beyond cap behaves like head_tail", func(t *testing.T) {
		got, gotOmitted, err := SelectIndices(30, DisplayAuto, 4, 4, 10)
		require.NoError(t, err)
		want, wantOmitted, err := SelectIndices(30, DisplayHeadTail, 4, 4, 10)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, wantOmitted, gotOmitted)
	})
}

func TestSelectIndicesValidation(t *testing.T) {
	tests := []struct {
		name      string
		totalCols int
		mode      DisplayMode
		head      int
		tail      int
		maxCols   int
		wantField string
	}{
		{"negative total columns", -1, DisplayAuto, 5, 5, 60, "total_columns"},
		{"negative head", 5, DisplayAuto, -1, 5, 60, "head"},
		{"negative tail", 5, DisplayAuto, 5, -1, 60, "tail"},
		{"zero max columns", 5, DisplayAuto, 5, 5, 0, "max_columns"},
		{"unknown mode", 5, DisplayMode("bogus"), 5, 5, 60, "display"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			indices, omitted, err := SelectIndices(tt.totalCols, tt.mode, tt.head, tt.tail, tt.maxCols)
			require.Error(t, err)
			assert.True(t, infoerrors.IsType(err, infoerrors.ErrorTypeValidation))
			assert.Nil(t, indices)
			assert.False(t, omitted)

			var ie *infoerrors.Error
			require.ErrorAs(t, err, &ie)
			assert.Equal(t, tt.wantField, ie.Details["field"])
		})
	}
}
