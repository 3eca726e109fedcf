// Package info renders info-style summaries of columnar tables: shape,
// estimated memory size, per-column dtypes and null statistics, and an
// optional row sample. All data access goes through the frame.Table
// capability surface; this package only selects, lays out, and formats.
package info

import (
	"io"

	"github.com/ajitpratap0/frameinfo/pkg/infoerrors"
)

// DisplayMode controls how many columns the summary table shows.
type DisplayMode string

const (
	// DisplayFull shows all columns, falling back to head/tail when the
	// column count exceeds MaxColumns.
	DisplayFull DisplayMode = "full"
	// DisplayHeadTail shows only the first Head and last Tail columns.
	DisplayHeadTail DisplayMode = "head_tail"
	// DisplayAuto uses full display up to MaxColumns, head/tail beyond.
	DisplayAuto DisplayMode = "auto"
)

// ParseDisplayMode validates a display mode string.
func ParseDisplayMode(s string) (DisplayMode, error) {
	switch DisplayMode(s) {
	case DisplayFull, DisplayHeadTail, DisplayAuto:
		return DisplayMode(s), nil
	default:
		return "", infoerrors.Newf(infoerrors.ErrorTypeValidation,
			"display must be one of full, head_tail, auto, got %q", s).
			WithDetail("field", "display").
			WithDetail("value", s)
	}
}

// Options configures a single summarization call.
type Options struct {
	// Name is an optional label printed in the header block.
	Name string `yaml:"name" json:"name"`
	// Display selects the column display mode.
	Display DisplayMode `yaml:"display" json:"display"`
	// Head is the number of leading columns shown in head_tail mode.
	Head int `yaml:"head" json:"head"`
	// Tail is the number of trailing columns shown in head_tail mode.
	Tail int `yaml:"tail" json:"tail"`
	// MaxColumns is the upper limit for full/auto display. Exceeding it
	// falls back to head_tail mode.
	MaxColumns int `yaml:"max_columns" json:"max_columns"`
	// ShowNullStats controls the Non-Null / Null / Null% columns.
	ShowNullStats bool `yaml:"show_null_stats" json:"show_null_stats"`
	// ShowSample appends the first N rows when greater than zero.
	ShowSample int `yaml:"show_sample" json:"show_sample"`
	// Output is the write destination. Defaults to standard output.
	Output io.Writer `yaml:"-" json:"-"`
}

// DefaultOptions returns the default summarization options.
func DefaultOptions() Options {
	return Options{
		Display:       DisplayAuto,
		Head:          5,
		Tail:          5,
		MaxColumns:    60,
		ShowNullStats: true,
		ShowSample:    0,
	}
}

// Validate checks every option against its documented domain, naming the
// offending field in the returned error.
func (o *Options) Validate() error {
	if _, err := ParseDisplayMode(string(o.Display)); err != nil {
		return err
	}
	if o.Head < 0 {
		return infoerrors.Newf(infoerrors.ErrorTypeValidation, "head must be >= 0, got %d", o.Head).
			WithDetail("field", "head").
			WithDetail("value", o.Head)
	}
	if o.Tail < 0 {
		return infoerrors.Newf(infoerrors.ErrorTypeValidation, "tail must be >= 0, got %d", o.Tail).
			WithDetail("field", "tail").
			WithDetail("value", o.Tail)
	}
	if o.MaxColumns < 1 {
		return infoerrors.Newf(infoerrors.ErrorTypeValidation, "max_columns must be >= 1, got %d", o.MaxColumns).
			WithDetail("field", "max_columns").
			WithDetail("value", o.MaxColumns)
	}
	if o.ShowSample < 0 {
		return infoerrors.Newf(infoerrors.ErrorTypeValidation, "show_sample must be >= 0, got %d", o.ShowSample).
			WithDetail("field", "show_sample").
			WithDetail("value", o.ShowSample)
	}
	return nil
}
