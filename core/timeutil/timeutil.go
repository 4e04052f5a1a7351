// Package timeutil normalizes event times between the wire format and
// canonical UTC storage. Offsets are fixed signed whole hours (UTC-11..UTC+14),
// never named zones. All functions are pure: they return new values and never
// mutate their inputs.
package timeutil

import (
	"errors"
	"fmt"
	"time"

	"github.com/MFrackowiak/mf-simple-calendar/core/constants"
)

// Wire formats: zoned strings carry the authoring offset, naive strings
// require an explicit offset alongside.
const (
	LayoutZoned = "2006-01-02 15:04:05 -0700"
	LayoutNaive = "2006-01-02 15:04:05"
)

var (
	ErrBadFormat      = errors.New("date does not match expected format")
	ErrZoneMismatch   = errors.New("start time and end time must have the same timezone")
	ErrEndBeforeStart = errors.New("event cannot end before it started")
	ErrOffsetRange    = errors.New("timezone offset must be between -11 and +14")
)

// Span is a canonical event window: UTC instants plus the authoring offset.
type Span struct {
	Start  time.Time
	End    time.Time
	Offset int
}

// FixedOffset returns the location for a signed whole-hour UTC offset.
func FixedOffset(hours int) *time.Location {
	if hours == 0 {
		return time.UTC
	}
	return time.FixedZone(fmt.Sprintf("UTC%+03d", hours), hours*3600)
}

// ValidateOffset checks the fixed-offset range shared by users and events.
func ValidateOffset(hours int) error {
	if hours < constants.TimezoneMin || hours > constants.TimezoneMax {
		return ErrOffsetRange
	}
	return nil
}

// offsetHours derives the whole-hour offset of a parsed time from its zone's
// total seconds. Never derive it from minute components; a duration split into
// fields double-scales.
func offsetHours(t time.Time) int {
	_, seconds := t.Zone()
	return seconds / 3600
}

// ParseTimed parses a timed event. With a nil explicit offset both strings
// must embed the same zone suffix; with an explicit offset both strings are
// naive wall-clock times in that offset. The result is stored as UTC plus the
// authoring offset.
func ParseTimed(startStr string, endStr string, explicitOffset *int) (Span, error) {
	var start, end time.Time
	var offset int

	if explicitOffset == nil {
		s, err := time.Parse(LayoutZoned, startStr)
		if err != nil {
			return Span{}, fmt.Errorf("%w: %q", ErrBadFormat, startStr)
		}
		e, err := time.Parse(LayoutZoned, endStr)
		if err != nil {
			return Span{}, fmt.Errorf("%w: %q", ErrBadFormat, endStr)
		}
		if offsetHours(s) != offsetHours(e) {
			return Span{}, ErrZoneMismatch
		}
		start, end, offset = s, e, offsetHours(s)
	} else {
		offset = *explicitOffset
		loc := FixedOffset(offset)
		s, err := time.ParseInLocation(LayoutNaive, startStr, loc)
		if err != nil {
			return Span{}, fmt.Errorf("%w: %q", ErrBadFormat, startStr)
		}
		e, err := time.ParseInLocation(LayoutNaive, endStr, loc)
		if err != nil {
			return Span{}, fmt.Errorf("%w: %q", ErrBadFormat, endStr)
		}
		start, end = s, e
	}

	if err := ValidateOffset(offset); err != nil {
		return Span{}, err
	}
	if start.After(end) {
		return Span{}, ErrEndBeforeStart
	}

	return Span{Start: start.UTC(), End: end.UTC(), Offset: offset}, nil
}

// ParseAllDay parses an all-day event. Any time-of-day component in the input
// is discarded: the window is always midnight to midnight in the authoring
// offset, 24 hours long.
func ParseAllDay(startStr string, explicitOffset *int) (Span, error) {
	var parsed time.Time
	var offset int

	if explicitOffset == nil {
		s, err := time.Parse(LayoutZoned, startStr)
		if err != nil {
			return Span{}, fmt.Errorf("%w: %q", ErrBadFormat, startStr)
		}
		parsed, offset = s, offsetHours(s)
	} else {
		offset = *explicitOffset
		s, err := time.ParseInLocation(LayoutNaive, startStr, FixedOffset(offset))
		if err != nil {
			return Span{}, fmt.Errorf("%w: %q", ErrBadFormat, startStr)
		}
		parsed = s
	}

	if err := ValidateOffset(offset); err != nil {
		return Span{}, err
	}

	y, m, d := parsed.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, FixedOffset(offset))
	end := start.Add(24 * time.Hour)

	return Span{Start: start.UTC(), End: end.UTC(), Offset: offset}, nil
}

// RenderTimed converts a canonical span into the authoring offset and a
// viewer offset. Plain offset arithmetic, independently on start and end.
func RenderTimed(span Span, viewerOffset int) (start, end, userStart, userEnd time.Time) {
	authorLoc := FixedOffset(span.Offset)
	viewerLoc := FixedOffset(viewerOffset)
	return span.Start.In(authorLoc), span.End.In(authorLoc),
		span.Start.In(viewerLoc), span.End.In(viewerLoc)
}

// AllDayWindow renders an all-day span for a viewer. The calendar date the
// author intended is preserved unless the viewer's offset places it more than
// half a day away: delta is the sub-day remainder left after truncating the
// stored start back to authoring midnight, plus the viewer-author offset
// difference. |delta| > 12 shifts the displayed date by one day toward the
// sign of delta. The window is always [midnight, midnight+24h) in the
// viewer's offset.
func AllDayWindow(span Span, viewerOffset int) (start, end time.Time) {
	local := span.Start.In(FixedOffset(span.Offset))
	y, m, d := local.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, FixedOffset(span.Offset))

	// Normally zero, kept as a correction term against stored-value drift.
	remainder := int(local.Sub(midnight) / time.Hour)

	delta := remainder + (viewerOffset - span.Offset)

	day := d
	if delta > 12 {
		day++
	} else if delta < -12 {
		day--
	}

	start = time.Date(y, m, day, 0, 0, 0, 0, FixedOffset(viewerOffset))
	return start, start.Add(24 * time.Hour)
}

// Format renders an instant in the zoned wire format.
func Format(t time.Time) string {
	return t.Format(LayoutZoned)
}
