// Package daterange resolves the date-range selection of the product
// history view into concrete inclusive UTC calendar bounds.
package daterange

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format of calendar dates (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// Preset names a relative date window ending today.
type Preset string

const (
	Last30Days   Preset = "30d"
	Last90Days   Preset = "90d"
	Last6Months  Preset = "6m"
	LastYear     Preset = "1y"
	AllTime      Preset = "all"
	DefaultPreset       = Last90Days
)

var (
	ErrUnknownPreset = errors.New("unknown range preset")
	ErrInvalidDate   = errors.New("invalid date, expected YYYY-MM-DD")
)

// presetDays maps each bounded preset to its offset from today.
// 6m is a flat 182 days, not a calendar-month step.
var presetDays = map[Preset]int{
	Last30Days:  30,
	Last90Days:  90,
	Last6Months: 182,
	LastYear:    365,
}

// Presets lists the accepted presets in display order.
func Presets() []Preset {
	return []Preset{Last30Days, Last90Days, Last6Months, LastYear, AllTime}
}

// ParsePreset validates a preset tag. An empty tag yields DefaultPreset.
func ParsePreset(s string) (Preset, error) {
	p := Preset(strings.ToLower(strings.TrimSpace(s)))
	if p == "" {
		return DefaultPreset, nil
	}
	if p == AllTime {
		return p, nil
	}
	if _, ok := presetDays[p]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, s)
	}
	return p, nil
}

// Range is an inclusive pair of UTC calendar dates. A nil side is unbounded;
// both nil means all time.
type Range struct {
	From *time.Time
	To   *time.Time
}

// IsUnbounded reports whether neither side is constrained.
func (r Range) IsUnbounded() bool {
	return r.From == nil && r.To == nil
}

// FromString returns From as YYYY-MM-DD, or "" when unbounded.
func (r Range) FromString() string {
	return format(r.From)
}

// ToString returns To as YYYY-MM-DD, or "" when unbounded.
func (r Range) ToString() string {
	return format(r.To)
}

func format(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(DateLayout)
}

// Today truncates now to its UTC calendar day.
func Today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDate parses a YYYY-MM-DD string as a UTC calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

// Resolve computes the effective range for a preset evaluated at now.
//
// A non-empty from or to overrides that side of the preset's bounds and
// leaves the other side as the preset computed it, so a custom from under
// "all" still has an open end.
func Resolve(now time.Time, preset Preset, from, to string) (Range, error) {
	var r Range

	if preset != AllTime {
		days, ok := presetDays[preset]
		if !ok {
			return Range{}, fmt.Errorf("%w: %q", ErrUnknownPreset, preset)
		}
		today := Today(now)
		start := today.AddDate(0, 0, -days)
		r.From = &start
		r.To = &today
	}

	if strings.TrimSpace(from) != "" {
		f, err := ParseDate(from)
		if err != nil {
			return Range{}, err
		}
		r.From = &f
	}
	if strings.TrimSpace(to) != "" {
		t, err := ParseDate(to)
		if err != nil {
			return Range{}, err
		}
		r.To = &t
	}

	return r, nil
}

// Selection is the range control state of a product view: a preset plus
// optional custom dates. Choosing a preset always discards custom dates.
type Selection struct {
	Preset Preset
	From   string
	To     string
}

// NewSelection returns a selection on DefaultPreset with no custom dates.
func NewSelection() Selection {
	return Selection{Preset: DefaultPreset}
}

// SelectPreset switches presets and clears any custom dates.
func (s *Selection) SelectPreset(p Preset) {
	s.Preset = p
	s.ClearCustom()
}

// SetFrom sets the custom start date ("" clears it).
func (s *Selection) SetFrom(from string) {
	s.From = from
}

// SetTo sets the custom end date ("" clears it).
func (s *Selection) SetTo(to string) {
	s.To = to
}

// ClearCustom drops both custom dates, falling back to the preset.
func (s *Selection) ClearCustom() {
	s.From = ""
	s.To = ""
}

// Resolve evaluates the selection at now.
func (s Selection) Resolve(now time.Time) (Range, error) {
	return Resolve(now, s.Preset, s.From, s.To)
}
