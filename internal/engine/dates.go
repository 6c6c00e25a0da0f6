package engine

import (
	"cmp"
	"fmt"
	"math"
	"slices"
	"time"
)

const isoDateLayout = "2006-01-02"

const (
	// SortKeyUnset orders quests without a due date last.
	SortKeyUnset = math.MaxInt
	// SortKeyUnknownLegacy orders unrecognised legacy labels just before unset dates.
	SortKeyUnknownLegacy = math.MaxInt - 1
)

type DueKind int

const (
	DueUnset DueKind = iota
	DueISO
	DueLegacy
)

// DueDate is either unset, a calendar date, or a legacy symbolic label
// ("Today", "Tomorrow", "Yesterday", "This Week") kept from older data.
type DueDate struct {
	kind   DueKind
	year   int
	month  time.Month
	day    int
	legacy string
}

// ParseDueDate never fails: anything that is not empty and not a real
// YYYY-MM-DD calendar date is kept verbatim as a legacy label. Legacy labels
// only match exactly, so " Tomorrow " is shown as typed.
func ParseDueDate(s string) DueDate {
	if s == "" {
		return DueDate{}
	}
	if t, err := time.Parse(isoDateLayout, s); err == nil {
		return DateOf(t)
	}
	return DueDate{kind: DueLegacy, legacy: s}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) DueDate {
	y, m, d := t.Date()
	return DueDate{kind: DueISO, year: y, month: m, day: d}
}

func (d DueDate) Kind() DueKind { return d.kind }
func (d DueDate) IsZero() bool  { return d.kind == DueUnset }

func (d DueDate) String() string {
	switch d.kind {
	case DueISO:
		return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
	case DueLegacy:
		return d.legacy
	default:
		return ""
	}
}

func (d DueDate) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *DueDate) UnmarshalText(b []byte) error {
	*d = ParseDueDate(string(b))
	return nil
}

// Urgency is the display classification of a due date relative to today.
type Urgency struct {
	Label      string
	IsOverdue  bool
	IsDueToday bool
	IsDueSoon  bool
}

var legacyUrgency = map[string]Urgency{
	"Today":     {Label: "Today", IsDueToday: true},
	"Tomorrow":  {Label: "Tomorrow", IsDueSoon: true},
	"Yesterday": {Label: "Yesterday! Overdue", IsOverdue: true},
	"This Week": {Label: "This Week"},
}

var legacySortKeys = map[string]int{
	"Yesterday": -1,
	"Today":     0,
	"Tomorrow":  1,
	"This Week": 7,
}

// DaysFrom returns the whole calendar days from now's date to d (negative = past).
// Only meaningful for DueISO.
func (d DueDate) DaysFrom(now time.Time) int {
	y, m, day := now.Date()
	from := time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	to := time.Date(d.year, d.month, d.day, 0, 0, 0, 0, time.UTC)
	return int((to.Unix() - from.Unix()) / 86400)
}

func (d DueDate) UrgencyAt(now time.Time) Urgency {
	switch d.kind {
	case DueUnset:
		return Urgency{Label: "No due date"}
	case DueLegacy:
		if u, ok := legacyUrgency[d.legacy]; ok {
			return u
		}
		return Urgency{Label: d.legacy}
	}

	diff := d.DaysFrom(now)
	switch {
	case diff == 0:
		return Urgency{Label: "Today", IsDueToday: true}
	case diff == 1:
		return Urgency{Label: "Tomorrow", IsDueSoon: true}
	case diff == 2:
		return Urgency{Label: "In 2 days", IsDueSoon: true}
	case diff > 2:
		return Urgency{Label: fmt.Sprintf("In %d days", diff)}
	case diff == -1:
		return Urgency{Label: "Yesterday", IsOverdue: true}
	default:
		return Urgency{Label: fmt.Sprintf("%d days overdue", -diff), IsOverdue: true}
	}
}

func (d DueDate) SortKeyAt(now time.Time) int {
	switch d.kind {
	case DueUnset:
		return SortKeyUnset
	case DueLegacy:
		if k, ok := legacySortKeys[d.legacy]; ok {
			return k
		}
		return SortKeyUnknownLegacy
	default:
		return d.DaysFrom(now)
	}
}

// TodayAt formats now's calendar date as YYYY-MM-DD.
func TodayAt(now time.Time) string {
	return now.Format(isoDateLayout)
}

// OffsetAt returns the date days away from now's date (negative = past).
func OffsetAt(now time.Time, days int) string {
	y, m, d := now.Date()
	// Noon avoids landing in a DST gap.
	return time.Date(y, m, d+days, 12, 0, 0, 0, now.Location()).Format(isoDateLayout)
}

// Today is the local calendar date.
func Today() string { return TodayAt(time.Now()) }

// Offset is the local calendar date days away from today.
func Offset(days int) string { return OffsetAt(time.Now(), days) }

func Classify(dueDate string) Urgency { return ClassifyAt(dueDate, time.Now()) }

func ClassifyAt(dueDate string, now time.Time) Urgency {
	return ParseDueDate(dueDate).UrgencyAt(now)
}

func SortKey(dueDate string) int { return SortKeyAt(dueDate, time.Now()) }

func SortKeyAt(dueDate string, now time.Time) int {
	return ParseDueDate(dueDate).SortKeyAt(now)
}

// SortByUrgency orders quests overdue first, then today, then future dates,
// with undated quests last. Ties keep their existing order.
func SortByUrgency(quests []Quest, now time.Time) {
	slices.SortStableFunc(quests, func(a, b Quest) int {
		return cmp.Compare(a.DueDate.SortKeyAt(now), b.DueDate.SortKeyAt(now))
	})
}
