package builder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/goliatone/go-taghelper/pkg/tagopts"
)

// DateSelectTag builds three <select> elements (day, month, year, in that
// order with no separator) sharing the residual options. Names and ids are
// suffixed _day/_month/_year. The selected date defaults to the clock's
// current date and can be overridden with a time.Time under the value key;
// start_year/end_year adjust the year range, which defaults to the current
// year through current year + 5 inclusive; an end year below the start
// collapses the range to the start year alone.
//
// The day range is always 1..31 regardless of month, so short months can
// offer invalid dates. Known limitation, kept for caller compatibility.
func (b *Builder) DateSelectTag(name string, opts tagopts.Options) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("builder: date select requires a name: %w", ErrMissingArgument)
	}

	shared := opts.Clone()
	if shared == nil {
		shared = tagopts.Options{}
	}

	selected := b.clock.Now()
	if value, ok := shared.Pop("value"); ok {
		if t, ok := value.(time.Time); ok {
			selected = t
		}
	}

	startYear := selected.Year()
	endYear := startYear + 5
	if value, ok := shared.Pop("start_year"); ok {
		if year, ok := tagopts.Int(value); ok {
			startYear = year
		}
	}
	if value, ok := shared.Pop("end_year"); ok {
		if year, ok := tagopts.Int(value); ok {
			endYear = year
		}
	}
	// An inverted range collapses to the start year instead of failing.
	if endYear < startYear {
		endYear = startYear
	}

	day, err := b.numberSelect(name+"_day", 1, 31, selected.Day(), shared)
	if err != nil {
		return "", err
	}
	month, err := b.numberSelect(name+"_month", 1, 12, int(selected.Month()), shared)
	if err != nil {
		return "", err
	}
	year, err := b.numberSelect(name+"_year", startYear, endYear, selected.Year(), shared)
	if err != nil {
		return "", err
	}

	return day + month + year, nil
}

func (b *Builder) numberSelect(name string, from, to, selected int, shared tagopts.Options) (string, error) {
	entries := make(Entries, 0, to-from+1)
	for i := from; i <= to; i++ {
		value := strconv.Itoa(i)
		entries = append(entries, OptionEntry{Title: value, Value: value})
	}

	htmlOpts := tagopts.Merge(shared, tagopts.Options{"value": strconv.Itoa(selected)})
	return b.SelectTag(name, entries, htmlOpts)
}
