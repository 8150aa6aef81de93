package builder_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/goliatone/go-taghelper/pkg/builder"
	"github.com/goliatone/go-taghelper/pkg/tagopts"
)

func fixedClock(year int, month time.Month, day int) builder.Clock {
	return builder.ClockFunc(func() time.Time {
		return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
	})
}

func TestDateSelectTagRequiresName(t *testing.T) {
	gen := builder.New(builder.WithClock(fixedClock(2026, time.August, 29)))
	if _, err := gen.DateSelectTag("", nil); !errors.Is(err, builder.ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument, got %v", err)
	}
}

func TestDateSelectTagBuildsThreeSelects(t *testing.T) {
	gen := builder.New(builder.WithClock(fixedClock(2026, time.August, 29)))

	got, err := gen.DateSelectTag("dob", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, name := range []string{"dob_day", "dob_month", "dob_year"} {
		if !strings.Contains(got, `<select name="`+name+`" id="`+name+`">`) {
			t.Fatalf("expected %s select, got:\n%s", name, got)
		}
	}

	dayIdx := strings.Index(got, `name="dob_day"`)
	monthIdx := strings.Index(got, `name="dob_month"`)
	yearIdx := strings.Index(got, `name="dob_year"`)
	if !(dayIdx < monthIdx && monthIdx < yearIdx) {
		t.Fatalf("expected day, month, year order, got:\n%s", got)
	}
}

func TestDateSelectTagMarksCurrentDateSelected(t *testing.T) {
	gen := builder.New(builder.WithClock(fixedClock(2026, time.August, 29)))

	got, err := gen.DateSelectTag("dob", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`<option value="29" selected="true">29</option>`,
		`<option value="8" selected="true">8</option>`,
		`<option value="2026" selected="true">2026</option>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, got)
		}
	}
}

func TestDateSelectTagDayRangeIsFixed(t *testing.T) {
	// February still offers 31 days; the range never adjusts to the month.
	gen := builder.New(builder.WithClock(fixedClock(2026, time.February, 10)))

	got, err := gen.DateSelectTag("dob", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	daySection := got[:strings.Index(got, `name="dob_month"`)]
	if !strings.Contains(daySection, `<option value="31">31</option>`) {
		t.Fatalf("expected day 31 option, got:\n%s", daySection)
	}
	if !strings.Contains(daySection, `<option value="1">1</option>`) {
		t.Fatalf("expected day 1 option, got:\n%s", daySection)
	}
}

func TestDateSelectTagYearRange(t *testing.T) {
	gen := builder.New(builder.WithClock(fixedClock(2026, time.August, 29)))

	got, err := gen.DateSelectTag("dob", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, `<option value="2031">2031</option>`) {
		t.Fatalf("expected final year option 2031, got:\n%s", got)
	}
	if strings.Contains(got, `<option value="2032">`) {
		t.Fatalf("year range must stop at current year + 5, got:\n%s", got)
	}
	if strings.Contains(got, `<option value="2025">`) {
		t.Fatalf("year range must start at current year, got:\n%s", got)
	}
}

func TestDateSelectTagSharesResidualOptions(t *testing.T) {
	gen := builder.New(builder.WithClock(fixedClock(2026, time.August, 29)))

	got, err := gen.DateSelectTag("dob", tagopts.Options{"class": "date-part"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if count := strings.Count(got, `class="date-part"`); count != 3 {
		t.Fatalf("expected shared class on all three selects, found %d:\n%s", count, got)
	}
}

func TestDateSelectTagValueAndYearOverrides(t *testing.T) {
	gen := builder.New(builder.WithClock(fixedClock(2026, time.August, 29)))

	got, err := gen.DateSelectTag("dob", tagopts.Options{
		"value":      time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC),
		"start_year": 1995,
		"end_year":   2000,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{
		`<option value="31" selected="true">31</option>`,
		`<option value="12" selected="true">12</option>`,
		`<option value="1999" selected="true">1999</option>`,
		`<option value="1995">1995</option>`,
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, got)
		}
	}
	if strings.Contains(got, `<option value="2001">`) {
		t.Fatalf("expected year range capped at end_year, got:\n%s", got)
	}
	if strings.Contains(got, "start_year") || strings.Contains(got, "end_year") {
		t.Fatalf("range options must not leak into attributes, got:\n%s", got)
	}
}

func TestDateSelectTagInvertedYearRangeCollapses(t *testing.T) {
	gen := builder.New(builder.WithClock(fixedClock(2026, time.August, 29)))

	got, err := gen.DateSelectTag("dob", tagopts.Options{"end_year": 2020})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	yearSection := got[strings.Index(got, `name="dob_year"`):]
	if !strings.Contains(yearSection, `<option value="2026" selected="true">2026</option>`) {
		t.Fatalf("expected the start year to remain, got:\n%s", yearSection)
	}
	if strings.Contains(yearSection, `<option value="2020">`) {
		t.Fatalf("an end year below the start must not widen the range, got:\n%s", yearSection)
	}
	if strings.Contains(yearSection, `<option value="2027">`) {
		t.Fatalf("collapsed range must hold the start year only, got:\n%s", yearSection)
	}
}

func TestDateSelectTagEqualYearRange(t *testing.T) {
	gen := builder.New(builder.WithClock(fixedClock(2026, time.August, 29)))

	got, err := gen.DateSelectTag("dob", tagopts.Options{"start_year": 2026, "end_year": 2026})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	yearSection := got[strings.Index(got, `name="dob_year"`):]
	if count := strings.Count(yearSection, "<option "); count != 1 {
		t.Fatalf("expected exactly one year option, found %d:\n%s", count, yearSection)
	}
	if !strings.Contains(yearSection, `<option value="2026" selected="true">2026</option>`) {
		t.Fatalf("expected the single year selected, got:\n%s", yearSection)
	}
}

func TestDateSelectTagSingleSidedYearOverrides(t *testing.T) {
	gen := builder.New(builder.WithClock(fixedClock(2026, time.August, 29)))

	// Only start_year: the end still derives from the selected date.
	got, err := gen.DateSelectTag("dob", tagopts.Options{"start_year": 2024})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	yearSection := got[strings.Index(got, `name="dob_year"`):]
	if !strings.Contains(yearSection, `<option value="2024">2024</option>`) {
		t.Fatalf("expected start override honoured, got:\n%s", yearSection)
	}
	if !strings.Contains(yearSection, `<option value="2031">2031</option>`) {
		t.Fatalf("expected default end year kept, got:\n%s", yearSection)
	}

	// Only end_year, above the default start.
	got, err = gen.DateSelectTag("dob", tagopts.Options{"end_year": 2027})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	yearSection = got[strings.Index(got, `name="dob_year"`):]
	if !strings.Contains(yearSection, `<option value="2027">2027</option>`) {
		t.Fatalf("expected end override honoured, got:\n%s", yearSection)
	}
	if strings.Contains(yearSection, `<option value="2028">`) {
		t.Fatalf("expected range capped at overridden end, got:\n%s", yearSection)
	}
}
