package resolve

import (
	"fmt"
	"time"

	"github.com/openacta/ducktype/internal/token"
)

// CalendarResolver is a reference Resolver implementation anchoring
// TimeForm values to concrete instants using ordinary Gregorian calendar
// arithmetic. Grounded on OpenActa's prev_weekday/prev_month relative-
// date helpers (parser.go): the same "step back by whole units, then
// correct for a partial final step via a modulo" idiom, inverted where
// needed since this resolver's default direction is forward (spec: "no
// direction resolves to the next occurrence") rather than OpenActa's
// backward-looking LAST-relative queries.
type CalendarResolver struct{}

func (CalendarResolver) Resolve(t token.Time, ref ReferenceContext) (ResolvedValue, error) {
	if t.Latent {
		return ResolvedValue{}, fmt.Errorf("resolve: latent time token reached Resolve")
	}

	loc, err := location(ref, t.Timezone)
	if err != nil {
		return ResolvedValue{}, err
	}
	now := ref.ReferenceInstant.In(loc)

	instant, end, grain, err := resolveForm(t.Form, now, loc, t.Direction)
	if err != nil {
		return ResolvedValue{}, err
	}

	return ResolvedValue{Token: t, Instant: &instant, IntervalEnd: end, Grain: grain}, nil
}

func location(ref ReferenceContext, tz *string) (*time.Location, error) {
	name := ref.DefaultTimezone
	if tz != nil {
		name = *tz
	}
	if name == "" {
		return time.UTC, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("resolve: unknown timezone %q: %w", name, err)
	}
	return loc, nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// weekdayIndex converts a stdlib time.Weekday (Sunday=0) to our
// Monday-origin 0..6 index.
func weekdayIndex(w time.Weekday) int {
	return (int(w) + 6) % 7
}

func resolveForm(form token.TimeForm, now time.Time, loc *time.Location, dir token.Direction) (time.Time, *time.Time, token.Grain, error) {
	switch f := form.(type) {

	case token.Now:
		return now, nil, token.Second, nil

	case token.Today:
		return startOfDay(now), nil, token.Day, nil

	case token.Tomorrow:
		return startOfDay(now).AddDate(0, 0, 1), nil, token.Day, nil

	case token.Yesterday:
		return startOfDay(now).AddDate(0, 0, -1), nil, token.Day, nil

	case token.DayAfterTomorrow:
		return startOfDay(now).AddDate(0, 0, 2), nil, token.Day, nil

	case token.DayBeforeYesterday:
		return startOfDay(now).AddDate(0, 0, -2), nil, token.Day, nil

	case token.Year:
		return time.Date(f.Year, time.January, 1, 0, 0, 0, 0, loc), nil, token.Year, nil

	case token.Month:
		year := now.Year()
		if f.Month < int(now.Month()) {
			year++
		}
		return time.Date(year, time.Month(f.Month), 1, 0, 0, 0, 0, loc), nil, token.Month, nil

	case token.DayOfMonth:
		year, month, _ := now.Date()
		candidate := time.Date(year, month, f.Day, 0, 0, 0, 0, loc)
		if candidate.Before(startOfDay(now)) {
			candidate = candidate.AddDate(0, 1, 0)
		}
		return candidate, nil, token.Day, nil

	case token.DateMDY:
		year := now.Year()
		if f.Year != nil {
			year = *f.Year
		}
		candidate := time.Date(year, time.Month(f.Month), f.Day, 0, 0, 0, 0, loc)
		if f.Year == nil && candidate.Before(startOfDay(now)) {
			candidate = candidate.AddDate(1, 0, 0)
		}
		return candidate, nil, token.Day, nil

	case token.Hour:
		hour := f.Hour
		candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, loc)
		candidate = adjustForDirection(candidate, now, dir, 24*time.Hour)
		return candidate, nil, token.Hour, nil

	case token.HourMinute:
		candidate := time.Date(now.Year(), now.Month(), now.Day(), f.Hour, f.Minute, 0, 0, loc)
		candidate = adjustForDirection(candidate, now, dir, 24*time.Hour)
		return candidate, nil, token.Minute, nil

	case token.HourMinuteSecond:
		candidate := time.Date(now.Year(), now.Month(), now.Day(), f.Hour, f.Minute, f.Second, 0, loc)
		candidate = adjustForDirection(candidate, now, dir, 24*time.Hour)
		return candidate, nil, token.Second, nil

	case token.DayOfWeek:
		// Next occurrence, same day means +7 days (spec default); DirPast
		// walks backward to the most recent occurrence instead, mirroring
		// OpenActa's prev_weekday but with the sign of the default flipped.
		today := startOfDay(now)
		delta := (f.Weekday - weekdayIndex(today.Weekday()) + 7) % 7
		if dir == token.DirPast {
			back := (weekdayIndex(today.Weekday()) - f.Weekday + 7) % 7
			if back == 0 {
				back = 7
			}
			return today.AddDate(0, 0, -back), nil, token.Day, nil
		}
		if delta == 0 {
			delta = 7
		}
		return today.AddDate(0, 0, delta), nil, token.Day, nil

	case token.Weekend:
		today := startOfDay(now)
		delta := (5 - weekdayIndex(today.Weekday()) + 7) % 7 // days until next Saturday
		start := today.AddDate(0, 0, delta)
		end := start.AddDate(0, 0, 2)
		return start, &end, token.Day, nil

	case token.Quarter:
		q := f.Quarter
		year := now.Year()
		curQ := (int(now.Month())-1)/3 + 1
		if q < curQ {
			year++
		}
		month := time.Month((q-1)*3 + 1)
		return time.Date(year, month, 1, 0, 0, 0, 0, loc), nil, token.Quarter, nil

	case token.QuarterYear:
		month := time.Month((f.Quarter-1)*3 + 1)
		return time.Date(f.Year, month, 1, 0, 0, 0, 0, loc), nil, token.Quarter, nil

	case token.PartOfDayForm:
		start, end := partOfDayWindow(f.Part)
		today := startOfDay(now)
		candidate := today.Add(start)
		endCandidate := today.Add(end)
		if candidate.Before(now) {
			candidate = candidate.AddDate(0, 0, 1)
			endCandidate = endCandidate.AddDate(0, 0, 1)
		}
		return candidate, &endCandidate, token.Hour, nil

	case token.GrainOffset:
		aligned := alignToGrain(now, f.Grain)
		offset := addGrain(aligned, f.Grain, f.Offset)
		return offset, nil, f.Grain, nil

	case token.RelativeGrain:
		return addGrain(now, f.Grain, f.N), nil, f.Grain, nil

	case token.Composed:
		return resolveComposed(f, now, loc, dir)

	case token.Interval:
		start, _, grainA, err := resolveForm(f.A, now, loc, dir)
		if err != nil {
			return time.Time{}, nil, 0, err
		}
		end, _, grainB, err := resolveForm(f.B, now, loc, dir)
		if err != nil {
			return time.Time{}, nil, 0, err
		}
		grain := grainA
		if grainB > grainA {
			grain = grainB
		}
		return start, &end, grain, nil

	case token.NthGrainOfTime:
		return resolveNthGrainOfTime(f, now, loc, dir, false)

	case token.LastCycleOfTime:
		return resolveLastCycle(f.Grain, f.Of, now, loc, dir)

	case token.NthLastCycleOfTime:
		return resolveNthGrainOfTime(token.NthGrainOfTime{N: f.N, Grain: f.Grain, Of: f.Of}, now, loc, dir, true)

	case token.Season:
		return time.Time{}, nil, 0, fmt.Errorf("resolve: season resolution requires a hemisphere convention not provided by this reference resolver")

	case token.Holiday:
		return time.Time{}, nil, 0, fmt.Errorf("resolve: holiday %q is not in this reference resolver's calendar", f.Name)

	default:
		return time.Time{}, nil, 0, fmt.Errorf("resolve: unsupported time form %T", form)
	}
}

// adjustForDirection nudges an ambiguous (no explicit date) clock-time
// candidate forward or backward by period until it lies on the correct
// side of now for the given direction; DirNone/DirFuture means "the next
// one", DirPast means "the previous one".
func adjustForDirection(candidate, now time.Time, dir token.Direction, period time.Duration) time.Time {
	if dir == token.DirPast {
		for !candidate.Before(now) {
			candidate = candidate.Add(-period)
		}
		return candidate
	}
	for candidate.Before(now) {
		candidate = candidate.Add(period)
	}
	return candidate
}

func partOfDayWindow(p token.PartOfDay) (start, end time.Duration) {
	switch p {
	case token.Morning:
		return 6 * time.Hour, 12 * time.Hour
	case token.Lunch:
		return 12 * time.Hour, 13 * time.Hour
	case token.Afternoon:
		return 12 * time.Hour, 18 * time.Hour
	case token.Evening:
		return 18 * time.Hour, 21 * time.Hour
	case token.Night:
		return 21 * time.Hour, 30 * time.Hour
	default:
		return 0, 24 * time.Hour
	}
}

func alignToGrain(t time.Time, g token.Grain) time.Time {
	switch g {
	case token.Second:
		return t.Truncate(time.Second)
	case token.Minute:
		return t.Truncate(time.Minute)
	case token.Hour:
		return t.Truncate(time.Hour)
	case token.Day:
		return startOfDay(t)
	case token.Week:
		day := startOfDay(t)
		return day.AddDate(0, 0, -weekdayIndex(day.Weekday()))
	case token.Month:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case token.Quarter:
		q := (int(t.Month())-1)/3*3 + 1
		return time.Date(t.Year(), time.Month(q), 1, 0, 0, 0, 0, t.Location())
	case token.Year:
		return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
	default:
		return t
	}
}

func addGrain(t time.Time, g token.Grain, n int) time.Time {
	switch g {
	case token.Second:
		return t.Add(time.Duration(n) * time.Second)
	case token.Minute:
		return t.Add(time.Duration(n) * time.Minute)
	case token.Hour:
		return t.Add(time.Duration(n) * time.Hour)
	case token.Day:
		return t.AddDate(0, 0, n)
	case token.Week:
		return t.AddDate(0, 0, 7*n)
	case token.Month:
		return t.AddDate(0, n, 0)
	case token.Quarter:
		return t.AddDate(0, 3*n, 0)
	case token.Year:
		return t.AddDate(n, 0, 0)
	default:
		return t
	}
}

// resolveComposed merges two partial forms. The side that resolves to the
// coarser grain supplies the calendar fields its grain pins down (the
// year for a year or quarter, year and month for a month, the whole date
// otherwise); the finer side supplies every field below that, clock
// included ("March" + "15th" = "March 15th"; "March 15th" + "3pm" =
// "March 15th, 3pm").
func resolveComposed(f token.Composed, now time.Time, loc *time.Location, dir token.Direction) (time.Time, *time.Time, token.Grain, error) {
	a, _, grainA, err := resolveForm(f.A, now, loc, dir)
	if err != nil {
		return time.Time{}, nil, 0, err
	}
	b, _, grainB, err := resolveForm(f.B, now, loc, dir)
	if err != nil {
		return time.Time{}, nil, 0, err
	}

	coarse, fine := a, b
	coarseGrain, fineGrain := grainA, grainB
	if grainA < grainB {
		coarse, fine = b, a
		coarseGrain, fineGrain = grainB, grainA
	}

	year, month, day := coarse.Date()
	switch coarseGrain {
	case token.Year, token.Quarter:
		month, day = fine.Month(), fine.Day()
	case token.Month:
		day = fine.Day()
	}
	merged := time.Date(year, month, day,
		fine.Hour(), fine.Minute(), fine.Second(), 0, loc)
	return merged, nil, fineGrain, nil
}

// resolveNthGrainOfTime finds the Nth (or, if fromEnd, Nth-from-last) day
// of the month that Of resolves to ("the third day of next month", "the
// second-to-last day of March"). Days are counted consecutively and are
// not filtered by weekday. Other grain/Of combinations are not supported
// by this reference resolver.
func resolveNthGrainOfTime(f token.NthGrainOfTime, now time.Time, loc *time.Location, dir token.Direction, fromEnd bool) (time.Time, *time.Time, token.Grain, error) {
	monthStart, _, ofGrain, err := resolveForm(f.Of, now, loc, dir)
	if err != nil {
		return time.Time{}, nil, 0, err
	}
	if ofGrain != token.Month {
		return time.Time{}, nil, 0, fmt.Errorf("resolve: nth-grain-of-time only supports a month container, got grain %s", ofGrain)
	}
	if f.Grain != token.Day {
		return time.Time{}, nil, 0, fmt.Errorf("resolve: nth-grain-of-time only supports day grain, got %s", f.Grain)
	}

	monthEnd := monthStart.AddDate(0, 1, 0)
	var days []time.Time
	for d := monthStart; d.Before(monthEnd); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	n := f.N
	if fromEnd {
		idx := len(days) - n
		if idx < 0 || idx >= len(days) {
			return time.Time{}, nil, 0, fmt.Errorf("resolve: no %d-th-from-last day in month", n)
		}
		return days[idx], nil, token.Day, nil
	}
	if n < 1 || n > len(days) {
		return time.Time{}, nil, 0, fmt.Errorf("resolve: no %d-th day in month", n)
	}
	return days[n-1], nil, token.Day, nil
}

func resolveLastCycle(grain token.Grain, of token.TimeForm, now time.Time, loc *time.Location, dir token.Direction) (time.Time, *time.Time, token.Grain, error) {
	start, _, ofGrain, err := resolveForm(of, now, loc, dir)
	if err != nil {
		return time.Time{}, nil, 0, err
	}
	if ofGrain != token.Month || grain != token.Day {
		return time.Time{}, nil, 0, fmt.Errorf("resolve: last-cycle-of-time only supports the last day of a month")
	}
	end := start.AddDate(0, 1, -1)
	return end, nil, token.Day, nil
}
