package en

import (
	"github.com/openacta/ducktype/internal/chart"
	"github.com/openacta/ducktype/internal/pattern"
	"github.com/openacta/ducktype/internal/rule"
	"github.com/openacta/ducktype/internal/token"
)

var weekdayWords = map[string]int{
	"monday": 0, "tuesday": 1, "wednesday": 2, "thursday": 3,
	"friday": 4, "saturday": 5, "sunday": 6,
}

func weekdayWordsList() []string {
	out := make([]string, 0, len(weekdayWords))
	for w := range weekdayWords {
		out = append(out, w)
	}
	return out
}

// TimeRules covers spec §8's "at 3pm tomorrow" literal scenario plus the
// supplemented latent-anchoring exercise SPEC_FULL.md calls for: a bare
// hour number is latent until either an explicit am/pm marker or an "at"
// anchor de-latentizes it.
var TimeRules = []rule.Rule{
	todayRule,
	tomorrowRule,
	yesterdayRule,
	dayAfterTomorrowRule,
	dayBeforeYesterdayRule,
	nowRule,
	weekdayRule,
	hourAmPmRule,
	hourMinuteAmPmRule,
	bareHourLatentRule,
	atAnchorRule,
	composeClockThenDateRule,
	composeDateThenClockRule,
}

func timeLeaf(name, src string, form token.TimeForm) rule.Rule {
	return leaf(name, token.DimTime, src, func(string, []string) (token.Token, bool) {
		return token.Time{Form: form}, true
	})
}

var todayRule = timeLeaf("time(today)", `today|tonight`, token.Today{})
var tomorrowRule = timeLeaf("time(tomorrow)", `tomorrow`, token.Tomorrow{})
var yesterdayRule = timeLeaf("time(yesterday)", `yesterday`, token.Yesterday{})
var dayAfterTomorrowRule = timeLeaf("time(day-after-tomorrow)", `day after tomorrow`, token.DayAfterTomorrow{})
var dayBeforeYesterdayRule = timeLeaf("time(day-before-yesterday)", `day before yesterday`, token.DayBeforeYesterday{})
var nowRule = timeLeaf("time(now)", `now|right now`, token.Now{})

var weekdayRule = leaf("time(weekday)", token.DimTime, alt(weekdayWordsList()...), func(whole string, _ []string) (token.Token, bool) {
	w, ok := weekdayWords[lower(whole)]
	if !ok {
		return nil, false
	}
	return token.Time{Form: token.DayOfWeek{Weekday: w}}, true
})

// hourAmPmRule matches an explicit-period hour ("3pm"); the am/pm marker
// itself makes the hour unambiguous, so unlike bareHourLatentRule this
// token is never latent.
var hourAmPmRule = leaf("time(hour-ampm)", token.DimTime, `\d{1,2}\s*(am|pm)`, func(whole string, groups []string) (token.Token, bool) {
	h, _, ok := splitHourPeriod(whole, groups)
	if !ok {
		return nil, false
	}
	return token.Time{Form: token.HourMinute{Hour: h}}, true
})

var hourMinuteAmPmRule = leaf("time(hour-minute-ampm)", token.DimTime, `\d{1,2}:\d{2}\s*(am|pm)`, func(whole string, groups []string) (token.Token, bool) {
	if len(groups) != 1 {
		return nil, false
	}
	hm := whole[:len(whole)-len(groups[0])]
	for len(hm) > 0 && hm[len(hm)-1] == ' ' {
		hm = hm[:len(hm)-1]
	}
	h, m, ok := splitHourMinute(hm)
	if !ok {
		return nil, false
	}
	h = to24Hour(h, groups[0])
	return token.Time{Form: token.HourMinute{Hour: h, Minute: m}}, true
})

// bareHourLatentRule reuses an already-discovered plain Numeral node (no
// am/pm, no explicit date context) as a latent hour-of-day guess — spec
// §4.5's "Time tokens must preserve the latent flag" and the glossary's
// "Latent token" definition, worked end to end: "ten" alone never
// surfaces as a time entity (spec §8's negative test), but "at ten"
// does, via atAnchorRule below.
var bareHourLatentRule = rule.Rule{
	Name:      "time(bare-hour-latent)",
	Dimension: token.DimTime,
	Pattern:   []pattern.Item{pattern.Pred("hour-like-numeral", isHourLikeNumeral)},
	Produce: func(children []*chart.Node) (token.Token, bool) {
		num, ok := numeralOf(children[0])
		if !ok {
			return nil, false
		}
		return token.Time{Form: token.Hour{Hour: int(num.Value), Is12hAmbiguous: true}, Latent: true}, true
	},
}

var atAnchorRule = rule.Rule{
	Name:      "time(at-anchor)",
	Dimension: token.DimTime,
	Pattern: []pattern.Item{
		pattern.NewRegex(`at`),
		pattern.Pred("latent-time", isLatentTimeToken),
	},
	Produce: func(children []*chart.Node) (token.Token, bool) {
		t, ok := children[1].Token.(token.Time)
		if !ok {
			return nil, false
		}
		return t.Anchored(), true
	},
}

// composeClockThenDateRule merges a clock time with a trailing date
// anchor ("3pm tomorrow").
var composeClockThenDateRule = rule.Rule{
	Name:      "time(compose-clock-date)",
	Dimension: token.DimTime,
	Pattern: []pattern.Item{
		pattern.Pred("clock-time", isClockTimeToken),
		pattern.Pred("date-anchor", isDateAnchorToken),
	},
	Produce: composeTime,
}

// composeDateThenClockRule merges a date anchor with a trailing clock
// time ("tomorrow at 3pm" sans the redundant "at", or "tomorrow 3pm").
var composeDateThenClockRule = rule.Rule{
	Name:      "time(compose-date-clock)",
	Dimension: token.DimTime,
	Pattern: []pattern.Item{
		pattern.Pred("date-anchor", isDateAnchorToken),
		pattern.Pred("clock-time", isClockTimeToken),
	},
	Produce: func(children []*chart.Node) (token.Token, bool) {
		return composeTime([]*chart.Node{children[1], children[0]})
	},
}

func composeTime(children []*chart.Node) (token.Token, bool) {
	clock, ok1 := children[0].Token.(token.Time)
	date, ok2 := children[1].Token.(token.Time)
	if !ok1 || !ok2 || clock.Latent || date.Latent {
		return nil, false
	}
	return token.Time{Form: token.Composed{A: clock.Form, B: date.Form}}, true
}

func isHourLikeNumeral(t token.Token) bool {
	n, ok := t.(token.Numeral)
	return ok && !n.NotOkForTime && n.PowerOfTen == nil && token.IsNatural(n.Value) && n.Value >= 0 && n.Value <= 23
}

func isLatentTimeToken(t token.Token) bool {
	tm, ok := t.(token.Time)
	return ok && tm.Latent
}

func isClockTimeToken(t token.Token) bool {
	tm, ok := t.(token.Time)
	if !ok || tm.Latent {
		return false
	}
	switch tm.Form.(type) {
	case token.Hour, token.HourMinute, token.HourMinuteSecond:
		return true
	default:
		return false
	}
}

func isDateAnchorToken(t token.Token) bool {
	tm, ok := t.(token.Time)
	if !ok || tm.Latent {
		return false
	}
	switch tm.Form.(type) {
	case token.Today, token.Tomorrow, token.Yesterday, token.DayAfterTomorrow,
		token.DayBeforeYesterday, token.DayOfWeek, token.DateMDY, token.Year,
		token.Month, token.DayOfMonth:
		return true
	default:
		return false
	}
}

// splitHourPeriod parses "3 pm" / "3pm" into (hour-in-24h, period).
func splitHourPeriod(whole string, groups []string) (int, string, bool) {
	if len(groups) != 1 {
		return 0, "", false
	}
	digits := whole[:len(whole)-len(groups[0])]
	for len(digits) > 0 && digits[len(digits)-1] == ' ' {
		digits = digits[:len(digits)-1]
	}
	h, ok := parseInt(digits)
	if !ok {
		return 0, "", false
	}
	return to24Hour(h, groups[0]), lower(groups[0]), true
}

func splitHourMinute(hm string) (int, int, bool) {
	idx := -1
	for i, c := range hm {
		if c == ':' {
			idx = i
			break
		}
	}
	if idx < 0 {
		return 0, 0, false
	}
	h, ok1 := parseInt(hm[:idx])
	m, ok2 := parseInt(hm[idx+1:])
	if !ok1 || !ok2 {
		return 0, 0, false
	}
	return h, m, true
}

func to24Hour(h int, period string) int {
	p := lower(period)
	if p == "pm" && h != 12 {
		return h + 12
	}
	if p == "am" && h == 12 {
		return 0
	}
	return h
}
