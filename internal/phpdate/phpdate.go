// Package phpdate renders instants with the single-letter pattern vocabulary
// of PHP's date() function ("Y-m-d H:i:s", "d-M-Y", "D, d M Y H:i:s O", ...).
//
// Every rune of the pattern is either a token, a backslash escape, or a
// literal. Runes that are not tokens, letters included, are copied to the
// output unchanged, so Format never fails.
package phpdate

import (
	"strconv"
	"strings"
	"time"
)

const escape = '\\'

// Format renders t according to pattern.
func Format(pattern string, t time.Time) string {
	var b strings.Builder
	b.Grow(len(pattern) * 2)

	escaped := false
	for _, r := range pattern {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}

		if r == escape {
			escaped = true
			continue
		}

		if !writeToken(&b, r, t) {
			b.WriteRune(r)
		}
	}

	if escaped {
		b.WriteRune(escape)
	}

	return b.String()
}

//nolint:gocyclo,cyclop // one case per token
func writeToken(b *strings.Builder, r rune, t time.Time) bool {
	switch r {
	// day
	case 'd':
		pad(b, t.Day(), 2)
	case 'D':
		b.WriteString(t.Weekday().String()[:3])
	case 'j':
		b.WriteString(strconv.Itoa(t.Day()))
	case 'l':
		b.WriteString(t.Weekday().String())
	case 'N':
		b.WriteString(strconv.Itoa(isoWeekday(t)))
	case 'S':
		b.WriteString(ordinalSuffix(t.Day()))
	case 'w':
		b.WriteString(strconv.Itoa(int(t.Weekday())))
	case 'z':
		b.WriteString(strconv.Itoa(t.YearDay() - 1))

	// week
	case 'W':
		_, week := t.ISOWeek()
		pad(b, week, 2)

	// month
	case 'F':
		b.WriteString(t.Month().String())
	case 'm':
		pad(b, int(t.Month()), 2)
	case 'M':
		b.WriteString(t.Month().String()[:3])
	case 'n':
		b.WriteString(strconv.Itoa(int(t.Month())))
	case 't':
		b.WriteString(strconv.Itoa(daysInMonth(t)))

	// year
	case 'L':
		if isLeap(t.Year()) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case 'o':
		year, _ := t.ISOWeek()
		writeYear(b, year)
	case 'X':
		if t.Year() >= 0 {
			b.WriteByte('+')
		}
		writeYear(b, t.Year())
	case 'x':
		if t.Year() >= 10000 {
			b.WriteByte('+')
		}
		writeYear(b, t.Year())
	case 'Y':
		writeYear(b, t.Year())
	case 'y':
		pad(b, abs(t.Year())%100, 2)

	// time
	case 'a':
		b.WriteString(meridiem(t, "am", "pm"))
	case 'B':
		pad(b, swatchBeat(t), 3)
	case 'A':
		b.WriteString(meridiem(t, "AM", "PM"))
	case 'g':
		b.WriteString(strconv.Itoa(hour12(t)))
	case 'G':
		b.WriteString(strconv.Itoa(t.Hour()))
	case 'h':
		pad(b, hour12(t), 2)
	case 'H':
		pad(b, t.Hour(), 2)
	case 'i':
		pad(b, t.Minute(), 2)
	case 's':
		pad(b, t.Second(), 2)
	case 'u':
		pad(b, t.Nanosecond()/int(time.Microsecond), 6)
	case 'v':
		pad(b, t.Nanosecond()/int(time.Millisecond), 3)

	// zone
	case 'e':
		b.WriteString(zoneName(t.Location()))
	case 'I':
		if t.IsDST() {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	case 'T':
		b.WriteString(t.Format("MST"))
	case 'P':
		b.WriteString(t.Format("-07:00"))
	case 'O':
		b.WriteString(t.Format("-0700"))
	case 'p':
		if _, offset := t.Zone(); offset == 0 {
			b.WriteByte('Z')
		} else {
			b.WriteString(t.Format("-07:00"))
		}
	case 'Z':
		_, offset := t.Zone()
		b.WriteString(strconv.Itoa(offset))

	// full date/time
	case 'c':
		b.WriteString(Format(ISO8601, t))
	case 'r':
		b.WriteString(Format(RFC2822, t))
	case 'U':
		b.WriteString(strconv.FormatInt(t.Unix(), 10))

	default:
		return false
	}

	return true
}

func pad(b *strings.Builder, v int, width int) {
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		b.WriteByte('0')
	}
	b.WriteString(s)
}

func writeYear(b *strings.Builder, year int) {
	if year < 0 {
		b.WriteByte('-')
	}
	pad(b, abs(year), 4)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func isoWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}

	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	default:
		return "th"
	}
}

func daysInMonth(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func isLeap(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func hour12(t time.Time) int {
	h := t.Hour() % 12
	if h == 0 {
		return 12
	}
	return h
}

// swatchBeat is the Internet time of t: the day in Biel (UTC+1) split into
// 1000 beats.
func swatchBeat(t time.Time) int {
	u := t.UTC()
	seconds := (u.Hour()*3600 + u.Minute()*60 + u.Second() + 3600) % 86400

	return seconds * 10 / 864
}

func meridiem(t time.Time, am, pm string) string {
	if t.Hour() < 12 {
		return am
	}
	return pm
}
