package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Parser resolves relative date phrases ("tomorrow", "in 3 days",
// "next friday") to absolute times in a fixed timezone.
type Parser struct {
	location *time.Location
}

// NewParser creates a parser for the given IANA timezone string, e.g. "Europe/Berlin".
func NewParser(timezone string) (*Parser, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

var inDurationPattern = regexp.MustCompile(`in (\d+) (day|days|week|weeks|month|months)`)
var nextWeekdayPattern = regexp.MustCompile(`next (monday|tuesday|wednesday|thursday|friday|saturday|sunday)`)

// Resolve scans an utterance for the first relative-date phrase it knows
// and resolves it against base. Returns the resolved day, the phrase that
// matched, and whether anything matched at all.
func (p *Parser) Resolve(utterance string, base time.Time) (time.Time, string, bool) {
	utterance = strings.ToLower(utterance)

	for _, word := range []string{"tomorrow", "yesterday", "today"} {
		if strings.Contains(utterance, word) {
			t, _ := p.Parse(word, base)
			return t, word, true
		}
	}

	if m := inDurationPattern.FindString(utterance); m != "" {
		if t, err := p.Parse(m, base); err == nil {
			return t, m, true
		}
	}

	if m := nextWeekdayPattern.FindString(utterance); m != "" {
		if t, err := p.Parse(m, base); err == nil {
			return t, m, true
		}
	}

	return time.Time{}, "", false
}

// Parse converts a single relative date phrase to an absolute time,
// using base as the reference point.
func (p *Parser) Parse(relative string, base time.Time) (time.Time, error) {
	relative = strings.ToLower(strings.TrimSpace(relative))

	switch relative {
	case "today":
		return p.startOfDay(base), nil
	case "tomorrow":
		return p.startOfDay(base.AddDate(0, 0, 1)), nil
	case "yesterday":
		return p.startOfDay(base.AddDate(0, 0, -1)), nil
	}

	if strings.HasPrefix(relative, "in ") {
		return p.parseInDuration(relative, base)
	}
	if strings.HasPrefix(relative, "next ") {
		return p.parseNextWeekday(relative, base)
	}

	return time.Time{}, fmt.Errorf("unrecognized relative date: %q", relative)
}

// parseInDuration handles "in 3 days", "in 2 weeks", "in 1 month".
func (p *Parser) parseInDuration(relative string, base time.Time) (time.Time, error) {
	matches := inDurationPattern.FindStringSubmatch(relative)
	if len(matches) != 3 {
		return base, fmt.Errorf("invalid duration format: %q", relative)
	}

	amount, _ := strconv.Atoi(matches[1])

	switch unit := matches[2]; {
	case strings.HasPrefix(unit, "day"):
		return p.startOfDay(base.AddDate(0, 0, amount)), nil
	case strings.HasPrefix(unit, "week"):
		return p.startOfDay(base.AddDate(0, 0, amount*7)), nil
	default:
		return p.startOfDay(base.AddDate(0, amount, 0)), nil
	}
}

// parseNextWeekday handles "next monday" through "next sunday".
func (p *Parser) parseNextWeekday(relative string, base time.Time) (time.Time, error) {
	weekdays := map[string]time.Weekday{
		"monday":    time.Monday,
		"tuesday":   time.Tuesday,
		"wednesday": time.Wednesday,
		"thursday":  time.Thursday,
		"friday":    time.Friday,
		"saturday":  time.Saturday,
		"sunday":    time.Sunday,
	}

	dayName := strings.TrimPrefix(relative, "next ")
	target, ok := weekdays[dayName]
	if !ok {
		return base, fmt.Errorf("unknown weekday: %q", dayName)
	}

	daysUntil := int(target - base.Weekday())
	if daysUntil <= 0 {
		daysUntil += 7
	}

	return p.startOfDay(base.AddDate(0, 0, daysUntil)), nil
}

// startOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) startOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}
