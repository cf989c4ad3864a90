// Package quickadd parses one-line task entry such as
//
//	Buy milk @errands !high due:tomorrow +shopping
//
// into the task text and its creation options.
package quickadd

import (
	"strings"
	"time"

	"taskflow/internal/models"
)

// Entry is the result of parsing a quick-add line.
type Entry struct {
	Text     string
	Priority models.Priority
	DueDate  *models.Date
	Project  string
	Tags     []string
}

// Parse splits line into words and pulls out markers:
//
//	@tag          adds a tag
//	!priority     low|l, medium|med|m, high|hi|h, urgent|u
//	due:when      today, tomorrow, nextweek, a weekday, or YYYY-MM-DD
//	+project      sets the project id
//
// Words that look like markers but do not parse stay in the text.
func Parse(line string, today models.Date) Entry {
	var e Entry
	var textParts []string

	for _, word := range strings.Fields(line) {
		switch {
		case strings.HasPrefix(word, "@") && len(word) > 1:
			tag := word[1:]
			if !contains(e.Tags, tag) {
				e.Tags = append(e.Tags, tag)
			}

		case strings.HasPrefix(word, "!"):
			if p, ok := parsePriority(word[1:]); ok {
				e.Priority = p
			} else {
				textParts = append(textParts, word)
			}

		case strings.HasPrefix(strings.ToLower(word), "due:"):
			if d, ok := ParseDue(word[len("due:"):], today); ok {
				e.DueDate = &d
			} else {
				textParts = append(textParts, word)
			}

		case strings.HasPrefix(word, "+") && len(word) > 1:
			e.Project = strings.ToLower(word[1:])

		default:
			textParts = append(textParts, word)
		}
	}

	e.Text = strings.Join(textParts, " ")
	return e
}

func parsePriority(s string) (models.Priority, bool) {
	switch strings.ToLower(s) {
	case "low", "l":
		return models.PriorityLow, true
	case "medium", "med", "m":
		return models.PriorityMedium, true
	case "high", "hi", "h":
		return models.PriorityHigh, true
	case "urgent", "u":
		return models.PriorityUrgent, true
	}
	return "", false
}

var weekdays = map[string]time.Weekday{
	"sunday": time.Sunday, "sun": time.Sunday,
	"monday": time.Monday, "mon": time.Monday,
	"tuesday": time.Tuesday, "tue": time.Tuesday,
	"wednesday": time.Wednesday, "wed": time.Wednesday,
	"thursday": time.Thursday, "thu": time.Thursday,
	"friday": time.Friday, "fri": time.Friday,
	"saturday": time.Saturday, "sat": time.Saturday,
}

// ParseDue resolves a relative or absolute due date against today. A
// weekday always means the next one, never today.
func ParseDue(s string, today models.Date) (models.Date, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "":
		return models.Date{}, false
	case "today":
		return today, true
	case "tomorrow", "tom":
		return today.AddDays(1), true
	case "nextweek":
		return today.AddDays(7), true
	}

	if day, ok := weekdays[s]; ok {
		daysUntil := int(day - today.Time().Weekday())
		if daysUntil <= 0 {
			daysUntil += 7
		}
		return today.AddDays(daysUntil), true
	}

	d, err := models.ParseDate(s)
	if err != nil {
		return models.Date{}, false
	}
	return d, true
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
