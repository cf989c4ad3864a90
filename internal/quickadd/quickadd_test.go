package quickadd

import (
	"testing"
	"time"

	"taskflow/internal/models"
)

// 2025-03-10 is a Monday.
var today = models.Date{Year: 2025, Month: time.March, Day: 10}

func TestParse(t *testing.T) {
	tomorrow := today.AddDays(1)
	fixed := models.Date{Year: 2025, Month: time.April, Day: 2}

	tests := []struct {
		name     string
		line     string
		text     string
		priority models.Priority
		due      *models.Date
		project  string
		tags     []string
	}{
		{
			name: "plain text",
			line: "Buy milk",
			text: "Buy milk",
		},
		{
			name:     "all markers",
			line:     "Buy milk @errands !high due:tomorrow +Shopping",
			text:     "Buy milk",
			priority: models.PriorityHigh,
			due:      &tomorrow,
			project:  "shopping",
			tags:     []string{"errands"},
		},
		{
			name:     "markers mixed into text",
			line:     "!u call @phone the bank due:2025-04-02",
			text:     "call the bank",
			priority: models.PriorityUrgent,
			due:      &fixed,
			tags:     []string{"phone"},
		},
		{
			name: "unknown markers stay in text",
			line: "Fix bug !now due:someday",
			text: "Fix bug !now due:someday",
		},
		{
			name: "duplicate tags collapse",
			line: "Read @books @books",
			text: "Read",
			tags: []string{"books"},
		},
		{
			name: "lone symbols are text",
			line: "a + b @ c",
			text: "a + b @ c",
		},
		{
			name:     "only markers",
			line:     "@home !low",
			text:     "",
			priority: models.PriorityLow,
			tags:     []string{"home"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.line, today)

			if got.Text != tt.text {
				t.Errorf("Text = %q, want %q", got.Text, tt.text)
			}
			if got.Priority != tt.priority {
				t.Errorf("Priority = %q, want %q", got.Priority, tt.priority)
			}
			if got.Project != tt.project {
				t.Errorf("Project = %q, want %q", got.Project, tt.project)
			}
			switch {
			case tt.due == nil && got.DueDate != nil:
				t.Errorf("DueDate = %v, want none", *got.DueDate)
			case tt.due != nil && (got.DueDate == nil || *got.DueDate != *tt.due):
				t.Errorf("DueDate = %v, want %v", got.DueDate, *tt.due)
			}
			if len(got.Tags) != len(tt.tags) {
				t.Fatalf("Tags = %v, want %v", got.Tags, tt.tags)
			}
			for i := range tt.tags {
				if got.Tags[i] != tt.tags[i] {
					t.Errorf("Tags[%d] = %q, want %q", i, got.Tags[i], tt.tags[i])
				}
			}
		})
	}
}

func TestParseDue(t *testing.T) {
	tests := []struct {
		input  string
		want   models.Date
		wantOK bool
	}{
		{"today", today, true},
		{"TOMORROW", today.AddDays(1), true},
		{"tom", today.AddDays(1), true},
		{"nextweek", today.AddDays(7), true},
		{"monday", today.AddDays(7), true},
		{"tue", today.AddDays(1), true},
		{"friday", today.AddDays(4), true},
		{"sun", today.AddDays(6), true},
		{"2025-12-31", models.Date{Year: 2025, Month: time.December, Day: 31}, true},
		{"2025-13-01", models.Date{}, false},
		{"later", models.Date{}, false},
		{"", models.Date{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseDue(tt.input, today)
			if ok != tt.wantOK {
				t.Fatalf("ParseDue(%q) ok = %v, want %v", tt.input, ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParseDue(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
