package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTaskValidation_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		task    Task
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty text should fail",
			task:    Task{Text: "", Priority: PriorityMedium, Status: StatusTodo},
			wantErr: true,
			errMsg:  "text is required",
		},
		{
			name:    "whitespace text should fail",
			task:    Task{Text: "   ", Priority: PriorityMedium, Status: StatusTodo},
			wantErr: true,
			errMsg:  "text is required",
		},
		{
			name:    "valid task should pass",
			task:    Task{Text: "Buy milk", Priority: PriorityMedium, Status: StatusTodo},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.task.Validate()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error but got none")
				} else if err.Error() != tt.errMsg {
					t.Errorf("expected error %q, got %q", tt.errMsg, err.Error())
				}
			} else {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
			}
		})
	}
}

func TestTaskValidation_PriorityValues(t *testing.T) {
	tests := []struct {
		name     string
		priority Priority
		wantErr  bool
	}{
		{name: "low priority is valid", priority: PriorityLow},
		{name: "medium priority is valid", priority: PriorityMedium},
		{name: "high priority is valid", priority: PriorityHigh},
		{name: "urgent priority is valid", priority: PriorityUrgent},
		{name: "empty priority should fail", priority: "", wantErr: true},
		{name: "invalid priority should fail", priority: "critical", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := Task{Text: "Test", Priority: tt.priority, Status: StatusTodo}
			err := task.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
		wantErr  bool
	}{
		{input: "todo", expected: StatusTodo},
		{input: "in-progress", expected: StatusInProgress},
		{input: "inprogress", expected: StatusInProgress},
		{input: "Review", expected: StatusReview},
		{input: " done ", expected: StatusDone},
		{input: "archived", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error for %q", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestTask_SetCompletedKeepsStatusInStep(t *testing.T) {
	task := Task{Text: "Test", Status: StatusReview}

	task.SetCompleted(true)
	if !task.Completed || task.Status != StatusDone {
		t.Fatalf("expected completed/done, got %v/%s", task.Completed, task.Status)
	}

	task.SetCompleted(false)
	if task.Completed || task.Status != StatusTodo {
		t.Fatalf("expected not completed/todo, got %v/%s", task.Completed, task.Status)
	}
}

func TestTask_SetStatusKeepsCompletedInStep(t *testing.T) {
	for _, status := range Statuses {
		task := Task{Text: "Test"}
		task.SetStatus(status)
		if task.Completed != (status == StatusDone) {
			t.Errorf("status %s: expected completed=%v, got %v", status, status == StatusDone, task.Completed)
		}
	}
}

func TestTask_Normalize(t *testing.T) {
	zero := Date{}
	task := Task{Text: "Test", Completed: true, Status: StatusInProgress, DueDate: &zero}
	task.Normalize()

	if task.DueDate != nil {
		t.Error("expected cleared due date to become nil")
	}
	if task.Status != StatusDone {
		t.Errorf("expected status done for completed task, got %s", task.Status)
	}
	if task.Tags == nil || task.Subtasks == nil {
		t.Error("expected empty, non-nil slices")
	}
	if task.Priority != PriorityMedium {
		t.Errorf("expected default priority medium, got %s", task.Priority)
	}

	done := Task{Text: "Done", Status: StatusDone}
	done.Normalize()
	if !done.Completed {
		t.Error("expected done task to be marked completed")
	}
}

func TestTask_IsOverdue(t *testing.T) {
	today := Date{Year: 2026, Month: time.March, Day: 10}
	yesterday := today.AddDays(-1)
	tomorrow := today.AddDays(1)

	tests := []struct {
		name     string
		task     Task
		expected bool
	}{
		{
			name:     "past due date and not completed is overdue",
			task:     Task{DueDate: &yesterday, Completed: false},
			expected: true,
		},
		{
			name:     "past due date but completed is not overdue",
			task:     Task{DueDate: &yesterday, Completed: true},
			expected: false,
		},
		{
			name:     "due today is not overdue",
			task:     Task{DueDate: &today, Completed: false},
			expected: false,
		},
		{
			name:     "future due date is not overdue",
			task:     Task{DueDate: &tomorrow, Completed: false},
			expected: false,
		},
		{
			name:     "no due date is not overdue",
			task:     Task{DueDate: nil, Completed: false},
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.task.IsOverdue(today)
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestTask_PriorityOrder(t *testing.T) {
	tests := []struct {
		name     string
		task     Task
		expected int
	}{
		{name: "urgent priority returns 0", task: Task{Priority: PriorityUrgent}, expected: 0},
		{name: "high priority returns 1", task: Task{Priority: PriorityHigh}, expected: 1},
		{name: "medium priority returns 2", task: Task{Priority: PriorityMedium}, expected: 2},
		{name: "low priority returns 3", task: Task{Priority: PriorityLow}, expected: 3},
		{name: "unknown priority returns 99", task: Task{Priority: "unknown"}, expected: 99},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.task.PriorityOrder()
			if result != tt.expected {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestTask_CloneIsDeep(t *testing.T) {
	due := Date{Year: 2026, Month: time.May, Day: 1}
	original := Task{
		Text:     "Test",
		DueDate:  &due,
		Tags:     []string{"a"},
		Subtasks: []Subtask{{Text: "s"}},
	}

	clone := original.Clone()
	clone.Tags[0] = "b"
	clone.Subtasks[0].Completed = true
	clone.DueDate.Day = 2

	if original.Tags[0] != "a" || original.Subtasks[0].Completed || original.DueDate.Day != 1 {
		t.Fatal("expected clone mutations not to affect the original")
	}
}

func TestTask_SubtaskProgress(t *testing.T) {
	task := Task{Subtasks: []Subtask{{Text: "a", Completed: true}, {Text: "b"}, {Text: "c", Completed: true}}}
	done, total := task.SubtaskProgress()
	if done != 2 || total != 3 {
		t.Errorf("expected 2/3, got %d/%d", done, total)
	}
}

func TestTask_JSONDueDate(t *testing.T) {
	var task Task
	if err := json.Unmarshal([]byte(`{"id":"x","text":"t","dueDate":"2026-10-19"}`), &task); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if task.DueDate == nil || task.DueDate.String() != "2026-10-19" {
		t.Fatalf("expected due date 2026-10-19, got %v", task.DueDate)
	}

	var cleared Task
	if err := json.Unmarshal([]byte(`{"id":"x","text":"t","dueDate":""}`), &cleared); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	cleared.Normalize()
	if cleared.DueDate != nil {
		t.Fatalf("expected empty due date to normalize to nil, got %v", cleared.DueDate)
	}
}
