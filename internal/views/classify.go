// Package views projects the task collection into the list, board and
// calendar views, and answers search and stats queries. Every function here
// recomputes from the full task list it is given.
package views

import "taskflow/internal/models"

// Bucket is a temporal group of the list view.
type Bucket string

const (
	BucketToday     Bucket = "today"
	BucketUpcoming  Bucket = "upcoming"
	BucketSomeday   Bucket = "someday"
	BucketCompleted Bucket = "completed"
)

// UpcomingWindow is how many days past today count as upcoming.
const UpcomingWindow = 7

// TemporalBucket places a task in a list group. Tasks with no due date or a
// due date on or before today belong to today.
func TemporalBucket(task models.Task, today models.Date) Bucket {
	switch {
	case task.Completed:
		return BucketCompleted
	case task.DueDate == nil || !task.DueDate.After(today):
		return BucketToday
	case !task.DueDate.After(today.AddDays(UpcomingWindow)):
		return BucketUpcoming
	default:
		return BucketSomeday
	}
}

// WorkflowBucket returns the board column of a task. Unknown statuses land
// in todo.
func WorkflowBucket(task models.Task) models.Status {
	st, err := models.ParseStatus(string(task.Status))
	if err != nil {
		return models.StatusTodo
	}
	return st
}
