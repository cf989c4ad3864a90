package views

import (
	"fmt"
	"time"

	"taskflow/internal/models"
)

// Item is a task as shown in the list view.
type Item struct {
	models.Task
	Overdue bool `json:"overdue"`
}

// Group is one section of the list view.
type Group struct {
	Bucket Bucket `json:"bucket"`
	Items  []Item `json:"items"`
	Count  int    `json:"count"`
}

func (g *Group) add(item Item) {
	g.Items = append(g.Items, item)
	g.Count++
}

// ListView partitions the tasks into the four temporal groups.
type ListView struct {
	Today     Group `json:"today"`
	Upcoming  Group `json:"upcoming"`
	Someday   Group `json:"someday"`
	Completed Group `json:"completed"`
}

// Groups returns the groups in display order.
func (l ListView) Groups() []Group {
	return []Group{l.Today, l.Upcoming, l.Someday, l.Completed}
}

// Total returns the number of tasks across all groups.
func (l ListView) Total() int {
	return l.Today.Count + l.Upcoming.Count + l.Someday.Count + l.Completed.Count
}

func newGroup(b Bucket) Group {
	return Group{Bucket: b, Items: []Item{}}
}

// GroupedList builds the list view. Each task lands in exactly one group and
// keeps its position relative to the others in that group.
func GroupedList(tasks []models.Task, today models.Date) ListView {
	view := ListView{
		Today:     newGroup(BucketToday),
		Upcoming:  newGroup(BucketUpcoming),
		Someday:   newGroup(BucketSomeday),
		Completed: newGroup(BucketCompleted),
	}
	for _, task := range tasks {
		item := Item{Task: task, Overdue: task.IsOverdue(today)}
		switch TemporalBucket(task, today) {
		case BucketCompleted:
			view.Completed.add(item)
		case BucketToday:
			view.Today.add(item)
		case BucketUpcoming:
			view.Upcoming.add(item)
		default:
			view.Someday.add(item)
		}
	}
	return view
}

// Column is one kanban column.
type Column struct {
	Status models.Status `json:"status"`
	Tasks  []models.Task `json:"tasks"`
	Count  int           `json:"count"`
}

// Board holds the four kanban columns.
type Board struct {
	Todo       Column `json:"todo"`
	InProgress Column `json:"inProgress"`
	Review     Column `json:"review"`
	Done       Column `json:"done"`
}

// Columns returns the columns in board order.
func (b *Board) Columns() []*Column {
	return []*Column{&b.Todo, &b.InProgress, &b.Review, &b.Done}
}

// Column returns the column for a status.
func (b *Board) Column(status models.Status) *Column {
	for _, c := range b.Columns() {
		if c.Status == status {
			return c
		}
	}
	return &b.Todo
}

func newColumn(st models.Status) Column {
	return Column{Status: st, Tasks: []models.Task{}}
}

// KanbanColumns builds the board view.
func KanbanColumns(tasks []models.Task) Board {
	board := Board{
		Todo:       newColumn(models.StatusTodo),
		InProgress: newColumn(models.StatusInProgress),
		Review:     newColumn(models.StatusReview),
		Done:       newColumn(models.StatusDone),
	}
	for _, task := range tasks {
		col := board.Column(WorkflowBucket(task))
		col.Tasks = append(col.Tasks, task)
		col.Count++
	}
	return board
}

// CalendarDayLimit is how many tasks a calendar day shows before the rest
// collapse into an overflow count.
const CalendarDayLimit = 3

// Day is one calendar cell.
type Day struct {
	Tasks    []models.Task `json:"tasks"`
	Overflow int           `json:"overflow"`
	Total    int           `json:"total"`
}

// Calendar indexes the open tasks of one month by due date.
type Calendar struct {
	Year  int            `json:"year"`
	Month time.Month     `json:"month"`
	Days  map[string]Day `json:"days"`
}

// Label returns the month heading, e.g. "March 2025".
func (c Calendar) Label() string {
	return fmt.Sprintf("%s %d", c.Month, c.Year)
}

// CalendarIndex maps each date of the month to the open tasks due that day.
// Days without tasks are absent.
func CalendarIndex(tasks []models.Task, year int, month time.Month) Calendar {
	cal := Calendar{Year: year, Month: month, Days: map[string]Day{}}
	for _, task := range tasks {
		if task.Completed || task.DueDate == nil || !task.DueDate.InMonth(year, month) {
			continue
		}
		key := task.DueDate.String()
		day := cal.Days[key]
		day.Total++
		if len(day.Tasks) < CalendarDayLimit {
			day.Tasks = append(day.Tasks, task)
		} else {
			day.Overflow++
		}
		cal.Days[key] = day
	}
	return cal
}
