package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"taskflow/internal/models"
	"taskflow/internal/views"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#6366f1"))
	countStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	doneStyle    = lipgloss.NewStyle().Strikethrough(true).Foreground(lipgloss.Color("#94a3b8"))
	overdueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#ef4444"))
	tagStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981"))
	columnStyle  = lipgloss.NewStyle().Width(28).MarginRight(2)

	priorityStyles = map[models.Priority]lipgloss.Style{
		models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("#10b981")),
		models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b")),
		models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f97316")),
		models.PriorityUrgent: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ef4444")),
	}
)

var groupTitles = map[views.Bucket]string{
	views.BucketToday:     "Today",
	views.BucketUpcoming:  "Upcoming",
	views.BucketSomeday:   "Someday",
	views.BucketCompleted: "Completed",
}

var columnTitles = map[models.Status]string{
	models.StatusTodo:       "To Do",
	models.StatusInProgress: "In Progress",
	models.StatusReview:     "Review",
	models.StatusDone:       "Done",
}

// taskLine renders one task as a single line.
func taskLine(task models.Task, overdue bool, projectName func(string) string) string {
	check := "[ ]"
	text := task.Text
	if task.Completed {
		check = "[x]"
		text = doneStyle.Render(text)
	}

	parts := []string{check, priorityStyles[task.Priority].Render("●"), text}
	if task.DueDate != nil {
		due := task.DueDate.String()
		if overdue {
			due = overdueStyle.Render(due + " overdue")
		}
		parts = append(parts, countStyle.Render("due ")+due)
	}
	if name := projectName(task.Project); name != "" {
		parts = append(parts, countStyle.Render("("+name+")"))
	}
	for _, tag := range task.Tags {
		parts = append(parts, tagStyle.Render("@"+tag))
	}
	if done, total := task.SubtaskProgress(); total > 0 {
		parts = append(parts, countStyle.Render(fmt.Sprintf("%d/%d", done, total)))
	}
	return strings.Join(parts, " ")
}

func renderList(w io.Writer, list views.ListView, projectName func(string) string) {
	for _, g := range list.Groups() {
		fmt.Fprintf(w, "%s %s\n", headingStyle.Render(groupTitles[g.Bucket]), countStyle.Render(fmt.Sprintf("(%d)", g.Count)))
		for _, item := range g.Items {
			fmt.Fprintf(w, "  %s\n", taskLine(item.Task, item.Overdue, projectName))
		}
		fmt.Fprintln(w)
	}
}

func renderBoard(w io.Writer, board views.Board) {
	var cols []string
	for _, c := range board.Columns() {
		var b strings.Builder
		fmt.Fprintf(&b, "%s %s\n", headingStyle.Render(columnTitles[c.Status]), countStyle.Render(fmt.Sprintf("(%d)", c.Count)))
		for _, task := range c.Tasks {
			fmt.Fprintf(&b, "%s %s\n", priorityStyles[task.Priority].Render("●"), task.Text)
		}
		cols = append(cols, columnStyle.Render(b.String()))
	}
	fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cols...))
}
