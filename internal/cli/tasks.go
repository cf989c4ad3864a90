package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"taskflow/internal/models"
	"taskflow/internal/quickadd"
	"taskflow/internal/workspace"
)

var addCmd = &cobra.Command{
	Use:   "add <words...>",
	Short: "Add a task using quick-add syntax",
	Long: `Add a task. Markers in the text set task fields:

  @tag            add a tag
  !high           priority (low, medium, high, urgent)
  due:tomorrow    due date (today, tomorrow, nextweek, a weekday, YYYY-MM-DD)
  +work           project id

Example:
  taskflow add Buy milk @errands !high due:tomorrow +shopping`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var lsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List tasks grouped by due date",
	RunE:  runList,
}

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Show tasks as kanban columns",
	RunE:  runBoard,
}

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search task text, description and notes",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	a, err := openApp(ctx, false)
	if err != nil {
		return err
	}
	defer a.Close()

	entry := quickadd.Parse(strings.Join(args, " "), models.Today())
	task, err := a.Workspace.CreateTask(ctx, entry.Text, workspace.CreateOptions{
		Priority: entry.Priority,
		DueDate:  entry.DueDate,
		Project:  entry.Project,
		Tags:     entry.Tags,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", taskLine(task, false, a.Workspace.ProjectName))
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	renderList(cmd.OutOrStdout(), a.Live.List(), a.Workspace.ProjectName)
	return nil
}

func runBoard(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	renderBoard(cmd.OutOrStdout(), a.Live.Board())
	return nil
}

func runSearch(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	out := cmd.OutOrStdout()
	results := a.Live.Search(strings.Join(args, " "))
	if len(results) == 0 {
		fmt.Fprintln(out, "No matching tasks.")
		return nil
	}

	today := models.Today()
	for _, task := range results {
		fmt.Fprintln(out, taskLine(task, task.IsOverdue(today), a.Workspace.ProjectName))
	}
	return nil
}
