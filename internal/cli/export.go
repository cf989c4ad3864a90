package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"taskflow/internal/models"
	"taskflow/internal/workspace"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write all tasks and projects to stdout",
	Long: `Export the workspace as JSON, YAML or TOML.

Examples:
  taskflow export > backup.json
  taskflow export --format yaml`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "json", "output format: json, yaml or toml")
}

type exportSubtask struct {
	Text      string `json:"text" yaml:"text" toml:"text"`
	Completed bool   `json:"completed" yaml:"completed" toml:"completed"`
}

type exportTask struct {
	ID          string          `json:"id" yaml:"id" toml:"id"`
	Text        string          `json:"text" yaml:"text" toml:"text"`
	Completed   bool            `json:"completed" yaml:"completed" toml:"completed"`
	Priority    string          `json:"priority" yaml:"priority" toml:"priority"`
	DueDate     string          `json:"dueDate,omitempty" yaml:"dueDate,omitempty" toml:"dueDate,omitempty"`
	Project     string          `json:"project,omitempty" yaml:"project,omitempty" toml:"project,omitempty"`
	Status      string          `json:"status" yaml:"status" toml:"status"`
	Tags        []string        `json:"tags" yaml:"tags" toml:"tags"`
	Subtasks    []exportSubtask `json:"subtasks" yaml:"subtasks" toml:"subtasks"`
	Notes       string          `json:"notes" yaml:"notes" toml:"notes"`
	Description string          `json:"description" yaml:"description" toml:"description"`
	CreatedAt   time.Time       `json:"createdAt" yaml:"createdAt" toml:"createdAt"`
}

type exportProject struct {
	ID    string `json:"id" yaml:"id" toml:"id"`
	Name  string `json:"name" yaml:"name" toml:"name"`
	Icon  string `json:"icon" yaml:"icon" toml:"icon"`
	Color string `json:"color" yaml:"color" toml:"color"`
}

type exportDoc struct {
	Projects []exportProject `json:"projects" yaml:"projects" toml:"projects"`
	Tasks    []exportTask    `json:"tasks" yaml:"tasks" toml:"tasks"`
}

func newExportDoc(snap workspace.Snapshot) exportDoc {
	doc := exportDoc{
		Projects: make([]exportProject, 0, len(snap.Projects)),
		Tasks:    make([]exportTask, 0, len(snap.Tasks)),
	}
	for _, p := range snap.Projects {
		doc.Projects = append(doc.Projects, exportProject(p))
	}
	for _, t := range snap.Tasks {
		doc.Tasks = append(doc.Tasks, newExportTask(t))
	}
	return doc
}

func newExportTask(t models.Task) exportTask {
	et := exportTask{
		ID:          t.ID,
		Text:        t.Text,
		Completed:   t.Completed,
		Priority:    string(t.Priority),
		Project:     t.Project,
		Status:      string(t.Status),
		Tags:        append([]string{}, t.Tags...),
		Subtasks:    make([]exportSubtask, 0, len(t.Subtasks)),
		Notes:       t.Notes,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
	}
	if t.DueDate != nil {
		et.DueDate = t.DueDate.String()
	}
	for _, s := range t.Subtasks {
		et.Subtasks = append(et.Subtasks, exportSubtask(s))
	}
	return et
}

// writeExport encodes the snapshot in the given format.
func writeExport(w io.Writer, format string, snap workspace.Snapshot) error {
	doc := newExportDoc(snap)

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(doc)
	default:
		return fmt.Errorf("unknown format %q (want json, yaml or toml)", format)
	}
}

func runExport(cmd *cobra.Command, args []string) error {
	a, err := openApp(cmd.Context(), true)
	if err != nil {
		return err
	}
	defer a.Close()

	return writeExport(cmd.OutOrStdout(), exportFormat, a.Workspace.Snapshot())
}
