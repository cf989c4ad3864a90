package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"taskflow/internal/models"
	"taskflow/internal/views"
	"taskflow/internal/workspace"
)

var testToday = models.Date{Year: 2025, Month: time.March, Day: 10}

func testSnapshot() workspace.Snapshot {
	due := testToday.AddDays(2)
	return workspace.Snapshot{
		Projects: models.SeedProjects(),
		Tasks: []models.Task{
			{
				ID:        "t1",
				Text:      "Buy milk",
				Priority:  models.PriorityHigh,
				DueDate:   &due,
				Project:   "shopping",
				Tags:      []string{"errands"},
				Subtasks:  []models.Subtask{{Text: "check fridge", Completed: true}},
				Status:    models.StatusTodo,
				CreatedAt: time.Date(2025, time.March, 9, 8, 0, 0, 0, time.UTC),
			},
			{
				ID:        "t2",
				Text:      "File taxes",
				Completed: true,
				Priority:  models.PriorityMedium,
				Tags:      []string{},
				Subtasks:  []models.Subtask{},
				Status:    models.StatusDone,
				CreatedAt: time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestWriteExport_JSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeExport(&buf, "json", testSnapshot()); err != nil {
		t.Fatalf("writeExport failed: %v", err)
	}

	var doc exportDoc
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
	}
	if len(doc.Tasks) != 2 || len(doc.Projects) != 3 {
		t.Fatalf("unexpected export: %+v", doc)
	}
	if doc.Tasks[0].DueDate != "2025-03-12" || doc.Tasks[1].DueDate != "" {
		t.Errorf("unexpected due dates: %q, %q", doc.Tasks[0].DueDate, doc.Tasks[1].DueDate)
	}
}

func TestWriteExport_YAML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeExport(&buf, "yaml", testSnapshot()); err != nil {
		t.Fatalf("writeExport failed: %v", err)
	}

	var doc exportDoc
	if err := yaml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid YAML: %v\n%s", err, buf.String())
	}
	if len(doc.Tasks) != 2 || doc.Tasks[0].Subtasks[0].Text != "check fridge" {
		t.Errorf("unexpected export: %+v", doc)
	}
	if doc.Projects[2].Name != "Shopping" {
		t.Errorf("unexpected projects: %+v", doc.Projects)
	}
}

func TestWriteExport_TOML(t *testing.T) {
	var buf bytes.Buffer
	if err := writeExport(&buf, "toml", testSnapshot()); err != nil {
		t.Fatalf("writeExport failed: %v", err)
	}

	var doc exportDoc
	if err := toml.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid TOML: %v\n%s", err, buf.String())
	}
	if len(doc.Tasks) != 2 || doc.Tasks[0].Project != "shopping" {
		t.Errorf("unexpected export: %+v", doc)
	}
	if !doc.Tasks[1].CreatedAt.Equal(time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)) {
		t.Errorf("createdAt not preserved: %v", doc.Tasks[1].CreatedAt)
	}
}

func TestWriteExport_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	if err := writeExport(&buf, "xml", testSnapshot()); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestRenderList(t *testing.T) {
	snap := testSnapshot()
	var buf bytes.Buffer
	names := func(id string) string {
		if id == "shopping" {
			return "Shopping"
		}
		return ""
	}

	renderList(&buf, views.GroupedList(snap.Tasks, testToday), names)

	out := buf.String()
	for _, want := range []string{"Today", "Upcoming", "Someday", "Completed", "Buy milk", "(Shopping)", "@errands", "1/1", "File taxes"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestRenderBoard(t *testing.T) {
	var buf bytes.Buffer
	renderBoard(&buf, views.KanbanColumns(testSnapshot().Tasks))

	out := buf.String()
	for _, want := range []string{"To Do", "In Progress", "Review", "Done", "Buy milk", "File taxes"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestAddAndSearchCommands(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("TASKFLOW_DATA_DIR", dir)
	t.Setenv("TASKFLOW_BACKEND", "file")
	t.Setenv("DB_PATH", "")
	t.Setenv("PORT", "")
	configPath = filepath.Join(dir, "config.toml")
	t.Cleanup(func() { configPath = "" })

	ctx := context.Background()
	var out bytes.Buffer

	addCmd.SetContext(ctx)
	addCmd.SetOut(&out)
	if err := runAdd(addCmd, []string{"Buy", "milk", "@errands", "!high"}); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out.String(), "Added") || !strings.Contains(out.String(), "Buy milk") {
		t.Errorf("unexpected add output: %q", out.String())
	}

	out.Reset()
	searchCmd.SetContext(ctx)
	searchCmd.SetOut(&out)
	if err := runSearch(searchCmd, []string{"MILK"}); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out.String(), "Buy milk") {
		t.Errorf("expected search hit, got %q", out.String())
	}

	out.Reset()
	if err := runSearch(searchCmd, []string{"nothing-like-this"}); err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if !strings.Contains(out.String(), "No matching tasks.") {
		t.Errorf("expected no-match message, got %q", out.String())
	}
}

func TestExecute_Repeatable(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"--version"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	for i := 0; i < 2; i++ {
		if err := Execute("1.2.3"); err != nil {
			t.Fatalf("Execute #%d failed: %v", i+1, err)
		}
	}
	if !strings.Contains(out.String(), "1.2.3") {
		t.Errorf("expected version in output, got %q", out.String())
	}

	seen := make(map[string]int)
	for _, c := range rootCmd.Commands() {
		seen[c.Name()]++
	}
	for _, name := range []string{"serve", "add", "ls", "board", "search", "export"} {
		if seen[name] != 1 {
			t.Errorf("expected command %s registered once, got %d", name, seen[name])
		}
	}
}
