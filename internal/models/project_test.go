package models

import (
	"testing"
	"time"
)

func TestProjectValidation_RequiredFields(t *testing.T) {
	tests := []struct {
		name    string
		project Project
		wantErr bool
		errMsg  string
	}{
		{
			name:    "empty name should fail",
			project: Project{Name: ""},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "whitespace name should fail",
			project: Project{Name: "   "},
			wantErr: true,
			errMsg:  "name is required",
		},
		{
			name:    "bad color should fail",
			project: Project{Name: "Errands", Color: "red"},
			wantErr: true,
			errMsg:  "color must be a hex value like '#6366f1'",
		},
		{
			name:    "valid name should pass",
			project: Project{Name: "Errands", Color: "#10b981"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.project.Validate()
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

func TestSeedProjects(t *testing.T) {
	seeds := SeedProjects()
	want := []string{"Work", "Personal", "Shopping"}
	if len(seeds) != len(want) {
		t.Fatalf("expected %d seed projects, got %d", len(want), len(seeds))
	}
	for i, name := range want {
		if seeds[i].Name != name {
			t.Errorf("seed %d: expected %q, got %q", i, name, seeds[i].Name)
		}
		if err := seeds[i].Validate(); err != nil {
			t.Errorf("seed %q invalid: %v", name, err)
		}
	}
}

func TestDate_AddDaysAcrossMonth(t *testing.T) {
	d := Date{Year: 2026, Month: time.January, Day: 28}
	got := d.AddDays(7)
	if got.String() != "2026-02-04" {
		t.Errorf("expected 2026-02-04, got %s", got)
	}
	if !d.Before(got) || !got.After(d) {
		t.Error("expected ordering to follow calendar order")
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-19")
	if err != nil {
		t.Fatalf("ParseDate failed: %v", err)
	}
	if d.Year != 2026 || d.Month != time.October || d.Day != 19 {
		t.Errorf("unexpected date %+v", d)
	}

	if _, err := ParseDate("19/10/2026"); err == nil {
		t.Error("expected error for non-ISO date")
	}
}
