package tracker_test

import (
	"math"
	"testing"

	"github.com/ktausif7709-art/Time-tracker/internal/model"
	"github.com/ktausif7709-art/Time-tracker/internal/stats"
	"github.com/ktausif7709-art/Time-tracker/internal/storage"
	"github.com/ktausif7709-art/Time-tracker/internal/tracker"
)

func newTestTracker(t *testing.T) (*tracker.Tracker, *storage.Store) {
	t.Helper()
	kv, err := storage.NewFileKV(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileKV: %v", err)
	}
	store := storage.New(kv)
	return tracker.New(store), store
}

func yes(string) bool { return true }
func no(string) bool  { return false }

func TestNewSeedsDefaultProjects(t *testing.T) {
	tr, _ := newTestTracker(t)
	projects := tr.Projects()
	if len(projects) != 2 {
		t.Fatalf("new tracker has %d projects, want the 2 seed projects", len(projects))
	}
	if projects[0].Name != "Website Redesign" || projects[1].Name != "Mobile App Dev" {
		t.Errorf("seed projects = %q, %q", projects[0].Name, projects[1].Name)
	}
}

func TestAddEntryRoundsAndPrepends(t *testing.T) {
	tr, _ := newTestTracker(t)

	first, err := tr.AddEntry("p1", "t1_1", "2026-08-29", 1.0, "")
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	second, err := tr.AddEntry("p1", "t1_2", "2026-08-30", 1.23456789, "precise")
	if err != nil {
		t.Fatalf("AddEntry: %v", err)
	}

	if second.Hours != 1.2346 {
		t.Errorf("Hours = %v, want rounded 1.2346", second.Hours)
	}
	if second.ID == first.ID {
		t.Error("entry IDs must be unique")
	}

	entries := tr.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries = %d, want 2", len(entries))
	}
	if entries[0].ID != second.ID {
		t.Error("new entries must be prepended (newest first)")
	}
}

func TestAddEntryIncreasesTotalByRoundedHours(t *testing.T) {
	tr, _ := newTestTracker(t)

	before := stats.TotalLoggedHours(tr.Entries())
	if _, err := tr.AddEntry("p1", "t1_1", "2026-08-30", 0.33339, ""); err != nil {
		t.Fatalf("AddEntry: %v", err)
	}
	after := stats.TotalLoggedHours(tr.Entries())

	if diff := after - before; math.Abs(diff-0.3334) > 1e-9 {
		t.Errorf("total increased by %v, want exactly the rounded 0.3334", diff)
	}
}

func TestAddEntryValidation(t *testing.T) {
	tests := []struct {
		name      string
		projectID string
		taskID    string
		date      string
		hours     float64
	}{
		{"empty project", "", "t1_1", "2026-08-30", 1},
		{"empty task", "p1", "", "2026-08-30", 1},
		{"empty date", "p1", "t1_1", "", 1},
		{"NaN hours", "p1", "t1_1", "2026-08-30", math.NaN()},
		{"negative hours", "p1", "t1_1", "2026-08-30", -0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, store := newTestTracker(t)
			if _, err := tr.AddEntry(tt.projectID, tt.taskID, tt.date, tt.hours, ""); err == nil {
				t.Fatal("expected validation error")
			}
			if len(tr.Entries()) != 0 {
				t.Error("invalid AddEntry must leave the collection unchanged")
			}
			if got := store.LoadEntries(); len(got) != 0 {
				t.Error("invalid AddEntry must not persist anything")
			}
		})
	}
}

func TestAddEntryAcceptsDanglingReferences(t *testing.T) {
	// Soft references: the repository does not require the project to exist.
	tr, _ := newTestTracker(t)
	entry, err := tr.AddEntry("gone", "also-gone", "2026-08-30", 2, "")
	if err != nil {
		t.Fatalf("AddEntry with dangling refs: %v", err)
	}
	if tr.ProjectName(entry.ProjectID) != model.UnknownProjectName {
		t.Errorf("ProjectName = %q, want placeholder", tr.ProjectName(entry.ProjectID))
	}
	if tr.TaskName(entry.ProjectID, entry.TaskID) != model.GeneralTaskName {
		t.Errorf("TaskName = %q, want placeholder", tr.TaskName(entry.ProjectID, entry.TaskID))
	}
}

func TestDeleteEntry(t *testing.T) {
	tr, store := newTestTracker(t)
	entry, err := tr.AddEntry("p1", "t1_1", "2026-08-30", 1, "")
	if err != nil {
		t.Fatal(err)
	}

	removed, err := tr.DeleteEntry("no-such-id")
	if err != nil {
		t.Fatalf("DeleteEntry (absent): %v", err)
	}
	if removed {
		t.Error("deleting an unknown id must be a no-op")
	}
	if len(tr.Entries()) != 1 {
		t.Error("no-op delete must not change the collection")
	}

	removed, err = tr.DeleteEntry(entry.ID)
	if err != nil {
		t.Fatalf("DeleteEntry: %v", err)
	}
	if !removed || len(tr.Entries()) != 0 {
		t.Error("entry was not removed")
	}
	if got := store.LoadEntries(); len(got) != 0 {
		t.Error("deletion was not persisted")
	}
}

func TestAddProject(t *testing.T) {
	tr, _ := newTestTracker(t)

	if _, err := tr.AddProject("   ", "#ff0000"); err == nil {
		t.Error("expected error for blank project name")
	}

	project, err := tr.AddProject("  Freelance Client X  ", "")
	if err != nil {
		t.Fatalf("AddProject: %v", err)
	}
	if project.Name != "Freelance Client X" {
		t.Errorf("Name = %q, want trimmed", project.Name)
	}
	if project.Color == "" {
		t.Error("expected a palette color to be assigned")
	}
	if len(project.Tasks) != 0 {
		t.Errorf("new project has %d tasks, want 0", len(project.Tasks))
	}
	if len(tr.Projects()) != 3 {
		t.Errorf("Projects = %d, want 3", len(tr.Projects()))
	}
}

func TestDeleteProjectKeepsEntries(t *testing.T) {
	tr, store := newTestTracker(t)
	entry, err := tr.AddEntry("p1", "t1_1", "2026-08-30", 3, "about to dangle")
	if err != nil {
		t.Fatal(err)
	}

	removed, err := tr.DeleteProject("p1", yes)
	if err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if !removed {
		t.Fatal("expected project to be removed")
	}
	if _, ok := tr.ProjectByID("p1"); ok {
		t.Error("project still resolvable after deletion")
	}

	// Soft-reference invariant: the entry collection is untouched.
	entries := tr.Entries()
	if len(entries) != 1 {
		t.Fatalf("Entries = %d after project deletion, want 1", len(entries))
	}
	got, ok := tr.EntryByID(entry.ID)
	if !ok {
		t.Fatal("entry no longer retrievable by id")
	}
	if got.ProjectID != "p1" {
		t.Errorf("entry ProjectID = %q, must keep the dangling reference", got.ProjectID)
	}
	if tr.ProjectName(got.ProjectID) != model.UnknownProjectName {
		t.Errorf("dangling project renders as %q, want placeholder", tr.ProjectName(got.ProjectID))
	}

	if got := store.LoadProjects(); len(got) != 1 || got[0].ID != "p2" {
		t.Errorf("persisted projects = %+v, want only p2", got)
	}
}

func TestDeleteProjectDeclined(t *testing.T) {
	tr, _ := newTestTracker(t)

	removed, err := tr.DeleteProject("p1", no)
	if err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if removed {
		t.Error("declined confirmation must be a no-op")
	}
	if len(tr.Projects()) != 2 {
		t.Error("project collection changed despite declined confirmation")
	}
}

func TestDeleteProjectUnknown(t *testing.T) {
	tr, _ := newTestTracker(t)
	removed, err := tr.DeleteProject("nope", yes)
	if err != nil || removed {
		t.Errorf("DeleteProject(unknown) = %v, %v; want no-op", removed, err)
	}
}

func TestAddTask(t *testing.T) {
	tr, store := newTestTracker(t)

	if _, err := tr.AddTask("p1", "  "); err == nil {
		t.Error("expected error for blank task name")
	}
	if _, err := tr.AddTask("nope", "Deploy"); err == nil {
		t.Error("expected error for unknown project")
	}

	task, err := tr.AddTask("p1", "  Deploy  ")
	if err != nil {
		t.Fatalf("AddTask: %v", err)
	}
	if task.Name != "Deploy" {
		t.Errorf("Name = %q, want trimmed", task.Name)
	}

	p, _ := tr.ProjectByID("p1")
	if len(p.Tasks) != 3 || p.Tasks[2].ID != task.ID {
		t.Errorf("task not appended: %+v", p.Tasks)
	}

	persisted := store.LoadProjects()
	if len(persisted[0].Tasks) != 3 {
		t.Error("task addition was not persisted")
	}
}

func TestDeleteTask(t *testing.T) {
	tr, store := newTestTracker(t)

	if err := tr.DeleteTask("p1", "no-such-task"); err != nil {
		t.Fatalf("DeleteTask (absent task): %v", err)
	}
	if err := tr.DeleteTask("no-such-project", "t1_1"); err != nil {
		t.Fatalf("DeleteTask (absent project): %v", err)
	}

	if err := tr.DeleteTask("p1", "t1_1"); err != nil {
		t.Fatalf("DeleteTask: %v", err)
	}
	p, _ := tr.ProjectByID("p1")
	if len(p.Tasks) != 1 || p.Tasks[0].ID != "t1_2" {
		t.Errorf("tasks after delete = %+v, want only t1_2", p.Tasks)
	}

	got := store.LoadProjects()
	if len(got[0].Tasks) != 1 {
		t.Error("task deletion was not persisted")
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	base := t.TempDir()
	kv, err := storage.NewFileKV(base)
	if err != nil {
		t.Fatal(err)
	}
	store := storage.New(kv)

	tr := tracker.New(store)
	entry, err := tr.AddEntry("p2", "t2_1", "2026-08-30", 2.5, "api sketching")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddProject("Side Quest", "#f59e0b"); err != nil {
		t.Fatal(err)
	}

	// A fresh tracker over the same backend sees identical state.
	kv2, err := storage.NewFileKV(base)
	if err != nil {
		t.Fatal(err)
	}
	tr2 := tracker.New(storage.New(kv2))

	got, ok := tr2.EntryByID(entry.ID)
	if !ok {
		t.Fatal("entry lost across reload")
	}
	if got != entry {
		t.Errorf("reloaded entry = %+v, want %+v", got, entry)
	}
	if len(tr2.Projects()) != 3 {
		t.Errorf("reloaded projects = %d, want 3", len(tr2.Projects()))
	}
}

func TestResolveProjectAndTask(t *testing.T) {
	tr, _ := newTestTracker(t)

	if p, ok := tr.ResolveProject("p1"); !ok || p.ID != "p1" {
		t.Error("ResolveProject by id failed")
	}
	p, ok := tr.ResolveProject("website redesign")
	if !ok || p.ID != "p1" {
		t.Error("ResolveProject by case-insensitive name failed")
	}
	if _, ok := tr.ResolveProject("nope"); ok {
		t.Error("ResolveProject matched a non-existent project")
	}

	if task, ok := tracker.ResolveTask(p, "t1_2"); !ok || task.Name != "Frontend Implementation" {
		t.Error("ResolveTask by id failed")
	}
	if task, ok := tracker.ResolveTask(p, "ui/ux research"); !ok || task.ID != "t1_1" {
		t.Error("ResolveTask by name failed")
	}
	if _, ok := tracker.ResolveTask(p, "nope"); ok {
		t.Error("ResolveTask matched a non-existent task")
	}
}
