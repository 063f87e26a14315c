package tracker

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ktausif7709-art/Time-tracker/internal/model"
	"github.com/ktausif7709-art/Time-tracker/internal/storage"
)

// ConfirmFunc gates a destructive operation. It receives a human-readable
// prompt and reports whether the user approved.
type ConfirmFunc func(prompt string) bool

// Tracker owns the in-memory entry and project collections. Every mutation
// computes a new collection as a value, replaces the old one wholesale, and
// immediately write-throughs it to the store. A mutation that fails to
// persist is not rolled back in memory.
type Tracker struct {
	store    *storage.Store
	entries  []model.TimeEntry
	projects []model.Project
}

// New loads both collections from the store. A missing or corrupt project
// document yields the built-in seed set.
func New(store *storage.Store) *Tracker {
	return &Tracker{
		store:    store,
		entries:  store.LoadEntries(),
		projects: store.LoadProjects(),
	}
}

// Entries returns a copy of the entry collection, newest first.
func (t *Tracker) Entries() []model.TimeEntry {
	out := make([]model.TimeEntry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Projects returns a copy of the project collection.
func (t *Tracker) Projects() []model.Project {
	out := make([]model.Project, len(t.projects))
	copy(out, t.projects)
	return out
}

// AddEntry validates and prepends a new time entry, then persists the entry
// collection. Hours are rounded to four decimal places before storage to
// keep sub-minute precision while bounding floating-point drift.
func (t *Tracker) AddEntry(projectID, taskID, date string, hours float64, notes string) (model.TimeEntry, error) {
	if projectID == "" {
		return model.TimeEntry{}, errors.New("project is required")
	}
	if taskID == "" {
		return model.TimeEntry{}, errors.New("task is required")
	}
	if date == "" {
		return model.TimeEntry{}, errors.New("date is required")
	}
	if math.IsNaN(hours) || hours < 0 {
		return model.TimeEntry{}, fmt.Errorf("duration must be a non-negative number of hours, got %v", hours)
	}

	entry := model.TimeEntry{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		TaskID:    taskID,
		Date:      date,
		Hours:     math.Round(hours*10000) / 10000,
		Notes:     notes,
		CreatedAt: time.Now().UnixMilli(),
	}

	next := make([]model.TimeEntry, 0, len(t.entries)+1)
	next = append(next, entry)
	next = append(next, t.entries...)
	t.entries = next

	return entry, t.store.SaveEntries(t.entries)
}

// DeleteEntry removes the entry with the given id. An unknown id is a no-op,
// not an error; removed reports whether anything matched.
func (t *Tracker) DeleteEntry(id string) (removed bool, err error) {
	next := make([]model.TimeEntry, 0, len(t.entries))
	for _, e := range t.entries {
		if e.ID == id {
			removed = true
			continue
		}
		next = append(next, e)
	}
	t.entries = next
	return removed, t.store.SaveEntries(t.entries)
}

// EntryByID returns the entry with the given id.
func (t *Tracker) EntryByID(id string) (model.TimeEntry, bool) {
	for _, e := range t.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.TimeEntry{}, false
}

// AddProject creates a project with an empty task list. The name is trimmed
// and must be non-empty; an empty color picks the palette round-robin.
func (t *Tracker) AddProject(name, color string) (model.Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Project{}, errors.New("project name is required")
	}
	if color == "" {
		color = model.ColorPalette[len(t.projects)%len(model.ColorPalette)]
	}

	project := model.Project{
		ID:    uuid.New().String(),
		Name:  name,
		Color: color,
		Tasks: []model.Task{},
	}
	next := make([]model.Project, 0, len(t.projects)+1)
	next = append(next, t.projects...)
	t.projects = append(next, project)
	return project, t.store.SaveProjects(t.projects)
}

// DeleteProject removes a project and all of its tasks as a unit, gated on
// the supplied confirmation. Entries referencing the project are untouched;
// their references simply dangle and render as placeholders.
func (t *Tracker) DeleteProject(id string, confirm ConfirmFunc) (removed bool, err error) {
	project, ok := t.ProjectByID(id)
	if !ok {
		return false, nil
	}
	prompt := fmt.Sprintf("Delete project %q? Past logs will remain but may look disconnected.", project.Name)
	if confirm != nil && !confirm(prompt) {
		return false, nil
	}

	next := make([]model.Project, 0, len(t.projects))
	for _, p := range t.projects {
		if p.ID == id {
			continue
		}
		next = append(next, p)
	}
	t.projects = next
	return true, t.store.SaveProjects(t.projects)
}

// AddTask appends a task to the named project and persists the whole project
// collection. The name is trimmed and must be non-empty; the project must
// exist.
func (t *Tracker) AddTask(projectID, name string) (model.Task, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return model.Task{}, errors.New("task name is required")
	}

	task := model.Task{ID: uuid.New().String(), Name: name}
	next := make([]model.Project, len(t.projects))
	found := false
	for i, p := range t.projects {
		if p.ID == projectID {
			found = true
			tasks := make([]model.Task, 0, len(p.Tasks)+1)
			tasks = append(tasks, p.Tasks...)
			p.Tasks = append(tasks, task)
		}
		next[i] = p
	}
	if !found {
		return model.Task{}, fmt.Errorf("no project with id %q", projectID)
	}
	t.projects = next
	return task, t.store.SaveProjects(t.projects)
}

// DeleteTask removes a task from a project. Unknown project or task is a
// no-op.
func (t *Tracker) DeleteTask(projectID, taskID string) error {
	next := make([]model.Project, len(t.projects))
	for i, p := range t.projects {
		if p.ID == projectID {
			tasks := make([]model.Task, 0, len(p.Tasks))
			for _, task := range p.Tasks {
				if task.ID == taskID {
					continue
				}
				tasks = append(tasks, task)
			}
			p.Tasks = tasks
		}
		next[i] = p
	}
	t.projects = next
	return t.store.SaveProjects(t.projects)
}

// ProjectByID returns the project with the given id.
func (t *Tracker) ProjectByID(id string) (model.Project, bool) {
	for _, p := range t.projects {
		if p.ID == id {
			return p, true
		}
	}
	return model.Project{}, false
}

// ProjectName resolves a project reference to a display name, substituting
// the placeholder for dangling references.
func (t *Tracker) ProjectName(id string) string {
	if p, ok := t.ProjectByID(id); ok {
		return p.Name
	}
	return model.UnknownProjectName
}

// TaskName resolves a task reference to a display name, substituting the
// placeholder for dangling references.
func (t *Tracker) TaskName(projectID, taskID string) string {
	p, ok := t.ProjectByID(projectID)
	if !ok {
		return model.GeneralTaskName
	}
	for _, task := range p.Tasks {
		if task.ID == taskID {
			return task.Name
		}
	}
	return model.GeneralTaskName
}

// ResolveProject finds a project by exact id or case-insensitive name.
func (t *Tracker) ResolveProject(nameOrID string) (model.Project, bool) {
	for _, p := range t.projects {
		if p.ID == nameOrID {
			return p, true
		}
	}
	for _, p := range t.projects {
		if strings.EqualFold(p.Name, nameOrID) {
			return p, true
		}
	}
	return model.Project{}, false
}

// ResolveTask finds a task within a project by exact id or case-insensitive
// name.
func ResolveTask(p model.Project, nameOrID string) (model.Task, bool) {
	for _, task := range p.Tasks {
		if task.ID == nameOrID {
			return task, true
		}
	}
	for _, task := range p.Tasks {
		if strings.EqualFold(task.Name, nameOrID) {
			return task, true
		}
	}
	return model.Task{}, false
}
