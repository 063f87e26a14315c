package model

// Task is a unit of work within a project.
type Task struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Project groups tasks under a display name and chart color.
type Project struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Tasks []Task `json:"tasks"`
}

// TimeEntry is a single logged block of work. ProjectID and TaskID are
// soft references: the referenced project or task may have been deleted,
// and consumers must substitute placeholder labels rather than fail.
type TimeEntry struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	TaskID    string  `json:"taskId"`
	Date      string  `json:"date"` // YYYY-MM-DD, no time-of-day
	Hours     float64 `json:"hours"`
	Notes     string  `json:"notes"`
	CreatedAt int64   `json:"createdAt"` // Unix milliseconds
}

// Insight is the normalized result of an AI analysis request. Fallback is
// true when the external service failed and the fixed fallback text was
// substituted; both variants render the same way.
type Insight struct {
	Summary  string `json:"summary"`
	Tip      string `json:"tip"`
	Fallback bool   `json:"-"`
}

// TimerState is the persisted stopwatch state. RunningSince is the Unix
// second the stopwatch was last started, nil while paused.
type TimerState struct {
	AccumulatedSeconds int64  `json:"accumulatedSeconds"`
	RunningSince       *int64 `json:"runningSince,omitempty"`
}

// Placeholder labels for dangling entry references.
const (
	UnknownProjectName = "Unknown Project"
	GeneralTaskName    = "General Task"
)

// ColorPalette holds the display colors offered for new projects.
var ColorPalette = []string{
	"#3b82f6", "#10b981", "#f59e0b", "#ef4444",
	"#8b5cf6", "#ec4899", "#64748b", "#06b6d4",
}

// DefaultProjects is the seed set used when no project document has ever
// been persisted. It is supplied in memory only; it is not written to
// storage until the first project mutation.
func DefaultProjects() []Project {
	return []Project{
		{
			ID:    "p1",
			Name:  "Website Redesign",
			Color: "#3b82f6",
			Tasks: []Task{
				{ID: "t1_1", Name: "UI/UX Research"},
				{ID: "t1_2", Name: "Frontend Implementation"},
			},
		},
		{
			ID:    "p2",
			Name:  "Mobile App Dev",
			Color: "#10b981",
			Tasks: []Task{
				{ID: "t2_1", Name: "API Design"},
				{ID: "t2_2", Name: "QA Testing"},
			},
		},
	}
}
