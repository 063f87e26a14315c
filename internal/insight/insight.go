// Package insight turns the activity log into an AI-generated productivity
// summary. External failures never surface to the user: every request
// resolves to either a real result or the fixed fallback text.
package insight

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/ktausif7709-art/Time-tracker/internal/model"
)

// MinEntries is the smallest activity log worth analyzing.
const MinEntries = 2

var (
	// ErrNotEnoughEntries means the request was refused before any call out.
	ErrNotEnoughEntries = errors.New("log at least 2 entries before requesting insights")
	// ErrRequestInFlight means another insight request has not completed yet.
	ErrRequestInFlight = errors.New("an insight request is already in progress")
)

// Caller produces a text response for a prompt.
type Caller interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Fallback is the fixed insight substituted on any external failure.
func Fallback() model.Insight {
	return model.Insight{
		Summary:  "I couldn't analyze your data right now. Keep tracking to see patterns!",
		Tip:      "Consistency is key to understanding where your time goes.",
		Fallback: true,
	}
}

// Generator orchestrates a single outstanding insight request at a time.
type Generator struct {
	caller Caller
	busy   atomic.Bool
}

// NewGenerator wraps a Caller.
func NewGenerator(caller Caller) *Generator {
	return &Generator{caller: caller}
}

// Insights analyzes the activity log. It errs only on the preconditions
// (too few entries, request already in flight); once a request is issued,
// any failure collapses to the fallback insight and a nil error.
func (g *Generator) Insights(ctx context.Context, entries []model.TimeEntry, projects []model.Project) (model.Insight, error) {
	if len(entries) < MinEntries {
		return model.Insight{}, ErrNotEnoughEntries
	}
	if !g.busy.CompareAndSwap(false, true) {
		return model.Insight{}, ErrRequestInFlight
	}
	defer g.busy.Store(false)

	raw, err := g.caller.Generate(ctx, BuildPrompt(entries, projects))
	if err != nil {
		return Fallback(), nil
	}
	parsed, err := parseInsight(raw)
	if err != nil {
		return Fallback(), nil
	}
	return parsed, nil
}

// BuildPrompt serializes the activity log into the instruction template.
// Dangling project/task references render as their placeholder labels.
func BuildPrompt(entries []model.TimeEntry, projects []model.Project) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		projectName := model.UnknownProjectName
		taskName := model.GeneralTaskName
		for _, p := range projects {
			if p.ID != e.ProjectID {
				continue
			}
			projectName = p.Name
			for _, task := range p.Tasks {
				if task.ID == e.TaskID {
					taskName = task.Name
					break
				}
			}
			break
		}
		lines[i] = fmt.Sprintf("%s: Spent %gh on %s - %s. Note: %s",
			e.Date, e.Hours, projectName, taskName, e.Notes)
	}

	return fmt.Sprintf(`Analyze the following time logs and provide a concise productivity summary and one actionable tip for improvement. Keep it professional but encouraging.

Logs:
%s

Format: JSON with "summary" (string) and "tip" (string) fields.`, strings.Join(lines, "\n"))
}

// parseInsight decodes the two-field JSON payload, tolerating markdown code
// fences around it. Both fields must be present and non-empty.
func parseInsight(raw string) (model.Insight, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")
	raw = strings.TrimSpace(raw)

	var insight model.Insight
	if err := json.Unmarshal([]byte(raw), &insight); err != nil {
		return model.Insight{}, fmt.Errorf("parse json: %w", err)
	}
	if insight.Summary == "" || insight.Tip == "" {
		return model.Insight{}, errors.New("response missing summary or tip")
	}
	return insight, nil
}
