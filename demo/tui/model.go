package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

// State represents the application state machine
type State string

const (
	StateIdle       State = "idle"
	StateProcessing State = "processing"
	StateComplete   State = "complete"
	StateError      State = "error"
)

// Model holds the demo UI state. The pipeline runs in-process on the
// candidate batch supplied at startup.
type Model struct {
	State        State
	BusinessType string
	Candidates   []types.KeywordCandidate

	// Results
	Processed int
	Ranked    []*types.KeywordRecord

	Logs []string
	Err  error
}

// NewModel creates a new demo model over a prepared candidate batch.
func NewModel(businessType string, candidates []types.KeywordCandidate) Model {
	return Model{
		State:        StateIdle,
		BusinessType: businessType,
		Candidates:   candidates,
		Logs:         make([]string, 0),
	}
}

// Init implements tea.Model interface
func (m Model) Init() tea.Cmd {
	return nil
}

// AddLog appends a log line, keeping only the most recent entries.
func (m Model) AddLog(msg string) Model {
	m.Logs = append(m.Logs, msg)
	if len(m.Logs) > 8 {
		m.Logs = m.Logs[len(m.Logs)-8:]
	}
	return m
}

// getStateText returns the appropriate state message
func (m Model) getStateText() string {
	switch m.State {
	case StateIdle:
		return HighlightStyle.Render("👋 Ready to start!") + "\n\n" +
			InfoStyle.Render("Press 'd' to run the discovery pipeline")
	case StateProcessing:
		return StatusStyle.Render("⏳ Processing keyword candidates...")
	case StateComplete:
		return HighlightStyle.Render("✅ COMPLETE")
	case StateError:
		errMsg := "Unknown error"
		if m.Err != nil {
			errMsg = m.Err.Error()
		}
		return ErrorStyle.Render("❌ Error: " + errMsg)
	default:
		return ""
	}
}
