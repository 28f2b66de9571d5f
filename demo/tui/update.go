package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Update implements tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case PipelineCompleteMsg:
		return m.handlePipelineComplete(msg)
	}
	return m, nil
}

// handleKeyPress processes keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "d", "D":
		if m.State == StateIdle || m.State == StateComplete {
			m.State = StateProcessing
			m = m.AddLog(fmt.Sprintf("Processing %d candidates...", len(m.Candidates)))
			return m, RunPipeline(m.BusinessType, m.Candidates)
		}
	}
	return m, nil
}

// handlePipelineComplete processes pipeline completion
func (m Model) handlePipelineComplete(msg PipelineCompleteMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.State = StateError
		m.Err = msg.Err
		return m, nil
	}
	m.Processed = msg.Processed
	m.Ranked = msg.Ranked
	m.State = StateComplete
	m = m.AddLog(fmt.Sprintf("Pipeline kept %d keywords, %d passed ranking gates", msg.Processed, len(msg.Ranked)))
	return m, nil
}
