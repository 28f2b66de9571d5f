package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sachin9536/SEM-Campaign-Automation/pipeline"
	"github.com/sachin9536/SEM-Campaign-Automation/types"
)

// RunPipeline creates a command that processes and ranks the candidate batch
func RunPipeline(businessType string, candidates []types.KeywordCandidate) tea.Cmd {
	return func() tea.Msg {
		pl := pipeline.New(pipeline.Config{BusinessType: businessType})
		records := pl.Run(candidates)
		ranked := pipeline.FilterAndRank(records, pipeline.RankConfig{})
		return PipelineCompleteMsg{
			Processed: len(records),
			Ranked:    ranked,
		}
	}
}
