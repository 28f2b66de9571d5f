package tui

import "github.com/sachin9536/SEM-Campaign-Automation/types"

// PipelineCompleteMsg is sent when the in-process pipeline run finishes
type PipelineCompleteMsg struct {
	Processed int
	Ranked    []*types.KeywordRecord
	Err       error
}
