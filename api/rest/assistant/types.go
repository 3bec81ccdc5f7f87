package assistant

import "github.com/regbot/server/internal/assistant"

// DocumentRequest targets a stored document by id.
type DocumentRequest struct {
	ID string `json:"id" binding:"required"`
}

// AskRequest carries a free-form compliance question.
type AskRequest struct {
	Question string `json:"question" binding:"required"`
}

type SummaryResponse struct {
	Summary string `json:"summary"`
}

type RulesResponse struct {
	Rules []string `json:"rules"`
}

type ChecklistResponse struct {
	Checklist []assistant.ChecklistItem `json:"checklist"`
}

type AskResponse struct {
	Answer string `json:"answer"`
}
