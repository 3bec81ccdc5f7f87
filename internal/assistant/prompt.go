package assistant

// fixed system instructions, one per operation
const (
	summarizePrompt = "You are a senior compliance expert. Summarize in short bullet points."
	rulesPrompt     = "Extract compliance rules as bullet points. No extra explanation."
	checklistPrompt = "Create a compliance checklist. Format: Title - Action."
	askPrompt       = "You are a senior compliance expert."
)

// user-message context when retrieval finds nothing
const noMatchContext = "No relevant document found."
