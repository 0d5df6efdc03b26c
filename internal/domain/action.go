package domain

// Action names recorded in the usage log
const (
	ActionAskQuestion  = "ask_question"
	ActionSendFeedback = "send_feedback"
	ActionSendMessage  = "send_message"
)

// UsageSummary aggregates the action log for admin reporting
type UsageSummary struct {
	TotalUsers       int
	ActionCounts     map[string]int
	MostCommonAction string
}
