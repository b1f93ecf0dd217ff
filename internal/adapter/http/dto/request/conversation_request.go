package request

import "strings"

// StartConversationRequest opens a chat session. All fields are optional:
// service_id starts straight at requirements gathering (catalog click),
// order_id opens the support branch for an existing order, user_id marks the
// caller as authenticated and enables resume and profile seeding.
type StartConversationRequest struct {
	ServiceID string `json:"service_id"`
	OrderID   string `json:"order_id"`
	UserID    string `json:"user_id"`
}

// ConversationMessageRequest is one turn of user input.
type ConversationMessageRequest struct {
	Text string `json:"text" binding:"required"`
}

func (r ConversationMessageRequest) ResolveText() string {
	return strings.TrimSpace(r.Text)
}
