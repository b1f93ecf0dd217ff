package entities

import "time"

// ConversationState is the dialogue controller's position in the intake
// protocol. Terminal-ish states loop on themselves awaiting further commands.

type ConversationState string

const (
	StateGreeting              ConversationState = "GREETING"
	StateServiceSelection      ConversationState = "SERVICE_SELECTION"
	StateRequirementsGathering ConversationState = "REQUIREMENTS_GATHERING"
	StateFeeCalculation        ConversationState = "FEE_CALCULATION"
	StateOrderCreation         ConversationState = "ORDER_CREATION"
	StateCheckout              ConversationState = "CHECKOUT"
	StateStatusTracking        ConversationState = "STATUS_TRACKING"

	// Support branch for conversations about an existing order. Entered
	// directly, never from the linear intake flow.
	StateOrderStatusInquiry ConversationState = "ORDER_STATUS_INQUIRY"
	StateDocumentUpload     ConversationState = "DOCUMENT_UPLOAD"
	StateOrderUpdateRequest ConversationState = "ORDER_UPDATE_REQUEST"
)

// MessageAuthor tags who wrote a chat message.

type MessageAuthor string

const (
	MessageAuthorUser MessageAuthor = "user"
	MessageAuthorBot  MessageAuthor = "bot"
)

// Message is one entry of the append-only conversation log. Service is set
// on recommendation cards only.

type Message struct {
	ID        string        `json:"id"`
	Author    MessageAuthor `json:"author"`
	Text      string        `json:"text"`
	Timestamp time.Time     `json:"timestamp"`
	Service   *Service      `json:"service,omitempty"`
}

// CustomerProfile is the progressively collected customer record. Fields are
// filled strictly in the order name -> tax id -> phone -> email; a validated
// field is never asked for again.

type CustomerProfile struct {
	Name  string `json:"name,omitempty"`
	TaxID string `json:"tax_id,omitempty"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Complete reports whether all four fields were collected.
func (p CustomerProfile) Complete() bool {
	return p.Name != "" && p.TaxID != "" && p.Phone != "" && p.Email != ""
}

// PricingSnapshot is the fee breakdown computed once per order attempt, in
// minor currency units.

type PricingSnapshot struct {
	BasePrice  int64 `json:"base_price"`
	UrgencyFee int64 `json:"urgency_fee"`
	Total      int64 `json:"total"`
}

// ConversationData is the session's mutable state bag, the single source of
// truth the dialogue controller reads and writes. Each turn either leaves it
// unchanged or advances it by exactly one validated field or decision.

type ConversationData struct {
	SelectedService     *Service         `json:"selected_service,omitempty"`
	Customer            CustomerProfile  `json:"customer"`
	Pricing             *PricingSnapshot `json:"pricing,omitempty"`
	OrderID             string           `json:"order_id,omitempty"`
	RecommendedServices []Service        `json:"recommended_services,omitempty"`

	// AwaitingProfileConfirmation is set when a saved profile was seeded for
	// an authenticated caller and the CONFIRMAR/ALTERAR sub-protocol is
	// pending.
	AwaitingProfileConfirmation bool `json:"awaiting_profile_confirmation,omitempty"`
}

// ConversationStatus marks whether a persisted record can still be resumed.

type ConversationStatus string

const (
	ConversationStatusActive    ConversationStatus = "active"
	ConversationStatusCompleted ConversationStatus = "completed"
)

// ConversationRecord is the persisted snapshot of one conversation. One
// active record per user; a newer snapshot supersedes the previous one
// (last-writer-wins at full-snapshot granularity).
//
// Storage model (DynamoDB):
//   - PK: session_id
//   - GSI1 (user_id-index): user_id, sorted by updated_at

type ConversationRecord struct {
	SessionID string             `json:"session_id"`
	UserID    string             `json:"user_id,omitempty"`
	Messages  []Message          `json:"messages"`
	State     ConversationState  `json:"state"`
	Data      ConversationData   `json:"data"`
	Status    ConversationStatus `json:"status"`
	OrderID   string             `json:"order_id,omitempty"`
	UpdatedAt time.Time          `json:"updated_at"`
}
