package interfaces

import (
	"context"
	"meusdocumentos/internal/domain/entities"
)

//go:generate mockgen -source=conversation_repository_interface.go -destination=mocks/conversation_repository_interface.go -package=mock_interfaces

// IConversationRepository abstracts DynamoDB persistence for conversation
// snapshots.
//
// Save is a full-snapshot upsert: last writer wins. Callers treat failures
// as best-effort (logged, never surfaced to the conversation).
// GetLatestActiveByUserID returns the zero record when the user has no
// resumable conversation.

type IConversationRepository interface {
	Save(ctx context.Context, rec entities.ConversationRecord) error
	GetLatestActiveByUserID(ctx context.Context, userID string) (entities.ConversationRecord, error)
}
