package response

import (
	"testing"
	"time"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase"
)

func TestFromConversationSnapshot(t *testing.T) {
	now := time.Now().UTC()
	svc := entities.Service{
		ID:            "svc-1",
		Name:          "Certidão de Nascimento",
		Category:      "Certidões",
		Description:   "Segunda via",
		BasePrice:     8990,
		EstimatedDays: 5,
	}
	snap := usecase.ConversationSnapshot{
		SessionID: "session_abc",
		State:     entities.StateCheckout,
		Status:    entities.ConversationStatusActive,
		Messages: []entities.Message{
			{ID: "m1", Author: entities.MessageAuthorUser, Text: "certidão", Timestamp: now},
			{ID: "m2", Author: entities.MessageAuthorBot, Text: "card", Timestamp: now, Service: &svc},
		},
		Data: entities.ConversationData{OrderID: "order-1"},
	}

	res := FromConversationSnapshot(snap)
	if res.SessionID != "session_abc" || res.State != "CHECKOUT" {
		t.Fatalf("unexpected session fields: %+v", res)
	}
	if res.OrderID != "order-1" {
		t.Fatalf("unexpected order id: %s", res.OrderID)
	}
	if len(res.Messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(res.Messages))
	}
	if res.Messages[0].Service != nil {
		t.Fatalf("expected plain message without card, got %+v", res.Messages[0].Service)
	}
	card := res.Messages[1].Service
	if card == nil || card.ID != "svc-1" || card.BasePrice != 8990 || card.EstimatedDays != 5 {
		t.Fatalf("unexpected card: %+v", card)
	}
}
