package response

import (
	"time"

	"meusdocumentos/internal/domain/entities"
	"meusdocumentos/internal/usecase"
)

type ServiceCardResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Description   string `json:"description"`
	BasePrice     int64  `json:"base_price"`
	EstimatedDays int    `json:"estimated_days"`
}

type MessageResponse struct {
	ID        string               `json:"id"`
	Author    string               `json:"author"`
	Text      string               `json:"text"`
	Timestamp time.Time            `json:"timestamp"`
	Service   *ServiceCardResponse `json:"service,omitempty"`
}

type ConversationResponse struct {
	SessionID string            `json:"session_id"`
	State     string            `json:"state"`
	Status    string            `json:"status"`
	OrderID   string            `json:"order_id,omitempty"`
	Messages  []MessageResponse `json:"messages"`
}

func FromConversationSnapshot(s usecase.ConversationSnapshot) ConversationResponse {
	messages := make([]MessageResponse, 0, len(s.Messages))
	for _, m := range s.Messages {
		messages = append(messages, fromMessage(m))
	}
	return ConversationResponse{
		SessionID: s.SessionID,
		State:     string(s.State),
		Status:    string(s.Status),
		OrderID:   s.Data.OrderID,
		Messages:  messages,
	}
}

func fromMessage(m entities.Message) MessageResponse {
	resp := MessageResponse{
		ID:        m.ID,
		Author:    string(m.Author),
		Text:      m.Text,
		Timestamp: m.Timestamp,
	}
	if m.Service != nil {
		resp.Service = &ServiceCardResponse{
			ID:            m.Service.ID,
			Name:          m.Service.Name,
			Category:      m.Service.Category,
			Description:   m.Service.Description,
			BasePrice:     m.Service.BasePrice,
			EstimatedDays: m.Service.EstimatedDays,
		}
	}
	return resp
}
