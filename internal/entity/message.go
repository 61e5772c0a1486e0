package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	ChannelEmail    = "email"
	ChannelWhatsApp = "whatsapp"
	ChannelTelegram = "telegram"

	MessageSent   = "sent"
	MessageFailed = "failed"
)

// Message é o registro imutável de uma tentativa de envio. Nunca é alterado
// depois de criado.
type Message struct {
	ID      string    `json:"id"`
	LeadID  string    `json:"lead_id"`
	Channel string    `json:"channel"`
	Body    string    `json:"body"`
	Status  string    `json:"status"` // sent, failed
	SentAt  time.Time `json:"sent_at"`
}

func NewMessage(leadID, channel, body, status string) *Message {
	return &Message{
		ID:      uuid.New().String(),
		LeadID:  leadID,
		Channel: channel,
		Body:    body,
		Status:  status,
		SentAt:  time.Now(),
	}
}

type MessageRepositoryInterface interface {
	Record(ctx context.Context, msg *Message) error

	// CountSentToday conta mensagens com status "sent" na data de hoje
	// (data local do banco).
	CountSentToday(ctx context.Context) (int, error)
}
