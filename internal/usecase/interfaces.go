package usecase

import (
	"context"
	"time"

	"github.com/caiovm-dev/agente-afiliados/internal/infra/collector"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/integration/affiliate"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/queue"
)

// TextOracle é o gerador de texto (Gemini). Uma chamada, sem retry — o
// usecase decide o fallback quando ela falha.
type TextOracle interface {
	DetectInterests(ctx context.Context, name, email string) (string, error)
	GenerateBenefits(ctx context.Context, interests, product string) (string, error)
	GenerateSuggestions(ctx context.Context, reportSummary string) (string, error)
}

type EmailService interface {
	SendPromo(to, body string) error
}

type WhatsAppService interface {
	SendWhatsApp(ctx context.Context, to, body string) error
}

type SMSService interface {
	SendSMS(ctx context.Context, to, body string) error
}

type TelegramService interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	DiscoverChatID(ctx context.Context, phone string) (int64, error)
	DeepLink(phone string) string
}

// SalesPlatform é uma plataforma de afiliados consultável por janela de
// datas (Hotmart, Monetizze, Eduzz).
type SalesPlatform interface {
	Name() string
	FetchSales(ctx context.Context, start, end time.Time) ([]affiliate.SaleEvent, error)
}

type QueueProducerInterface interface {
	PublishLead(ctx context.Context, payload queue.LeadPayload) error
}

type WebsiteCollectorInterface interface {
	Collect(ctx context.Context, pageURL string, sel collector.Selectors) ([]collector.Candidate, error)
}

type APICollectorInterface interface {
	Collect(ctx context.Context, apiURL string, params map[string]string) ([]collector.Candidate, error)
}
