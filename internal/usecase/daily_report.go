package usecase

import (
	"context"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
)

// DailyReport resume a atividade do dia corrente.
type DailyReport struct {
	Date           string                  `json:"date"`
	LeadsCollected int                     `json:"leads_collected"`
	MessagesSent   int                     `json:"messages_sent"`
	Conversions    int                     `json:"conversions"`
	ConversionRate float64                 `json:"conversion_rate"`
	Commission     float64                 `json:"commission"`
	TopProducts    []entity.ProductRevenue `json:"top_products"`
}

// DailyReportUseCase agrega os contadores do dia a partir dos repositórios.
type DailyReportUseCase struct {
	Leads       entity.LeadRepositoryInterface
	Messages    entity.MessageRepositoryInterface
	Conversions entity.ConversionRepositoryInterface
	TopLimit    int
}

func NewDailyReportUseCase(
	leads entity.LeadRepositoryInterface,
	messages entity.MessageRepositoryInterface,
	conversions entity.ConversionRepositoryInterface,
) *DailyReportUseCase {
	return &DailyReportUseCase{
		Leads:       leads,
		Messages:    messages,
		Conversions: conversions,
		TopLimit:    5,
	}
}

func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*DailyReport, error) {
	collected, err := uc.Leads.CountCollectedToday(ctx)
	if err != nil {
		return nil, NewTechnicalError("contagem de leads do dia", err)
	}

	sent, err := uc.Messages.CountSentToday(ctx)
	if err != nil {
		return nil, NewTechnicalError("contagem de mensagens do dia", err)
	}

	converted, err := uc.Conversions.CountToday(ctx)
	if err != nil {
		return nil, NewTechnicalError("contagem de conversões do dia", err)
	}

	commission, err := uc.Conversions.SumCommissionToday(ctx)
	if err != nil {
		return nil, NewTechnicalError("soma de comissões do dia", err)
	}

	top, err := uc.Conversions.TopProducts(ctx, uc.TopLimit)
	if err != nil {
		return nil, NewTechnicalError("ranking de produtos", err)
	}

	rate := 0.0
	if sent > 0 {
		rate = float64(converted) / float64(sent) * 100
	}

	return &DailyReport{
		Date:           date,
		LeadsCollected: collected,
		MessagesSent:   sent,
		Conversions:    converted,
		ConversionRate: rate,
		Commission:     commission,
		TopProducts:    top,
	}, nil
}
