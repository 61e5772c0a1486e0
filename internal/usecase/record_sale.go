package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
)

// RecordSaleUseCase processa a notificação de venda recebida por webhook.
// O mesmo casamento por e-mail do reconciliador, mas em tempo real.
type RecordSaleUseCase struct {
	Leads       entity.LeadRepositoryInterface
	Conversions entity.ConversionRepositoryInterface
}

func NewRecordSaleUseCase(
	leads entity.LeadRepositoryInterface,
	conversions entity.ConversionRepositoryInterface,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{Leads: leads, Conversions: conversions}
}

// Execute devolve a conversão gravada, ou nil quando o comprador não é um
// lead conhecido — venda orgânica não entra na atribuição.
func (uc *RecordSaleUseCase) Execute(ctx context.Context, input SaleWebhookInput) (*entity.Conversion, error) {
	email := strings.ToLower(strings.TrimSpace(input.BuyerEmail))

	lead, err := uc.Leads.FindByEmail(ctx, email)
	if err == entity.ErrLeadNotFound {
		log.Printf("⚠️ [WEBHOOK] Venda %s sem lead correspondente (%s)", input.TransactionID, email)
		return nil, nil
	}
	if err != nil {
		return nil, NewTechnicalError("busca de lead por e-mail", err)
	}

	// Grava a conversão antes de mudar o status: se a gravação falhar, o
	// lead fica intacto e o webhook pode ser reenviado.
	platform := strings.ToLower(strings.TrimSpace(input.Platform))
	conversion := entity.NewConversion(lead.ID, platform, input.Product, input.Amount, input.Commission)
	if err := uc.Conversions.Record(ctx, conversion); err != nil {
		return nil, NewTechnicalError("gravação da conversão", err)
	}

	if err := uc.Leads.MarkConverted(ctx, lead.ID); err != nil {
		log.Printf("⚠️ [WEBHOOK] Lead %s não marcado como convertido: %v", lead.ID, err)
	}

	log.Printf("✅ [WEBHOOK] Venda %s (%s) atribuída ao lead %s", input.TransactionID, platform, lead.ID)
	return conversion, nil
}
