package usecase

import (
	"context"
	"log"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
)

// CreateLeadUseCase grava um lead capturado via API. Duplicado por e-mail
// ou telefone devolve o registro existente sem tocá-lo.
type CreateLeadUseCase struct {
	Leads entity.LeadRepositoryInterface
}

func NewCreateLeadUseCase(leads entity.LeadRepositoryInterface) *CreateLeadUseCase {
	return &CreateLeadUseCase{Leads: leads}
}

func (uc *CreateLeadUseCase) Execute(ctx context.Context, input CreateLeadInput) (*entity.Lead, bool, error) {
	lead, err := entity.NewLead(input.Name, input.Email, input.Phone, input.Source, input.Interests)
	if err != nil {
		return nil, false, NewDomainError(err.Error())
	}

	inserted, err := uc.Leads.Upsert(ctx, lead)
	if err != nil {
		return nil, false, NewTechnicalError("gravação do lead", err)
	}

	if inserted {
		log.Printf("✅ [LEAD] Novo lead capturado: %s", lead.ID)
	} else {
		log.Printf("⚠️ [LEAD] Lead duplicado ignorado: %s", input.Email)
	}

	return lead, !inserted, nil
}
