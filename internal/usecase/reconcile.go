package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/http/middleware"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/integration/affiliate"
)

// ReconcileUseCase consulta as plataformas de afiliado e casa as vendas
// do período com os leads contatados.
type ReconcileUseCase struct {
	Leads       entity.LeadRepositoryInterface
	Conversions entity.ConversionRepositoryInterface
	Platforms   []SalesPlatform
}

func NewReconcileUseCase(
	leads entity.LeadRepositoryInterface,
	conversions entity.ConversionRepositoryInterface,
	platforms []SalesPlatform,
) *ReconcileUseCase {
	return &ReconcileUseCase{
		Leads:       leads,
		Conversions: conversions,
		Platforms:   platforms,
	}
}

// Execute busca as vendas de ontem até agora em todas as plataformas.
// Uma plataforma fora do ar não derruba as demais.
func (uc *ReconcileUseCase) Execute(ctx context.Context) (int, error) {
	end := time.Now()
	start := end.AddDate(0, 0, -1)

	matched := 0
	for _, platform := range uc.Platforms {
		sales, err := platform.FetchSales(ctx, start, end)
		if err != nil {
			log.Printf("❌ [RECONCILE] Falha ao consultar %s: %v", platform.Name(), err)
			continue
		}

		log.Printf("📥 [RECONCILE] %s retornou %d vendas", platform.Name(), len(sales))

		for _, sale := range sales {
			if uc.processSale(ctx, platform.Name(), sale) {
				matched++
			}
		}
	}

	return matched, nil
}

func (uc *ReconcileUseCase) processSale(ctx context.Context, platform string, sale affiliate.SaleEvent) bool {
	email := strings.ToLower(strings.TrimSpace(sale.BuyerEmail))
	if email == "" {
		return false
	}

	lead, err := uc.Leads.FindByEmail(ctx, email)
	if err == entity.ErrLeadNotFound {
		return false
	}
	if err != nil {
		log.Printf("⚠️ [RECONCILE] Erro ao buscar lead %s: %v", email, err)
		return false
	}

	// A conversão gravada é o que dispara a mudança de status. Se a gravação
	// falhar, o lead fica como está e a venda volta no próximo ciclo.
	conversion := entity.NewConversion(lead.ID, platform, sale.Product, sale.Amount, sale.Commission)
	if err := uc.Conversions.Record(ctx, conversion); err != nil {
		log.Printf("⚠️ [RECONCILE] Conversão de %s não gravada: %v", email, err)
		return false
	}

	if err := uc.Leads.MarkConverted(ctx, lead.ID); err != nil {
		log.Printf("⚠️ [RECONCILE] Lead %s não marcado como convertido: %v", lead.ID, err)
	}

	middleware.RecordConversion(platform)
	log.Printf("✅ [RECONCILE] Venda %s (%s) casada com lead %s", sale.TransactionID, platform, lead.ID)
	return true
}
