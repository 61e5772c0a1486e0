package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
	"github.com/caiovm-dev/agente-afiliados/internal/usecase"
)

func TestFormatReport(t *testing.T) {
	report := &usecase.DailyReport{
		Date:           "2026-08-30",
		LeadsCollected: 40,
		MessagesSent:   50,
		Conversions:    5,
		ConversionRate: 10.0,
		Commission:     492.5,
		TopProducts: []entity.ProductRevenue{
			{Product: "produto1", Sales: 3, Commission: 295.5},
		},
	}

	out := formatReport(report)

	assert.Contains(t, out, "Relatório do dia 2026-08-30")
	assert.Contains(t, out, "Leads coletados: 40")
	assert.Contains(t, out, "Mensagens enviadas: 50")
	assert.Contains(t, out, "Taxa de conversão: 10.0%")
	assert.Contains(t, out, "Comissão do dia: R$ 492.50")
	assert.Contains(t, out, "produto1: 3 vendas (R$ 295.50)")
}

func TestFormatReport_SemVendas(t *testing.T) {
	report := &usecase.DailyReport{Date: "2026-08-30"}

	out := formatReport(report)

	assert.Contains(t, out, "Conversões: 0")
	assert.NotContains(t, out, "Produtos com mais vendas")
}
