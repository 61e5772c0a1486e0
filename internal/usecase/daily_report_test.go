package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
)

func TestDailyReport_AgregaContadores(t *testing.T) {
	leads := new(MockLeadRepository)
	messages := new(MockMessageRepository)
	conversions := new(MockConversionRepository)

	leads.On("CountCollectedToday", mock.Anything).Return(40, nil)
	messages.On("CountSentToday", mock.Anything).Return(50, nil)
	conversions.On("CountToday", mock.Anything).Return(5, nil)
	conversions.On("SumCommissionToday", mock.Anything).Return(492.5, nil)
	conversions.On("TopProducts", mock.Anything, 5).Return([]entity.ProductRevenue{
		{Product: "produto1", Sales: 3, Commission: 295.5},
		{Product: "produto2", Sales: 2, Commission: 197.0},
	}, nil)

	uc := NewDailyReportUseCase(leads, messages, conversions)
	report, err := uc.Execute(context.Background(), "2026-08-30")

	assert.NoError(t, err)
	assert.Equal(t, "2026-08-30", report.Date)
	assert.Equal(t, 40, report.LeadsCollected)
	assert.Equal(t, 50, report.MessagesSent)
	assert.Equal(t, 5, report.Conversions)
	assert.InDelta(t, 10.0, report.ConversionRate, 0.001)
	assert.InDelta(t, 492.5, report.Commission, 0.001)
	assert.Len(t, report.TopProducts, 2)
}

func TestDailyReport_SemEnviosTaxaZero(t *testing.T) {
	leads := new(MockLeadRepository)
	messages := new(MockMessageRepository)
	conversions := new(MockConversionRepository)

	leads.On("CountCollectedToday", mock.Anything).Return(0, nil)
	messages.On("CountSentToday", mock.Anything).Return(0, nil)
	conversions.On("CountToday", mock.Anything).Return(0, nil)
	conversions.On("SumCommissionToday", mock.Anything).Return(0.0, nil)
	conversions.On("TopProducts", mock.Anything, 5).Return([]entity.ProductRevenue{}, nil)

	uc := NewDailyReportUseCase(leads, messages, conversions)
	report, err := uc.Execute(context.Background(), "2026-08-30")

	assert.NoError(t, err)
	assert.Zero(t, report.ConversionRate)
}
