package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Conversion é uma venda confirmada atribuída a um lead. Append-only.
type Conversion struct {
	ID          string    `json:"id"`
	LeadID      string    `json:"lead_id"`
	Platform    string    `json:"platform"` // hotmart, monetizze, eduzz
	Product     string    `json:"product"`
	Amount      float64   `json:"amount"`
	Commission  float64   `json:"commission"`
	ConvertedAt time.Time `json:"converted_at"`
}

func NewConversion(leadID, platform, product string, amount, commission float64) *Conversion {
	return &Conversion{
		ID:          uuid.New().String(),
		LeadID:      leadID,
		Platform:    platform,
		Product:     product,
		Amount:      amount,
		Commission:  commission,
		ConvertedAt: time.Now(),
	}
}

// ProductRevenue agrega vendas e comissão por produto para o relatório.
type ProductRevenue struct {
	Product    string  `json:"product"`
	Sales      int     `json:"sales"`
	Commission float64 `json:"commission"`
}

type ConversionRepositoryInterface interface {
	Record(ctx context.Context, conv *Conversion) error

	CountToday(ctx context.Context) (int, error)
	SumCommissionToday(ctx context.Context) (float64, error)
	TopProducts(ctx context.Context, limit int) ([]ProductRevenue, error)
}
