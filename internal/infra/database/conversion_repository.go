package database

import (
	"context"
	"database/sql"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
)

type ConversionRepository struct {
	DB *sql.DB
}

func NewConversionRepository(db *sql.DB) *ConversionRepository {
	return &ConversionRepository{DB: db}
}

// Record apenda a conversão. Reprocessar o mesmo evento externo gera uma
// segunda linha — a deduplicação por transaction id fica na borda do
// transport, não aqui.
func (r *ConversionRepository) Record(ctx context.Context, conv *entity.Conversion) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO conversions (id, lead_id, platform, product, amount, commission, converted_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`,
		conv.ID,
		conv.LeadID,
		conv.Platform,
		conv.Product,
		conv.Amount,
		conv.Commission,
		conv.ConvertedAt,
	)
	return err
}

func (r *ConversionRepository) CountToday(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM conversions WHERE converted_at::date = CURRENT_DATE
	`).Scan(&count)
	return count, err
}

func (r *ConversionRepository) SumCommissionToday(ctx context.Context) (float64, error) {
	var total sql.NullFloat64
	err := r.DB.QueryRowContext(ctx, `
		SELECT SUM(commission) FROM conversions WHERE converted_at::date = CURRENT_DATE
	`).Scan(&total)
	if err != nil {
		return 0, err
	}
	return total.Float64, nil // NULL quando não há vendas -> 0
}

// TopProducts agrega só as conversões de hoje (data local do banco) e
// ordena por comissão somada, descendente. Empates ficam na ordem que o
// banco devolver.
func (r *ConversionRepository) TopProducts(ctx context.Context, limit int) ([]entity.ProductRevenue, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT product, COUNT(*) AS sales, SUM(commission) AS commission
		FROM conversions
		WHERE converted_at::date = CURRENT_DATE
		GROUP BY product
		ORDER BY commission DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []entity.ProductRevenue
	for rows.Next() {
		var p entity.ProductRevenue
		if err := rows.Scan(&p.Product, &p.Sales, &p.Commission); err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, rows.Err()
}
