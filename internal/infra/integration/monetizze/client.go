package monetizze

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/caiovm-dev/agente-afiliados/internal/infra/integration/affiliate"
)

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: "https://api.monetizze.com.br/2.1",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Name() string { return "monetizze" }

// FetchSales busca as transações aprovadas na janela pedida.
func (c *Client) FetchSales(ctx context.Context, start, end time.Time) ([]affiliate.SaleEvent, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("monetizze não configurada")
	}

	url := fmt.Sprintf("%s/transactions?start_date=%s&end_date=%s&status=approved",
		c.baseURL, start.Format("2006-01-02"), end.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	// Monetizze usa "Token", não "Bearer"
	req.Header.Set("Authorization", "Token "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request monetizze: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("erro ao buscar vendas monetizze (status %d)", resp.StatusCode)
	}

	var response transactionsResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode monetizze: %w", err)
	}

	events := make([]affiliate.SaleEvent, 0, len(response.Transactions))
	for _, txn := range response.Transactions {
		events = append(events, affiliate.SaleEvent{
			TransactionID: txn.ID,
			BuyerEmail:    txn.Customer.Email,
			Product:       txn.Product.Name,
			Amount:        txn.Price,
			Commission:    txn.CommissionValue,
		})
	}

	return events, nil
}
