package eduzz

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
		baseURL: "https://api.eduzz.com",
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) Name() string { return "eduzz" }

// FetchSales busca as vendas completas na janela pedida.
func (c *Client) FetchSales(ctx context.Context, start, end time.Time) ([]affiliate.SaleEvent, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("eduzz não configurada")
	}

	url := fmt.Sprintf("%s/sale?start_date=%s&end_date=%s&status=complete",
		c.baseURL, start.Format("2006-01-02"), end.Format("2006-01-02"))

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request eduzz: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("erro ao buscar vendas eduzz (status %d)", resp.StatusCode)
	}

	var response salesResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("erro decode eduzz: %w", err)
	}

	events := make([]affiliate.SaleEvent, 0, len(response.Data))
	for _, sale := range response.Data {
		events = append(events, affiliate.SaleEvent{
			TransactionID: sale.SaleID,
			BuyerEmail:    sale.Customer.Email,
			Product:       sale.Product.Name,
			Amount:        sale.Amount,
			Commission:    sale.Commission,
		})
	}

	return events, nil
}
