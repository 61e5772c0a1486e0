package collector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// APICollector busca prospects em APIs de listas de terceiros (JSON).
type APICollector struct {
	http     *http.Client
	maxLeads int
}

func NewAPICollector(maxLeads int) *APICollector {
	return &APICollector{
		http:     &http.Client{Timeout: 10 * time.Second},
		maxLeads: maxLeads,
	}
}

type apiLead struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

func (c *APICollector) Collect(ctx context.Context, apiURL string, params map[string]string) ([]Candidate, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, err
	}

	query := url.Values{}
	for k, v := range params {
		query.Set(k, v)
	}
	req.URL.RawQuery = query.Encode()

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro request lista de leads: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("API de leads retornou status %d", resp.StatusCode)
	}

	var items []apiLead
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("erro decode lista de leads: %w", err)
	}

	if len(items) > c.maxLeads {
		items = items[:c.maxLeads]
	}

	candidates := make([]Candidate, 0, len(items))
	for _, item := range items {
		candidates = append(candidates, Candidate{
			Name:   item.Name,
			Email:  item.Email,
			Phone:  item.Phone,
			Source: apiURL,
		})
	}

	return candidates, nil
}
