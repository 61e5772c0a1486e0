package gemini

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// Client é o oráculo de texto do agente: tags de interesse, frases de
// benefício e sugestões do relatório. Uma chamada por pedido, sem retry —
// quem chama decide o fallback.
type Client struct {
	client *genai.Client
	model  string
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY não configurada")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente Gemini: %w", err)
	}

	return &Client{client: client, model: model}, nil
}

func (c *Client) generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("erro na chamada Gemini: %w", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("Gemini retornou resposta vazia")
	}
	return text, nil
}

// DetectInterests sugere palavras-chave de interesse para um prospect.
func (c *Client) DetectInterests(ctx context.Context, name, email string) (string, error) {
	prompt := fmt.Sprintf(
		"Com base no nome '%s' e email '%s', sugira possíveis interesses para marketing de afiliados. "+
			"Retorne apenas palavras-chave separadas por vírgula.",
		name, email,
	)
	return c.generate(ctx, prompt)
}

// GenerateBenefits gera a frase persuasiva de benefícios do produto.
func (c *Client) GenerateBenefits(ctx context.Context, interests, product string) (string, error) {
	prompt := fmt.Sprintf(
		"Gere 3 benefícios convincentes do produto '%s' para alguém interessado em: %s. "+
			"Retorne uma única frase persuasiva com os benefícios.",
		product, interests,
	)
	return c.generate(ctx, prompt)
}

// GenerateSuggestions produz as sugestões de melhoria do relatório diário.
func (c *Client) GenerateSuggestions(ctx context.Context, reportSummary string) (string, error) {
	prompt := fmt.Sprintf(
		"Com base nos seguintes dados de desempenho de um agente de vendas de afiliados, "+
			"gere 3 sugestões concisas para melhorar os resultados. Seja específico e acionável.\n\nDados:\n%s",
		reportSummary,
	)
	return c.generate(ctx, prompt)
}
