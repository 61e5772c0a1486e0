package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// Client fala com a Bot API do Telegram. O bot só consegue mandar mensagem
// para quem já iniciou conversa — por isso o fluxo de descoberta de chat_id
// e o deep link de convite.
type Client struct {
	token       string
	botUsername string
	baseURL     string
	http        *http.Client
}

func NewClient(token, botUsername string) *Client {
	return &Client{
		token:       token,
		botUsername: botUsername,
		baseURL:     "https://api.telegram.org",
		http:        &http.Client{Timeout: 10 * time.Second},
	}
}

func (c *Client) endpoint(method string) string {
	return fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
}

// SendMessage envia texto direto para um chat_id já conhecido.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	if c.token == "" {
		return fmt.Errorf("telegram não configurado")
	}

	payload := sendMessageRequest{ChatID: chatID, Text: text}
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao marshal payload telegram: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.endpoint("sendMessage"), bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request telegram: %w", err)
	}
	defer resp.Body.Close()

	var result apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("erro decode telegram: %w", err)
	}

	if !result.OK {
		return fmt.Errorf("telegram api error %d: %s", result.ErrorCode, result.Description)
	}

	return nil
}

// DiscoverChatID varre os updates entregues ao bot procurando um payload de
// contato cujo telefone bata com o número normalizado. É a única forma de
// achar o chat de quem acabou de abrir o deep link.
func (c *Client) DiscoverChatID(ctx context.Context, phone string) (int64, error) {
	if c.token == "" {
		return 0, fmt.Errorf("telegram não configurado")
	}

	req, err := http.NewRequestWithContext(ctx, "GET", c.endpoint("getUpdates"), nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("erro request telegram: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, err
	}

	var result updatesResponse
	if err := json.Unmarshal(data, &result); err != nil {
		return 0, fmt.Errorf("erro decode updates: %w", err)
	}
	if !result.OK {
		return 0, fmt.Errorf("telegram api error: getUpdates recusado")
	}

	for _, update := range result.Result {
		if update.Message == nil || update.Message.Contact == nil {
			continue
		}
		if samePhone(update.Message.Contact.PhoneNumber, phone) {
			log.Printf("📱 Telegram: chat_id %d descoberto para %s", update.Message.Chat.ID, phone)
			return update.Message.Chat.ID, nil
		}
	}

	return 0, fmt.Errorf("nenhum update com contato para %s", phone)
}

// DeepLink monta o link que, aberto pelo destinatário, inicia a conversa
// com o bot (e nos dá o opt-in que a API exige).
func (c *Client) DeepLink(phone string) string {
	return fmt.Sprintf("https://t.me/%s?start=contato_%s", c.botUsername, strings.TrimPrefix(phone, "+"))
}

// A Bot API às vezes entrega o contato com e às vezes sem o "+".
func samePhone(a, b string) bool {
	return strings.TrimPrefix(a, "+") == strings.TrimPrefix(b, "+")
}
