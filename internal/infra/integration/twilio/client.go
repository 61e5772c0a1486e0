package twilio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client cobre os dois transports da Twilio que o agente usa: WhatsApp e
// SMS puro (o último fallback da cadeia de convite do Telegram).
type Client struct {
	accountSID   string
	authToken    string
	whatsappFrom string
	smsFrom      string
	baseURL      string
	http         *http.Client
}

func NewClient(accountSID, authToken, whatsappFrom, smsFrom string) *Client {
	return &Client{
		accountSID:   accountSID,
		authToken:    authToken,
		whatsappFrom: whatsappFrom,
		smsFrom:      smsFrom,
		baseURL:      "https://api.twilio.com/2010-04-01",
		http:         &http.Client{Timeout: 10 * time.Second},
	}
}

// SendWhatsApp envia a mensagem para um número já normalizado (+55...).
func (c *Client) SendWhatsApp(ctx context.Context, to, body string) error {
	return c.createMessage(ctx, "whatsapp:"+c.whatsappFrom, "whatsapp:"+to, body)
}

// SendSMS envia um SMS comum.
func (c *Client) SendSMS(ctx context.Context, to, body string) error {
	return c.createMessage(ctx, c.smsFrom, to, body)
}

func (c *Client) createMessage(ctx context.Context, from, to, body string) error {
	if c.accountSID == "" || c.authToken == "" {
		return fmt.Errorf("twilio não configurado")
	}

	form := url.Values{}
	form.Set("From", from)
	form.Set("To", to)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", c.baseURL, c.accountSID)
	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.accountSID, c.authToken)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request twilio: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("twilio recusou o envio (status %d): %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}

	var result messageResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return fmt.Errorf("erro decode twilio: %w", err)
	}

	if result.SID == "" {
		return fmt.Errorf("twilio não retornou SID da mensagem")
	}

	return nil
}
