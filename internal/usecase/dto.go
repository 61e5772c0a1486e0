package usecase

// CreateLeadInput é o payload de captura manual de lead via API.
type CreateLeadInput struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Source    string `json:"source"`
	Interests string `json:"interests"`
}

// SaleWebhookInput é a notificação de venda empurrada pelas plataformas.
type SaleWebhookInput struct {
	Platform      string  `json:"platform"`
	TransactionID string  `json:"transaction_id"`
	BuyerEmail    string  `json:"buyer_email"`
	Product       string  `json:"product"`
	Amount        float64 `json:"amount"`
	Commission    float64 `json:"commission"`
}
