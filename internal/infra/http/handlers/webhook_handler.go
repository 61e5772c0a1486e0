package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/caiovm-dev/agente-afiliados/internal/infra/http/middleware"
	"github.com/caiovm-dev/agente-afiliados/internal/usecase"
)

type WebhookHandler struct {
	RecordSaleUC *usecase.RecordSaleUseCase
}

func NewWebhookHandler(uc *usecase.RecordSaleUseCase) *WebhookHandler {
	return &WebhookHandler{RecordSaleUC: uc}
}

type SaleWebhookResponse struct {
	Received bool   `json:"received"`
	Matched  bool   `json:"matched"`
	Message  string `json:"message,omitempty"`
}

// HandleSale (POST /webhook/sales) recebe a notificação de venda das
// plataformas. Responde 200 mesmo sem lead casado — a plataforma não deve
// reenviar vendas orgânicas.
func (h *WebhookHandler) HandleSale(w http.ResponseWriter, r *http.Request) {
	var input usecase.SaleWebhookInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeJSON(w, http.StatusBadRequest, SaleWebhookResponse{
			Received: false,
			Message:  "Invalid JSON",
		})
		return
	}

	if errs := usecase.ValidateSaleWebhookInput(input); len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, SaleWebhookResponse{
			Received: false,
			Message:  errs[0].Error(),
		})
		return
	}

	conversion, err := h.RecordSaleUC.Execute(r.Context(), input)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, SaleWebhookResponse{
			Received: false,
			Message:  "Failed to record sale",
		})
		return
	}

	if conversion != nil {
		middleware.RecordConversion(conversion.Platform)
	}

	writeJSON(w, http.StatusOK, SaleWebhookResponse{
		Received: true,
		Matched:  conversion != nil,
	})
}
