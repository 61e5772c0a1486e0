package handlers

import (
	"net/http"
	"time"

	"github.com/caiovm-dev/agente-afiliados/internal/usecase"
)

type ReportHandler struct {
	DailyReportUC *usecase.DailyReportUseCase
}

func NewReportHandler(uc *usecase.DailyReportUseCase) *ReportHandler {
	return &ReportHandler{DailyReportUC: uc}
}

// DailyReport (GET /report/daily) devolve o resumo do dia corrente.
func (h *ReportHandler) DailyReport(w http.ResponseWriter, r *http.Request) {
	date := time.Now().Format("2006-01-02")

	report, err := h.DailyReportUC.Execute(r.Context(), date)
	if err != nil {
		http.Error(w, "Failed to build daily report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, report)
}
