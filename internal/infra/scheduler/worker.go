package scheduler

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/caiovm-dev/agente-afiliados/internal/infra/http/middleware"
	"github.com/caiovm-dev/agente-afiliados/internal/usecase"
)

// ReportMailer entrega o relatório diário ao administrador.
type ReportMailer interface {
	SendReport(to, subject, body string) error
}

// Worker consome as tarefas periódicas e despacha para os usecases.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux

	collect    *usecase.CollectLeadsUseCase
	dispatch   *usecase.DispatchUseCase
	reconcile  *usecase.ReconcileUseCase
	report     *usecase.DailyReportUseCase
	oracle     usecase.TextOracle
	mailer     ReportMailer
	adminEmail string
}

func NewWorker(
	redisURL string,
	collect *usecase.CollectLeadsUseCase,
	dispatch *usecase.DispatchUseCase,
	reconcile *usecase.ReconcileUseCase,
	report *usecase.DailyReportUseCase,
	oracle usecase.TextOracle,
	mailer ReportMailer,
	adminEmail string,
) (*Worker, error) {
	opt, err := redisClientOpt(redisURL)
	if err != nil {
		return nil, err
	}

	// As tarefas tocam browser e APIs externas: uma por vez.
	server := asynq.NewServer(opt, asynq.Config{
		Concurrency: 1,
		Queues: map[string]int{
			"default": 1,
		},
	})

	w := &Worker{
		server:     server,
		mux:        asynq.NewServeMux(),
		collect:    collect,
		dispatch:   dispatch,
		reconcile:  reconcile,
		report:     report,
		oracle:     oracle,
		mailer:     mailer,
		adminEmail: adminEmail,
	}

	w.mux.HandleFunc(TaskCollectLeads, w.handleCollect)
	w.mux.HandleFunc(TaskDispatchCycle, w.handleDispatch)
	w.mux.HandleFunc(TaskReconcileSales, w.handleReconcile)
	w.mux.HandleFunc(TaskDailyReport, w.handleReport)

	return w, nil
}

func (w *Worker) Run(ctx context.Context) {
	go func() {
		<-ctx.Done()
		w.server.Shutdown()
	}()

	if err := w.server.Run(w.mux); err != nil {
		log.Printf("❌ [SCHEDULER] Worker parou: %v", err)
	}
}

func (w *Worker) handleCollect(ctx context.Context, task *asynq.Task) error {
	published, err := w.collect.Execute(ctx)
	if err != nil {
		middleware.RecordIntegrationError("collector")
		return err
	}
	log.Printf("✅ [SCHEDULER] Coleta concluída: %d candidatos", published)
	return nil
}

func (w *Worker) handleDispatch(ctx context.Context, task *asynq.Task) error {
	sent, err := w.dispatch.Execute(ctx)
	if err != nil {
		middleware.RecordIntegrationError("dispatch")
		return err
	}
	log.Printf("✅ [SCHEDULER] Disparo concluído: %d mensagens", sent)
	return nil
}

func (w *Worker) handleReconcile(ctx context.Context, task *asynq.Task) error {
	matched, err := w.reconcile.Execute(ctx)
	if err != nil {
		middleware.RecordIntegrationError("reconcile")
		return err
	}
	log.Printf("✅ [SCHEDULER] Reconciliação concluída: %d vendas casadas", matched)
	return nil
}

// handleReport fecha o dia: monta o resumo, pede sugestões ao oráculo e
// envia tudo por e-mail para o dono da operação.
func (w *Worker) handleReport(ctx context.Context, task *asynq.Task) error {
	report, err := w.report.Execute(ctx, todayDate())
	if err != nil {
		middleware.RecordIntegrationError("report")
		return err
	}

	summary := formatReport(report)

	suggestions, err := w.oracle.GenerateSuggestions(ctx, summary)
	if err != nil {
		log.Printf("⚠️ [SCHEDULER] Sugestões indisponíveis: %v", err)
		suggestions = "Sugestões indisponíveis hoje."
	}

	body := summary + "\n\nSugestões para amanhã:\n" + suggestions

	if w.adminEmail == "" {
		log.Printf("⚠️ [SCHEDULER] Sem e-mail de administrador configurado; relatório só no log:\n%s", body)
		return nil
	}

	subject := "Relatório diário do agente - " + report.Date
	if err := w.mailer.SendReport(w.adminEmail, subject, body); err != nil {
		middleware.RecordIntegrationError("mail")
		return fmt.Errorf("envio do relatório diário: %w", err)
	}

	log.Printf("✅ [SCHEDULER] Relatório diário enviado para %s", w.adminEmail)
	return nil
}

func todayDate() string {
	return time.Now().Format("2006-01-02")
}

func formatReport(report *usecase.DailyReport) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Relatório do dia %s\n\n", report.Date)
	fmt.Fprintf(&b, "Leads coletados: %d\n", report.LeadsCollected)
	fmt.Fprintf(&b, "Mensagens enviadas: %d\n", report.MessagesSent)
	fmt.Fprintf(&b, "Conversões: %d\n", report.Conversions)
	fmt.Fprintf(&b, "Taxa de conversão: %.1f%%\n", report.ConversionRate)
	fmt.Fprintf(&b, "Comissão do dia: R$ %.2f\n", report.Commission)

	if len(report.TopProducts) > 0 {
		b.WriteString("\nProdutos com mais vendas:\n")
		for _, p := range report.TopProducts {
			fmt.Fprintf(&b, "- %s: %d vendas (R$ %.2f)\n", p.Product, p.Sales, p.Commission)
		}
	}

	return b.String()
}
