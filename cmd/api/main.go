package main

import (
	"database/sql"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/caiovm-dev/agente-afiliados/internal/config"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/database"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/http/handlers"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/http/middleware"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/queue"
	"github.com/caiovm-dev/agente-afiliados/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("❌ Banco indisponível: %v", err)
	}
	defer db.Close()

	rabbitMQ, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort)
	if err != nil {
		log.Fatalf("❌ RabbitMQ indisponível: %v", err)
	}
	defer rabbitMQ.Conn.Close()
	defer rabbitMQ.Ch.Close()

	// Repositórios
	leadRepo := database.NewLeadRepository(db)
	messageRepo := database.NewMessageRepository(db)
	conversionRepo := database.NewConversionRepository(db)

	// UseCases
	createLeadUC := usecase.NewCreateLeadUseCase(leadRepo)
	recordSaleUC := usecase.NewRecordSaleUseCase(leadRepo, conversionRepo)
	dailyReportUC := usecase.NewDailyReportUseCase(leadRepo, messageRepo, conversionRepo)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, rabbitMQ.Conn)
	leadHandler := handlers.NewLeadHandler(createLeadUC)
	reportHandler := handlers.NewReportHandler(dailyReportUC)
	webhookHandler := handlers.NewWebhookHandler(recordSaleUC)

	// Router
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"http://localhost:5173", "*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
	}))

	r.Get("/health", healthHandler.Handle)
	r.Post("/leads", leadHandler.CaptureLead)
	r.Get("/report/daily", reportHandler.DailyReport)
	r.Post("/webhook/sales", webhookHandler.HandleSale)
	r.Handle("/metrics", promhttp.Handler())

	port := ":" + cfg.Port
	log.Printf("🔥 API do agente rodando na porta %s", port)
	http.ListenAndServe(port, r)
}
