package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/caiovm-dev/agente-afiliados/internal/config"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/collector"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/database"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/integration/eduzz"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/integration/gemini"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/integration/hotmart"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/integration/monetizze"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/integration/telegram"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/integration/twilio"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/mail"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/queue"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/scheduler"
	"github.com/caiovm-dev/agente-afiliados/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Configuração inválida: %v", err)
	}

	db, err := database.NewDBConnection(cfg.DatabaseURL)
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

	// Integrações
	oracle, err := gemini.NewClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("❌ Gemini indisponível: %v", err)
	}

	telegramClient := telegram.NewClient(cfg.TelegramBotToken, cfg.TelegramBotUsername)
	twilioClient := twilio.NewClient(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppFrom, cfg.TwilioSMSFrom)
	mailSender := mail.NewEmailSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)

	platforms := []usecase.SalesPlatform{
		hotmart.NewClient(cfg.HotmartAPIKey),
		monetizze.NewClient(cfg.MonetizzeAPIKey),
		eduzz.NewClient(cfg.EduzzAPIKey),
	}

	// Coleta
	websiteCollector := collector.NewWebsiteCollector(cfg.MaxLeadsPerRun)
	defer websiteCollector.Close()
	apiCollector := collector.NewAPICollector(cfg.MaxLeadsPerRun)

	producer := queue.NewProducer(rabbitMQ.Conn, rabbitMQ.Ch)

	// Worker da fila de captura: consome e grava no banco
	worker := queue.NewWorker(rabbitMQ.Ch, leadRepo)
	go worker.Start(queue.QueueName)

	// UseCases
	collectUC := usecase.NewCollectLeadsUseCase(
		websiteCollector,
		apiCollector,
		oracle,
		producer,
		websiteTargets(cfg),
		apiTargets(cfg),
	)

	composer := usecase.NewMessageComposer(oracle, cfg.AffiliateLinks, cfg.Templates)

	dispatchUC := usecase.NewDispatchUseCase(
		leadRepo,
		messageRepo,
		composer,
		mailSender,
		twilioClient,
		twilioClient,
		telegramClient,
		cfg.DailyCap,
		cfg.MessageDelay,
		cfg.AttemptCeiling,
		cfg.MaxLeadsPerRun,
		cfg.DefaultCountryCode,
	)

	reconcileUC := usecase.NewReconcileUseCase(leadRepo, conversionRepo, platforms)
	reportUC := usecase.NewDailyReportUseCase(leadRepo, messageRepo, conversionRepo)

	// Agenda: o Periodic enfileira nos horários, o Worker executa
	periodic, err := scheduler.NewPeriodic(cfg.RedisURL, cfg.Timezone)
	if err != nil {
		log.Fatalf("❌ Agenda inválida: %v", err)
	}

	taskWorker, err := scheduler.NewWorker(
		cfg.RedisURL,
		collectUC,
		dispatchUC,
		reconcileUC,
		reportUC,
		oracle,
		mailSender,
		cfg.AdminEmail,
	)
	if err != nil {
		log.Fatalf("❌ Worker da agenda: %v", err)
	}

	go func() {
		if err := periodic.Run(); err != nil {
			log.Printf("❌ Agenda parou: %v", err)
			stop()
		}
	}()
	defer periodic.Shutdown()

	log.Println("🔥 Agente de afiliados rodando")
	taskWorker.Run(ctx)

	log.Println("⚠️ Encerrando agente")
}

func websiteTargets(cfg *config.Config) []usecase.WebsiteTarget {
	if cfg.LeadsWebsiteURL == "" {
		return nil
	}
	return []usecase.WebsiteTarget{
		{
			URL: cfg.LeadsWebsiteURL,
			Selectors: collector.Selectors{
				Container: ".lead-item",
				Name:      ".nome",
				Email:     ".email",
				Phone:     ".telefone",
			},
		},
	}
}

func apiTargets(cfg *config.Config) []usecase.APITarget {
	if cfg.LeadsAPIURL == "" {
		return nil
	}
	return []usecase.APITarget{
		{
			URL:    cfg.LeadsAPIURL,
			Params: map[string]string{"interesse": "marketing digital"},
		},
	}
}
