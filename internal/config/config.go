package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config carrega tudo de uma vez no startup e é injetado nos construtores.
// Nada de os.Getenv espalhado pelos usecases.
type Config struct {
	Env  string
	Port string

	DatabaseURL string
	RedisURL    string

	RabbitUser string
	RabbitPass string
	RabbitHost string
	RabbitPort string

	GeminiAPIKey string
	GeminiModel  string

	MailHost string
	MailPort int
	MailUser string
	MailPass string
	MailFrom string

	TwilioAccountSID    string
	TwilioAuthToken     string
	TwilioWhatsAppFrom  string // ex: "+14155238886"
	TwilioSMSFrom       string
	TelegramBotToken    string
	TelegramBotUsername string

	HotmartAPIKey   string
	MonetizzeAPIKey string
	EduzzAPIKey     string

	// Limites de envio
	DailyCap       int           // máximo de mensagens por dia
	MessageDelay   time.Duration // pausa entre envios
	AttemptCeiling int           // tentativas por lead antes de ficar dormente
	MaxLeadsPerRun int

	// Código de país assumido quando o número tem tamanho doméstico (11 dígitos)
	DefaultCountryCode string

	// Agenda do agente e destino do relatório de fechamento
	Timezone   string
	AdminEmail string

	// Fontes de coleta
	LeadsWebsiteURL string
	LeadsAPIURL     string

	// produto -> links de afiliado (com mais de um link, o envio sorteia)
	AffiliateLinks map[string][]string

	// canal -> template com {{.Nome}} {{.Produto}} {{.Beneficio}} {{.LinkAfiliado}} {{.Tema}}
	Templates map[string]string
}

const emailTemplate = `Olá {{.Nome}},

Descobrimos que você pode se interessar por {{.Produto}}. Como especialista na área, queria compartilhar essa oportunidade exclusiva com você.

{{.Produto}} pode ajudar você a {{.Beneficio}}.

Confira agora mesmo: {{.LinkAfiliado}}

Atenciosamente,
Equipe de Recomendações`

const chatTemplate = `Olá {{.Nome}}, tudo bem?

Vi que você tem interesse em {{.Tema}} e pensei no {{.Produto}} pra você. Ele ajuda pessoas como você a {{.Beneficio}}.

Dá uma olhada aqui: {{.LinkAfiliado}}

Se quiser mais informações, é só responder essa mensagem!`

// Load lê o .env e valida as chaves obrigatórias. Erro aqui derruba o
// processo no startup — credencial faltando não tem recuperação.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Env:  getEnv("APP_ENV", "development"),
		Port: getEnv("PORT", "8080"),

		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    getEnv("REDIS_URL", "redis://localhost:6379/0"),

		RabbitUser: getEnv("RABBITMQ_USER", "guest"),
		RabbitPass: getEnv("RABBITMQ_PASS", "guest"),
		RabbitHost: getEnv("RABBITMQ_HOST", "localhost"),
		RabbitPort: getEnv("RABBITMQ_PORT", "5672"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.0-flash"),

		MailHost: getEnv("MAIL_HOST", "smtp.gmail.com"),
		MailPort: getEnvInt("MAIL_PORT", 587),
		MailUser: os.Getenv("MAIL_USER"),
		MailPass: os.Getenv("MAIL_PASS"),
		MailFrom: getEnv("MAIL_FROM", "contato@seudominio.com"),

		TwilioAccountSID:    os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:     os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioWhatsAppFrom:  os.Getenv("TWILIO_WHATSAPP_NUMBER"),
		TwilioSMSFrom:       os.Getenv("TWILIO_PHONE_NUMBER"),
		TelegramBotToken:    os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramBotUsername: os.Getenv("TELEGRAM_BOT_USERNAME"),

		HotmartAPIKey:   os.Getenv("HOTMART_API_KEY"),
		MonetizzeAPIKey: os.Getenv("MONETIZZE_API_KEY"),
		EduzzAPIKey:     os.Getenv("EDUZZ_API_KEY"),

		DailyCap:       getEnvInt("MAX_MESSAGES_PER_DAY", 100),
		MessageDelay:   time.Duration(getEnvInt("MIN_SECONDS_BETWEEN_MESSAGES", 30)) * time.Second,
		AttemptCeiling: getEnvInt("MAX_ATTEMPTS_PER_LEAD", 3),
		MaxLeadsPerRun: getEnvInt("MAX_LEADS_PER_RUN", 50),

		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "55"),

		Timezone:   getEnv("SCHEDULE_TIMEZONE", "America/Sao_Paulo"),
		AdminEmail: os.Getenv("ADMIN_EMAIL"),

		LeadsWebsiteURL: os.Getenv("LEADS_WEBSITE_URL"),
		LeadsAPIURL:     os.Getenv("LEADS_API_URL"),

		AffiliateLinks: map[string][]string{
			"produto1": splitLinks(os.Getenv("AFFILIATE_LINK_1")),
			"produto2": splitLinks(os.Getenv("AFFILIATE_LINK_2")),
		},

		Templates: map[string]string{
			"email":    emailTemplate,
			"whatsapp": chatTemplate,
			"telegram": chatTemplate,
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL não encontrada no ambiente")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY não encontrada no ambiente")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

// splitLinks aceita vários links separados por vírgula na mesma variável.
func splitLinks(raw string) []string {
	var links []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			links = append(links, p)
		}
	}
	return links
}
