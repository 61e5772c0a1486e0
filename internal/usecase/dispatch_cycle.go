package usecase

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strings"
	"time"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/http/middleware"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/phone"
)

// DispatchUseCase percorre os leads qualificados e dispara a mensagem do
// dia em cada canal, respeitando o teto diário e o intervalo entre envios.
type DispatchUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Messages entity.MessageRepositoryInterface
	Composer *MessageComposer
	Email    EmailService
	WhatsApp WhatsAppService
	SMS      SMSService
	Telegram TelegramService

	DailyCap           int
	MessageDelay       time.Duration
	AttemptCeiling     int
	MaxLeadsPerRun     int
	DefaultCountryCode string

	randIntn func(n int) int
}

func NewDispatchUseCase(
	leads entity.LeadRepositoryInterface,
	messages entity.MessageRepositoryInterface,
	composer *MessageComposer,
	email EmailService,
	whatsapp WhatsAppService,
	sms SMSService,
	telegram TelegramService,
	dailyCap int,
	messageDelay time.Duration,
	attemptCeiling int,
	maxLeadsPerRun int,
	defaultCountryCode string,
) *DispatchUseCase {
	return &DispatchUseCase{
		Leads:              leads,
		Messages:           messages,
		Composer:           composer,
		Email:              email,
		WhatsApp:           whatsapp,
		SMS:                sms,
		Telegram:           telegram,
		DailyCap:           dailyCap,
		MessageDelay:       messageDelay,
		AttemptCeiling:     attemptCeiling,
		MaxLeadsPerRun:     maxLeadsPerRun,
		DefaultCountryCode: defaultCountryCode,
		randIntn:           rand.Intn,
	}
}

// Execute roda um ciclo de disparo e devolve quantas mensagens saíram.
func (uc *DispatchUseCase) Execute(ctx context.Context) (int, error) {
	sentToday, err := uc.Messages.CountSentToday(ctx)
	if err != nil {
		return 0, NewTechnicalError("contagem de envios do dia", err)
	}

	remaining := uc.DailyCap - sentToday
	if remaining <= 0 {
		log.Printf("⚠️ [DISPATCH] Teto diário de %d mensagens atingido", uc.DailyCap)
		return 0, nil
	}

	limit := uc.MaxLeadsPerRun
	if remaining < limit {
		limit = remaining
	}

	leads, err := uc.Leads.Qualified(ctx, limit, uc.AttemptCeiling)
	if err != nil {
		return 0, NewTechnicalError("busca de leads qualificados", err)
	}

	log.Printf("📥 [DISPATCH] %d leads qualificados (restam %d envios hoje)", len(leads), remaining)

	sent := 0
	for _, lead := range leads {
		if sent >= remaining {
			break
		}

		produto, ok := uc.selectProduct(lead)
		if !ok {
			// Interesse sem produto mapeado: o lead fica intocado
			// para um ciclo futuro.
			continue
		}

		canal := uc.selectChannel(lead)
		body := uc.Composer.Compose(ctx, lead, produto, canal)
		if body == "" {
			continue
		}

		if err := uc.send(ctx, lead, canal, body); err != nil {
			log.Printf("❌ [DISPATCH] Falha ao enviar para lead %s via %s: %v", lead.ID, canal, err)
			uc.record(ctx, lead, canal, body, entity.MessageFailed)
			middleware.RecordMessageSent(canal, entity.MessageFailed)
		} else {
			uc.record(ctx, lead, canal, body, entity.MessageSent)
			middleware.RecordMessageSent(canal, entity.MessageSent)
			if err := uc.Leads.MarkSent(ctx, lead.ID); err != nil {
				log.Printf("⚠️ [DISPATCH] Envio feito mas lead %s não foi atualizado: %v", lead.ID, err)
			}
			sent++
			log.Printf("✅ [DISPATCH] Mensagem enviada para lead %s via %s", lead.ID, canal)
		}

		select {
		case <-ctx.Done():
			return sent, ctx.Err()
		case <-time.After(uc.MessageDelay):
		}
	}

	return sent, nil
}

// selectProduct mapeia o interesse do lead para um produto. Interesses de
// empreendedorismo podem receber qualquer um dos dois.
func (uc *DispatchUseCase) selectProduct(lead *entity.Lead) (string, bool) {
	interesse := strings.ToLower(lead.Interests)
	switch {
	case strings.Contains(interesse, "marketing") || strings.Contains(interesse, "vendas"):
		return entity.ProdutoMarketing, true
	case strings.Contains(interesse, "investimento") || strings.Contains(interesse, "dinheiro"):
		return entity.ProdutoInvestimento, true
	case strings.Contains(interesse, "empreendedor") || strings.Contains(interesse, "negócio") || strings.Contains(interesse, "negocio"):
		if uc.randIntn(2) == 0 {
			return entity.ProdutoMarketing, true
		}
		return entity.ProdutoInvestimento, true
	default:
		return "", false
	}
}

// selectChannel prefere canais de telefone quando houver número; sem
// telefone, sobra o e-mail.
func (uc *DispatchUseCase) selectChannel(lead *entity.Lead) string {
	if lead.Phone != "" {
		if uc.randIntn(2) == 0 {
			return entity.ChannelWhatsApp
		}
		return entity.ChannelTelegram
	}
	return entity.ChannelEmail
}

func (uc *DispatchUseCase) send(ctx context.Context, lead *entity.Lead, canal, body string) error {
	switch canal {
	case entity.ChannelEmail:
		if lead.Email == "" {
			return NewDomainError("lead sem e-mail para envio")
		}
		return uc.Email.SendPromo(lead.Email, body)
	case entity.ChannelWhatsApp:
		to, err := phone.Normalize(lead.Phone, uc.DefaultCountryCode)
		if err != nil {
			return err
		}
		return uc.WhatsApp.SendWhatsApp(ctx, to, body)
	case entity.ChannelTelegram:
		return uc.sendTelegram(ctx, lead, body)
	default:
		return NewDomainError(fmt.Sprintf("canal desconhecido: %s", canal))
	}
}

// sendTelegram aplica a cadeia de opt-in: chat_id salvo, descoberta via
// getUpdates e, no fim, convite de deep link por WhatsApp ou SMS. Um
// convite entregue conta como sucesso; o lead abre o bot por conta própria.
func (uc *DispatchUseCase) sendTelegram(ctx context.Context, lead *entity.Lead, body string) error {
	normalized, err := phone.Normalize(lead.Phone, uc.DefaultCountryCode)
	if err != nil {
		return err
	}

	chatID, err := uc.Leads.FindChatID(ctx, normalized)
	if err == nil {
		// Chat conhecido: a falha aqui é definitiva, sem cair para
		// o convite — o lead já abriu o bot antes.
		return uc.Telegram.SendMessage(ctx, chatID, body)
	}
	if err != entity.ErrChatIDNotFound {
		return NewTechnicalError("consulta de chat_id", err)
	}

	chatID, err = uc.Telegram.DiscoverChatID(ctx, normalized)
	if err == nil {
		if saveErr := uc.Leads.SaveChatID(ctx, normalized, chatID); saveErr != nil {
			log.Printf("⚠️ [DISPATCH] chat_id descoberto mas não persistido para %s: %v", normalized, saveErr)
		}
		return uc.Telegram.SendMessage(ctx, chatID, body)
	}

	invite := fmt.Sprintf(
		"Oi! Me adiciona no Telegram para receber conteúdos exclusivos: %s",
		uc.Telegram.DeepLink(normalized),
	)

	if err := uc.WhatsApp.SendWhatsApp(ctx, normalized, invite); err == nil {
		log.Printf("📥 [DISPATCH] Convite de Telegram enviado via WhatsApp para %s", normalized)
		return nil
	}

	if err := uc.SMS.SendSMS(ctx, normalized, invite); err == nil {
		log.Printf("📥 [DISPATCH] Convite de Telegram enviado via SMS para %s", normalized)
		return nil
	}

	return NewDomainError("nenhum canal aceitou o convite de Telegram")
}

func (uc *DispatchUseCase) record(ctx context.Context, lead *entity.Lead, canal, body, status string) {
	msg := entity.NewMessage(lead.ID, canal, body, status)
	if err := uc.Messages.Record(ctx, msg); err != nil {
		log.Printf("⚠️ [DISPATCH] Histórico de mensagem não gravado para lead %s: %v", lead.ID, err)
	}
}
