package entity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusConverted = "converted"
)

// Entidade: Lead
type Lead struct {
	ID             string     `json:"id"`
	Name           string     `json:"name,omitempty"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Source         string     `json:"source"`
	Interests      string     `json:"interests"` // palavras-chave separadas por vírgula
	TelegramChatID int64      `json:"telegram_chat_id,omitempty"`
	Status         string     `json:"status"` // new, contacted, converted
	Attempts       int        `json:"attempts"`
	LastContactAt  *time.Time `json:"last_contact_at,omitempty"`
	CollectedAt    time.Time  `json:"collected_at"`
}

// Factory. O e-mail é normalizado para minúsculas: é a chave de dedup e do
// casamento de vendas, e as plataformas devolvem o buyer email em caixa livre.
func NewLead(name, email, phone, source, interests string) (*Lead, error) {
	lead := &Lead{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(name),
		Email:       strings.ToLower(strings.TrimSpace(email)),
		Phone:       strings.TrimSpace(phone),
		Source:      source,
		Interests:   interests,
		Status:      StatusNew,
		CollectedAt: time.Now(),
	}

	if err := lead.Validate(); err != nil {
		return nil, err
	}

	return lead, nil
}

// Validate garante o invariante mínimo: pelo menos um canal de contato.
func (l *Lead) Validate() error {
	if l.Email == "" && l.Phone == "" {
		return ErrSemContato
	}
	return nil
}

// FirstName retorna o primeiro nome para saudação, ou "cliente" se vazio.
func (l *Lead) FirstName() string {
	parts := strings.Fields(l.Name)
	if len(parts) == 0 {
		return "cliente"
	}
	return parts[0]
}

// FirstInterest retorna o primeiro interesse para o template, ou um genérico.
func (l *Lead) FirstInterest() string {
	for _, tag := range strings.Split(l.Interests, ",") {
		if t := strings.TrimSpace(tag); t != "" {
			return t
		}
	}
	return "este assunto"
}

type LeadRepositoryInterface interface {
	// Upsert insere o lead a menos que já exista outro com o mesmo email OU
	// telefone. Retorna true se inseriu. Duplicado não sofre merge nem update.
	Upsert(ctx context.Context, lead *Lead) (bool, error)

	// Qualified retorna até limit leads elegíveis para contato, do mais
	// antigo para o mais novo.
	Qualified(ctx context.Context, limit, maxAttempts int) ([]*Lead, error)

	MarkSent(ctx context.Context, leadID string) error
	MarkConverted(ctx context.Context, leadID string) error

	FindByEmail(ctx context.Context, email string) (*Lead, error)
	FindChatID(ctx context.Context, phone string) (int64, error)
	SaveChatID(ctx context.Context, phone string, chatID int64) error

	// CountCollectedToday alimenta o relatório diário (data local do banco).
	CountCollectedToday(ctx context.Context) (int, error)
}
