package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert insere o lead, a menos que já exista outro com o mesmo email OU o
// mesmo telefone (primeiro match vence). Duplicado não recebe merge nem
// update — só retorna false.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) (bool, error) {
	if err := lead.Validate(); err != nil {
		return false, err
	}

	var existingID string
	err := r.DB.QueryRowContext(ctx, `
		SELECT id FROM leads
		WHERE (email <> '' AND email = $1)
		   OR (phone <> '' AND phone = $2)
		LIMIT 1
	`, lead.Email, lead.Phone).Scan(&existingID)

	if err == nil {
		return false, nil // duplicado, sem side effects
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return false, err
	}

	_, err = r.DB.ExecContext(ctx, `
		INSERT INTO leads (id, name, email, phone, source, interests, status, attempts, collected_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 0, $8)
	`,
		lead.ID,
		lead.Name,
		lead.Email,
		lead.Phone,
		lead.Source,
		lead.Interests,
		entity.StatusNew,
		lead.CollectedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Corrida entre dois upserts do mesmo contato: trata como duplicado.
			return false, nil
		}

		log.Printf("Erro crítico no banco: %v", err)
		return false, err
	}

	return true, nil
}

// Qualified busca leads elegíveis para contato: novos, ou já contatados com
// tentativas abaixo do teto. Mais antigos primeiro — justiça sobre recência.
func (r *LeadRepository) Qualified(ctx context.Context, limit, maxAttempts int) ([]*entity.Lead, error) {
	rows, err := r.DB.QueryContext(ctx, `
		SELECT id, name, email, phone, source, interests, telegram_chat_id, status, attempts, last_contact_at, collected_at
		FROM leads
		WHERE status = $1 OR (status = $2 AND attempts < $3)
		ORDER BY collected_at ASC
		LIMIT $4
	`, entity.StatusNew, entity.StatusContacted, maxAttempts, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*entity.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		leads = append(leads, lead)
	}

	return leads, rows.Err()
}

// MarkSent registra o contato: status "contacted", carimbo de hora e
// incremento do contador de tentativas.
func (r *LeadRepository) MarkSent(ctx context.Context, leadID string) error {
	res, err := r.DB.ExecContext(ctx, `
		UPDATE leads
		SET status = $1, last_contact_at = NOW(), attempts = attempts + 1
		WHERE id = $2
	`, entity.StatusContacted, leadID)
	if err != nil {
		return err
	}

	if n, _ := res.RowsAffected(); n == 0 {
		return entity.ErrLeadNotFound
	}
	return nil
}

// MarkConverted é idempotente: converter um lead já convertido não é erro.
func (r *LeadRepository) MarkConverted(ctx context.Context, leadID string) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE leads SET status = $1 WHERE id = $2
	`, entity.StatusConverted, leadID)
	return err
}

func (r *LeadRepository) FindByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	row := r.DB.QueryRowContext(ctx, `
		SELECT id, name, email, phone, source, interests, telegram_chat_id, status, attempts, last_contact_at, collected_at
		FROM leads
		WHERE email = $1
		LIMIT 1
	`, email)

	lead, err := scanLead(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrLeadNotFound
	}
	return lead, err
}

// FindChatID busca o chat_id do Telegram já descoberto para um telefone
// normalizado.
func (r *LeadRepository) FindChatID(ctx context.Context, phone string) (int64, error) {
	var chatID sql.NullInt64
	err := r.DB.QueryRowContext(ctx, `
		SELECT telegram_chat_id FROM leads WHERE phone = $1 LIMIT 1
	`, phone).Scan(&chatID)

	if errors.Is(err, sql.ErrNoRows) || (err == nil && (!chatID.Valid || chatID.Int64 == 0)) {
		return 0, entity.ErrChatIDNotFound
	}
	if err != nil {
		return 0, err
	}
	return chatID.Int64, nil
}

// SaveChatID persiste o chat_id descoberto para reuso nos próximos ciclos.
func (r *LeadRepository) SaveChatID(ctx context.Context, phone string, chatID int64) error {
	_, err := r.DB.ExecContext(ctx, `
		UPDATE leads SET telegram_chat_id = $1 WHERE phone = $2
	`, chatID, phone)
	return err
}

func (r *LeadRepository) CountCollectedToday(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM leads WHERE collected_at::date = CURRENT_DATE
	`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanLead(row rowScanner) (*entity.Lead, error) {
	var lead entity.Lead
	var name, email, phoneNumber, source, interests sql.NullString
	var chatID sql.NullInt64
	var lastContact sql.NullTime

	err := row.Scan(
		&lead.ID,
		&name,
		&email,
		&phoneNumber,
		&source,
		&interests,
		&chatID,
		&lead.Status,
		&lead.Attempts,
		&lastContact,
		&lead.CollectedAt,
	)
	if err != nil {
		return nil, err
	}

	lead.Name = name.String
	lead.Email = email.String
	lead.Phone = phoneNumber.String
	lead.Source = source.String
	lead.Interests = interests.String
	lead.TelegramChatID = chatID.Int64
	if lastContact.Valid {
		lead.LastContactAt = &lastContact.Time
	}

	return &lead, nil
}
