package database

import (
	"context"
	"database/sql"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
)

type MessageRepository struct {
	DB *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{DB: db}
}

// Record grava o registro da tentativa de envio. A tabela é append-only:
// nenhum UPDATE acontece aqui depois da criação.
func (r *MessageRepository) Record(ctx context.Context, msg *entity.Message) error {
	_, err := r.DB.ExecContext(ctx, `
		INSERT INTO messages (id, lead_id, channel, body, status, sent_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`,
		msg.ID,
		msg.LeadID,
		msg.Channel,
		msg.Body,
		msg.Status,
		msg.SentAt,
	)
	return err
}

// CountSentToday usa a data local do banco, não UTC normalizado — o corte do
// dia segue o relógio do store.
func (r *MessageRepository) CountSentToday(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `
		SELECT COUNT(*) FROM messages
		WHERE status = $1 AND sent_at::date = CURRENT_DATE
	`, entity.MessageSent).Scan(&count)
	return count, err
}
