package entity

import "errors"

var (
	// ErrSemContato: lead sem email e sem telefone não pode existir.
	ErrSemContato = errors.New("lead precisa de email ou telefone")

	ErrLeadNotFound = errors.New("lead não encontrado")

	// ErrChatIDNotFound: nenhum chat_id conhecido para o telefone.
	ErrChatIDNotFound = errors.New("chat_id do Telegram não encontrado")
)
