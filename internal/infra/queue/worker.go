package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/caiovm-dev/agente-afiliados/internal/entity"
)

// Worker consome leads capturados e faz o upsert no store. Cada mensagem é
// isolada: uma falha nunca derruba o consumo das demais.
type Worker struct {
	Channel *amqp.Channel
	Leads   entity.LeadRepositoryInterface
}

func NewWorker(ch *amqp.Channel, leads entity.LeadRepositoryInterface) *Worker {
	return &Worker{
		Channel: ch,
		Leads:   leads,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload LeadPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [WORKER] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.processLead(context.Background(), payload); err != nil {
				log.Printf("❌ [WORKER] Erro ao salvar lead: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker rodando e aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processLead(ctx context.Context, payload LeadPayload) error {
	lead, err := entity.NewLead(payload.Name, payload.Email, payload.Phone, payload.Source, payload.Interests)
	if err != nil {
		// Lead sem contato nenhum: registra e joga fora, não é retry-ável.
		log.Printf("⚠️ [WORKER] Lead descartado (%s): %v", payload.Name, err)
		return nil
	}

	inserted, err := w.Leads.Upsert(ctx, lead)
	if err != nil {
		return err
	}

	if inserted {
		log.Printf("✅ [WORKER] Novo lead adicionado: %s", leadContact(lead))
	}
	return nil
}

func leadContact(lead *entity.Lead) string {
	if lead.Email != "" {
		return lead.Email
	}
	return lead.Phone
}
