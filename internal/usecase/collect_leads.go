package usecase

import (
	"context"
	"log"

	"github.com/caiovm-dev/agente-afiliados/internal/infra/collector"
	"github.com/caiovm-dev/agente-afiliados/internal/infra/queue"
)

// WebsiteTarget é uma página de diretório configurada para raspagem.
type WebsiteTarget struct {
	URL       string
	Selectors collector.Selectors
}

// APITarget é um endpoint externo que devolve leads em JSON.
type APITarget struct {
	URL    string
	Params map[string]string
}

// CollectLeadsUseCase varre as fontes configuradas, marca os interesses de
// cada candidato via oráculo e publica tudo na fila de captura. A
// persistência fica por conta do worker que consome a fila.
type CollectLeadsUseCase struct {
	Website  WebsiteCollectorInterface
	API      APICollectorInterface
	Oracle   TextOracle
	Producer QueueProducerInterface

	Websites []WebsiteTarget
	APIs     []APITarget
}

func NewCollectLeadsUseCase(
	website WebsiteCollectorInterface,
	api APICollectorInterface,
	oracle TextOracle,
	producer QueueProducerInterface,
	websites []WebsiteTarget,
	apis []APITarget,
) *CollectLeadsUseCase {
	return &CollectLeadsUseCase{
		Website:  website,
		API:      api,
		Oracle:   oracle,
		Producer: producer,
		Websites: websites,
		APIs:     apis,
	}
}

// Execute roda um ciclo de coleta e devolve quantos candidatos foram
// publicados. Uma fonte quebrada não derruba as demais.
func (uc *CollectLeadsUseCase) Execute(ctx context.Context) (int, error) {
	published := 0

	for _, target := range uc.Websites {
		candidates, err := uc.Website.Collect(ctx, target.URL, target.Selectors)
		if err != nil {
			log.Printf("❌ [COLLECT] Falha ao raspar %s: %v", target.URL, err)
			continue
		}
		published += uc.publish(ctx, candidates)
	}

	for _, target := range uc.APIs {
		candidates, err := uc.API.Collect(ctx, target.URL, target.Params)
		if err != nil {
			log.Printf("❌ [COLLECT] Falha ao consultar API %s: %v", target.URL, err)
			continue
		}
		published += uc.publish(ctx, candidates)
	}

	log.Printf("✅ [COLLECT] %d candidatos publicados na fila", published)
	return published, nil
}

func (uc *CollectLeadsUseCase) publish(ctx context.Context, candidates []collector.Candidate) int {
	count := 0
	for _, cand := range candidates {
		if cand.Email == "" && cand.Phone == "" {
			continue
		}

		interests, err := uc.Oracle.DetectInterests(ctx, cand.Name, cand.Email)
		if err != nil {
			log.Printf("⚠️ [COLLECT] Interesses não detectados para %s: %v", cand.Email, err)
			interests = "geral"
		}

		payload := queue.LeadPayload{
			Name:      cand.Name,
			Email:     cand.Email,
			Phone:     cand.Phone,
			Source:    cand.Source,
			Interests: interests,
		}

		if err := uc.Producer.PublishLead(ctx, payload); err != nil {
			log.Printf("❌ [COLLECT] Falha ao publicar candidato %s: %v", cand.Email, err)
			continue
		}
		count++
	}
	return count
}
